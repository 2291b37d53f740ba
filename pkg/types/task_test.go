package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(d Date) *Date {
	return &d
}

func TestTaskStatusOn(t *testing.T) {
	today := NewDate(2024, time.June, 15)
	yesterday := NewDate(2024, time.June, 14)
	tomorrow := NewDate(2024, time.June, 16)

	tests := []struct {
		name string
		task Task
		want Status
	}{
		{
			name: "completed is done regardless of due date",
			task: Task{Completed: true, DueDate: datePtr(yesterday)},
			want: StatusDone,
		},
		{
			name: "completed without due date is done",
			task: Task{Completed: true},
			want: StatusDone,
		},
		{
			name: "past due date is overdue",
			task: Task{DueDate: datePtr(yesterday)},
			want: StatusOverdue,
		},
		{
			name: "due date today is due-today",
			task: Task{DueDate: datePtr(today)},
			want: StatusDueToday,
		},
		{
			name: "future due date is pending",
			task: Task{DueDate: datePtr(tomorrow)},
			want: StatusPending,
		},
		{
			name: "no due date is pending",
			task: Task{},
			want: StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.StatusOn(today))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "trims and lowercases",
			in:   []string{" Home ", "ERRAND"},
			want: []string{"home", "errand"},
		},
		{
			name: "drops empties",
			in:   []string{"", "  ", "work"},
			want: []string{"work"},
		},
		{
			name: "keeps order and duplicates",
			in:   []string{"b", "a", "b"},
			want: []string{"b", "a", "b"},
		},
		{
			name: "nil input",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comma separated with noise",
			input: "Home, Errand ,  ",
			want:  []string{"home", "errand"},
		},
		{
			name:  "single token",
			input: "urgent",
			want:  []string{"urgent"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.input))
		})
	}
}

func TestTaskHasTag(t *testing.T) {
	task := Task{Tags: []string{"home", "errand"}}

	assert.True(t, task.HasTag("home"))
	assert.False(t, task.HasTag("hom"))
	assert.False(t, task.HasTag(""))
}
