package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	todayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	plainStyle   = lipgloss.NewStyle()
)

// StatusMarker returns the checkbox marker for a display status.
func StatusMarker(status types.Status) string {
	switch status {
	case types.StatusDone:
		return "[✓]"
	case types.StatusOverdue, types.StatusDueToday:
		return "[!]"
	default:
		return "[ ]"
	}
}

func statusStyle(status types.Status) lipgloss.Style {
	switch status {
	case types.StatusDone:
		return doneStyle
	case types.StatusOverdue:
		return overdueStyle
	case types.StatusDueToday:
		return todayStyle
	default:
		return plainStyle
	}
}

// dueStyle colors a due date by urgency alone: red once past, yellow on the
// day, plain otherwise.
func dueStyle(due types.Date, today types.Date) lipgloss.Style {
	if due.Before(today) {
		return overdueStyle
	}
	if due.Equal(today) {
		return todayStyle
	}
	return plainStyle
}

// TaskLine renders one task as a single line: marker, id, description, then
// the optional due date and tags.
func TaskLine(t *types.Task, today types.Date) string {
	status := t.StatusOn(today)
	parts := []string{
		statusStyle(status).Render(StatusMarker(status)),
		idStyle.Render(fmt.Sprintf("#%d", t.ID)),
		t.Description,
	}
	if t.DueDate != nil {
		parts = append(parts, dueStyle(*t.DueDate, today).Render("("+t.DueDate.String()+")"))
	}
	if len(t.Tags) > 0 {
		parts = append(parts, tagStyle.Render("["+strings.Join(t.Tags, ", ")+"]"))
	}
	return strings.Join(parts, " ")
}
