package types

import "strings"

// Display statuses derived from a task and "today". A task is in exactly
// one status at any given date; the status is computed on demand and never
// stored.
type Status string

const (
	StatusDone     Status = "done"
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "due-today"
	StatusPending  Status = "pending"
)

// Task represents one to-do item.
type Task struct {
	ID          int      `json:"id"`          // Positive, unique, assigned by the store.
	Description string   `json:"description"` // Free-form text.
	Completed   bool     `json:"completed"`
	Tags        []string `json:"tags"`               // Normalized: lowercase, trimmed, no empties.
	DueDate     *Date    `json:"due_date,omitempty"` // nil means no due date.
}

// StatusOn classifies the task relative to the given date. Completed tasks
// are StatusDone regardless of due date; otherwise a past due date is
// StatusOverdue, a matching one StatusDueToday, and anything else
// StatusPending.
func (t *Task) StatusOn(today Date) Status {
	if t.Completed {
		return StatusDone
	}
	if t.DueDate != nil {
		if t.DueDate.Before(today) {
			return StatusOverdue
		}
		if t.DueDate.Equal(today) {
			return StatusDueToday
		}
	}
	return StatusPending
}

// HasTag reports whether the task's tag set contains tag exactly. Stored
// tags are normalized, so the caller should lowercase the needle.
func (t *Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// NormalizeTags trims and lowercases each tag and drops empty entries.
// Order is preserved and duplicates are kept; the edit operation replaces
// the whole sequence, so dedup never happens anywhere.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		normalized = append(normalized, tag)
	}
	return normalized
}

// ParseTags tokenizes comma-separated user input into normalized tags.
// An empty or all-whitespace input yields no tags.
func ParseTags(input string) []string {
	return NormalizeTags(strings.Split(input, ","))
}
