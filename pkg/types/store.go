package types

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Store operation and persistence errors.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrStoreCorrupt = errors.New("task store is corrupt")
)

// TaskStore is the in-memory collection of tasks plus the next-id counter.
// It is the sole source of truth between load and save; all mutation goes
// through its methods.
type TaskStore struct {
	Tasks  []*Task `json:"tasks"`
	NextID int     `json:"next_id"`
}

// NewTaskStore returns an empty store with the id counter at 1.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		Tasks:  []*Task{},
		NextID: 1,
	}
}

// Create adds a new task with the next id and returns it. Tags are
// normalized before storage. The id counter advances on every call and is
// never reused, even after deletion.
func (s *TaskStore) Create(description string, tags []string, due *Date) *Task {
	task := &Task{
		ID:          s.NextID,
		Description: description,
		Tags:        NormalizeTags(tags),
		DueDate:     due,
	}
	s.NextID++
	s.Tasks = append(s.Tasks, task)
	return task
}

// Get returns the task with the given id, or ErrTaskNotFound.
func (s *TaskStore) Get(id int) (*Task, error) {
	for _, task := range s.Tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
}

// Complete marks the task with the given id as completed and returns it.
// Completing an already-completed task succeeds silently.
func (s *TaskStore) Complete(id int) (*Task, error) {
	task, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	task.Completed = true
	return task, nil
}

// Delete removes and returns the task with the given id, preserving the
// relative order of the remaining tasks.
func (s *TaskStore) Delete(id int) (*Task, error) {
	for i, task := range s.Tasks {
		if task.ID == id {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
			return task, nil
		}
	}
	return nil, fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
}

// Edit replaces the description, tags (re-normalized) and due date of the
// task with the given id. A nil due date clears the field. The completed
// flag is left untouched.
func (s *TaskStore) Edit(id int, description string, tags []string, due *Date) (*Task, error) {
	task, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	task.Description = description
	task.Tags = NormalizeTags(tags)
	task.DueDate = due
	return task, nil
}

// Len returns the number of tasks in the store.
func (s *TaskStore) Len() int {
	return len(s.Tasks)
}

// Query yields tasks in store order. An empty filter yields every task.
// A non-empty filter yields tasks whose tag set contains the lowercased
// filter exactly, or whose description contains it case-insensitively.
// The sequence is re-evaluated against the live collection on each range,
// and never mutates the store.
func (s *TaskStore) Query(filter string) iter.Seq[*Task] {
	needle := strings.ToLower(strings.TrimSpace(filter))
	return func(yield func(*Task) bool) {
		for _, task := range s.Tasks {
			if needle != "" && !task.HasTag(needle) &&
				!strings.Contains(strings.ToLower(task.Description), needle) {
				continue
			}
			if !yield(task) {
				return
			}
		}
	}
}

// Validate checks the structural invariants a freshly loaded store must
// satisfy: a counter of at least 1, ids unique, and every id below the
// counter. Violations wrap ErrStoreCorrupt. Adapters call this after
// decoding persisted state.
func (s *TaskStore) Validate() error {
	if s.NextID < 1 {
		return fmt.Errorf("%w: next_id %d is below 1", ErrStoreCorrupt, s.NextID)
	}
	seen := make(map[int]bool, len(s.Tasks))
	for _, task := range s.Tasks {
		if task.ID < 1 {
			return fmt.Errorf("%w: task id %d is not positive", ErrStoreCorrupt, task.ID)
		}
		if seen[task.ID] {
			return fmt.Errorf("%w: duplicate task id %d", ErrStoreCorrupt, task.ID)
		}
		seen[task.ID] = true
		if task.ID >= s.NextID {
			return fmt.Errorf("%w: task id %d is not below next_id %d", ErrStoreCorrupt, task.ID, s.NextID)
		}
	}
	return nil
}
