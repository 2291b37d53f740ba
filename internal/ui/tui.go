// Package ui provides the interactive terminal session and the shared task
// rendering used by the list and find commands.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/tally/pkg/types"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeFilter
	modeConfirmDelete
)

// Form steps, in prompt order.
type step int

const (
	stepDescription step = iota
	stepDue
	stepTags
)

const listHelp = "a add · e edit · enter complete · d delete · / search · q quit"

// Model is the bubbletea model for the interactive session. Every mutation
// is saved through the adapter before control returns to the list.
type Model struct {
	adapter types.Adapter
	store   *types.TaskStore
	today   types.Date

	cursor int
	mode   mode
	status string
	filter string

	input   textinput.Model
	step    step
	editing *types.Task // nil while the form is adding a new task
	form    struct {
		description string
		due         string
	}

	confirmTarget *types.Task
	fatal         error
}

// Run loads the store and drives the interactive session until the user
// quits. A failed save aborts the session and is returned to the caller.
func Run(adapter types.Adapter) error {
	store, err := adapter.Load()
	if err != nil {
		return err
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50

	m := Model{
		adapter: adapter,
		store:   store,
		today:   types.Today(),
		status:  listHelp,
		input:   ti,
	}

	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.fatal != nil {
		return fm.fatal
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeFilter:
			return m.updateFilter(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg.String())
		default:
			return m.updateList(msg.String())
		}
	case tea.WindowSizeMsg:
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
	}
	return m, nil
}

func (m Model) updateList(key string) (tea.Model, tea.Cmd) {
	visible := m.visible()

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor+1 < len(visible) {
			m.cursor++
		}
	case "a":
		m.mode = modeForm
		m.step = stepDescription
		m.editing = nil
		m.form.description = ""
		m.form.due = ""
		m.startInput("Description", "", "")
	case "e":
		if task, ok := m.selected(visible); ok {
			m.mode = modeForm
			m.step = stepDescription
			m.editing = task
			m.startInput("Description", task.Description, "")
		}
	case "enter", " ", "c":
		if task, ok := m.selected(visible); ok {
			if _, err := m.store.Complete(task.ID); err != nil {
				m.status = err.Error()
				return m, nil
			}
			return m.persist(fmt.Sprintf("Completed task #%d", task.ID))
		}
	case "d":
		if task, ok := m.selected(visible); ok {
			m.mode = modeConfirmDelete
			m.confirmTarget = task
			m.status = fmt.Sprintf("Delete task #%d? (y/n)", task.ID)
		}
	case "/":
		m.mode = modeFilter
		m.startInput("Search (tag or text)", m.filter, "")
	case "esc":
		m.filter = ""
		m.cursor = 0
		m.status = listHelp
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeList
		m.editing = nil
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		return m.advanceForm()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// advanceForm accepts the current step's input and moves to the next,
// committing the task after the tags step. A malformed due date keeps the
// prompt open rather than being dropped silently.
func (m Model) advanceForm() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.step {
	case stepDescription:
		if value == "" {
			m.status = "Description cannot be empty"
			return m, nil
		}
		m.form.description = value
		m.step = stepDue
		prefill := ""
		if m.editing != nil && m.editing.DueDate != nil {
			prefill = m.editing.DueDate.String()
		}
		m.startInput("Due date (YYYY-MM-DD, empty for none)", prefill, "")
		return m, nil

	case stepDue:
		if value != "" {
			if _, err := types.ParseDate(value); err != nil {
				m.status = err.Error()
				return m, nil
			}
		}
		m.form.due = value
		m.step = stepTags
		prefill := ""
		if m.editing != nil {
			prefill = strings.Join(m.editing.Tags, ", ")
		}
		m.startInput("Tags (comma-separated)", prefill, "")
		return m, nil

	default: // stepTags
		var due *types.Date
		if m.form.due != "" {
			parsed, err := types.ParseDate(m.form.due)
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			due = &parsed
		}
		tags := types.ParseTags(value)

		var note string
		if m.editing != nil {
			if _, err := m.store.Edit(m.editing.ID, m.form.description, tags, due); err != nil {
				m.status = err.Error()
				m.mode = modeList
				return m, nil
			}
			note = fmt.Sprintf("Updated task #%d", m.editing.ID)
		} else {
			task := m.store.Create(m.form.description, tags, due)
			note = fmt.Sprintf("Added task #%d", task.ID)
		}
		m.mode = modeList
		m.editing = nil
		m.input.Blur()
		return m.persist(note)
	}
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeList
		m.input.Blur()
		m.status = listHelp
		return m, nil
	case "enter":
		m.filter = strings.TrimSpace(m.input.Value())
		m.mode = modeList
		m.cursor = 0
		m.input.Blur()
		if m.filter == "" {
			m.status = listHelp
		} else {
			m.status = fmt.Sprintf("Filter: %s (esc to clear)", m.filter)
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateConfirmDelete(key string) (tea.Model, tea.Cmd) {
	target := m.confirmTarget
	m.confirmTarget = nil
	m.mode = modeList

	if key != "y" || target == nil {
		m.status = listHelp
		return m, nil
	}
	if _, err := m.store.Delete(target.ID); err != nil {
		m.status = err.Error()
		return m, nil
	}
	if m.cursor > 0 {
		m.cursor--
	}
	return m.persist(fmt.Sprintf("Deleted task #%d", target.ID))
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString("tally\n")
	b.WriteString("=====\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		if m.filter != "" {
			b.WriteString("  No matching tasks.\n")
		} else {
			b.WriteString("  No tasks yet. Press 'a' to add one.\n")
		}
	}
	for i, task := range visible {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		b.WriteString(marker + TaskLine(task, m.today) + "\n")
	}
	b.WriteString("\n")

	if m.mode == modeForm || m.mode == modeFilter {
		b.WriteString(m.input.View() + "\n\n")
	}

	b.WriteString(m.status + "\n")
	return b.String()
}

// visible returns the tasks the list shows, honoring the active filter.
func (m Model) visible() []*types.Task {
	var tasks []*types.Task
	for task := range m.store.Query(m.filter) {
		tasks = append(tasks, task)
	}
	return tasks
}

func (m Model) selected(visible []*types.Task) (*types.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil, false
	}
	return visible[m.cursor], true
}

func (m *Model) startInput(prompt, value, placeholder string) {
	m.input.Prompt = prompt + ": "
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	m.status = "enter to accept · esc to cancel"
}

// persist saves the store after a mutation. Without durable storage the
// session cannot continue, so a failed save quits and surfaces the error.
func (m Model) persist(note string) (tea.Model, tea.Cmd) {
	if err := m.adapter.Save(m.store); err != nil {
		m.fatal = fmt.Errorf("save tasks: %w", err)
		return m, tea.Quit
	}
	m.status = note
	return m, nil
}
