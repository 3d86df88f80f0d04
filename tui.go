// tui.go implements the terminal view on top of the task store.
//
// The model owns no task state of its own: every intent goes to the store
// and the inputs are re-synced from the store's draft afterwards. The window
// title is re-emitted whenever the rendered count drifts from the store.
package main

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focus int

const (
	focusList focus = iota
	focusTitle
	focusDescription
)

type Model struct {
	store  *TaskStore
	cfg    Config
	logger *log.Logger

	title textinput.Model
	desc  textarea.Model
	focus focus

	cursor     int
	shownCount int // count last sent in the window title
	width      int
	status     string
}

func newModel(cfg Config, store *TaskStore, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Add description (optional)"
	ta.ShowLineNumbers = false
	ta.SetWidth(44)
	ta.SetHeight(3)

	m := Model{
		store:      store,
		cfg:        cfg,
		logger:     logger,
		title:      ti,
		desc:       ta,
		focus:      focusTitle,
		shownCount: store.Len(),
	}
	m.syncInputs()
	return m
}

// windowTitle is the title for the count last rendered.
func (m Model) windowTitle() string {
	return WindowTitle(m.cfg.AppName, m.shownCount)
}

func runTUI(cfg Config, store *TaskStore, logger *log.Logger) error {
	p := tea.NewProgram(newModel(cfg, store, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.windowTitle()),
		textinput.Blink,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 16; w > 20 {
			m.title.Width = w
			m.desc.SetWidth(w + 4)
		}
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus {
		case focusTitle:
			m, cmd = m.updateTitle(msg)
		case focusDescription:
			m, cmd = m.updateDescription(msg)
		default:
			m, cmd = m.updateList(msg)
		}
	default:
		// cursor blinks and the like; each widget ignores messages not meant for it
		var titleCmd, descCmd tea.Cmd
		m.title, titleCmd = m.title.Update(msg)
		m.desc, descCmd = m.desc.Update(msg)
		cmd = tea.Batch(titleCmd, descCmd)
	}

	// keep the window title command last in the batch
	if n := m.store.Len(); n != m.shownCount {
		m.shownCount = n
		cmd = tea.Batch(cmd, tea.SetWindowTitle(m.windowTitle()))
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	keys := m.cfg.Keys
	tasks := m.store.List(nil)

	switch {
	case slices.Contains(keys.Quit, key):
		return m, tea.Quit
	case slices.Contains(keys.Up, key):
		m.cursor = clampCursor(m.cursor-1, len(tasks))
	case slices.Contains(keys.Down, key):
		m.cursor = clampCursor(m.cursor+1, len(tasks))
	case slices.Contains(keys.Toggle, key):
		if t, ok := selected(tasks, m.cursor); ok {
			m.store.ToggleComplete(t.ID)
		}
	case slices.Contains(keys.Delete, key):
		if t, ok := selected(tasks, m.cursor); ok {
			m.store.Delete(t.ID)
			m.logger.Printf("deleted task %s", t.ID)
			m.cursor = clampCursor(m.cursor, len(tasks)-1)
			m.syncInputs()
		}
	case slices.Contains(keys.Edit, key):
		if t, ok := selected(tasks, m.cursor); ok && m.store.StartEdit(t.ID) {
			m.syncInputs()
			m.status = ""
			return m, m.setFocus(focusTitle)
		}
	case slices.Contains(keys.Describe, key):
		m.store.ToggleDescription()
	case slices.Contains(keys.Cancel, key):
		m.cancelEdit()
	case slices.Contains(keys.Compose, key), slices.Contains(keys.Next, key):
		return m, m.setFocus(focusTitle)
	}
	return m, nil
}

func (m Model) updateTitle(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	keys := m.cfg.Keys

	switch {
	case slices.Contains(keys.Submit, key):
		return m.submit()
	case slices.Contains(keys.Cancel, key):
		m.cancelEdit()
		return m, m.setFocus(focusList)
	case slices.Contains(keys.Describe, key):
		m.store.ToggleDescription()
		return m, nil
	case slices.Contains(keys.Next, key):
		if m.descriptionVisible() {
			return m, m.setFocus(focusDescription)
		}
		return m, m.setFocus(focusList)
	}

	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	m.store.SetDraftTitle(m.title.Value())
	return m, cmd
}

func (m Model) updateDescription(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	keys := m.cfg.Keys

	switch {
	// enter belongs to the textarea for newlines
	case key != "enter" && slices.Contains(keys.Submit, key):
		return m.submit()
	case slices.Contains(keys.Cancel, key):
		m.cancelEdit()
		return m, m.setFocus(focusList)
	case slices.Contains(keys.Next, key):
		return m, m.setFocus(focusList)
	}

	var cmd tea.Cmd
	m.desc, cmd = m.desc.Update(msg)
	m.store.SetDraftDescription(m.desc.Value())
	return m, cmd
}

// submit saves the open edit, or adds a task from the draft when idle.
func (m Model) submit() (Model, tea.Cmd) {
	if id, editing := m.store.EditingID(); editing {
		if _, rejected := m.store.SaveEdit(id); rejected {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.status = ""
		m.syncInputs()
		return m, m.setFocus(focusList)
	}

	// A blank title is dropped without a message.
	t, ok := m.store.Add()
	if !ok {
		return m, nil
	}
	m.logger.Printf("added task %s", t.ID)
	m.status = ""
	m.cursor = m.store.Len() - 1
	m.syncInputs()
	return m, m.setFocus(focusTitle)
}

func (m *Model) cancelEdit() {
	if _, editing := m.store.EditingID(); !editing {
		return
	}
	m.store.CancelEdit()
	m.status = ""
	m.syncInputs()
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.desc.Blur()
	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.desc.Focus()
	}
	return nil
}

// syncInputs copies the store's draft into the input widgets.
func (m *Model) syncInputs() {
	d := m.store.Draft()
	if m.title.Value() != d.Title {
		m.title.SetValue(d.Title)
	}
	if m.desc.Value() != d.Description {
		m.desc.SetValue(d.Description)
	}
}

// descriptionVisible is true when the description field is toggled open or
// an edit is in progress (edits always show both fields).
func (m Model) descriptionVisible() bool {
	_, editing := m.store.EditingID()
	return editing || m.store.DescriptionOpen()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(m.cfg.Heading))
	b.WriteString("\n")

	editingID, editing := m.store.EditingID()
	if editing {
		b.WriteString(editingStyle.Render("Editing task"))
	} else {
		b.WriteString(labelStyle.Render("New task"))
	}
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n")
	if m.descriptionVisible() {
		b.WriteString(m.desc.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	tasks := m.store.List(nil)
	if len(tasks) == 0 {
		b.WriteString(emptyStyle.Render("No tasks yet."))
		b.WriteString("\n")
	}
	for i, t := range tasks {
		b.WriteString(m.renderTask(i, t, t.ID == editingID))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.renderHelp()))

	box := containerStyle
	if m.width > 8 {
		box = box.Width(m.width - 4)
	}
	return box.Render(b.String())
}

func (m Model) renderTask(i int, t Task, editing bool) string {
	var b strings.Builder

	cursor := "  "
	if i == m.cursor && m.focus == focusList {
		cursor = cursorStyle.Render("> ")
	}
	checkbox := "[ ]"
	style := titleStyle
	if t.Completed {
		checkbox = "[x]"
		style = completedStyle
	}
	b.WriteString(fmt.Sprintf("%s%s %s", cursor, checkbox, style.Render(t.Title)))
	if editing {
		b.WriteString(" " + editingStyle.Render("(editing)"))
	}
	b.WriteString("\n")
	if t.Description != "" {
		b.WriteString(descriptionStyle.Render(t.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHelp() string {
	k := m.cfg.Keys
	if m.focus == focusList {
		return fmt.Sprintf("%s/%s move • %s toggle • %s edit • %s delete • %s add • %s quit",
			keyName(k.Up), keyName(k.Down), keyName(k.Toggle), keyName(k.Edit),
			keyName(k.Delete), keyName(k.Compose), keyName(k.Quit))
	}
	return fmt.Sprintf("%s save • %s description • %s next • %s back",
		keyName(k.Submit), keyName(k.Describe), keyName(k.Next), keyName(k.Cancel))
}

func keyName(keys []string) string {
	if len(keys) == 0 {
		return "-"
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}

func selected(tasks []Task, cursor int) (Task, bool) {
	if cursor < 0 || cursor >= len(tasks) {
		return Task{}, false
	}
	return tasks[cursor], true
}

func clampCursor(cursor, n int) int {
	if n <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
