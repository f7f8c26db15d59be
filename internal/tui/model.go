package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/existflow/kerja/internal/logger"
	"github.com/existflow/kerja/internal/model"
	"github.com/existflow/kerja/internal/workspace"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeLogin Mode = iota
	ModeBoard
)

// Model is the main TUI model: a login form gating a kanban board. All state
// reads and mutations go through the workspace; the board re-renders from
// its accessors after every operation.
type Model struct {
	ws *workspace.Workspace

	mode Mode

	// Login form
	username   textinput.Model
	password   textinput.Model
	loginFocus int

	// Board state
	colCursor  int
	taskCursor int

	width  int
	height int

	help    help.Model
	message string
}

// NewModel creates the TUI model; it opens on the board when a persisted
// session is still valid, on the login form otherwise.
func NewModel(ws *workspace.Workspace) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 24
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 24
	password.EchoMode = textinput.EchoPassword

	m := Model{
		ws:       ws,
		mode:     ModeLogin,
		username: username,
		password: password,
		help:     help.New(),
	}
	if ws.CurrentUser() != nil {
		m.mode = ModeBoard
	}

	logger.Debug("TUI model initialized", logger.F("mode", m.mode))
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.mode == ModeLogin {
		return textinput.Blink
	}
	return nil
}

// columnTasks returns the tasks sitting in the given column, newest first
func (m Model) columnTasks(columnID string) []model.Task {
	var out []model.Task
	for _, t := range m.ws.Tasks() {
		if t.Status == columnID {
			out = append(out, t)
		}
	}
	return out
}

// selectedTask returns the task under the cursor, or nil
func (m Model) selectedTask() *model.Task {
	columns := m.ws.Columns()
	if m.colCursor >= len(columns) {
		return nil
	}
	tasks := m.columnTasks(columns[m.colCursor].ID)
	if m.taskCursor >= len(tasks) {
		return nil
	}
	return &tasks[m.taskCursor]
}
