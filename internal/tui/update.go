package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/existflow/kerja/internal/workspace"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeLogin {
			return m.updateLogin(msg)
		}
		return m.updateBoard(msg)
	}

	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, keys.Tab):
		m.loginFocus = (m.loginFocus + 1) % 2
		if m.loginFocus == 0 {
			m.username.Focus()
			m.password.Blur()
		} else {
			m.password.Focus()
			m.username.Blur()
		}
		return m, textinput.Blink

	case key.Matches(msg, keys.Enter):
		if m.loginFocus == 0 {
			m.loginFocus = 1
			m.password.Focus()
			m.username.Blur()
			return m, textinput.Blink
		}
		_, err := m.ws.Login(m.username.Value(), m.password.Value())
		if err != nil {
			var authErr *workspace.AuthError
			if errors.As(err, &authErr) {
				m.message = authErr.Msg
			} else {
				m.message = err.Error()
			}
			m.password.SetValue("")
			return m, nil
		}
		m.mode = ModeBoard
		m.message = ""
		return m, nil
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.ws.Columns()

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, keys.Logout):
		m.ws.Logout()
		m.mode = ModeLogin
		m.loginFocus = 0
		m.username.SetValue("")
		m.password.SetValue("")
		m.username.Focus()
		m.password.Blur()
		m.message = ""
		return m, textinput.Blink

	case key.Matches(msg, keys.Up):
		if m.taskCursor > 0 {
			m.taskCursor--
		}

	case key.Matches(msg, keys.Down):
		if tasks := m.columnTasks(columns[m.colCursor].ID); m.taskCursor < len(tasks)-1 {
			m.taskCursor++
		}

	case key.Matches(msg, keys.Left):
		if m.colCursor > 0 {
			m.colCursor--
			m.taskCursor = 0
		}

	case key.Matches(msg, keys.Right):
		if m.colCursor < len(columns)-1 {
			m.colCursor++
			m.taskCursor = 0
		}

	case key.Matches(msg, keys.MoveLeft):
		m.moveSelected(-1)

	case key.Matches(msg, keys.MoveRight):
		m.moveSelected(1)

	case key.Matches(msg, keys.Done):
		if task := m.selectedTask(); task != nil {
			if err := m.ws.MoveTask(task.ID, "done"); err != nil {
				m.message = err.Error()
			}
			m.clampCursor()
		}

	case key.Matches(msg, keys.Delete):
		if task := m.selectedTask(); task != nil {
			if err := m.ws.DeleteTask(task.ID); err != nil {
				m.message = err.Error()
			}
			m.clampCursor()
		}
	}

	return m, nil
}

// moveSelected shifts the task under the cursor one column over
func (m *Model) moveSelected(delta int) {
	columns := m.ws.Columns()
	target := m.colCursor + delta
	if target < 0 || target >= len(columns) {
		return
	}
	task := m.selectedTask()
	if task == nil {
		return
	}
	if err := m.ws.MoveTask(task.ID, columns[target].ID); err != nil {
		m.message = err.Error()
		return
	}
	m.clampCursor()
}

// clampCursor keeps the cursor inside the current column after a mutation
func (m *Model) clampCursor() {
	columns := m.ws.Columns()
	tasks := m.columnTasks(columns[m.colCursor].ID)
	if m.taskCursor >= len(tasks) {
		m.taskCursor = len(tasks) - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
}
