package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/existflow/kerja/internal/model"
)

// View implements tea.Model
func (m Model) View() string {
	if m.mode == ModeLogin {
		return m.viewLogin()
	}
	return m.viewBoard()
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("KERJA! Workspace"))
	b.WriteString("\n\n")
	b.WriteString("  Username\n  " + m.username.View() + "\n\n")
	b.WriteString("  Password\n  " + m.password.View() + "\n")

	if m.ws.DefaultCredentialsActive() {
		b.WriteString("\n" + HelpStyle.Render("  default account: admin / 123") + "\n")
	}
	if m.message != "" {
		b.WriteString("\n" + MessageStyle.Render(m.message) + "\n")
	}
	b.WriteString("\n" + HelpStyle.Render("  tab: switch field • enter: login • ctrl+c: quit"))

	box := LoginBoxStyle.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m Model) viewBoard() string {
	columns := m.ws.Columns()

	rendered := make([]string, 0, len(columns))
	for i, col := range columns {
		rendered = append(rendered, m.viewColumn(i, col))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	header := HeaderStyle.Render("KERJA! Workspace")
	if u := m.ws.CurrentUser(); u != nil {
		header += HelpStyle.Render(fmt.Sprintf("  %s (%s)", u.Name, u.Role))
	}

	statusBar := m.help.View(keys)
	if m.message != "" {
		statusBar = MessageStyle.Render(m.message) + "\n" + statusBar
	}
	if last := m.ws.Activities(); len(last) > 0 {
		statusBar = StatusBarStyle.Render(
			fmt.Sprintf("%s %s %q", last[0].UserName, last[0].Action, last[0].Target),
		) + "\n" + statusBar
	}

	return header + "\n\n" + board + "\n" + statusBar
}

func (m Model) viewColumn(index int, col model.KanbanColumn) string {
	tasks := m.columnTasks(col.ID)

	var b strings.Builder
	b.WriteString(ColumnTitleStyle.Render(fmt.Sprintf("%s (%d)", model.ColumnLabel(col.ID, m.ws.Columns()), len(tasks))))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(HelpStyle.Render("  —"))
	}
	for i, t := range tasks {
		line := fmt.Sprintf("%s %s", truncate(t.Title, 20), PriorityBadge(t.Priority))
		if t.DueDate != "" {
			line += HelpStyle.Render(" " + t.DueDate)
		}
		style := CardStyle
		if index == m.colCursor && i == m.taskCursor {
			style = CardSelectedStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	style := ColumnStyle
	if index == m.colCursor {
		style = ColumnFocusedStyle
	}
	return style.Render(b.String())
}

// truncate shortens a string to max length with ellipsis
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
