package model

// Built-in kanban column ids
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// KanbanColumn is a named status bucket a task can occupy
type KanbanColumn struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Theme string `json:"theme"`
}

// DefaultColumns returns the fixed starter board
func DefaultColumns() []KanbanColumn {
	return []KanbanColumn{
		{ID: StatusTodo, Title: "To Do", Theme: "slate"},
		{ID: StatusInProgress, Title: "In Progress", Theme: "blue"},
		{ID: StatusDone, Title: "Done", Theme: "emerald"},
	}
}

// ColumnLabel resolves the display label for a status id. The three built-in
// ids always use their fixed labels regardless of any stored title; custom
// columns use their stored title; unknown ids fall back to the id itself.
func ColumnLabel(id string, columns []KanbanColumn) string {
	switch id {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	for _, c := range columns {
		if c.ID == id {
			return c.Title
		}
	}
	return id
}
