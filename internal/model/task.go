package model

// GlobalTeamID is stamped on every task and event; the app manages a single
// shared workspace.
const GlobalTeamID = "global-workspace"

// Priority levels for tasks
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a trackable work item. A task is always created against an
// existing event; EventID may dangle later if that event is cancelled, and
// EventName is a snapshot of the event title taken at link time.
type Task struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"teamId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AssigneeID  string    `json:"assigneeId"`
	DueDate     string    `json:"dueDate"`
	Priority    string    `json:"priority"`
	EventID     string    `json:"eventId"`
	EventName   string    `json:"eventName,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	AssetLink   string    `json:"assetLink,omitempty"`
	ProjectLink string    `json:"projectLink,omitempty"`
	Subtasks    []Subtask `json:"subtasks,omitempty"`
}

// Subtask is a checklist item inside a task
type Subtask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}
