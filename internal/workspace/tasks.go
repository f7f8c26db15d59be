package workspace

import (
	"strings"

	"github.com/existflow/kerja/internal/model"
)

// TaskInput carries the caller-editable fields of a task
type TaskInput struct {
	Title       string
	Description string
	Status      string
	AssigneeID  string
	DueDate     string
	Priority    string
	EventID     string
	EventName   string
	Duration    string
	AssetLink   string
	ProjectLink string
	Subtasks    []model.Subtask
}

// CreateTask adds a new task. The input must reference an existing event;
// the event title is denormalized onto the task at link time. The new task
// is inserted newest-first.
func (ws *Workspace) CreateTask(in TaskInput) (model.Task, error) {
	if in.EventID == "" {
		return model.Task{}, &ValidationError{Msg: "a task must be linked to an event"}
	}
	event := ws.findEvent(in.EventID)
	if event == nil {
		return model.Task{}, &ValidationError{Msg: "event not found: " + in.EventID}
	}

	status := in.Status
	if status == "" {
		status = model.StatusTodo
	}
	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	task := model.Task{
		ID:          ws.newID(),
		TeamID:      model.GlobalTeamID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		AssigneeID:  in.AssigneeID,
		DueDate:     in.DueDate,
		Priority:    priority,
		EventID:     event.ID,
		EventName:   event.Title,
		Duration:    in.Duration,
		AssetLink:   in.AssetLink,
		ProjectLink: in.ProjectLink,
		Subtasks:    in.Subtasks,
	}

	ws.tasks = append([]model.Task{task}, ws.tasks...)
	ws.logActivity("created task", task.Title, model.ActivityTask)
	ws.persist()
	return task, nil
}

// UpdateTask replaces the editable fields of an existing task and logs a
// message describing what changed. Status, priority and due-date changes are
// each tracked and joined into a single entry; when none of those moved but
// the title or description did, a generic message is logged instead. The
// event link is not re-validated; a task may keep referencing an event that
// has since been cancelled.
func (ws *Workspace) UpdateTask(id string, in TaskInput) (model.Task, error) {
	task := ws.findTask(id)
	if task == nil {
		return model.Task{}, &ValidationError{Msg: "task not found: " + id}
	}

	var changes []string
	if task.Status != in.Status {
		changes = append(changes, "moved to "+model.ColumnLabel(in.Status, ws.columns))
	}
	if task.Priority != in.Priority {
		changes = append(changes, "priority set to "+in.Priority)
	}
	if task.DueDate != in.DueDate {
		changes = append(changes, "rescheduled to "+in.DueDate)
	}
	detailsChanged := task.Title != in.Title || task.Description != in.Description

	task.Title = in.Title
	task.Description = in.Description
	task.Status = in.Status
	task.AssigneeID = in.AssigneeID
	task.DueDate = in.DueDate
	task.Priority = in.Priority
	task.EventID = in.EventID
	task.EventName = in.EventName
	task.Duration = in.Duration
	task.AssetLink = in.AssetLink
	task.ProjectLink = in.ProjectLink
	task.Subtasks = in.Subtasks

	if len(changes) > 0 {
		ws.logActivity(strings.Join(changes, ", "), task.Title, model.ActivityTask)
	} else if detailsChanged {
		ws.logActivity("updated details", task.Title, model.ActivityTask)
	}
	ws.persist()
	return *task, nil
}

// MoveTask is the kanban transition: it changes only the status and is a
// no-op when the task already sits in the target column. Any column is
// reachable from any other; a done task can be reopened.
func (ws *Workspace) MoveTask(id, newStatus string) error {
	task := ws.findTask(id)
	if task == nil {
		return &ValidationError{Msg: "task not found: " + id}
	}
	if task.Status == newStatus {
		return nil
	}
	task.Status = newStatus
	ws.logActivity("moved to "+model.ColumnLabel(newStatus, ws.columns), task.Title, model.ActivityTask)
	ws.persist()
	return nil
}

// DeleteTask removes a task unconditionally
func (ws *Workspace) DeleteTask(id string) error {
	task := ws.findTask(id)
	if task == nil {
		return &ValidationError{Msg: "task not found: " + id}
	}
	title := task.Title
	ws.tasks = removeByID(ws.tasks, id, func(t model.Task) string { return t.ID })
	ws.logActivity("deleted task", title, model.ActivityTask)
	ws.persist()
	return nil
}

// removeByID filters one element out of a slice, preserving order
func removeByID[T any](items []T, id string, key func(T) string) []T {
	kept := items[:0:0]
	for _, it := range items {
		if key(it) != id {
			kept = append(kept, it)
		}
	}
	return kept
}
