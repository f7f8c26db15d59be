package workspace

import (
	"errors"
	"testing"

	"github.com/existflow/kerja/internal/model"
)

func TestCreateTaskRequiresExistingEvent(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	loginAdmin(t, ws)

	var valErr *ValidationError

	_, err := ws.CreateTask(TaskInput{Title: "Orphan"})
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError for empty event id, got %v", err)
	}

	_, err = ws.CreateTask(TaskInput{Title: "Orphan", EventID: "nope"})
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError for unknown event id, got %v", err)
	}

	if len(ws.Tasks()) != 0 {
		t.Fatalf("failed create must not mutate the collection, got %d tasks", len(ws.Tasks()))
	}
	for _, a := range ws.Activities() {
		if a.Action == "created task" {
			t.Fatalf("failed create must not log activity")
		}
	}
}

func TestCreateTaskDenormalizesEventName(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	loginAdmin(t, ws)
	ev := mustEvent(t, ws, "Launch Party")

	task, err := ws.CreateTask(TaskInput{Title: "Send invites", EventID: ev.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.EventName != "Launch Party" {
		t.Fatalf("expected denormalized event name, got %q", task.EventName)
	}
	if task.Status != model.StatusTodo || task.Priority != model.PriorityMedium {
		t.Fatalf("unexpected defaults: status=%q priority=%q", task.Status, task.Priority)
	}
	if ws.Activities()[0].Action != "created task" {
		t.Fatalf("expected 'created task' entry, got %q", ws.Activities()[0].Action)
	}

	// Cancelling the event leaves the task with its dangling link and the
	// title snapshot taken above.
	if err := ws.DeleteEvent(ev.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	got := ws.Tasks()[0]
	if got.EventID != ev.ID || got.EventName != "Launch Party" {
		t.Fatalf("expected dangling link to survive, got %+v", got)
	}
}

func TestUpdateTaskDiffLogging(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	loginAdmin(t, ws)
	ev := mustEvent(t, ws, "Kickoff")

	task, err := ws.CreateTask(TaskInput{Title: "Agenda", EventID: ev.ID, DueDate: "2026-09-02"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	in := TaskInput{
		Title:    task.Title,
		Status:   model.StatusDone,
		DueDate:  task.DueDate,
		Priority: task.Priority,
		EventID:  task.EventID,
	}
	if _, err := ws.UpdateTask(task.ID, in); err != nil {
		t.Fatalf("update task: %v", err)
	}
	if got := ws.Activities()[0].Action; got != "moved to Done" {
		t.Fatalf("expected 'moved to Done', got %q", got)
	}

	in.Priority = model.PriorityHigh
	in.Status = model.StatusTodo
	before := len(ws.Activities())
	if _, err := ws.UpdateTask(task.ID, in); err != nil {
		t.Fatalf("update task: %v", err)
	}
	if len(ws.Activities()) != before+1 {
		t.Fatalf("multiple changes must produce one entry")
	}
	if got := ws.Activities()[0].Action; got != "moved to To Do, priority set to high" {
		t.Fatalf("expected joined diff message, got %q", got)
	}

	in.DueDate = "2026-09-09"
	if _, err := ws.UpdateTask(task.ID, in); err != nil {
		t.Fatalf("update task: %v", err)
	}
	if got := ws.Activities()[0].Action; got != "rescheduled to 2026-09-09" {
		t.Fatalf("expected reschedule message, got %q", got)
	}

	in.Title = "New agenda"
	if _, err := ws.UpdateTask(task.ID, in); err != nil {
		t.Fatalf("update task: %v", err)
	}
	if got := ws.Activities()[0].Action; got != "updated details" {
		t.Fatalf("expected generic details message, got %q", got)
	}

	// No tracked field and no title/description change: nothing is logged.
	before = len(ws.Activities())
	if _, err := ws.UpdateTask(task.ID, in); err != nil {
		t.Fatalf("update task: %v", err)
	}
	if len(ws.Activities()) != before {
		t.Fatalf("no-change update must not log")
	}
}

func TestUpdateTaskDoesNotRevalidateEvent(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	loginAdmin(t, ws)
	ev := mustEvent(t, ws, "Kickoff")

	task, err := ws.CreateTask(TaskInput{Title: "Agenda", EventID: ev.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if err := ws.DeleteEvent(ev.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}

	// The event is gone, but editing the task keeps working.
	updated, err := ws.UpdateTask(task.ID, TaskInput{
		Title:     "Agenda v2",
		Status:    task.Status,
		DueDate:   task.DueDate,
		Priority:  task.Priority,
		EventID:   task.EventID,
		EventName: task.EventName,
	})
	if err != nil {
		t.Fatalf("expected update to skip event validation, got %v", err)
	}
	if updated.EventID != ev.ID {
		t.Fatalf("expected dangling event id preserved, got %q", updated.EventID)
	}
}

func TestMoveTask(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	loginAdmin(t, ws)
	ev := mustEvent(t, ws, "Kickoff")

	task, err := ws.CreateTask(TaskInput{Title: "Agenda", EventID: ev.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := ws.MoveTask(task.ID, model.StatusInProgress); err != nil {
		t.Fatalf("move task: %v", err)
	}
	if got := ws.Tasks()[0].Status; got != model.StatusInProgress {
		t.Fatalf("expected status in-progress, got %q", got)
	}
	if got := ws.Activities()[0].Action; got != "moved to In Progress" {
		t.Fatalf("expected column label in message, got %q", got)
	}

	// Moving to the same column is a no-op and logs nothing.
	before := len(ws.Activities())
	if err := ws.MoveTask(task.ID, model.StatusInProgress); err != nil {
		t.Fatalf("no-op move: %v", err)
	}
	if len(ws.Activities()) != before {
		t.Fatalf("no-op move must not log")
	}

	// A done task can be reopened; there is no terminal column.
	if err := ws.MoveTask(task.ID, model.StatusDone); err != nil {
		t.Fatalf("move to done: %v", err)
	}
	if err := ws.MoveTask(task.ID, model.StatusTodo); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := ws.Activities()[0].Action; got != "moved to To Do" {
		t.Fatalf("expected reopen message, got %q", got)
	}
}

func TestMoveTaskCustomColumnUsesStoredTitle(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	loginAdmin(t, ws)
	ev := mustEvent(t, ws, "Kickoff")

	if err := ws.AddColumn(model.KanbanColumn{ID: "blocked", Title: "Blocked", Theme: "red"}); err != nil {
		t.Fatalf("add column: %v", err)
	}
	task, err := ws.CreateTask(TaskInput{Title: "Agenda", EventID: ev.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := ws.MoveTask(task.ID, "blocked"); err != nil {
		t.Fatalf("move task: %v", err)
	}
	if got := ws.Activities()[0].Action; got != "moved to Blocked" {
		t.Fatalf("expected custom column title, got %q", got)
	}
}

func TestDeleteTask(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	loginAdmin(t, ws)
	ev := mustEvent(t, ws, "Kickoff")

	task, err := ws.CreateTask(TaskInput{Title: "Agenda", EventID: ev.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if err := ws.DeleteTask(task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if len(ws.Tasks()) != 0 {
		t.Fatalf("expected empty task collection")
	}
	if got := ws.Activities()[0].Action; got != "deleted task" {
		t.Fatalf("expected 'deleted task', got %q", got)
	}
	if got := ws.Activities()[0].Target; got != "Agenda" {
		t.Fatalf("expected task title as target, got %q", got)
	}
}
