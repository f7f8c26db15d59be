package workspace

import (
	"testing"

	"github.com/existflow/kerja/internal/model"
	"github.com/existflow/kerja/internal/store"
)

func newTestWorkspace(t *testing.T) (*Workspace, *store.DB) {
	t.Helper()
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(db), db
}

func loginAdmin(t *testing.T, ws *Workspace) model.User {
	t.Helper()
	u, err := ws.Login("admin", "123")
	if err != nil {
		t.Fatalf("login admin: %v", err)
	}
	return u
}

func mustEvent(t *testing.T, ws *Workspace, title string) model.Event {
	t.Helper()
	ev, err := ws.CreateEvent(EventInput{
		Title:     title,
		Date:      "2026-09-01",
		EndDate:   "2026-09-01",
		StartTime: "09:00",
		EndTime:   "10:00",
		Type:      "meeting",
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	return ev
}

func TestNewSeedsDefaults(t *testing.T) {
	ws, _ := newTestWorkspace(t)

	users := ws.Users()
	if len(users) != 1 {
		t.Fatalf("expected 1 bootstrap user, got %d", len(users))
	}
	if users[0].Username != "admin" || users[0].Role != model.RoleOwner {
		t.Fatalf("unexpected bootstrap user: %+v", users[0])
	}
	if len(ws.EventTypes()) != 15 {
		t.Fatalf("expected 15 starter event types, got %d", len(ws.EventTypes()))
	}
	if len(ws.Columns()) != 3 {
		t.Fatalf("expected 3 default columns, got %d", len(ws.Columns()))
	}
	if ws.CurrentUser() != nil {
		t.Fatalf("expected no session on a fresh workspace")
	}
}

func TestEmptyUsersSliceReseedsAdmin(t *testing.T) {
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer db.Close()

	// Simulate an external bypass that emptied the persisted collection.
	if err := db.Save(store.KeyUsers, []model.User{}); err != nil {
		t.Fatalf("save empty users: %v", err)
	}

	ws := New(db)
	users := ws.Users()
	if len(users) != 1 || users[0].ID != model.DefaultAdmin().ID {
		t.Fatalf("expected re-seeded default admin, got %+v", users)
	}
}

func TestCorruptUsersSliceFallsBackToAdmin(t *testing.T) {
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer db.Close()

	if err := db.SaveString(store.KeyUsers, "{not json"); err != nil {
		t.Fatalf("save corrupt users: %v", err)
	}

	ws := New(db)
	users := ws.Users()
	if len(users) != 1 || users[0].Username != "admin" {
		t.Fatalf("expected [defaultAdmin] after corrupt slice, got %+v", users)
	}
}

func TestRoundTripReproducesState(t *testing.T) {
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer db.Close()

	ws := New(db)
	loginAdmin(t, ws)
	ev := mustEvent(t, ws, "Kickoff")
	task, err := ws.CreateTask(TaskInput{Title: "Agenda", EventID: ev.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := ws.CreateUser(UserInput{Name: "Jane Doe", Email: "jane@kerja.app"}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	reloaded := New(db)
	if len(reloaded.Tasks()) != 1 || reloaded.Tasks()[0].ID != task.ID {
		t.Fatalf("tasks did not round-trip: %+v", reloaded.Tasks())
	}
	if len(reloaded.Events()) != 1 || reloaded.Events()[0].ID != ev.ID {
		t.Fatalf("events did not round-trip: %+v", reloaded.Events())
	}
	if len(reloaded.Users()) != 2 {
		t.Fatalf("users did not round-trip: %+v", reloaded.Users())
	}

	before := ws.Activities()
	after := reloaded.Activities()
	if len(before) != len(after) {
		t.Fatalf("activity count changed: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("activity %d changed across reload: %+v vs %+v", i, before[i], after[i])
		}
	}

	if u := reloaded.CurrentUser(); u == nil || u.Username != "admin" {
		t.Fatalf("session did not survive reload: %+v", u)
	}
}

func TestBoundedActivityLog(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	loginAdmin(t, ws)
	ev := mustEvent(t, ws, "Marathon")

	// Scheduling + login already logged; push well past the bound.
	for i := 0; i < 60; i++ {
		if _, err := ws.CreateTask(TaskInput{Title: "Task", EventID: ev.ID}); err != nil {
			t.Fatalf("create task %d: %v", i, err)
		}
	}

	activities := ws.Activities()
	if len(activities) != model.MaxActivities {
		t.Fatalf("expected log capped at %d, got %d", model.MaxActivities, len(activities))
	}
	if activities[0].Action != "created task" {
		t.Fatalf("expected newest entry first, got %q", activities[0].Action)
	}
	// The oldest entries (login, scheduled event) must have been evicted.
	for _, a := range activities {
		if a.Action == "logged in" {
			t.Fatalf("expected oldest entries to be evicted, found %q", a.Action)
		}
	}
}

func TestActivitySkippedWithoutSession(t *testing.T) {
	ws, _ := newTestWorkspace(t)

	if _, err := ws.CreateEvent(EventInput{Title: "Ghost", Date: "2026-09-01"}); err != nil {
		t.Fatalf("create event: %v", err)
	}
	if n := len(ws.Activities()); n != 0 {
		t.Fatalf("expected no activity without a session, got %d entries", n)
	}
}

func TestActivitySnapshotsActorProfile(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	admin := loginAdmin(t, ws)
	mustEvent(t, ws, "Sprint Review")

	entry := ws.Activities()[0]
	if entry.UserName != "Admin User" {
		t.Fatalf("expected snapshot of actor name, got %q", entry.UserName)
	}

	// Renaming the actor must not rewrite history.
	if _, err := ws.UpdateUser(admin.ID, UserInput{
		Name:     "Renamed",
		Username: admin.Username,
		Password: admin.Password,
		Email:    admin.Email,
		Role:     admin.Role,
		Avatar:   admin.Avatar,
	}); err != nil {
		t.Fatalf("update user: %v", err)
	}

	for _, a := range ws.Activities() {
		if a.Action == "scheduled event" && a.UserName != "Admin User" {
			t.Fatalf("profile edit rewrote history: %q", a.UserName)
		}
	}
}

func TestAddColumnRejectsDuplicate(t *testing.T) {
	ws, _ := newTestWorkspace(t)

	if err := ws.AddColumn(model.KanbanColumn{ID: "review", Title: "Review", Theme: "indigo"}); err != nil {
		t.Fatalf("add column: %v", err)
	}
	if err := ws.AddColumn(model.KanbanColumn{ID: "review", Title: "Again"}); err == nil {
		t.Fatalf("expected duplicate column to be rejected")
	}
	if len(ws.Columns()) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(ws.Columns()))
	}
}
