// Package workspace holds the authoritative in-memory state of the app and
// every operation that may change it. All mutations run synchronously, update
// the entity collections, append to the bounded activity log, and write a
// full snapshot through the persistence adapter.
package workspace

import (
	"time"

	"github.com/google/uuid"

	"github.com/existflow/kerja/internal/logger"
	"github.com/existflow/kerja/internal/model"
	"github.com/existflow/kerja/internal/store"
)

// Workspace owns all entity collections. Nothing outside this package
// mutates them directly; the display layers call the operation methods and
// re-render from the accessors.
type Workspace struct {
	db *store.DB

	users      []model.User
	tasks      []model.Task
	events     []model.Event
	eventTypes []model.EventTypeConfig
	columns    []model.KanbanColumn
	activities []model.ActivityLog

	// currentID is the session identity; empty means logged out
	currentID string

	now   func() time.Time
	newID func() string
}

// New loads the workspace state from db. Missing or corrupt slices fall back
// to their defaults, the bootstrap admin is re-seeded if the user collection
// is empty, and a persisted session pointer is restored when it still
// resolves to a user.
func New(db *store.DB) *Workspace {
	ws := &Workspace{
		db:         db,
		users:      []model.User{model.DefaultAdmin()},
		tasks:      []model.Task{},
		events:     []model.Event{},
		eventTypes: model.DefaultEventTypes(),
		activities: []model.ActivityLog{},
		columns:    model.DefaultColumns(),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}

	db.Load(store.KeyUsers, &ws.users)
	db.Load(store.KeyTasks, &ws.tasks)
	db.Load(store.KeyEvents, &ws.events)
	db.Load(store.KeyEventTypes, &ws.eventTypes)
	db.Load(store.KeyActivities, &ws.activities)
	ws.ensureUsers()

	if id, ok := db.LoadString(store.KeySession); ok {
		if ws.findUser(id) != nil {
			ws.currentID = id
		}
	}

	logger.Debug("workspace loaded",
		logger.F("users", len(ws.users)),
		logger.F("tasks", len(ws.tasks)),
		logger.F("events", len(ws.events)))
	return ws
}

// ensureUsers re-seeds the bootstrap admin whenever the collection is empty
func (ws *Workspace) ensureUsers() {
	if len(ws.users) == 0 {
		ws.users = []model.User{model.DefaultAdmin()}
	}
}

// persist writes a full snapshot of every slice plus the session pointer.
// Storage failures are logged and swallowed; the in-memory state stays
// authoritative for this process.
func (ws *Workspace) persist() {
	saves := []struct {
		key string
		v   any
	}{
		{store.KeyUsers, ws.users},
		{store.KeyTasks, ws.tasks},
		{store.KeyEvents, ws.events},
		{store.KeyEventTypes, ws.eventTypes},
		{store.KeyActivities, ws.activities},
	}
	for _, s := range saves {
		if err := ws.db.Save(s.key, s.v); err != nil {
			logger.Warn("failed to persist slice", logger.F("key", s.key), logger.F("error", err))
		}
	}

	if ws.currentID != "" {
		if err := ws.db.SaveString(store.KeySession, ws.currentID); err != nil {
			logger.Warn("failed to persist session", logger.F("error", err))
		}
	} else if err := ws.db.Delete(store.KeySession); err != nil {
		logger.Warn("failed to clear session", logger.F("error", err))
	}
}

func (ws *Workspace) findUser(id string) *model.User {
	for i := range ws.users {
		if ws.users[i].ID == id {
			return &ws.users[i]
		}
	}
	return nil
}

func (ws *Workspace) findTask(id string) *model.Task {
	for i := range ws.tasks {
		if ws.tasks[i].ID == id {
			return &ws.tasks[i]
		}
	}
	return nil
}

func (ws *Workspace) findEvent(id string) *model.Event {
	for i := range ws.events {
		if ws.events[i].ID == id {
			return &ws.events[i]
		}
	}
	return nil
}

// Users returns a copy of the user collection
func (ws *Workspace) Users() []model.User {
	return append([]model.User(nil), ws.users...)
}

// Tasks returns a copy of the task collection, newest first
func (ws *Workspace) Tasks() []model.Task {
	return append([]model.Task(nil), ws.tasks...)
}

// Events returns a copy of the event collection, newest first
func (ws *Workspace) Events() []model.Event {
	return append([]model.Event(nil), ws.events...)
}

// EventTypes returns a copy of the event-type catalog
func (ws *Workspace) EventTypes() []model.EventTypeConfig {
	return append([]model.EventTypeConfig(nil), ws.eventTypes...)
}

// Columns returns a copy of the kanban columns in board order
func (ws *Workspace) Columns() []model.KanbanColumn {
	return append([]model.KanbanColumn(nil), ws.columns...)
}

// Activities returns a copy of the activity log, newest first
func (ws *Workspace) Activities() []model.ActivityLog {
	return append([]model.ActivityLog(nil), ws.activities...)
}

// AddColumn registers a custom kanban column. Columns live for the process
// lifetime only; the default board is rebuilt on the next load.
func (ws *Workspace) AddColumn(col model.KanbanColumn) error {
	for _, c := range ws.columns {
		if c.ID == col.ID {
			return &ValidationError{Msg: "column " + col.ID + " already exists"}
		}
	}
	ws.columns = append(ws.columns, col)
	return nil
}
