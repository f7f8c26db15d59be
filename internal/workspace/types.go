package workspace

import (
	"fmt"

	"github.com/existflow/kerja/internal/model"
)

// CreateEventType adds a category to the catalog. The id is the slug of the
// label; a label that normalizes to an existing id is rejected rather than
// silently duplicated.
func (ws *Workspace) CreateEventType(label, theme string) (model.EventTypeConfig, error) {
	id := model.Slugify(label)
	if id == "" {
		return model.EventTypeConfig{}, &ValidationError{Msg: "event type label is required"}
	}
	for _, t := range ws.eventTypes {
		if t.ID == id {
			return model.EventTypeConfig{}, &ValidationError{Msg: fmt.Sprintf("event type %q already exists", id)}
		}
	}

	cfg := model.EventTypeConfig{ID: id, Label: label, Theme: theme}
	ws.eventTypes = append(ws.eventTypes, cfg)
	ws.persist()
	return cfg, nil
}

// UpdateEventType relabels or rethemes a category in place; the id is fixed
// for the lifetime of the entry so events keep resolving it.
func (ws *Workspace) UpdateEventType(id, label, theme string) (model.EventTypeConfig, error) {
	for i := range ws.eventTypes {
		if ws.eventTypes[i].ID == id {
			ws.eventTypes[i].Label = label
			ws.eventTypes[i].Theme = theme
			ws.persist()
			return ws.eventTypes[i], nil
		}
	}
	return model.EventTypeConfig{}, &ValidationError{Msg: "event type not found: " + id}
}

// DeleteEventType removes a category, refusing while any event references it
func (ws *Workspace) DeleteEventType(id string) error {
	inUse := 0
	for _, e := range ws.events {
		if e.Type == id {
			inUse++
		}
	}
	if inUse > 0 {
		return &ValidationError{Msg: fmt.Sprintf("cannot delete this event type because %d event(s) are using it", inUse)}
	}

	before := len(ws.eventTypes)
	ws.eventTypes = removeByID(ws.eventTypes, id, func(t model.EventTypeConfig) string { return t.ID })
	if len(ws.eventTypes) == before {
		return &ValidationError{Msg: "event type not found: " + id}
	}
	ws.persist()
	return nil
}
