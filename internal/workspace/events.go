package workspace

import (
	"strings"

	"github.com/existflow/kerja/internal/model"
)

// EventInput carries the caller-editable fields of an event
type EventInput struct {
	Title       string
	Description string
	Date        string
	EndDate     string
	StartTime   string
	EndTime     string
	Type        string
	Attendees   []string
	Location    string
	ClientName  string
}

// CreateEvent schedules a new event, newest-first. The end date is clamped
// so it never precedes the start date.
func (ws *Workspace) CreateEvent(in EventInput) (model.Event, error) {
	event := model.Event{
		ID:          ws.newID(),
		TeamID:      model.GlobalTeamID,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		EndDate:     in.EndDate,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Type:        in.Type,
		Attendees:   in.Attendees,
		Location:    in.Location,
		ClientName:  in.ClientName,
	}
	event.ClampEndDate()

	ws.events = append([]model.Event{event}, ws.events...)
	ws.logActivity("scheduled event", event.Title, model.ActivityEvent)
	ws.persist()
	return event, nil
}

// UpdateEvent replaces the editable fields of an event. Moving the date or
// start time logs a reschedule message; any other edit logs a generic one.
func (ws *Workspace) UpdateEvent(id string, in EventInput) (model.Event, error) {
	event := ws.findEvent(id)
	if event == nil {
		return model.Event{}, &ValidationError{Msg: "event not found: " + id}
	}

	var changes []string
	if event.Date != in.Date || event.StartTime != in.StartTime {
		changes = append(changes, "rescheduled to "+in.Date+" "+in.StartTime)
	}

	event.Title = in.Title
	event.Description = in.Description
	event.Date = in.Date
	event.EndDate = in.EndDate
	event.StartTime = in.StartTime
	event.EndTime = in.EndTime
	event.Type = in.Type
	event.Attendees = in.Attendees
	event.Location = in.Location
	event.ClientName = in.ClientName
	event.ClampEndDate()

	if len(changes) > 0 {
		ws.logActivity(strings.Join(changes, ", "), event.Title, model.ActivityEvent)
	} else {
		ws.logActivity("updated event details", event.Title, model.ActivityEvent)
	}
	ws.persist()
	return *event, nil
}

// DeleteEvent cancels an event. Tasks linked to it are left alone: their
// EventID dangles and their EventName stays as the snapshot taken at link
// time.
func (ws *Workspace) DeleteEvent(id string) error {
	event := ws.findEvent(id)
	if event == nil {
		return &ValidationError{Msg: "event not found: " + id}
	}
	title := event.Title
	ws.events = removeByID(ws.events, id, func(e model.Event) string { return e.ID })
	ws.logActivity("cancelled event", title, model.ActivityEvent)
	ws.persist()
	return nil
}
