package model

import "strings"

// Event represents a scheduled occurrence with a date range and attendees.
// Dates are "YYYY-MM-DD" strings, times "HH:MM"; both compare correctly as
// plain strings.
type Event struct {
	ID          string   `json:"id"`
	TeamID      string   `json:"teamId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	EndDate     string   `json:"endDate"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Type        string   `json:"type"`
	Attendees   []string `json:"attendees"`
	Location    string   `json:"location,omitempty"`
	ClientName  string   `json:"clientName,omitempty"`
}

// ClampEndDate keeps the range valid: the end date never precedes the start
func (e *Event) ClampEndDate() {
	if e.EndDate == "" || e.EndDate < e.Date {
		e.EndDate = e.Date
	}
}

// EventTypeConfig is an admin-defined category for events
type EventTypeConfig struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Theme string `json:"theme"`
}

// Slugify derives an event-type id from its label: lowercased, whitespace
// runs replaced with hyphens.
func Slugify(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "-")
}

// DefaultEventTypes returns the starter catalog of event categories
func DefaultEventTypes() []EventTypeConfig {
	return []EventTypeConfig{
		{ID: "meeting", Label: "Meeting", Theme: "purple"},
		{ID: "workshop", Label: "Workshop", Theme: "amber"},
		{ID: "deadline", Label: "Deadline", Theme: "red"},
		{ID: "presentation", Label: "Presentation", Theme: "blue"},
		{ID: "conference", Label: "Conference", Theme: "emerald"},
		{ID: "training", Label: "Training", Theme: "teal"},
		{ID: "review", Label: "Review", Theme: "indigo"},
		{ID: "planning", Label: "Planning", Theme: "sky"},
		{ID: "brainstorm", Label: "Brainstorm", Theme: "fuchsia"},
		{ID: "demo", Label: "Demo", Theme: "lime"},
		{ID: "client-call", Label: "Client Call", Theme: "violet"},
		{ID: "team-building", Label: "Team Building", Theme: "yellow"},
		{ID: "hackathon", Label: "Hackathon", Theme: "rose"},
		{ID: "seminar", Label: "Seminar", Theme: "cyan"},
		{ID: "webinar", Label: "Webinar", Theme: "orange"},
	}
}
