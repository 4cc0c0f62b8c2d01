package gcalendar

import "time"

// ReminderOverride is one non-default reminder attached to an event.
type ReminderOverride struct {
	Method  string // "email" or "popup"
	Minutes int64  // offset before the event start
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // display timezone, e.g. "Asia/Kolkata"
	Reminders   []ReminderOverride
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
