package scheduler

import "time"

// Request is the user's raw appointment sentence plus the wall-clock instant
// it was submitted. Immutable once created; the submission instant is the
// "now" reference for the whole pipeline run.
type Request struct {
	Sentence    string
	SubmittedAt time.Time
}

// ExtractedFields is the structured scheduling intent pulled out of the
// model's free-text reply.
type ExtractedFields struct {
	TaskTitle       string
	DeadlineText    string // free-form, informational only
	DateText        string // "Scheduled Slot - Date" line
	TimeRangeText   string // "Scheduled Slot - Time" line
	DurationMinutes int
	// Priority is extracted but does not influence deterministic slot
	// handling; only the model sees it. Any trimmed string is accepted.
	Priority string
}

// Priority values suggested to the model. Extraction does not validate
// against these.
const (
	PriorityHigh    = "High"
	PriorityNormal  = "Normal"
	PriorityLow     = "Low"
	DefaultPriority = PriorityNormal
)

// DefaultDurationMinutes applies when the reply carries no numeric duration.
const DefaultDurationMinutes = 60

// ScheduleInput is the input for scheduling one appointment.
type ScheduleInput struct {
	Sentence string
}

// ScheduleOutput is the result of a successfully scheduled appointment.
type ScheduleOutput struct {
	EventID         string
	HtmlLink        string
	Summary         string
	Start           time.Time // UTC
	End             time.Time // UTC
	DurationMinutes int
	Priority        string
	ProcessedAt     time.Time
}
