package scheduler

import "context"

// UseCase defines the business logic interface for the scheduler domain.
type UseCase interface {
	// Schedule turns a free-text appointment request into a confirmed
	// calendar event, or a terminal error. Each call runs the pipeline
	// exactly once; nothing is retried automatically.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
}
