package usecase

import (
	"context"
	"time"

	"ai-appointment-scheduler/pkg/datemath"
	"ai-appointment-scheduler/pkg/gcalendar"
	pkgLog "ai-appointment-scheduler/pkg/log"
)

// ModelClient is the language-model boundary: one synchronous plain-text
// completion, no streaming, no tool calling.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CalendarAuth issues authenticated calendar sessions. Each pipeline run
// obtains its own session.
type CalendarAuth interface {
	NewSession(ctx context.Context) (*gcalendar.Session, error)
}

// Config carries the pipeline's fixed settings.
type Config struct {
	CalendarID      string
	DisplayTimezone string // zone submitted with event payloads
	ModelTimeout    time.Duration
	CalendarTimeout time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      ModelClient
	auth     CalendarAuth
	resolver *datemath.Resolver
	cfg      Config
}

// New creates a new scheduler UseCase instance.
func New(
	l pkgLog.Logger,
	llm ModelClient,
	auth CalendarAuth,
	resolver *datemath.Resolver,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		auth:     auth,
		resolver: resolver,
		cfg:      cfg,
	}
}
