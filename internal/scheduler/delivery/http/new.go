package http

import (
	"github.com/gin-gonic/gin"

	"ai-appointment-scheduler/internal/scheduler"
	pkgLog "ai-appointment-scheduler/pkg/log"
)

// Handler is the public interface for the scheduler HTTP delivery layer.
type Handler interface {
	Schedule(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc scheduler.UseCase
}

// New creates a new HTTP handler for the scheduler domain.
func New(l pkgLog.Logger, uc scheduler.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
