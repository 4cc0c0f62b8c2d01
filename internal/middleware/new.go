package middleware

import (
	"ai-appointment-scheduler/config"
	pkgLog "ai-appointment-scheduler/pkg/log"
)

// Middleware bundles the HTTP middlewares with their dependencies.
type Middleware struct {
	l       pkgLog.Logger
	cfg     *config.Config
	limiter *rateLimiter
}

// New creates the middleware bundle.
func New(l pkgLog.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RateLimit.PerMin),
	}
}
