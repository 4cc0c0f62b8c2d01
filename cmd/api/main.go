package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ai-appointment-scheduler/config"
	_ "ai-appointment-scheduler/docs" // Swagger docs
	"ai-appointment-scheduler/internal/httpserver"
	"ai-appointment-scheduler/internal/middleware"
	schedulerDelivery "ai-appointment-scheduler/internal/scheduler/delivery/http"
	"ai-appointment-scheduler/internal/scheduler/usecase"
	"ai-appointment-scheduler/pkg/datemath"
	"ai-appointment-scheduler/pkg/gcalendar"
	"ai-appointment-scheduler/pkg/gemini"
	"ai-appointment-scheduler/pkg/log"
)

// @title       AI Appointment Scheduler API
// @description Turns free-text appointment requests into confirmed Google Calendar events via Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Appointment Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if cfg.Gemini.APIKey == "" {
		logger.Error(ctx, "GEMINI_API_KEY not found. Please add it to your .env file or config.yaml")
		return
	}

	// 3. Gemini LLM client
	geminiClient := gemini.NewClientWithConfig(gemini.Config{
		APIKey:     cfg.Gemini.APIKey,
		APIURL:     cfg.Gemini.APIURL,
		Model:      cfg.Gemini.Model,
		HTTPClient: &http.Client{Timeout: cfg.Gemini.Timeout},
	})
	logger.Infof(ctx, "Gemini model: %s", geminiClient.Model())

	// 4. Date/time resolver (local zone for slot anchoring)
	resolver, err := datemath.NewResolver(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		resolver, _ = datemath.NewResolver("UTC")
	}

	// 5. Google Calendar authenticator
	tokenStore := gcalendar.NewTokenStore(cfg.GoogleCalendar.TokenPath)
	auth, err := gcalendar.NewAuthenticator(cfg.GoogleCalendar.CredentialsPath, tokenStore)
	if err != nil {
		logger.Error(ctx, "Google Calendar credentials unavailable: ", err)
		logger.Warn(ctx, "→ Provide an OAuth Desktop App credentials file and run `go run scripts/gcal-auth/main.go`")
		return
	}

	// 6. Scheduler UseCase + delivery
	schedulerUC := usecase.New(logger, geminiClient, auth, resolver, usecase.Config{
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		DisplayTimezone: cfg.GoogleCalendar.Timezone,
		ModelTimeout:    cfg.Gemini.Timeout,
		CalendarTimeout: cfg.GoogleCalendar.Timeout,
	})
	schedulerHandler := schedulerDelivery.New(logger, schedulerUC)

	// 7. HTTP server
	mw := middleware.New(logger, cfg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		SchedulerHandler: schedulerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
