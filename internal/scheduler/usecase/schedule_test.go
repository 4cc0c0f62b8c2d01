package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai-appointment-scheduler/internal/scheduler"
	"ai-appointment-scheduler/internal/scheduler/usecase"
	"ai-appointment-scheduler/pkg/datemath"
	"ai-appointment-scheduler/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockModel struct {
	completeFunc func(ctx context.Context, prompt string) (string, error)
	calls        int
	lastPrompt   string
}

func (m *mockModel) Complete(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	return m.completeFunc(ctx, prompt)
}

type mockAuth struct {
	sessionFunc func(ctx context.Context) (*gcalendar.Session, error)
	calls       int
}

func (m *mockAuth) NewSession(ctx context.Context) (*gcalendar.Session, error) {
	m.calls++
	return m.sessionFunc(ctx)
}

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

// fakeCalendar spins up a fake Calendar API and returns an auth mock whose
// sessions are bound to it, plus a pointer to the last insert payload.
func fakeCalendar(t *testing.T, handler http.HandlerFunc) *mockAuth {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client := ts.Client()
	client.Transport = &rewriteTransport{
		Transport: client.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	return &mockAuth{sessionFunc: func(ctx context.Context) (*gcalendar.Session, error) {
		return gcalendar.NewSessionFromHTTP(ctx, client)
	}}
}

const modelReply = `Task: Team Sync with John
Deadline: Tuesday, 28 May 2030 at 5:00 PM
Duration: 30
Priority: High

Scheduled Slot:
 - Date: Tuesday, 28 May 2030
 - Time: 3:00 PM - 3:30 PM
 - Reason: Earliest free slot before the deadline.`

func newUseCase(llm usecase.ModelClient, auth usecase.CalendarAuth) scheduler.UseCase {
	resolver, _ := datemath.NewResolver("UTC")
	return usecase.New(&mockLogger{}, llm, auth, resolver, usecase.Config{
		CalendarID:      "primary",
		DisplayTimezone: "Asia/Kolkata",
	})
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty input", func(t *testing.T) {
		llm := &mockModel{completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return modelReply, nil
		}}
		auth := &mockAuth{sessionFunc: func(ctx context.Context) (*gcalendar.Session, error) {
			return nil, errors.New("must not be called")
		}}
		uc := newUseCase(llm, auth)

		_, err := uc.Schedule(ctx, scheduler.ScheduleInput{Sentence: "   "})
		if !errors.Is(err, scheduler.ErrEmptyInput) {
			t.Fatalf("error = %v, want ErrEmptyInput", err)
		}
		if llm.calls != 0 {
			t.Errorf("model was called %d times for empty input", llm.calls)
		}
	})

	t.Run("Successful flow", func(t *testing.T) {
		var inserted map[string]any
		auth := fakeCalendar(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				json.NewDecoder(r.Body).Decode(&inserted)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"summary": "Team Sync with John",
					"htmlLink": "https://calendar.google.com/event-uri"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		llm := &mockModel{completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return modelReply, nil
		}}
		uc := newUseCase(llm, auth)

		sentence := "Book a 30 minute sync with John before end of May 2030"
		out, err := uc.Schedule(ctx, scheduler.ScheduleInput{Sentence: sentence})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.EventID != "event-123" {
			t.Errorf("EventID = %q", out.EventID)
		}
		if out.Summary != "Team Sync with John" {
			t.Errorf("Summary = %q", out.Summary)
		}
		wantStart := time.Date(2030, 5, 28, 15, 0, 0, 0, time.UTC)
		if !out.Start.Equal(wantStart) {
			t.Errorf("Start = %v, want %v", out.Start, wantStart)
		}
		if out.DurationMinutes != 30 {
			t.Errorf("DurationMinutes = %d, want 30", out.DurationMinutes)
		}
		if out.Priority != "High" {
			t.Errorf("Priority = %q, want High", out.Priority)
		}
		if out.ProcessedAt.IsZero() {
			t.Errorf("ProcessedAt is zero")
		}

		if llm.calls != 1 {
			t.Errorf("model calls = %d, want 1", llm.calls)
		}
		if !strings.Contains(llm.lastPrompt, sentence) {
			t.Errorf("prompt does not embed the user sentence")
		}

		// The stored event embeds the original request and the raw model
		// reply for auditability.
		desc, _ := inserted["description"].(string)
		if !strings.Contains(desc, sentence) || !strings.Contains(desc, "Team Sync with John") {
			t.Errorf("event description incomplete:\n%s", desc)
		}
		startBody, _ := inserted["start"].(map[string]any)
		if startBody["timeZone"] != "Asia/Kolkata" {
			t.Errorf("event timeZone = %v, want Asia/Kolkata", startBody["timeZone"])
		}
		reminders, _ := inserted["reminders"].(map[string]any)
		if overrides, _ := reminders["overrides"].([]any); len(overrides) != 2 {
			t.Errorf("reminder overrides = %v, want 2 entries", reminders)
		}
	})

	t.Run("Model failure short-circuits", func(t *testing.T) {
		llm := &mockModel{completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("boom")
		}}
		auth := &mockAuth{sessionFunc: func(ctx context.Context) (*gcalendar.Session, error) {
			return nil, errors.New("must not be called")
		}}
		uc := newUseCase(llm, auth)

		_, err := uc.Schedule(ctx, scheduler.ScheduleInput{Sentence: "book a meeting"})
		if !errors.Is(err, scheduler.ErrModelInvocation) {
			t.Fatalf("error = %v, want ErrModelInvocation", err)
		}
		if auth.calls != 0 {
			t.Errorf("authenticate ran after model failure")
		}
	})

	t.Run("Model timeout is transient", func(t *testing.T) {
		resolver, _ := datemath.NewResolver("UTC")
		llm := &mockModel{completeFunc: func(ctx context.Context, prompt string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}}
		auth := &mockAuth{sessionFunc: func(ctx context.Context) (*gcalendar.Session, error) {
			return nil, errors.New("must not be called")
		}}
		uc := usecase.New(&mockLogger{}, llm, auth, resolver, usecase.Config{
			CalendarID:      "primary",
			DisplayTimezone: "Asia/Kolkata",
			ModelTimeout:    time.Millisecond,
		})

		_, err := uc.Schedule(ctx, scheduler.ScheduleInput{Sentence: "book a meeting"})
		var transient *scheduler.TransientError
		if !errors.As(err, &transient) {
			t.Fatalf("error = %v, want *TransientError", err)
		}
		if auth.calls != 0 {
			t.Errorf("authenticate ran after timeout")
		}
	})

	t.Run("Unparseable reply short-circuits", func(t *testing.T) {
		llm := &mockModel{completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "I cannot schedule that.", nil
		}}
		auth := &mockAuth{sessionFunc: func(ctx context.Context) (*gcalendar.Session, error) {
			return nil, errors.New("must not be called")
		}}
		uc := newUseCase(llm, auth)

		_, err := uc.Schedule(ctx, scheduler.ScheduleInput{Sentence: "book a meeting"})
		if !errors.Is(err, scheduler.ErrIncompleteExtraction) {
			t.Fatalf("error = %v, want ErrIncompleteExtraction", err)
		}
		if auth.calls != 0 {
			t.Errorf("authenticate ran after parse failure")
		}
	})

	t.Run("Past date rejected", func(t *testing.T) {
		reply := strings.ReplaceAll(modelReply, "2030", "2020")
		llm := &mockModel{completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return reply, nil
		}}
		auth := &mockAuth{sessionFunc: func(ctx context.Context) (*gcalendar.Session, error) {
			return nil, errors.New("must not be called")
		}}
		uc := newUseCase(llm, auth)

		_, err := uc.Schedule(ctx, scheduler.ScheduleInput{Sentence: "book a meeting"})
		if !errors.Is(err, datemath.ErrPastDate) {
			t.Fatalf("error = %v, want ErrPastDate", err)
		}
		if auth.calls != 0 {
			t.Errorf("authenticate ran after date failure")
		}
	})

	t.Run("Missing session propagates", func(t *testing.T) {
		llm := &mockModel{completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return modelReply, nil
		}}
		auth := &mockAuth{sessionFunc: func(ctx context.Context) (*gcalendar.Session, error) {
			return nil, gcalendar.ErrNoSession
		}}
		uc := newUseCase(llm, auth)

		_, err := uc.Schedule(ctx, scheduler.ScheduleInput{Sentence: "book a meeting"})
		if !errors.Is(err, gcalendar.ErrNoSession) {
			t.Fatalf("error = %v, want ErrNoSession", err)
		}
	})

	t.Run("Calendar API failure propagates", func(t *testing.T) {
		auth := fakeCalendar(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"code": 500, "message": "backend error"}}`))
		})
		llm := &mockModel{completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return modelReply, nil
		}}
		uc := newUseCase(llm, auth)

		_, err := uc.Schedule(ctx, scheduler.ScheduleInput{Sentence: "book a meeting"})
		var apiErr *gcalendar.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error = %v, want *APIError", err)
		}
	})
}
