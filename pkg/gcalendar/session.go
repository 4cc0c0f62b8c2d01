package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Session is an authenticated handle to the Google Calendar API. Each
// scheduling request obtains its own session from the Authenticator.
type Session struct {
	service *calendar.Service
}

// NewSessionFromHTTP creates a session from a pre-configured HTTP client.
// Exposed primarily so tests can point the service at a fake server.
func NewSessionFromHTTP(ctx context.Context, httpClient *http.Client) (*Session, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Session{service: svc}, nil
}

// InsertEvent creates a new Google Calendar event. API failures are returned
// as *APIError with the remote status and body.
func (s *Session) InsertEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	if len(req.Reminders) > 0 {
		overrides := make([]*calendar.EventReminder, len(req.Reminders))
		for i, r := range req.Reminders {
			overrides[i] = &calendar.EventReminder{
				Method:  r.Method,
				Minutes: r.Minutes,
			}
		}
		event.Reminders = &calendar.EventReminders{
			UseDefault: false,
			Overrides:  overrides,
			// UseDefault=false must survive marshalling or the API falls
			// back to the calendar's default reminders.
			ForceSendFields: []string{"UseDefault"},
		}
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := s.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, &APIError{StatusCode: gerr.Code, Body: gerr.Body}
		}
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}
