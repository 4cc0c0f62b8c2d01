package http

import (
	"errors"
	"fmt"
	"net/http"

	"ai-appointment-scheduler/internal/scheduler"
	"ai-appointment-scheduler/pkg/datemath"
	"ai-appointment-scheduler/pkg/gcalendar"
	"ai-appointment-scheduler/pkg/response"
)

// mapError translates pipeline errors into HTTP errors. This is the one
// place a terminal pipeline failure becomes a user-facing message; each kind
// carries a troubleshooting hint.
func (h *handler) mapError(err error) error {
	var apiErr *gcalendar.APIError
	var transient *scheduler.TransientError

	switch {
	case errors.Is(err, scheduler.ErrEmptyInput):
		return response.NewHTTPError(http.StatusBadRequest,
			"please enter the appointment details before scheduling")

	case errors.Is(err, scheduler.ErrModelInvocation):
		return response.NewHTTPError(http.StatusBadGateway,
			"error getting AI response").
			WithHint("verify the Gemini API key is correct and the API is reachable")

	case errors.Is(err, scheduler.ErrIncompleteExtraction):
		return response.NewHTTPError(http.StatusUnprocessableEntity,
			"essential scheduling details (Task, Scheduled Date, or Scheduled Time) missing from AI output").
			WithHint("try rephrasing the appointment request with an explicit date and time")

	case errors.Is(err, datemath.ErrMalformedTimeRange):
		return response.NewHTTPError(http.StatusUnprocessableEntity,
			fmt.Sprintf("date/time parsing error: %v", err)).
			WithHint("be explicit about the time window, e.g. 'from 2 PM to 3 PM'")

	case errors.Is(err, datemath.ErrUnparseableDate),
		errors.Is(err, datemath.ErrUnparseableTime):
		return response.NewHTTPError(http.StatusUnprocessableEntity,
			fmt.Sprintf("date/time parsing error: %v", err)).
			WithHint("be specific with dates (e.g. 'Friday, 30 May 2025') and exact times (e.g. '2:00 PM')")

	case errors.Is(err, datemath.ErrPastDate):
		return response.NewHTTPError(http.StatusUnprocessableEntity,
			fmt.Sprintf("%v", err)).
			WithHint("please refine your request to schedule a future appointment")

	case errors.Is(err, gcalendar.ErrNoSession):
		return response.NewHTTPError(http.StatusUnauthorized,
			"Google Calendar authorization required").
			WithHint("run `go run scripts/gcal-auth/main.go` to authorize, or delete token.json to force re-authentication")

	case errors.Is(err, gcalendar.ErrAuthExpired):
		return response.NewHTTPError(http.StatusUnauthorized,
			"Google Calendar session expired and could not be refreshed").
			WithHint("delete token.json and re-run the authorization flow")

	case errors.As(err, &apiErr):
		return response.NewHTTPError(http.StatusBadGateway,
			fmt.Sprintf("Google Calendar API error: %d - %s", apiErr.StatusCode, apiErr.Body))

	case errors.As(err, &transient):
		return response.NewHTTPError(http.StatusGatewayTimeout, transient.Error()).
			WithHint("the upstream call timed out; it is safe to resubmit the same request")

	default:
		return response.NewHTTPError(http.StatusInternalServerError,
			response.DefaultErrorMessage)
	}
}
