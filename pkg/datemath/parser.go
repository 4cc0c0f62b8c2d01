package datemath

import (
	"fmt"
	"strings"
	"time"
)

// clockLayout is the 12-hour clock format both ends of a time range must use.
const clockLayout = "3:04 PM"

// pastStartGrace is how far ahead of "now" a same-day start is pushed when
// the proposed time has already passed.
const pastStartGrace = 5 * time.Minute

// dateLayouts is the ordered format list tried against a scheduled-date
// string. First match wins; the precedence is deliberate and load-bearing
// ("28 May 2025" must never be read as month 28), so do not reorder or
// replace this with a best-match search.
var dateLayouts = []struct {
	layout  string
	hasYear bool
}{
	{"Monday, 2 January 2006", true},  // "Wednesday, 28 May 2025"
	{"Monday, 2 January", false},      // "Wednesday, 28 May"
	{"2 January 2006", true},          // "28 May 2025"
	{"January 2, 2006", true},         // "May 28, 2025"
	{"1/2/2006", true},                // "05/28/2025"
	{"2006-1-2", true},                // "2025-05-28"
	{"2-1-2006", true},                // "28-05-2025"
}

// Resolver converts model-proposed date and time-range strings into concrete
// UTC slots, anchored to a fixed local timezone.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string
// (e.g. "Asia/Kolkata", or "Local" for the machine zone).
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the local zone slots are anchored to.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// ParseFlexibleDate parses a date string against the ordered layout list.
// Layouts without a year take the current year, advanced by one if the
// resulting day already passed relative to now. The returned time is midnight
// in the resolver's zone.
func (r *Resolver) ParseFlexibleDate(text string, now time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	now = now.In(r.location)

	for _, dl := range dateLayouts {
		parsed, err := time.ParseInLocation(dl.layout, text, r.location)
		if err != nil {
			continue
		}

		year := parsed.Year()
		if !dl.hasYear {
			year = now.Year()
		}
		date := time.Date(year, parsed.Month(), parsed.Day(), 0, 0, 0, 0, r.location)

		if !dl.hasYear && date.Before(startOfDay(now)) {
			// Yearless dates stay within the next twelve months rather
			// than silently landing in a bygone year.
			date = date.AddDate(1, 0, 0)
		}
		return date, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, text)
}

// SplitTimeRange splits a time-range string into its trimmed start and end
// parts. The range must contain exactly one hyphen with non-empty text on
// both sides.
func SplitTimeRange(text string) (string, string, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q (expected 'HH:MM AM/PM - HH:MM AM/PM')", ErrMalformedTimeRange, text)
	}

	start := strings.TrimSpace(parts[0])
	end := strings.TrimSpace(parts[1])
	if start == "" || end == "" {
		return "", "", fmt.Errorf("%w: %q (expected 'HH:MM AM/PM - HH:MM AM/PM')", ErrMalformedTimeRange, text)
	}
	return start, end, nil
}

// parseClock parses one end of a time range as a 12-hour clock with meridiem
// marker. The marker is case-insensitive.
func parseClock(text string) (time.Time, error) {
	t, err := time.Parse(clockLayout, strings.ToUpper(strings.TrimSpace(text)))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTime, text)
	}
	return t, nil
}

// ResolveSlot turns a scheduled-date string and a time-range string into a
// concrete UTC slot.
//
// The naive date+time is anchored to the resolver's local zone. If the start
// has already passed on today's date, it is shifted to now plus a small grace
// and the end is recomputed from durationMinutes, discarding the proposed end.
// A start on an earlier day is rejected outright: silently correcting a wrong
// day would misrepresent what the user asked for.
func (r *Resolver) ResolveSlot(dateText, timeRangeText string, durationMinutes int, now time.Time) (Slot, error) {
	date, err := r.ParseFlexibleDate(dateText, now)
	if err != nil {
		return Slot{}, err
	}

	startText, endText, err := SplitTimeRange(timeRangeText)
	if err != nil {
		return Slot{}, err
	}

	startClock, err := parseClock(startText)
	if err != nil {
		return Slot{}, err
	}
	endClock, err := parseClock(endText)
	if err != nil {
		return Slot{}, err
	}

	start := r.onDate(date, startClock)
	end := r.onDate(date, endClock)
	if !end.After(start) {
		return Slot{}, fmt.Errorf("%w: range end %q is not after start %q", ErrUnparseableTime, endText, startText)
	}

	now = now.In(r.location)
	if start.Before(now) {
		if !sameDay(start, now) {
			return Slot{}, fmt.Errorf("%w: %s", ErrPastDate, start.Format("Monday, 02 January 2006 03:04 PM"))
		}
		start = now.Add(pastStartGrace)
		end = start.Add(time.Duration(durationMinutes) * time.Minute)
	}

	return Slot{Start: start.UTC(), End: end.UTC()}, nil
}

// onDate combines a resolved date with a parsed clock time in the resolver's
// zone.
func (r *Resolver) onDate(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, r.location)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
