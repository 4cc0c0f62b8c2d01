package scheduler

import (
	"regexp"
	"strconv"
	"strings"

	"ai-appointment-scheduler/pkg/datemath"
)

// Labeled-line patterns matched against the model reply. One line per field;
// the "- Date:"/"- Time:" forms come from the Scheduled Slot block of the
// prompt template.
var (
	taskPattern     = regexp.MustCompile(`(?m)^Task:[ \t]*(.+)$`)
	deadlinePattern = regexp.MustCompile(`(?m)^Deadline:[ \t]*(.+)$`)
	datePattern     = regexp.MustCompile(`(?m)^[ \t]*-?[ \t]*Date:[ \t]*(.+)$`)
	timePattern     = regexp.MustCompile(`(?m)^[ \t]*-?[ \t]*Time:[ \t]*(.+)$`)
	durationPattern = regexp.MustCompile(`(?m)^Duration:[ \t]*(\d+)`)
	priorityPattern = regexp.MustCompile(`(?m)^Priority:[ \t]*(.+)$`)
)

// ParseReply extracts structured scheduling fields from the model's raw
// reply. The reply is untrusted input: a deviation from the documented
// template is a parse failure, never a crash.
//
// Task, Date, and Time are required. Duration defaults to 60 minutes when
// absent or non-numeric; Priority defaults to "Normal" and is otherwise kept
// verbatim after trimming.
func ParseReply(reply string) (ExtractedFields, error) {
	fields := ExtractedFields{
		DurationMinutes: DefaultDurationMinutes,
		Priority:        DefaultPriority,
	}

	task := firstMatch(taskPattern, reply)
	date := firstMatch(datePattern, reply)
	timeRange := firstMatch(timePattern, reply)

	if task == "" || date == "" || timeRange == "" {
		return ExtractedFields{}, ErrIncompleteExtraction
	}

	// The range must split cleanly here, before any date arithmetic is
	// attempted; the resolver reuses the same splitting rule later.
	if _, _, err := datemath.SplitTimeRange(timeRange); err != nil {
		return ExtractedFields{}, err
	}

	fields.TaskTitle = task
	fields.DateText = date
	fields.TimeRangeText = timeRange
	fields.DeadlineText = firstMatch(deadlinePattern, reply)

	if raw := firstMatch(durationPattern, reply); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			fields.DurationMinutes = minutes
		}
	}
	if priority := firstMatch(priorityPattern, reply); priority != "" {
		fields.Priority = priority
	}

	return fields, nil
}

func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
