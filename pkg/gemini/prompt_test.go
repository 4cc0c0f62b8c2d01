package gemini_test

import (
	"strings"
	"testing"
	"time"

	"ai-appointment-scheduler/pkg/gemini"
)

func TestBuildSchedulingPrompt(t *testing.T) {
	now := time.Date(2026, 5, 26, 15, 4, 0, 0, time.UTC) // Tuesday
	sentence := "Book a meeting with John tomorrow afternoon"

	prompt := gemini.BuildSchedulingPrompt(sentence, now)

	if !strings.Contains(prompt, "expert scheduling assistant") {
		t.Errorf("prompt missing system context")
	}
	if !strings.Contains(prompt, `User's Request: "`+sentence+`"`) {
		t.Errorf("prompt missing quoted user sentence")
	}
	if !strings.Contains(prompt, "Tuesday, 26 May 2026 03:04 PM") {
		t.Errorf("prompt missing formatted current time, got:\n%s", prompt)
	}

	// The parser depends on these exact labels in the requested format.
	for _, label := range []string{"Task:", "Deadline:", "Duration:", "Priority:", "Scheduled Slot:", "- Date:", "- Time:", "- Reason:"} {
		if !strings.Contains(prompt, label) {
			t.Errorf("prompt missing reply label %q", label)
		}
	}
}

func TestBuildSchedulingPromptDeterministic(t *testing.T) {
	now := time.Date(2026, 5, 26, 15, 4, 0, 0, time.UTC)
	a := gemini.BuildSchedulingPrompt("same input", now)
	b := gemini.BuildSchedulingPrompt("same input", now)
	if a != b {
		t.Errorf("same inputs produced different prompts")
	}
}
