package gemini

import (
	"fmt"
	"time"
)

// PromptTimeLayout renders the current instant with its weekday so the model
// can resolve relative phrases like "today" or "tomorrow".
const PromptTimeLayout = "Monday, 02 January 2006 03:04 PM MST-0700"

// schedulingPromptTemplate is the instruction sent to the model for every
// scheduling request. The reply layout is rigid: the response parser matches
// these exact labels, so the template must stay stable.
const schedulingPromptTemplate = `You are an expert scheduling assistant. Extract the following details and suggest a time slot.

User's Request: "%s"

Current Date and Time: %s (Important: use this for context, especially for 'today' or 'tomorrow')

Instructions:
1. Extract 'Task', 'Deadline', 'Duration', and 'Priority'.
2. 'Task': A concise description of the event.
3. 'Deadline': The exact date and time, or a relative phrase like "end of next week". If a specific time is not given but a date is, assume end of day. If only a relative term like "tomorrow" is given, infer the date.
4. 'Duration': In minutes. If not specified, default to 60 minutes.
5. 'Priority': "High", "Normal", or "Low". Default to "Normal".
6. Suggest the best **future** time slot for the meeting, ensuring it's before the deadline and accommodates the duration. If priority is "High", suggest the earliest reasonable time.
7. Provide a brief 'Reason' for the chosen slot.
8. **Always include the year** in the 'Scheduled Slot - Date' (e.g., Friday, 28 May 2025).

Respond in the following EXACT format:

Task: [task]
Deadline: [date and time, e.g., Friday, 28 May 2025 at 5:00 PM]
Duration: [duration in minutes]
Priority: [priority]

Scheduled Slot:
 - Date: <Day, DD Month YYYY> (e.g., Friday, 28 May 2025)
 - Time: <HH:MM AM/PM - HH:MM AM/PM> (e.g., 3:00 PM - 3:30 PM)
 - Reason: [reason]`

// BuildSchedulingPrompt builds the scheduling instruction for one user
// sentence. Pure function of its inputs.
func BuildSchedulingPrompt(sentence string, now time.Time) string {
	return fmt.Sprintf(schedulingPromptTemplate, sentence, now.Format(PromptTimeLayout))
}
