package usecase

import (
	"context"
	"strings"
	"time"

	"ai-appointment-scheduler/internal/scheduler"
)

// Schedule runs the request-to-event pipeline for one appointment sentence.
func (uc *implUseCase) Schedule(ctx context.Context, input scheduler.ScheduleInput) (scheduler.ScheduleOutput, error) {
	if strings.TrimSpace(input.Sentence) == "" {
		return scheduler.ScheduleOutput{}, scheduler.ErrEmptyInput
	}

	st := &pipelineState{
		request: scheduler.Request{
			Sentence:    input.Sentence,
			SubmittedAt: time.Now(),
		},
	}

	uc.l.Infof(ctx, "Schedule: input_length=%d", len(input.Sentence))

	uc.run(ctx, st)
	if st.err != nil {
		return scheduler.ScheduleOutput{}, st.err
	}

	uc.l.Infof(ctx, "Schedule: created event %q id=%s start=%s",
		st.created.Summary, st.created.ID, st.slot.Start.Format(time.RFC3339))

	return scheduler.ScheduleOutput{
		EventID:         st.created.ID,
		HtmlLink:        st.created.HtmlLink,
		Summary:         st.created.Summary,
		Start:           st.slot.Start,
		End:             st.slot.End,
		DurationMinutes: int(st.slot.Duration() / time.Minute),
		Priority:        st.fields.Priority,
		ProcessedAt:     st.request.SubmittedAt,
	}, nil
}
