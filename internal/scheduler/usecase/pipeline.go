package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-appointment-scheduler/internal/scheduler"
	"ai-appointment-scheduler/pkg/datemath"
	"ai-appointment-scheduler/pkg/gcalendar"
	"ai-appointment-scheduler/pkg/gemini"
)

// stage names, in execution order. The pipeline is a strict total order with
// no branching among non-error stages and no loops: each request runs it at
// most once, and the first failure short-circuits everything after it.
type stage string

const (
	stageBuildPrompt     stage = "BuildPrompt"
	stageInvokeModel     stage = "InvokeModel"
	stageParseResponse   stage = "ParseResponse"
	stageResolveDateTime stage = "ResolveDateTime"
	stageAuthenticate    stage = "Authenticate"
	stageBuildEvent      stage = "BuildEvent"
	stageSubmitEvent     stage = "SubmitEvent"
)

var stageOrder = []stage{
	stageBuildPrompt,
	stageInvokeModel,
	stageParseResponse,
	stageResolveDateTime,
	stageAuthenticate,
	stageBuildEvent,
	stageSubmitEvent,
}

// pipelineState is the carrier threaded through the stages. Exactly one stage
// mutates it at a time, in strict sequence; once err is set every remaining
// stage is a pass-through no-op and only the error handler runs.
type pipelineState struct {
	request scheduler.Request
	fields  scheduler.ExtractedFields
	slot    datemath.Slot

	prompt  string
	reply   string // untrusted model output, parsed exactly once
	session *gcalendar.Session
	event   gcalendar.CreateEventRequest
	created *gcalendar.Event

	failedAt stage
	err      error
}

func (st *pipelineState) fail(at stage, err error) {
	st.failedAt = at
	st.err = err
}

// run executes the pipeline for one request.
func (uc *implUseCase) run(ctx context.Context, st *pipelineState) {
	for _, s := range stageOrder {
		if st.err != nil {
			break
		}
		uc.l.Debugf(ctx, "pipeline: entering stage %s", s)
		uc.runStage(ctx, s, st)
	}

	if st.err != nil {
		uc.handleError(ctx, st)
	}
}

func (uc *implUseCase) runStage(ctx context.Context, s stage, st *pipelineState) {
	switch s {
	case stageBuildPrompt:
		uc.buildPrompt(st)
	case stageInvokeModel:
		uc.invokeModel(ctx, st)
	case stageParseResponse:
		uc.parseResponse(ctx, st)
	case stageResolveDateTime:
		uc.resolveDateTime(st)
	case stageAuthenticate:
		uc.authenticate(ctx, st)
	case stageBuildEvent:
		uc.buildEvent(st)
	case stageSubmitEvent:
		uc.submitEvent(ctx, st)
	}
}

// buildPrompt renders the model instruction. Pure function of the request.
func (uc *implUseCase) buildPrompt(st *pipelineState) {
	now := st.request.SubmittedAt.In(uc.resolver.Location())
	st.prompt = gemini.BuildSchedulingPrompt(st.request.Sentence, now)
}

// invokeModel performs the single synchronous completion call.
func (uc *implUseCase) invokeModel(ctx context.Context, st *pipelineState) {
	ctx, cancel := withTimeout(ctx, uc.cfg.ModelTimeout)
	defer cancel()

	reply, err := uc.llm.Complete(ctx, st.prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			st.fail(stageInvokeModel, &scheduler.TransientError{Op: "model call", Err: err})
			return
		}
		st.fail(stageInvokeModel, fmt.Errorf("%w: %v", scheduler.ErrModelInvocation, err))
		return
	}
	st.reply = reply
}

func (uc *implUseCase) parseResponse(ctx context.Context, st *pipelineState) {
	fields, err := scheduler.ParseReply(st.reply)
	if err != nil {
		st.fail(stageParseResponse, err)
		return
	}
	st.fields = fields
	uc.l.Infof(ctx, "pipeline: extracted task=%q date=%q time=%q duration=%d priority=%q",
		fields.TaskTitle, fields.DateText, fields.TimeRangeText, fields.DurationMinutes, fields.Priority)
}

func (uc *implUseCase) resolveDateTime(st *pipelineState) {
	slot, err := uc.resolver.ResolveSlot(
		st.fields.DateText,
		st.fields.TimeRangeText,
		st.fields.DurationMinutes,
		st.request.SubmittedAt,
	)
	if err != nil {
		st.fail(stageResolveDateTime, err)
		return
	}
	st.slot = slot
}

func (uc *implUseCase) authenticate(ctx context.Context, st *pipelineState) {
	ctx, cancel := withTimeout(ctx, uc.cfg.CalendarTimeout)
	defer cancel()

	session, err := uc.auth.NewSession(ctx)
	if err != nil {
		st.fail(stageAuthenticate, err)
		return
	}
	st.session = session
}

// reminderPolicy is fixed: one email reminder a day ahead, one popup ten
// minutes ahead.
var reminderPolicy = []gcalendar.ReminderOverride{
	{Method: "email", Minutes: 24 * 60},
	{Method: "popup", Minutes: 10},
}

// buildEvent assembles the event payload. Pure assembly; the description
// embeds the original request and the raw model reply for auditability.
func (uc *implUseCase) buildEvent(st *pipelineState) {
	description := fmt.Sprintf("Scheduled via AI Scheduler.\n\nOriginal Request: \"%s\"\n\nAI Analysis:\n%s",
		st.request.Sentence, st.reply)

	st.event = gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     st.fields.TaskTitle,
		Description: description,
		StartTime:   st.slot.Start,
		EndTime:     st.slot.End,
		Timezone:    uc.cfg.DisplayTimezone,
		Reminders:   reminderPolicy,
	}
}

// submitEvent performs the single remote insert. There is no partial commit:
// if this fails, no event exists on the remote calendar.
func (uc *implUseCase) submitEvent(ctx context.Context, st *pipelineState) {
	ctx, cancel := withTimeout(ctx, uc.cfg.CalendarTimeout)
	defer cancel()

	created, err := st.session.InsertEvent(ctx, st.event)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			st.fail(stageSubmitEvent, &scheduler.TransientError{Op: "calendar call", Err: err})
			return
		}
		st.fail(stageSubmitEvent, err)
		return
	}
	st.created = created
}

// handleError is the terminal stage for failed runs. It only reports; it
// never retries and never mutates scheduling fields.
func (uc *implUseCase) handleError(ctx context.Context, st *pipelineState) {
	uc.l.Warnf(ctx, "pipeline: stage %s failed for request %q: %v",
		st.failedAt, st.request.Sentence, st.err)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
