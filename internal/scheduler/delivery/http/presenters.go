package http

import (
	"strings"
	"time"

	"ai-appointment-scheduler/internal/scheduler"
)

// --- Request DTOs ---

type scheduleReq struct {
	Sentence string `json:"sentence" binding:"required,min=1,max=2000"`
}

func (r scheduleReq) validate() error {
	if strings.TrimSpace(r.Sentence) == "" {
		return scheduler.ErrEmptyInput
	}
	return nil
}

func (r scheduleReq) toInput() scheduler.ScheduleInput {
	return scheduler.ScheduleInput{
		Sentence: r.Sentence,
	}
}

// --- Response DTOs ---

type reminderResp struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

type scheduleResp struct {
	EventID         string         `json:"event_id"`
	HtmlLink        string         `json:"html_link"`
	Summary         string         `json:"summary"`
	Start           time.Time      `json:"start"`
	End             time.Time      `json:"end"`
	DurationMinutes int            `json:"duration_minutes"`
	Priority        string         `json:"priority"`
	Reminders       []reminderResp `json:"reminders"`
	ProcessedAt     time.Time      `json:"processed_at"`
}

func (h *handler) newScheduleResp(out scheduler.ScheduleOutput) scheduleResp {
	return scheduleResp{
		EventID:         out.EventID,
		HtmlLink:        out.HtmlLink,
		Summary:         out.Summary,
		Start:           out.Start,
		End:             out.End,
		DurationMinutes: out.DurationMinutes,
		Priority:        out.Priority,
		Reminders: []reminderResp{
			{Method: "email", Minutes: 24 * 60},
			{Method: "popup", Minutes: 10},
		},
		ProcessedAt: out.ProcessedAt,
	}
}
