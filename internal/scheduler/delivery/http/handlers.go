package http

import (
	"github.com/gin-gonic/gin"

	"ai-appointment-scheduler/pkg/response"
)

// Schedule godoc
// @Summary     Schedule an appointment
// @Description Turns a free-text appointment description into a confirmed Google Calendar event.
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Appointment description"
// @Success     200  {object} scheduleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Calendar authorization required"
// @Failure     422  {object} response.Resp "Model reply could not be turned into a valid slot"
// @Failure     502  {object} response.Resp "Upstream model or calendar failure"
// @Router      /api/v1/scheduler/appointments [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
