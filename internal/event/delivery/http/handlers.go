package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/pkg/response"
)

// badRequest answers a request that failed binding or scope checks.
func (h *handler) badRequest(c *gin.Context, err error) {
	if errors.Is(err, event.ErrMissingOwner) {
		response.Unauthorized(c)
		return
	}
	response.ErrorWithStatus(c, http.StatusBadRequest, err, nil)
}

// Command godoc
// @Summary     Run a text command
// @Description Classifies a natural-language command (add, edit, delete, mark, split, schedule, productivity) and performs it. Recoverable problems return success=false with a clarifying message.
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string     true "Owner id"
// @Param       body       body   commandReq true "Command text"
// @Success     200 {object} commandResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands [POST]
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCommandReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.HandleCommand(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "Command", err)
		return
	}

	response.OK(c, h.newCommandResp(output))
}

// Create godoc
// @Summary     Create an event
// @Description Creates a standalone event. An event at the exact same interval is a conflict (409) unless allow_double is set; the 409 body carries the conflicts and three suggested slots.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string    true "Owner id"
// @Param       body       body   createReq true "Event data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     422 {object} response.Resp "Start is in the past"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	input := req.toInput()
	output, err := h.uc.Create(ctx, sc, input)
	if errors.Is(err, event.ErrConflict) {
		response.ErrorWithStatus(c, http.StatusConflict, err, newConflictResp(nil, output.Conflicts, output.Suggestions))
		return
	}
	if err != nil {
		h.respondError(c, "Create", err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List events
// @Description Returns the owner's events ordered by start, optionally limited to starts within [from, to).
// @Tags        Events
// @Produce     json
// @Param       X-Owner-ID header string true  "Owner id"
// @Param       from       query  string false "RFC 3339 lower bound"
// @Param       to         query  string false "RFC 3339 upper bound"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	events, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "List", err)
		return
	}

	response.OK(c, h.newListResp(events))
}

// Detail godoc
// @Summary     Get event detail
// @Description Returns one event with its kind and its parent or segments.
// @Tags        Events
// @Produce     json
// @Param       X-Owner-ID header string true "Owner id"
// @Param       id         path   string true "Event ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.respondError(c, "Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update an event
// @Description Partial update. A moved interval must start in the future unless allow_past is set and is conflict-checked against every other event.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string    true "Owner id"
// @Param       id         path   string    true "Event ID"
// @Param       body       body   updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     422 {object} response.Resp "Start is in the past"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if errors.Is(err, event.ErrConflict) {
		response.ErrorWithStatus(c, http.StatusConflict, err, newConflictResp(&output.Event, output.Conflicts, output.Suggestions))
		return
	}
	if err != nil {
		h.respondError(c, "Update", err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an event
// @Description Removes an event. Deleting a parent removes its segments too.
// @Tags        Events
// @Produce     json
// @Param       X-Owner-ID header string true "Owner id"
// @Param       id         path   string true "Event ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, sc, id)
	if err != nil {
		h.respondError(c, "Delete", err)
		return
	}

	response.OK(c, h.newDeleteResp(output))
}

// DeleteSegments godoc
// @Summary     Delete the segments of an event
// @Description Removes every segment of a parent and keeps the parent. A segment id resolves to its parent.
// @Tags        Events
// @Produce     json
// @Param       X-Owner-ID header string true "Owner id"
// @Param       id         path   string true "Event ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found or no segments"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id}/segments [DELETE]
func (h *handler) DeleteSegments(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.DeleteSegments(ctx, sc, id)
	if err != nil {
		h.respondError(c, "DeleteSegments", err)
		return
	}

	response.OK(c, h.newDeleteResp(output))
}

// Split godoc
// @Summary     Split an event into segments
// @Description Divides an unsegmented event of at least 180 minutes into count segments separated by break_minutes.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string   true "Owner id"
// @Param       id         path   string   true "Event ID"
// @Param       body       body   splitReq true "Split parameters"
// @Success     200 {object} splitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already segmented"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id}/split [POST]
func (h *handler) Split(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSplitReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.Split(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "Split", err)
		return
	}

	response.OK(c, h.newSplitResp(output))
}

// UpdateStatus godoc
// @Summary     Mark an event completed or missed
// @Description Marks an event and propagates the status: the last resolved segment finalizes its parent; a parent cascades to its pending segments.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string    true "Owner id"
// @Param       id         path   string    true "Event ID"
// @Param       body       body   statusReq true "New status"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Event has not ended"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id}/status [PUT]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processStatusReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.UpdateStatus(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "UpdateStatus", err)
		return
	}

	response.OK(c, newStatusResp(output))
}

// Weekly godoc
// @Summary     Weekly productivity
// @Description Completed and missed counts per day of the current Monday-start week, with totals.
// @Tags        Productivity
// @Produce     json
// @Param       X-Owner-ID header string true "Owner id"
// @Success     200 {object} weeklyResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/productivity/weekly [GET]
func (h *handler) Weekly(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.Weekly(ctx, sc)
	if err != nil {
		h.respondError(c, "Weekly", err)
		return
	}

	response.OK(c, newWeeklyResp(output))
}
