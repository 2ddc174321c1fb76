package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/schedule"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/response"
)

var (
	errMissingID     = errors.New("id is required")
	errInvalidWindow = errors.New("to must be after from")
)

// errorStatus maps domain errors to HTTP status codes. ok is false for
// errors the domain does not know about.
func errorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, event.ErrMissingOwner):
		return http.StatusUnauthorized, true
	case errors.Is(err, event.ErrEventNotFound),
		errors.Is(err, event.ErrNoSegments):
		return http.StatusNotFound, true
	case errors.Is(err, event.ErrConflict),
		errors.Is(err, event.ErrAlreadySegmented):
		return http.StatusConflict, true
	case errors.Is(err, datemath.ErrStartInPast),
		errors.Is(err, schedule.ErrCompletionInFuture):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, event.ErrEmptyCommand),
		errors.Is(err, event.ErrEmptyTitle),
		errors.Is(err, event.ErrInvalidAttribute),
		errors.Is(err, event.ErrSplitSegment),
		errors.Is(err, schedule.ErrInvalidInterval),
		errors.Is(err, schedule.ErrNothingToSplit),
		errors.Is(err, schedule.ErrBelowSegmentFloor),
		errors.Is(err, schedule.ErrBreaksTooLarge),
		errors.Is(err, schedule.ErrNegativeBreak),
		errors.Is(err, schedule.ErrInvalidStatus):
		return http.StatusBadRequest, true
	}
	return 0, false
}

// respondError writes the response for a use case error. Unknown errors are
// logged and reported as a generic 500.
func (h *handler) respondError(c *gin.Context, op string, err error) {
	status, ok := errorStatus(err)
	if !ok {
		h.l.Errorf(c.Request.Context(), "event.delivery.http.%s: %v", op, err)
		response.InternalError(c, err)
		return
	}
	response.ErrorWithStatus(c, status, err, nil)
}
