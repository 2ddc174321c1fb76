package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/middleware"
	"smart-task-scheduler/internal/model"
)

// scope returns the owner scope set by the Auth middleware.
func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok || sc.UserID == "" {
		return model.Scope{}, event.ErrMissingOwner
	}
	return sc, nil
}

func (h *handler) processCommandReq(c *gin.Context) (commandReq, model.Scope, error) {
	var req commandReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, model.Scope, error) {
	var req createReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

func (h *handler) processListReq(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processIDReq reads the :id path parameter.
func (h *handler) processIDReq(c *gin.Context) (string, model.Scope, error) {
	sc, err := h.scope(c)
	if err != nil {
		return "", sc, err
	}
	id := c.Param("id")
	if id == "" {
		return "", sc, errMissingID
	}
	return id, sc, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, model.Scope, error) {
	var req updateReq
	id, sc, err := h.processIDReq(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	req.ID = id
	return req, sc, req.validate()
}

func (h *handler) processSplitReq(c *gin.Context) (splitReq, model.Scope, error) {
	var req splitReq
	id, sc, err := h.processIDReq(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	req.ID = id
	return req, sc, req.validate()
}

func (h *handler) processStatusReq(c *gin.Context) (statusReq, model.Scope, error) {
	var req statusReq
	id, sc, err := h.processIDReq(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	req.ID = id
	return req, sc, req.validate()
}
