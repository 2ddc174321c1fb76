package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/pkg/response"
)

var errAssistantDisabled = errors.New("assistant is not configured")

type chatReq struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type chatResp struct {
	Reply string `json:"reply"`
}

// chat relays a free-form question to the assistant.
// @Summary     Ask the assistant
// @Description Free-form help about using the scheduler. Does not change any event. 503 when no assistant is configured.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string  true "Owner id"
// @Param       body       body   chatReq true "Question"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Assistant failed"
// @Failure     503 {object} response.Resp "Assistant not configured"
// @Router      /api/v1/chat [POST]
func (srv HTTPServer) chat(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.assistant == nil {
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, errAssistantDisabled, nil)
		return
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err, nil)
		return
	}

	reply, err := srv.assistant.Reply(ctx, req.Message)
	if err != nil {
		srv.l.Errorf(ctx, "httpserver.chat: %v", err)
		response.ErrorWithStatus(c, http.StatusBadGateway, errors.New("assistant failed to answer"), nil)
		return
	}

	response.OK(c, chatResp{Reply: reply})
}
