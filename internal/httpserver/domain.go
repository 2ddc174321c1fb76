package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "smart-task-scheduler/internal/event/delivery/http"
	"smart-task-scheduler/internal/middleware"
)

// setupEventDomain registers the event routes under /api/v1.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := eventHTTP.New(srv.l, srv.eventUC)
	eventHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
