package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires the owner header and is rate limited per owner.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/commands", mw.Auth(), mw.RateLimit(), h.Command)

	events := rg.Group("/events", mw.Auth(), mw.RateLimit())
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/:id", h.Detail)
		events.PATCH("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
		events.DELETE("/:id/segments", h.DeleteSegments)
		events.POST("/:id/split", h.Split)
		events.PUT("/:id/status", h.UpdateStatus)
	}

	rg.GET("/productivity/weekly", mw.Auth(), mw.RateLimit(), h.Weekly)
}
