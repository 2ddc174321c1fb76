package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Command(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	DeleteSegments(c *gin.Context)
	Split(c *gin.Context)
	UpdateStatus(c *gin.Context)
	Weekly(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc event.UseCase
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
