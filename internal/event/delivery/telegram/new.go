package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/event"
	pkgLog "smart-task-scheduler/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers replies to a Telegram chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc event.UseCase, bot Sender) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
