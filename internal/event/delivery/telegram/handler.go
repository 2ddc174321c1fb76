package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/router"
	pkgLog "smart-task-scheduler/pkg/log"
	pkgResponse "smart-task-scheduler/pkg/response"
	pkgTelegram "smart-task-scheduler/pkg/telegram"
)

const (
	processTimeout = 30 * time.Second

	welcomeMessage = "Hi! I keep your schedule.\n\nSend me commands like:\n" +
		"- add task study react november 12 2-4pm urgent\n" +
		"- split study react into 3 with 10m breaks\n" +
		"- mark segment 1 of study react done\n" +
		"- what's on my schedule tomorrow\n\nSend /help for the full list."
	failureMessage = "Something went wrong while handling your request. Please try again."
)

type handler struct {
	l   pkgLog.Logger
	uc  event.UseCase
	bot Sender
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and handles the message in the background;
// Telegram retries updates that are not answered within a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.ErrorWithStatus(c, http.StatusBadRequest, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, failureMessage)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID, welcomeMessage)
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, strings.Replace(router.HelpMessage, "I didn't understand that. ", "", 1))
	}

	output, err := h.uc.HandleCommand(ctx, scopeOf(msg), event.CommandInput{Text: text})
	if err != nil {
		return fmt.Errorf("HandleCommand: %w", err)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, output.Message)
}

// scopeOf builds the owner scope from the sender, or the chat for anonymous posts.
func scopeOf(msg *pkgTelegram.Message) model.Scope {
	if msg.From == nil {
		return model.Scope{UserID: fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)}
	}
	return model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}
}
