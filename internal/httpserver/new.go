package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/event"
	tgDelivery "smart-task-scheduler/internal/event/delivery/telegram"
	"smart-task-scheduler/pkg/log"
)

// Assistant answers free-form chat messages.
type Assistant interface {
	Reply(ctx context.Context, message string) (string, error)
}

// Pinger reports whether the storage behind the server is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   int
	db          Pinger

	// Event domain
	eventUC         event.UseCase
	telegramHandler tgDelivery.Handler

	// Optional chat pass-through
	assistant Assistant
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	// RateLimitPerMin caps API calls per owner; 0 disables the limit.
	RateLimitPerMin int
	DB              Pinger

	// Event domain
	EventUseCase    event.UseCase
	TelegramHandler tgDelivery.Handler

	// Optional chat pass-through
	Assistant Assistant
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimit:       cfg.RateLimitPerMin,
		db:              cfg.DB,
		eventUC:         cfg.EventUseCase,
		telegramHandler: cfg.TelegramHandler,
		assistant:       cfg.Assistant,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventUC == nil {
		return errors.New("event use case is required")
	}
	return nil
}
