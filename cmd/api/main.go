package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-task-scheduler/config"
	_ "smart-task-scheduler/docs" // Swagger docs
	tgDelivery "smart-task-scheduler/internal/event/delivery/telegram"
	"smart-task-scheduler/internal/event/repository/sqlite"
	"smart-task-scheduler/internal/event/usecase"
	"smart-task-scheduler/internal/httpserver"
	"smart-task-scheduler/internal/router"
	"smart-task-scheduler/internal/schedule"
	"smart-task-scheduler/pkg/assistant"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/gcalendar"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/telegram"
)

// @title       Smart Task Scheduler API
// @description Personal task scheduler driven by short text commands, with conflict suggestions, segmentation and weekly productivity.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := sqlite.CreateSchema(ctx, db); err != nil {
		logger.Error(ctx, "Failed to create schema: ", err)
		return
	}
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Event domain
	dateMathParser, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	var calendar usecase.CalendarMirror
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar mirroring enabled")
		}
	}

	eventUC := usecase.New(
		logger,
		sqlite.New(logger, db),
		dateMathParser,
		router.New(logger),
		calendar,
		usecase.Config{
			Policy: schedule.Policy{
				CascadeMissed:          cfg.Scheduler.CascadeMissed,
				RejectFutureCompletion: cfg.Scheduler.RejectFutureCompletion,
			},
			DefaultBreakMinutes: cfg.Scheduler.DefaultBreakMinutes,
			CalendarID:          cfg.GoogleCalendar.CalendarID,
			Clock:               time.Now,
		},
	)

	// 5. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, eventUC, telegramBot)
		registerWebhook(ctx, logger, telegramBot, cfg.Telegram.WebhookURL)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. Assistant (optional)
	var chat httpserver.Assistant
	if cfg.Assistant.APIKey != "" {
		chat = assistant.New(cfg.Assistant.APIKey, cfg.Assistant.Model, dateMathParser.Location())
		logger.Infof(ctx, "Assistant enabled with model %s", cfg.Assistant.Model)
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		DB:              db,
		EventUseCase:    eventUC,
		TelegramHandler: telegramHandler,
		Assistant:       chat,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
