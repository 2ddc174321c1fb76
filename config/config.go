package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Scheduler specifics
	Database  DatabaseConfig
	Scheduler SchedulerConfig

	// Optional integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
	Assistant      AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type DatabaseConfig struct {
	Path string
}

// SchedulerConfig controls the command engine.
type SchedulerConfig struct {
	// Timezone is the single operating zone used to read relative phrases and day buckets.
	Timezone string
	// CascadeMissed propagates a parent's Missed mark to its pending segments.
	CascadeMissed bool
	// RejectFutureCompletion refuses a Completed mark on an event that has not ended yet.
	RejectFutureCompletion bool
	// DefaultBreakMinutes is used by split commands that do not name a break.
	DefaultBreakMinutes int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type AssistantConfig struct {
	APIKey string
	Model  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Scheduler
	cfg.Database.Path = viper.GetString("database.path")
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.CascadeMissed = viper.GetBool("scheduler.cascade_missed")
	cfg.Scheduler.RejectFutureCompletion = viper.GetBool("scheduler.reject_future_completion")
	cfg.Scheduler.DefaultBreakMinutes = viper.GetInt("scheduler.default_break_minutes")

	// Integrations
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Assistant.APIKey = viper.GetString("assistant.api_key")
	cfg.Assistant.Model = viper.GetString("assistant.model")
	if key := viper.GetString("anthropic_api_key"); key != "" {
		cfg.Assistant.APIKey = key
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("database.path", "./scheduler.db")
	viper.SetDefault("scheduler.timezone", "Asia/Ho_Chi_Minh")
	viper.SetDefault("scheduler.cascade_missed", false)
	viper.SetDefault("scheduler.reject_future_completion", true)
	viper.SetDefault("scheduler.default_break_minutes", 0)

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("assistant.model", "claude-haiku-4-5-20251001")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.Scheduler.Timezone == "" {
		return fmt.Errorf("scheduler.timezone is required")
	}
	if cfg.Scheduler.DefaultBreakMinutes < 0 {
		return fmt.Errorf("scheduler.default_break_minutes must not be negative")
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	return nil
}
