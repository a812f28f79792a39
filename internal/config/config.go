package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	DB        DBConfig
	Scheduler SchedulerConfig
	AI        AIConfig
	Email     EmailConfig
	Upload    UploadConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type SchedulerConfig struct {
	Enabled      bool
	PollInterval time.Duration
	RunAt        string // HH:MM local time, once per day
}

type AIConfig struct {
	GeminiAPIKey        string
	GeminiModel         string
	GeminiBaseURL       string
	PollinationsBaseURL string
	EnhanceTimeout      time.Duration
}

type EmailConfig struct {
	ResendAPIKey      string
	From              string
	NotificationEmail string
	// TestOverride redirects every outbound email to a single address and
	// logs the intended recipient. Empty means deliver normally.
	TestOverride string
}

type UploadConfig struct {
	MaxImageBytes int
}

func Load() (Config, error) {
	// Load .env file if it exists (ignore error for production where env vars are set directly)
	_ = godotenv.Load()

	cfg := Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "cardstudio"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "9070"),
		},
		DB: DBConfig{
			URL:             strings.TrimSpace(os.Getenv("DATABASE_URL")),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			AutoMigrate:     getBool("DB_AUTO_MIGRATE", true),
		},
		Scheduler: SchedulerConfig{
			Enabled:      getBool("SCHEDULER_ENABLED", true),
			PollInterval: getDuration("SCHEDULER_POLL_INTERVAL", time.Minute),
			RunAt:        getEnv("SCHEDULER_RUN_AT", "08:00"),
		},
		AI: AIConfig{
			GeminiAPIKey:        strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			GeminiModel:         getEnv("GEMINI_MODEL", "gemini-pro"),
			GeminiBaseURL:       getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			PollinationsBaseURL: getEnv("POLLINATIONS_BASE_URL", "https://image.pollinations.ai"),
			EnhanceTimeout:      getDuration("AI_ENHANCE_TIMEOUT", 30*time.Second),
		},
		Email: EmailConfig{
			ResendAPIKey:      strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
			From:              getEnv("EMAIL_FROM", "CardStudio <onboarding@resend.dev>"),
			NotificationEmail: strings.TrimSpace(os.Getenv("NOTIFICATION_EMAIL")),
			TestOverride:      strings.TrimSpace(os.Getenv("EMAIL_TEST_OVERRIDE")),
		},
		Upload: UploadConfig{
			MaxImageBytes: getInt("MAX_UPLOAD_BYTES", 1024*1024),
		},
	}

	if cfg.DB.URL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	if _, err := time.Parse("15:04", cfg.Scheduler.RunAt); err != nil {
		return Config{}, fmt.Errorf("SCHEDULER_RUN_AT must use HH:MM: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}

func getInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getBool(key string, fallback bool) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}
