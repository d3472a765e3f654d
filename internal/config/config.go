package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Site configuration
	SiteName string
	SiteURL  string
	Debug    bool
	MediaDir string

	// Moderation notifier configuration
	TelegramBotToken string
	ModerationChatID string
	NotifyTimeout    time.Duration
	NotifierEnabled  bool

	// FallbackAuthorID is the account credited as author when an
	// unauthenticated visitor proposes an article.
	FallbackAuthorID string

	// Session configuration
	SessionLifetime time.Duration

	// Password reset configuration
	ResetTokenTTL time.Duration

	// Listing configuration
	PageSize int

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "news_blog"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		SiteName:            getEnv("SITE_NAME", "News Blog"),
		SiteURL:             getEnv("SITE_URL", "http://localhost:8080"),
		Debug:               getEnvBool("DEBUG", false),
		MediaDir:            getEnv("MEDIA_DIR", "./media"),
		TelegramBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		ModerationChatID:    getEnv("MODERATION_CHAT_ID", ""),
		NotifyTimeout:       getEnvDuration("NOTIFY_TIMEOUT", 10*time.Second),
		FallbackAuthorID:    getEnv("FALLBACK_AUTHOR_ID", ""),
		SessionLifetime:     getEnvDuration("SESSION_LIFETIME", 24*time.Hour),
		ResetTokenTTL:       getEnvDuration("RESET_TOKEN_TTL", time.Hour),
		PageSize:            getEnvInt("PAGE_SIZE", 10),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}
	cfg.NotifierEnabled = cfg.TelegramBotToken != "" && cfg.ModerationChatID != ""

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.FallbackAuthorID == "" {
		return fmt.Errorf("FALLBACK_AUTHOR_ID is required")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be at least 1")
	}
	if c.NotifyTimeout <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT must be positive")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
