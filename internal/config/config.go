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
	Server  ServerConfig
	Site    SiteConfig
	GitHub  GitHubConfig
	Redis   RedisConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type SiteConfig struct {
	// BaseURL is the canonical public URL, used in the discovery documents.
	BaseURL string
	// IssueTrackerURL is where the submit flow opens prefilled issues.
	IssueTrackerURL string
}

type GitHubConfig struct {
	// Token is optional; unauthenticated requests work within rate limits.
	Token   string
	Timeout time.Duration
}

type RedisConfig struct {
	// Host empty means no Redis: the gateway falls back to an in-process cache.
	Host     string
	Port     int
	Password string
	DB       int
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnv("SERVER_ADDR", ":8080"),
			ReadTimeout:     time.Duration(getEnvInt("SERVER_READ_TIMEOUT_SECONDS", 10)) * time.Second,
			WriteTimeout:    time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT_SECONDS", 30)) * time.Second,
			ShutdownTimeout: time.Duration(getEnvInt("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Site: SiteConfig{
			BaseURL:         strings.TrimRight(getEnv("BASE_URL", "https://personas.sh"), "/"),
			IssueTrackerURL: strings.TrimRight(getEnv("ISSUE_TRACKER_URL", "https://github.com/persona-sh/registry/issues/new"), "/"),
		},
		GitHub: GitHubConfig{
			Token:   getEnv("GITHUB_TOKEN", ""),
			Timeout: time.Duration(getEnvInt("GITHUB_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("SERVER_ADDR is required")
	}
	if c.Site.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if c.Site.IssueTrackerURL == "" {
		return fmt.Errorf("ISSUE_TRACKER_URL is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
