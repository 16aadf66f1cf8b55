package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains runtime configuration values.
type Config struct {
	Lessons           []string
	ScheduleCron      string
	Concurrency       int
	FixturesPath      string
	Store             string
	StorePath         string
	DiscordWebhookURL string
	RequestTimeout    time.Duration
	LogLevel          string
	LogFormat         string
}

const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

const (
	defaultCron        = "" // run once
	defaultConcurrency = 4
	defaultStore       = StoreMemory
	defaultStorePath   = ".lld"
	defaultTimeout     = 30 * time.Second
	defaultLogLevel    = "info"
	defaultLogFormat   = "json"
)

// Load builds a Config from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Lessons:           splitList(os.Getenv("LLD_LESSONS")),
		ScheduleCron:      getenvDefault("LLD_SCHEDULE_CRON", defaultCron),
		Concurrency:       parseIntDefault("LLD_CONCURRENCY", defaultConcurrency),
		FixturesPath:      os.Getenv("LLD_FIXTURES"),
		Store:             strings.ToLower(getenvDefault("LLD_STORE", defaultStore)),
		StorePath:         getenvDefault("LLD_STORE_PATH", defaultStorePath),
		DiscordWebhookURL: os.Getenv("LLD_DISCORD_WEBHOOK_URL"),
		RequestTimeout:    parseDurationDefault("LLD_REQUEST_TIMEOUT", defaultTimeout),
		LogLevel:          getenvDefault("LLD_LOG_LEVEL", defaultLogLevel),
		LogFormat:         getenvDefault("LLD_LOG_FORMAT", defaultLogFormat),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes values that have safe fallbacks and rejects the rest.
// It is also called after command-line flags are applied.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("LLD_STORE must be one of memory, file, sqlite (got %q)", c.Store)
	}

	if c.Store != StoreMemory && c.StorePath == "" {
		return fmt.Errorf("LLD_STORE_PATH is required for the %s store", c.Store)
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultTimeout
	}

	if c.Concurrency <= 0 {
		c.Concurrency = defaultConcurrency
	}

	return nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
