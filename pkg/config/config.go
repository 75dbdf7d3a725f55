package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default Euronext endpoints observed on live.euronext.com
const (
	DefaultLiveQuoteURL = "https://live.euronext.com/en/ajax/getDetailedQuote"
	DefaultFullQuoteURL = "https://live.euronext.com/en/intraday_chart/getDetailedQuoteAjax"
	DefaultUserAgent    = "Mozilla/5.0"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Database (optional, snapshot store only)
	Database DatabaseConfig

	// Upstream
	Euronext EuronextConfig

	// Watcher
	Watch WatchConfig

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// EuronextConfig holds the quote page endpoints
type EuronextConfig struct {
	LiveQuoteURL string
	FullQuoteURL string
	UserAgent    string
	Timeout      time.Duration
}

// WatchConfig holds the periodic collection settings
type WatchConfig struct {
	WatchlistFile string
	Schedule      string // cron expression with seconds
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8089"),
		Env:  getEnv("ENV", "development"),

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		Euronext: EuronextConfig{
			LiveQuoteURL: getEnv("EURONEXT_LIVE_QUOTE_URL", DefaultLiveQuoteURL),
			FullQuoteURL: getEnv("EURONEXT_FULL_QUOTE_URL", DefaultFullQuoteURL),
			UserAgent:    getEnv("EURONEXT_USER_AGENT", DefaultUserAgent),
			Timeout:      getEnvAsDuration("EURONEXT_TIMEOUT", "15s"),
		},

		Watch: WatchConfig{
			WatchlistFile: getEnv("WATCHLIST_FILE", "watchlist.yaml"),
			Schedule:      getEnv("WATCH_SCHEDULE", "0 */5 9-17 * * MON-FRI"),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		LogFile:   getEnv("LOG_FILE", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// RequireDatabase fails when no snapshot store is configured
func (c *Config) RequireDatabase() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	switch c.LogFormat {
	case "json", "console", "pretty":
	default:
		return fmt.Errorf("LOG_FORMAT must be one of: json, console, pretty")
	}

	if c.Euronext.LiveQuoteURL == "" || c.Euronext.FullQuoteURL == "" {
		return fmt.Errorf("Euronext quote URLs must not be empty")
	}

	if c.Euronext.Timeout <= 0 {
		return fmt.Errorf("EURONEXT_TIMEOUT must be positive")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsDuration returns a zero duration for unparseable values so validate can reject them
func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0
	}

	return duration
}
