package config

import (
	"os"
	"strconv"
	"time"

	"gmonteiro/olxwatcher/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Source configuration
	SearchURL string
	UserAgent string

	// Filter configuration
	PriceCeiling float64
	RegionCode   string

	// Notification configuration
	WebhookURL string

	// Seen-store configuration
	SeenBackend  string
	CacheFile    string
	MemcacheAddr string

	// Optional Redis mirror stream
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamMaxLength int

	// HTTP configuration
	HTTPTimeout time.Duration

	// Environment
	Environment string
}

// Seen-store backends
const (
	SeenBackendFile     = "file"
	SeenBackendMemcache = "memcache"
)

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	httpTimeout, _ := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "20"))
	ceiling, _ := strconv.ParseFloat(getEnv("PRICE_CEILING", "3000"), 64)

	return Config{
		SearchURL:            getEnv("SEARCH_URL", "https://www.olx.com.br/animais-e-acessorios/gatos?q=angor%C3%A1&region=piracicaba"),
		UserAgent:            getEnv("USER_AGENT", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		PriceCeiling:         ceiling,
		RegionCode:           getEnv("REGION_CODE", "SP"),
		WebhookURL:           getEnv("WEBHOOK_URL", ""),
		SeenBackend:          getEnv("SEEN_BACKEND", SeenBackendFile),
		CacheFile:            getEnv("CACHE_FILE", "sent_ads.json"),
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "olxwatcher:listings"),
		RedisStreamMaxLength: streamMaxLen,
		HTTPTimeout:          time.Duration(httpTimeout) * time.Second,
		Environment:          getEnv("OLXWATCHER_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable for a run
func (c *Config) Validate() error {
	if c.SearchURL == "" {
		return errors.NewConfiguration("SEARCH_URL must not be empty", nil)
	}
	if c.WebhookURL == "" {
		return errors.NewConfiguration("WEBHOOK_URL must be set", nil)
	}
	if c.PriceCeiling < 0 {
		return errors.NewConfiguration("PRICE_CEILING must not be negative", nil)
	}
	if len(c.RegionCode) != 2 {
		return errors.NewConfiguration("REGION_CODE must be a two-letter state code", nil)
	}
	switch c.SeenBackend {
	case SeenBackendFile, SeenBackendMemcache:
	default:
		return errors.NewConfiguration("SEEN_BACKEND must be 'file' or 'memcache'", nil)
	}
	if c.SeenBackend == SeenBackendFile && c.CacheFile == "" {
		return errors.NewConfiguration("CACHE_FILE must not be empty", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
