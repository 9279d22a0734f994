package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	API         APIConfig
	Token       TokenConfig
	Stub        StubConfig
}

// APIConfig points the gateway at the Scrapzee REST surface.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables the limiter
	RateBurst int
}

// TokenConfig locates the durable token slot.
type TokenConfig struct {
	File string
}

// StubConfig drives the local development backend.
type StubConfig struct {
	Addr      string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads .env if present, then environment variables with defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("SCRAPZEE_ENV", "development"),
		API: APIConfig{
			BaseURL:   getEnv("SCRAPZEE_API_BASE", "http://localhost:8080/api"),
			Timeout:   getDuration("SCRAPZEE_HTTP_TIMEOUT", 15*time.Second),
			RateLimit: getFloat("SCRAPZEE_RATE_LIMIT", 0),
			RateBurst: getInt("SCRAPZEE_RATE_BURST", 1),
		},
		Token: TokenConfig{
			File: getEnv("SCRAPZEE_TOKEN_FILE", defaultTokenFile()),
		},
		Stub: StubConfig{
			Addr:      getEnv("SCRAPZEE_STUB_ADDR", ":8080"),
			JWTSecret: getEnv("SCRAPZEE_STUB_SECRET", "scrapzee-dev-secret"),
			TokenTTL:  getDuration("SCRAPZEE_STUB_TOKEN_TTL", 7*24*time.Hour),
		},
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scrapzee/token"
	}
	return filepath.Join(home, ".scrapzee", "token")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
