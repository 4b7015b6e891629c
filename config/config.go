package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	Port int

	// RedisAddr enables the Redis result cache when non-empty; otherwise
	// an in-memory cache is used.
	RedisAddr string
	CacheTTL  time.Duration

	RateLimitCapacity int
	RateLimitWindow   time.Duration

	// RiskFreeRate is the annual risk-free rate (decimal) used by the
	// goal planner's Sharpe ratio.
	RiskFreeRate float64

	// SimWorkers is the number of Monte Carlo worker goroutines.
	// Zero means one per CPU.
	SimWorkers int

	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogFormat       string
}

// Load reads configuration from environment variables, falling back to
// defaults. A .env file is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnvInt("PORT", 8080),
		RedisAddr:         getEnvString("REDIS_ADDR", ""),
		CacheTTL:          time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		RateLimitCapacity: getEnvInt("RATE_LIMIT_CAPACITY", 30),
		RateLimitWindow:   time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		RiskFreeRate:      getEnvFloat("RISK_FREE_RATE", 0.02),
		SimWorkers:        getEnvInt("SIM_WORKERS", 0),
		OTELEndpoint:      getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:   getEnvString("OTEL_SERVICE_NAME", "investment-engine"),
		LogLevel:          getEnvString("LOG_LEVEL", "info"),
		LogFormat:         getEnvString("LOG_FORMAT", "text"),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
