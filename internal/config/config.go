// Package config loads startup configuration from the environment, with an
// optional .env file. Everything here is read once at startup and immutable
// afterwards, including the feature flags.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	DBPath          string
	RedisAddr       string // empty disables Redis and keeps sessions in memory
	SessionTTL      time.Duration
	AuthDelay       time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	Flags           Flags
}

// Flags gates optional storefront features. Disabled features disappear from
// the HTTP surface.
type Flags struct {
	Wishlist        bool
	Coupons         bool
	SaveForLater    bool
	Recommendations bool
	OrderHistory    bool
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "./shopverse.db"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		SessionTTL:      getDuration("SESSION_TTL", 24*time.Hour),
		AuthDelay:       getDuration("AUTH_DELAY", 800*time.Millisecond),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Flags: Flags{
			Wishlist:        getBool("FEATURE_WISHLIST", true),
			Coupons:         getBool("FEATURE_COUPONS", true),
			SaveForLater:    getBool("FEATURE_SAVE_FOR_LATER", true),
			Recommendations: getBool("FEATURE_RECOMMENDATIONS", true),
			OrderHistory:    getBool("FEATURE_ORDER_HISTORY", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
