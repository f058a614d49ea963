package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	StoreURL    string
	StoreAPIKey string

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	SheetWebhookURL string
	BookingTTL      time.Duration

	// Seeder credentials; tour writes are a protected operation.
	AdminEmail    string
	AdminPassword string
	SeedWorkers   int
}

func Load() Config {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ":9100"),
		StoreURL:        env("STORE_URL", "http://localhost:54321"),
		StoreAPIKey:     env("STORE_API_KEY", ""),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SheetWebhookURL: env("SHEET_WEBHOOK_URL", ""),
		BookingTTL:      time.Duration(atoi("BOOKING_SESSION_TTL_SECONDS", 3600)) * time.Second,
		AdminEmail:      env("STORE_ADMIN_EMAIL", ""),
		AdminPassword:   env("STORE_ADMIN_PASSWORD", ""),
		SeedWorkers:     atoi("SEED_WORKERS", 4),
	}
	if c.StoreAPIKey == "" {
		log.Warn().Msg("STORE_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
