package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "danube_tours/internal/adapters/http_server"
	"danube_tours/internal/adapters/observability"
	redisad "danube_tours/internal/adapters/redis"
	"danube_tours/internal/adapters/webhook"
	"danube_tours/internal/app"
	"danube_tours/internal/i18n"
	"danube_tours/internal/shared"
	"danube_tours/internal/storage/tablestore"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	store, err := tablestore.New(cfg.StoreURL, cfg.StoreAPIKey, 10)
	if err != nil {
		log.Fatal().Err(err).Msg("table store client init failed")
	}

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	translations := i18n.NewStore(i18n.DefaultTranslations())
	sheet := webhook.NewSheet(cfg.SheetWebhookURL)

	q := app.NewQueryService(store, cache, cfg.CacheTTL)
	bookings := app.NewBookingService(q, store, sheet, translations, cfg.BookingTTL)
	admin := app.NewAdminService(store, cache)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:        q,
		Bookings: bookings,
		Admin:    admin,
		Tr:       translations,
		Sessions: server.NewSessionStore(),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
