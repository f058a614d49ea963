package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"danube_tours/internal/adapters/observability"
	"danube_tours/internal/shared"
	"danube_tours/internal/storage/tablestore"
)

// One-shot seeding of the remote store: the initial tour catalogue in
// parallel, then the settings row. Tour writes are protected, so the
// seeder signs in with the admin credentials first.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("store", cfg.StoreURL).
		Int("workers", cfg.SeedWorkers).
		Int("tours", len(shared.SeedTours)).
		Msg("seeder starting")

	store, err := tablestore.New(cfg.StoreURL, cfg.StoreAPIKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("table store client init failed")
	}

	sess, err := store.SignIn(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("admin sign-in failed")
	}
	defer func() {
		if err := store.SignOut(ctx, sess); err != nil {
			log.Warn().Err(err).Msg("sign-out failed")
		}
	}()

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, tour := range shared.SeedTours {
		tour := tour

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			created, err := store.AddTour(ctx, sess, tour)
			if err != nil {
				log.Warn().Str("title", tour.Title.Resolve("en")).Err(err).Msg("seed tour failed")
				return
			}
			log.Info().Str("id", created.ID).Str("title", created.Title.Resolve("en")).Msg("seed tour ok")
		}()
	}
	wg.Wait()

	if _, err := store.UpdateSettings(ctx, sess, shared.SeedSettings); err != nil {
		log.Warn().Err(err).Msg("seed settings failed")
	} else {
		log.Info().Msg("seed settings ok")
	}

	log.Info().Msg("seeding completed")
}
