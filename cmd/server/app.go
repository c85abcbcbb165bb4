package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/aladhan"
	"github.com/Nixie-Tech-LLC/takmir/internal/config"
	"github.com/Nixie-Tech-LLC/takmir/internal/content"
	"github.com/Nixie-Tech-LLC/takmir/internal/db"
	"github.com/Nixie-Tech-LLC/takmir/internal/geo"
	"github.com/Nixie-Tech-LLC/takmir/internal/redis"
	"github.com/Nixie-Tech-LLC/takmir/internal/timings"
)

// app holds the services shared by the commands.
type app struct {
	cfg     *config.Config
	store   db.Store
	content *content.Service
	timings *timings.Service
}

// connectDatabase opens the global pool and optionally migrates it.
func connectDatabase(cfg *config.Config, migrate bool) (db.Store, error) {
	if err := db.Init(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("db init: %w", err)
	}
	if migrate {
		if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
			return nil, fmt.Errorf("db migrate: %w", err)
		}
	}
	return db.NewStore(db.DB), nil
}

// newApp builds the services on top of store. store may be nil for
// commands that only fetch by city or coordinates.
func newApp(cfg *config.Config, store db.Store) (*app, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	var cache geo.Cache
	if cfg.RedisAddress != "" {
		cache = redis.NewPositionCache(redis.InitRedis(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword))
		log.Info().Str("address", cfg.RedisAddress).Msg("Caching resolved positions in Redis")
	}
	resolver := geo.NewResolver(geo.NewNominatim(cfg.NominatimBaseURL), cache)
	client := aladhan.NewClient(cfg.AladhanBaseURL)

	a := &app{cfg: cfg, store: store}
	var board timings.BoardStore
	if store != nil {
		board = store
		a.content = content.NewService(store, loc)
	}
	a.timings = timings.NewService(client, resolver, board, loc)
	return a, nil
}

// positionSource is the IP lookup used when a caller sends no coordinates.
func (a *app) positionSource(clientIP string) geo.PositionSource {
	return geo.NewIPLocator(a.cfg.IPAPIBaseURL, clientIP)
}
