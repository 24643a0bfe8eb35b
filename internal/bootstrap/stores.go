// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"context"
	"fmt"

	"github.com/dreamlabs/season-progression/internal/config"
	"github.com/dreamlabs/season-progression/pkg/service"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Stores bundles the engine's persistence collaborators.
type Stores struct {
	Catalog  service.SeasonCatalogStore
	Progress service.UserProgressStore
	Ledger   service.UserTransitionLedger

	// RedisCatalog is non-nil when the catalog is Redis-backed; the admin
	// upsert surface needs the concrete store.
	RedisCatalog *service.RedisCatalogStore
}

// InitStores builds the catalog, progress, and ledger stores per the
// configured catalog source, optionally seeding an empty Redis catalog from
// the YAML catalog file.
func InitStores(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (*Stores, error) {
	stores := &Stores{
		Progress: service.NewRedisProgressStore(redisClient, service.RedisProgressStoreConfig{}),
		Ledger:   service.NewRedisTransitionLedger(redisClient, service.RedisTransitionLedgerConfig{}),
	}

	switch cfg.CatalogSource {
	case "file":
		catalogFile, err := service.LoadCatalogFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load season catalog from %s: %w", cfg.CatalogPath, err)
		}
		stores.Catalog = service.NewFileCatalogStore(catalogFile)
		logrus.Infof("loaded season catalog from %s (%d seasons)", cfg.CatalogPath, len(catalogFile.Seasons))

	case "redis":
		redisCatalog := service.NewRedisCatalogStore(redisClient, service.RedisCatalogStoreConfig{})
		stores.Catalog = redisCatalog
		stores.RedisCatalog = redisCatalog

		if cfg.CatalogSeed {
			if err := seedCatalog(ctx, cfg.CatalogPath, redisCatalog); err != nil {
				return nil, err
			}
		}

	default:
		return nil, fmt.Errorf("unknown catalog source: %q", cfg.CatalogSource)
	}

	return stores, nil
}

// seedCatalog loads the YAML catalog file into Redis when the Redis catalog is
// still empty. Seeding never overwrites operator-managed entries.
func seedCatalog(ctx context.Context, path string, catalog *service.RedisCatalogStore) error {
	existing, err := catalog.FetchAllSeasons(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog before seeding: %w", err)
	}
	if len(existing) > 0 {
		logrus.Infof("season catalog already has %d seasons, skipping seed", len(existing))
		return nil
	}

	catalogFile, err := service.LoadCatalogFile(path)
	if err != nil {
		return fmt.Errorf("failed to load seed catalog from %s: %w", path, err)
	}

	for _, s := range catalogFile.Seasons {
		if err := catalog.UpsertSeason(ctx, s); err != nil {
			return fmt.Errorf("failed to seed season %s: %w", s.SeasonID, err)
		}
	}

	logrus.Infof("seeded season catalog with %d seasons from %s", len(catalogFile.Seasons), path)
	return nil
}
