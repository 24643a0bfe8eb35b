// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dreamlabs/season-progression/pkg/season"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	// catalogStoreKey is the hash holding all season definitions, one field
	// per season ID.
	catalogStoreKey = "season_progression:catalog"
)

// RedisCatalogStore implements SeasonCatalogStore on a Redis hash. Season
// documents are JSON-encoded per field; fetch order is normalized by start
// time so iteration order is deterministic across calls.
type RedisCatalogStore struct {
	client *redis.Client
	cfg    RedisCatalogStoreConfig
}

type RedisCatalogStoreConfig struct{}

// NewRedisCatalogStore creates a new Redis-backed season catalog store.
func NewRedisCatalogStore(client *redis.Client, cfg RedisCatalogStoreConfig) *RedisCatalogStore {
	return &RedisCatalogStore{
		client: client,
		cfg:    cfg,
	}
}

// FetchAllSeasons returns every season definition in the catalog, ordered by
// start time. Entries that fail to decode are skipped with a log rather than
// failing the whole fetch.
func (r *RedisCatalogStore) FetchAllSeasons(ctx context.Context) ([]season.Season, error) {
	entries, err := r.client.HGetAll(ctx, catalogStoreKey).Result()
	if err != nil {
		logrus.Errorf("failed to fetch season catalog: %v", err)
		return nil, fmt.Errorf("failed to fetch season catalog: %w", err)
	}

	seasons := make([]season.Season, 0, len(entries))
	for seasonID, raw := range entries {
		var s season.Season
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			logrus.Errorf("failed to unmarshal season %s, skipping: %v", seasonID, err)
			continue
		}
		seasons = append(seasons, s)
	}

	return season.SortByStartTime(seasons), nil
}

// UpsertSeason creates or replaces a season definition. Catalog administration
// is an operator concern; the engine itself never calls this.
func (r *RedisCatalogStore) UpsertSeason(ctx context.Context, s season.Season) error {
	if s.SeasonID == "" {
		return fmt.Errorf("season ID must not be empty")
	}
	if !s.StartTime.Before(s.EndTime) {
		return fmt.Errorf("season %s start time must be before end time", s.SeasonID)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal season %s: %w", s.SeasonID, err)
	}

	if err := r.client.HSet(ctx, catalogStoreKey, s.SeasonID, data).Err(); err != nil {
		logrus.Errorf("failed to upsert season %s: %v", s.SeasonID, err)
		return fmt.Errorf("failed to upsert season %s: %w", s.SeasonID, err)
	}

	logrus.Infof("upserted season %s (%s)", s.SeasonID, s.Name)
	return nil
}
