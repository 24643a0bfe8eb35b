// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dreamlabs/season-progression/pkg/season"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	// progressStoreKeyPrefix is the prefix for all user progress hashes.
	progressStoreKeyPrefix = "season_progression:user_progress:"

	progressFieldLevel       = "level"
	progressFieldPoints      = "pointsInSeason"
	progressFieldLastUpdated = "lastUpdated"
)

// RedisProgressStore implements UserProgressStore on Redis. Each (user, season)
// pair maps to one hash, so Put writes merge at field granularity and unrelated
// fields on the stored document survive. Progress records carry no TTL: the
// engine never deletes them, archival is an external concern.
type RedisProgressStore struct {
	client *redis.Client
	cfg    RedisProgressStoreConfig
}

type RedisProgressStoreConfig struct{}

// NewRedisProgressStore creates a new Redis-backed user progress store.
func NewRedisProgressStore(client *redis.Client, cfg RedisProgressStoreConfig) *RedisProgressStore {
	return &RedisProgressStore{
		client: client,
		cfg:    cfg,
	}
}

// makeProgressKey creates the hash key for a (user, season) pair.
func makeProgressKey(userID, seasonID string) string {
	return fmt.Sprintf("%s%s:%s", progressStoreKeyPrefix, userID, seasonID)
}

// Get retrieves the progress record for a (user, season) pair. Returns
// (nil, nil) when no record exists; absence is never reported as a zero-value
// record.
func (r *RedisProgressStore) Get(ctx context.Context, userID, seasonID string) (*season.UserSeasonProgress, error) {
	key := makeProgressKey(userID, seasonID)

	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		logrus.Errorf("failed to get progress for user %s season %s: %v", userID, seasonID, err)
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	progress := &season.UserSeasonProgress{
		UserID:   userID,
		SeasonID: seasonID,
	}
	if v, ok := fields[progressFieldLevel]; ok {
		level, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("corrupt level field for user %s season %s: %w", userID, seasonID, err)
		}
		progress.Level = level
	}
	if v, ok := fields[progressFieldPoints]; ok {
		points, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt points field for user %s season %s: %w", userID, seasonID, err)
		}
		progress.PointsInSeason = points
	}
	if v, ok := fields[progressFieldLastUpdated]; ok {
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			progress.LastUpdated = ts
		}
	}

	return progress, nil
}

// Put writes a progress record with merge semantics (HSET only touches the
// fields it carries).
func (r *RedisProgressStore) Put(ctx context.Context, progress *season.UserSeasonProgress) error {
	key := makeProgressKey(progress.UserID, progress.SeasonID)

	if err := r.client.HSet(ctx, key, progressFields(progress)).Err(); err != nil {
		logrus.Errorf("failed to put progress for user %s season %s: %v",
			progress.UserID, progress.SeasonID, err)
		return fmt.Errorf("failed to put progress: %w", err)
	}

	logrus.Debugf("saved progress for user %s season %s: level=%d points=%d",
		progress.UserID, progress.SeasonID, progress.Level, progress.PointsInSeason)
	return nil
}

// Create writes a fresh progress record, dropping any fields a previous
// document may have carried. Used when a season transition starts the user
// over in the successor season.
func (r *RedisProgressStore) Create(ctx context.Context, progress *season.UserSeasonProgress) error {
	key := makeProgressKey(progress.UserID, progress.SeasonID)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, progressFields(progress))
	if _, err := pipe.Exec(ctx); err != nil {
		logrus.Errorf("failed to create progress for user %s season %s: %v",
			progress.UserID, progress.SeasonID, err)
		return fmt.Errorf("failed to create progress: %w", err)
	}

	logrus.Infof("created progress for user %s season %s at level %d",
		progress.UserID, progress.SeasonID, progress.Level)
	return nil
}

func progressFields(progress *season.UserSeasonProgress) map[string]interface{} {
	return map[string]interface{}{
		progressFieldLevel:       progress.Level,
		progressFieldPoints:      progress.PointsInSeason,
		progressFieldLastUpdated: progress.LastUpdated.Format(time.RFC3339Nano),
	}
}
