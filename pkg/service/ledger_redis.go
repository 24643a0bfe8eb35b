// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	// lastActiveSeasonKeyPrefix stores each user's last known season ID.
	lastActiveSeasonKeyPrefix = "season_progression:last_active_season:"
	// transitionKeyPrefix stores processed (from, to) transition markers.
	transitionKeyPrefix = "season_progression:transition:"
)

// RedisTransitionLedger implements UserTransitionLedger on Redis. Processed
// transitions are claimed with SETNX, so concurrent reset checks for the same
// user resolve to exactly one winner instead of relying on an advisory
// read-then-write check. Ledger entries carry no TTL.
type RedisTransitionLedger struct {
	client *redis.Client
	cfg    RedisTransitionLedgerConfig
}

type RedisTransitionLedgerConfig struct{}

// NewRedisTransitionLedger creates a new Redis-backed transition ledger.
func NewRedisTransitionLedger(client *redis.Client, cfg RedisTransitionLedgerConfig) *RedisTransitionLedger {
	return &RedisTransitionLedger{
		client: client,
		cfg:    cfg,
	}
}

func makeLastActiveSeasonKey(userID string) string {
	return lastActiveSeasonKeyPrefix + userID
}

func makeTransitionKey(userID, fromSeasonID, toSeasonID string) string {
	return fmt.Sprintf("%s%s:%s_to_%s", transitionKeyPrefix, userID, fromSeasonID, toSeasonID)
}

// GetLastActiveSeason returns the user's last known season ID, or "" if the
// user has never been observed.
func (r *RedisTransitionLedger) GetLastActiveSeason(ctx context.Context, userID string) (string, error) {
	seasonID, err := r.client.Get(ctx, makeLastActiveSeasonKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		logrus.Errorf("failed to get last active season for user %s: %v", userID, err)
		return "", fmt.Errorf("failed to get last active season: %w", err)
	}
	return seasonID, nil
}

// SetLastActiveSeason records the season the user was most recently active in.
func (r *RedisTransitionLedger) SetLastActiveSeason(ctx context.Context, userID, seasonID string) error {
	if err := r.client.Set(ctx, makeLastActiveSeasonKey(userID), seasonID, 0).Err(); err != nil {
		logrus.Errorf("failed to set last active season for user %s: %v", userID, err)
		return fmt.Errorf("failed to set last active season: %w", err)
	}
	logrus.Debugf("set last active season for user %s to %s", userID, seasonID)
	return nil
}

// IsTransitionProcessed reports whether the (from, to) reset has already been
// applied for the user.
func (r *RedisTransitionLedger) IsTransitionProcessed(ctx context.Context, userID, fromSeasonID, toSeasonID string) (bool, error) {
	n, err := r.client.Exists(ctx, makeTransitionKey(userID, fromSeasonID, toSeasonID)).Result()
	if err != nil {
		logrus.Errorf("failed to check transition %s_to_%s for user %s: %v",
			fromSeasonID, toSeasonID, userID, err)
		return false, fmt.Errorf("failed to check transition: %w", err)
	}
	return n > 0, nil
}

// MarkTransitionProcessed claims the (from, to) pair via SETNX and reports
// whether this caller won the claim.
func (r *RedisTransitionLedger) MarkTransitionProcessed(ctx context.Context, userID, fromSeasonID, toSeasonID string) (bool, error) {
	claimed, err := r.client.SetNX(ctx, makeTransitionKey(userID, fromSeasonID, toSeasonID), "1", 0).Result()
	if err != nil {
		logrus.Errorf("failed to mark transition %s_to_%s for user %s: %v",
			fromSeasonID, toSeasonID, userID, err)
		return false, fmt.Errorf("failed to mark transition: %w", err)
	}
	if claimed {
		logrus.Infof("marked transition %s_to_%s processed for user %s", fromSeasonID, toSeasonID, userID)
	}
	return claimed, nil
}
