// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package engine

import (
	"context"
	"fmt"

	"github.com/dreamlabs/season-progression/pkg/metrics"
	"github.com/dreamlabs/season-progression/pkg/season"

	"github.com/sirupsen/logrus"
)

// Skip reasons reported by RecordActivity when the operation is a no-op.
const (
	SkipNonPositivePoints = "non_positive_points"
	SkipNoUser            = "user_not_resolved"
	SkipNoActiveSeason    = "no_active_season"
)

// RecordResult reports what an activity recording did. A skipped recording is
// not an error; the reason says why nothing was written.
type RecordResult struct {
	Applied    bool                       `json:"applied"`
	SkipReason string                     `json:"skipReason,omitempty"`
	Progress   *season.UserSeasonProgress `json:"progress,omitempty"`
}

func skipped(reason string) *RecordResult {
	metrics.ActivityRecordingsTotal.WithLabelValues("skipped").Inc()
	return &RecordResult{SkipReason: reason}
}

// RecordActivity applies a point delta to the user's progress in the currently
// active season, creating the record lazily and recomputing the level from the
// new cumulative total. Non-positive deltas, an unresolved user, and the
// absence of an active season are reported no-ops. Persistence failures are
// returned; nothing is considered committed until the store write succeeds,
// and retrying is the caller's concern.
func (s *Service) RecordActivity(ctx context.Context, userID string, pointsEarned int64) (*RecordResult, error) {
	if pointsEarned <= 0 {
		return skipped(SkipNonPositivePoints), nil
	}
	if userID == "" {
		logrus.Warnf("cannot record activity, user not resolved")
		return skipped(SkipNoUser), nil
	}

	activeSeason := s.ActiveSeason(ctx)
	if activeSeason == nil {
		logrus.Warnf("cannot record activity for user %s, no active season", userID)
		return skipped(SkipNoActiveSeason), nil
	}

	existing, err := s.progress.Get(ctx, userID, activeSeason.SeasonID)
	if err != nil {
		// Degrade to the zero-state default rather than failing the recording.
		logrus.Warnf("failed to read progress for user %s season %s, starting from zero-state: %v",
			userID, activeSeason.SeasonID, err)
	}
	if existing == nil {
		logrus.Debugf("no existing progress for user %s in season %s, creating new",
			userID, activeSeason.SeasonID)
		existing = season.NewProgress(userID, activeSeason.SeasonID)
	}

	updated := season.ApplyPoints(*existing, pointsEarned)
	updated.LastUpdated = s.clock.Now()

	if err := s.progress.Put(ctx, &updated); err != nil {
		metrics.ActivityRecordingsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("failed to save progress for user %s in season %s: %w",
			userID, activeSeason.SeasonID, err)
	}

	if err := s.ledger.SetLastActiveSeason(ctx, userID, activeSeason.SeasonID); err != nil {
		metrics.ActivityRecordingsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("failed to advance last active season for user %s: %w", userID, err)
	}

	metrics.ActivityRecordingsTotal.WithLabelValues("applied").Inc()
	metrics.PointsRecordedTotal.Add(float64(pointsEarned))
	logrus.Infof("recorded %d points for user %s in season %s: points=%d level=%d",
		pointsEarned, userID, activeSeason.SeasonID, updated.PointsInSeason, updated.Level)

	return &RecordResult{Applied: true, Progress: &updated}, nil
}
