// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package season

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// CalculateLevel derives a user's level from their cumulative seasonal points.
// Every PointsPerLevel points is one level; level 0 exists, so 0-99 points is
// level 0, 100-199 is level 1, and so on. The result depends only on the total,
// never on the order points were earned in.
func CalculateLevel(points int64) int {
	if points < 0 {
		return 0
	}
	return int(points / PointsPerLevel)
}

// FindActiveSeason returns the first season in catalog order that is open at
// the given instant, or nil if none is. Catalogs are expected to contain no
// overlapping windows; if they do anyway, the first match wins deterministically
// and no reconciliation is attempted.
func FindActiveSeason(seasons []Season, now time.Time) *Season {
	for i := range seasons {
		if seasons[i].IsActiveAt(now) {
			return &seasons[i]
		}
	}
	return nil
}

// FindSeasonByID returns the catalog entry with the given ID, or nil.
func FindSeasonByID(seasons []Season, seasonID string) *Season {
	for i := range seasons {
		if seasons[i].SeasonID == seasonID {
			return &seasons[i]
		}
	}
	return nil
}

// FindSuccessor returns the season that follows the ended one: the entry with
// the earliest start time strictly after the ended season's end time. Returns
// nil if no such season has been published yet.
func FindSuccessor(seasons []Season, ended Season) *Season {
	var successor *Season
	for i := range seasons {
		if !seasons[i].StartTime.After(ended.EndTime) {
			continue
		}
		if successor == nil || seasons[i].StartTime.Before(successor.StartTime) {
			successor = &seasons[i]
		}
	}
	return successor
}

// SortByStartTime returns a copy of the catalog ordered by start time, with
// seasonID as a tie-break so iteration order is stable across fetches.
func SortByStartTime(seasons []Season) []Season {
	sorted := make([]Season, len(seasons))
	copy(sorted, seasons)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartTime.Equal(sorted[j].StartTime) {
			return sorted[i].SeasonID < sorted[j].SeasonID
		}
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return sorted
}

// StartingLevelAfterReset applies the carry-over rule to a user's progress in
// an ended season. endedProgress may be nil (no record found), which counts as
// level 0 and never meets the threshold.
func StartingLevelAfterReset(endedProgress *UserSeasonProgress) int {
	if endedProgress != nil && endedProgress.Level >= ResetThresholdLevel {
		logrus.Debugf("carry-over threshold met (%d >= %d), new season starts at level %d",
			endedProgress.Level, ResetThresholdLevel, ResetToLevel)
		return ResetToLevel
	}
	return StartingLevel
}

// ApplyPoints returns the progress record after adding a point delta, with the
// level recomputed from the new total. The input record is not modified.
func ApplyPoints(progress UserSeasonProgress, pointsEarned int64) UserSeasonProgress {
	progress.PointsInSeason += pointsEarned
	newLevel := CalculateLevel(progress.PointsInSeason)
	if newLevel != progress.Level {
		logrus.Debugf("user %s level change in season %s: %d -> %d",
			progress.UserID, progress.SeasonID, progress.Level, newLevel)
	}
	progress.Level = newLevel
	return progress
}
