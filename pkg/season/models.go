// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package season

import (
	"time"
)

// Season is an administratively defined time window against which user
// progress accrues. Seasons are created and edited outside this service;
// the engine only reads them.
type Season struct {
	SeasonID  string    `json:"seasonId" yaml:"seasonId"`
	Name      string    `json:"name" yaml:"name"`
	StartTime time.Time `json:"startTime" yaml:"startTime"`
	EndTime   time.Time `json:"endTime" yaml:"endTime"`
}

// IsActiveAt reports whether the season is open at the given instant.
// Both boundaries are exclusive: a season is not active at exactly its
// start or end time.
func (s Season) IsActiveAt(now time.Time) bool {
	return now.After(s.StartTime) && now.Before(s.EndTime)
}

// HasEndedAt reports whether the season's window has closed at the given instant.
func (s Season) HasEndedAt(now time.Time) bool {
	return s.EndTime.Before(now)
}

// UserSeasonProgress tracks a user's accumulated points and derived level
// within a single season. At most one record exists per (user, season) pair.
type UserSeasonProgress struct {
	UserID         string    `json:"userId"`
	SeasonID       string    `json:"seasonId"`
	Level          int       `json:"level"`
	PointsInSeason int64     `json:"pointsInSeason"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// NewProgress returns a zero-value progress record for a user entering a season.
func NewProgress(userID, seasonID string) *UserSeasonProgress {
	return &UserSeasonProgress{
		UserID:         userID,
		SeasonID:       seasonID,
		Level:          StartingLevel,
		PointsInSeason: 0,
	}
}
