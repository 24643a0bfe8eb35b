package service

import (
	"context"
	"time"

	"github.com/dreamlabs/season-progression/pkg/season"
)

// Store interfaces for the engine's external collaborators. The engine only
// ever talks to these; concrete implementations live in this package (Redis,
// YAML file) and in mock/ for tests.

// SeasonCatalogStore serves the full set of season definitions.
type SeasonCatalogStore interface {
	// FetchAllSeasons returns every season definition. Callers treat a failed
	// fetch as "no seasons" on read paths; the error is still returned so
	// callers that need strong guarantees can distinguish the two.
	FetchAllSeasons(ctx context.Context) ([]season.Season, error)
}

// UserProgressStore persists per-(user, season) progress records.
type UserProgressStore interface {
	// Get returns the progress record, or nil if none exists. A nil record
	// with a nil error means "absent", never "zero value".
	Get(ctx context.Context, userID, seasonID string) (*season.UserSeasonProgress, error)

	// Put writes a progress record with merge semantics: fields carried by
	// the record are written, unrelated fields on the stored document survive.
	Put(ctx context.Context, progress *season.UserSeasonProgress) error

	// Create writes a fresh progress record, replacing any existing document
	// for the same (user, season) pair.
	Create(ctx context.Context, progress *season.UserSeasonProgress) error
}

// UserTransitionLedger remembers each user's last active season and which
// season-to-season resets have already been applied.
type UserTransitionLedger interface {
	// GetLastActiveSeason returns the user's last known season ID, or "" if
	// the user has never been observed.
	GetLastActiveSeason(ctx context.Context, userID string) (string, error)

	SetLastActiveSeason(ctx context.Context, userID, seasonID string) error

	IsTransitionProcessed(ctx context.Context, userID, fromSeasonID, toSeasonID string) (bool, error)

	// MarkTransitionProcessed records the (from, to) pair as processed and
	// reports whether this caller claimed it. A false return means another
	// invocation marked the same pair first.
	MarkTransitionProcessed(ctx context.Context, userID, fromSeasonID, toSeasonID string) (bool, error)
}

// Clock abstracts time so season boundary logic is testable.
type Clock interface {
	Now() time.Time
}
