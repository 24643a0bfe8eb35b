// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package engine

import (
	"context"
	"time"

	"github.com/dreamlabs/season-progression/pkg/season"
	"github.com/dreamlabs/season-progression/pkg/service"

	"github.com/sirupsen/logrus"
)

// Service is the season progression engine. It owns the decision logic for
// active-season resolution, activity recording, and season-transition resets;
// the stores own durability. Every fetched record is treated as an immutable
// snapshot for the duration of one operation.
type Service struct {
	resolver *ActiveSeasonResolver
	catalog  service.SeasonCatalogStore
	progress service.UserProgressStore
	ledger   service.UserTransitionLedger
	clock    service.Clock
}

// Config carries engine tuning knobs.
type Config struct {
	// CacheFreshness bounds the active-season cache age; 0 means the default.
	CacheFreshness time.Duration
}

// New creates a season progression engine over the given stores.
func New(
	catalog service.SeasonCatalogStore,
	progress service.UserProgressStore,
	ledger service.UserTransitionLedger,
	clock service.Clock,
	cfg Config,
) *Service {
	return &Service{
		resolver: NewActiveSeasonResolver(catalog, clock, cfg.CacheFreshness),
		catalog:  catalog,
		progress: progress,
		ledger:   ledger,
		clock:    clock,
	}
}

// ActiveSeason returns the currently open season, or nil if none is.
func (s *Service) ActiveSeason(ctx context.Context) *season.Season {
	return s.resolver.ActiveSeason(ctx)
}

// Resolver exposes the active-season resolver, mainly so catalog writers can
// invalidate its cache.
func (s *Service) Resolver() *ActiveSeasonResolver {
	return s.resolver
}

// Catalog exposes the season catalog store for read-only listing surfaces.
func (s *Service) Catalog() service.SeasonCatalogStore {
	return s.catalog
}

// Progress returns the user's progress record for a season, or nil if absent.
func (s *Service) Progress(ctx context.Context, userID, seasonID string) (*season.UserSeasonProgress, error) {
	return s.progress.Get(ctx, userID, seasonID)
}

// ensureProgressExists creates a default progress record for the (user, season)
// pair if none exists. It self-heals confirmed absence only: a failed read is
// not treated as absence here, since creating over an unreadable record could
// destroy real progress.
func (s *Service) ensureProgressExists(ctx context.Context, userID, seasonID string) error {
	existing, err := s.progress.Get(ctx, userID, seasonID)
	if err != nil {
		logrus.Warnf("could not verify progress exists for user %s season %s: %v", userID, seasonID, err)
		return err
	}
	if existing != nil {
		return nil
	}

	logrus.Infof("progress for user %s season %s missing, creating default record", userID, seasonID)
	initial := season.NewProgress(userID, seasonID)
	initial.LastUpdated = s.clock.Now()
	return s.progress.Create(ctx, initial)
}
