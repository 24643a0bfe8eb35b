// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package engine

import (
	"context"
	"sync"
	"time"

	"github.com/dreamlabs/season-progression/pkg/metrics"
	"github.com/dreamlabs/season-progression/pkg/season"
	"github.com/dreamlabs/season-progression/pkg/service"

	"github.com/sirupsen/logrus"
)

// DefaultCacheFreshness is how long a resolved active season may be served
// from cache before the catalog is consulted again.
const DefaultCacheFreshness = time.Hour

// ActiveSeasonResolver determines the currently open season from the catalog,
// with a freshness-bounded cache. A cache hit requires both that the cached
// result is younger than the freshness window and that the cached season has
// not ended yet; either condition failing forces a fresh catalog fetch, so a
// season rollover is never hidden by the cache.
type ActiveSeasonResolver struct {
	catalog   service.SeasonCatalogStore
	clock     service.Clock
	freshness time.Duration

	mu        sync.Mutex
	cached    *season.Season
	lastCheck time.Time
}

// NewActiveSeasonResolver creates a resolver. A freshness of 0 means
// DefaultCacheFreshness.
func NewActiveSeasonResolver(catalog service.SeasonCatalogStore, clock service.Clock, freshness time.Duration) *ActiveSeasonResolver {
	if freshness <= 0 {
		freshness = DefaultCacheFreshness
	}
	return &ActiveSeasonResolver{
		catalog:   catalog,
		clock:     clock,
		freshness: freshness,
	}
}

// ActiveSeason returns the season open right now, or nil if none is. A failed
// catalog fetch degrades to "no active season" rather than propagating; callers
// needing strong guarantees should re-check.
func (r *ActiveSeasonResolver) ActiveSeason(ctx context.Context) *season.Season {
	now := r.clock.Now()

	r.mu.Lock()
	if r.cached != nil && now.Sub(r.lastCheck) < r.freshness && now.Before(r.cached.EndTime) {
		cached := *r.cached
		r.mu.Unlock()
		metrics.ResolverCacheResultsTotal.WithLabelValues("hit").Inc()
		return &cached
	}
	r.mu.Unlock()

	metrics.ResolverCacheResultsTotal.WithLabelValues("miss").Inc()

	seasons, err := r.catalog.FetchAllSeasons(ctx)
	if err != nil {
		metrics.CatalogFetchFailuresTotal.Inc()
		logrus.Errorf("failed to fetch season catalog, treating as no active season: %v", err)
		return nil
	}

	active := season.FindActiveSeason(seasons, now)

	r.mu.Lock()
	r.cached = active
	r.lastCheck = now
	r.mu.Unlock()

	if active != nil {
		logrus.Debugf("active season resolved: %s (%s)", active.SeasonID, active.Name)
		out := *active
		return &out
	}
	logrus.Debugf("no active season at %v (catalog has %d seasons)", now, len(seasons))
	return nil
}

// Invalidate drops the cached season so the next resolution refetches the
// catalog. Called after catalog writes.
func (r *ActiveSeasonResolver) Invalidate() {
	r.mu.Lock()
	r.cached = nil
	r.lastCheck = time.Time{}
	r.mu.Unlock()
}
