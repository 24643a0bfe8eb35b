// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dreamlabs/season-progression/pkg/season"
	"github.com/dreamlabs/season-progression/pkg/service/mock"
)

// testClock is a mutable clock for stepping through season boundaries.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func day(d int) time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(d) * 24 * time.Hour)
}

func TestActiveSeasonResolver_ResolvesAndCaches(t *testing.T) {
	ctx := context.Background()
	catalog := &mock.CatalogStore{
		Seasons: []season.Season{
			{SeasonID: "s1", Name: "One", StartTime: day(0), EndTime: day(30)},
		},
	}
	clock := &testClock{now: day(10)}
	resolver := NewActiveSeasonResolver(catalog, clock, time.Hour)

	active := resolver.ActiveSeason(ctx)
	if active == nil || active.SeasonID != "s1" {
		t.Fatalf("ActiveSeason() = %v, expected s1", active)
	}
	if catalog.FetchCalls != 1 {
		t.Fatalf("FetchCalls = %d, expected 1", catalog.FetchCalls)
	}

	// Within the freshness window the catalog is not refetched.
	clock.now = clock.now.Add(30 * time.Minute)
	active = resolver.ActiveSeason(ctx)
	if active == nil || active.SeasonID != "s1" {
		t.Fatalf("cached ActiveSeason() = %v, expected s1", active)
	}
	if catalog.FetchCalls != 1 {
		t.Errorf("FetchCalls = %d, expected cache hit to avoid refetch", catalog.FetchCalls)
	}

	// Past the freshness window the catalog is consulted again.
	clock.now = clock.now.Add(2 * time.Hour)
	resolver.ActiveSeason(ctx)
	if catalog.FetchCalls != 2 {
		t.Errorf("FetchCalls = %d, expected refetch after freshness window", catalog.FetchCalls)
	}
}

func TestActiveSeasonResolver_CacheExpiresWithSeasonEnd(t *testing.T) {
	ctx := context.Background()
	catalog := &mock.CatalogStore{
		Seasons: []season.Season{
			{SeasonID: "ending", StartTime: day(0), EndTime: day(1)},
		},
	}
	clock := &testClock{now: day(1).Add(-10 * time.Minute)}
	resolver := NewActiveSeasonResolver(catalog, clock, time.Hour)

	if active := resolver.ActiveSeason(ctx); active == nil {
		t.Fatal("expected an active season before the end boundary")
	}

	// Still well within the freshness window, but the cached season has
	// ended; the cache must not serve it.
	clock.now = day(1).Add(10 * time.Minute)
	if active := resolver.ActiveSeason(ctx); active != nil {
		t.Errorf("ActiveSeason() = %s after season end, expected nil", active.SeasonID)
	}
	if catalog.FetchCalls != 2 {
		t.Errorf("FetchCalls = %d, expected forced refetch once cached season ended", catalog.FetchCalls)
	}
}

func TestActiveSeasonResolver_BoundaryExclusive(t *testing.T) {
	ctx := context.Background()
	catalog := &mock.CatalogStore{
		Seasons: []season.Season{
			{SeasonID: "s1", StartTime: day(0), EndTime: day(10)},
		},
	}

	tests := []struct {
		name   string
		now    time.Time
		active bool
	}{
		{name: "at start", now: day(0), active: false},
		{name: "inside", now: day(5), active: true},
		{name: "at end", now: day(10), active: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewActiveSeasonResolver(catalog, &testClock{now: tt.now}, time.Hour)
			got := resolver.ActiveSeason(ctx)
			if (got != nil) != tt.active {
				t.Errorf("ActiveSeason at %v: got %v, expected active=%v", tt.now, got, tt.active)
			}
		})
	}
}

func TestActiveSeasonResolver_FetchFailureDegradesToNone(t *testing.T) {
	ctx := context.Background()
	catalog := &mock.CatalogStore{
		FetchAllSeasonsFunc: func(ctx context.Context) ([]season.Season, error) {
			return nil, errors.New("catalog unavailable")
		},
	}
	resolver := NewActiveSeasonResolver(catalog, &testClock{now: day(5)}, time.Hour)

	if active := resolver.ActiveSeason(ctx); active != nil {
		t.Errorf("ActiveSeason() = %v on fetch failure, expected nil", active)
	}
}

func TestActiveSeasonResolver_Invalidate(t *testing.T) {
	ctx := context.Background()
	catalog := &mock.CatalogStore{
		Seasons: []season.Season{
			{SeasonID: "s1", StartTime: day(0), EndTime: day(30)},
		},
	}
	clock := &testClock{now: day(10)}
	resolver := NewActiveSeasonResolver(catalog, clock, time.Hour)

	resolver.ActiveSeason(ctx)
	resolver.Invalidate()
	resolver.ActiveSeason(ctx)

	if catalog.FetchCalls != 2 {
		t.Errorf("FetchCalls = %d, expected refetch after Invalidate", catalog.FetchCalls)
	}
}
