// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"testing"
	"time"

	"github.com/dreamlabs/season-progression/pkg/season"
)

func testSeason(id string, startDay, endDay int) season.Season {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return season.Season{
		SeasonID:  id,
		Name:      "Season " + id,
		StartTime: base.AddDate(0, 0, startDay),
		EndTime:   base.AddDate(0, 0, endDay),
	}
}

func TestRedisCatalogStore_UpsertAndFetchSorted(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisCatalogStore(client, RedisCatalogStoreConfig{})
	ctx := context.Background()

	// Insert out of chronological order.
	for _, s := range []season.Season{
		testSeason("s3", 62, 92),
		testSeason("s1", 0, 30),
		testSeason("s2", 31, 61),
	} {
		if err := store.UpsertSeason(ctx, s); err != nil {
			t.Fatalf("UpsertSeason(%s) error = %v", s.SeasonID, err)
		}
	}

	seasons, err := store.FetchAllSeasons(ctx)
	if err != nil {
		t.Fatalf("FetchAllSeasons() error = %v", err)
	}
	if len(seasons) != 3 {
		t.Fatalf("FetchAllSeasons() returned %d seasons, expected 3", len(seasons))
	}
	for i, want := range []string{"s1", "s2", "s3"} {
		if seasons[i].SeasonID != want {
			t.Errorf("seasons[%d] = %s, expected %s", i, seasons[i].SeasonID, want)
		}
	}
}

func TestRedisCatalogStore_UpsertReplacesExisting(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisCatalogStore(client, RedisCatalogStoreConfig{})
	ctx := context.Background()

	if err := store.UpsertSeason(ctx, testSeason("s1", 0, 30)); err != nil {
		t.Fatalf("UpsertSeason() error = %v", err)
	}
	renamed := testSeason("s1", 0, 45)
	renamed.Name = "Extended Season"
	if err := store.UpsertSeason(ctx, renamed); err != nil {
		t.Fatalf("UpsertSeason() error = %v", err)
	}

	seasons, err := store.FetchAllSeasons(ctx)
	if err != nil {
		t.Fatalf("FetchAllSeasons() error = %v", err)
	}
	if len(seasons) != 1 {
		t.Fatalf("FetchAllSeasons() returned %d seasons, expected 1", len(seasons))
	}
	if seasons[0].Name != "Extended Season" || !seasons[0].EndTime.Equal(renamed.EndTime) {
		t.Errorf("season = %+v, expected replaced definition", seasons[0])
	}
}

func TestRedisCatalogStore_UpsertRejectsInvalid(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisCatalogStore(client, RedisCatalogStoreConfig{})
	ctx := context.Background()

	if err := store.UpsertSeason(ctx, testSeason("", 0, 30)); err == nil {
		t.Error("expected error for empty season ID")
	}
	if err := store.UpsertSeason(ctx, testSeason("s1", 30, 0)); err == nil {
		t.Error("expected error for end before start")
	}
	if err := store.UpsertSeason(ctx, testSeason("s1", 10, 10)); err == nil {
		t.Error("expected error for zero-length window")
	}
}

func TestRedisCatalogStore_SkipsCorruptEntries(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisCatalogStore(client, RedisCatalogStoreConfig{})
	ctx := context.Background()

	if err := store.UpsertSeason(ctx, testSeason("s1", 0, 30)); err != nil {
		t.Fatalf("UpsertSeason() error = %v", err)
	}
	mr.HSet(catalogStoreKey, "broken", "{not json")

	seasons, err := store.FetchAllSeasons(ctx)
	if err != nil {
		t.Fatalf("FetchAllSeasons() error = %v", err)
	}
	if len(seasons) != 1 || seasons[0].SeasonID != "s1" {
		t.Errorf("FetchAllSeasons() = %+v, expected only s1", seasons)
	}
}
