// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"testing"
)

func TestRedisTransitionLedger_LastActiveSeason(t *testing.T) {
	_, client := setupTestRedis(t)
	ledger := NewRedisTransitionLedger(client, RedisTransitionLedgerConfig{})
	ctx := context.Background()

	got, err := ledger.GetLastActiveSeason(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetLastActiveSeason() error = %v", err)
	}
	if got != "" {
		t.Errorf("GetLastActiveSeason() = %q for unseen user, expected empty", got)
	}

	if err := ledger.SetLastActiveSeason(ctx, "user-1", "s1"); err != nil {
		t.Fatalf("SetLastActiveSeason() error = %v", err)
	}
	got, err = ledger.GetLastActiveSeason(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetLastActiveSeason() error = %v", err)
	}
	if got != "s1" {
		t.Errorf("GetLastActiveSeason() = %q, expected s1", got)
	}
}

func TestRedisTransitionLedger_MarkClaimsExactlyOnce(t *testing.T) {
	_, client := setupTestRedis(t)
	ledger := NewRedisTransitionLedger(client, RedisTransitionLedgerConfig{})
	ctx := context.Background()

	processed, err := ledger.IsTransitionProcessed(ctx, "user-1", "s1", "s2")
	if err != nil {
		t.Fatalf("IsTransitionProcessed() error = %v", err)
	}
	if processed {
		t.Error("IsTransitionProcessed() = true before any mark")
	}

	claimed, err := ledger.MarkTransitionProcessed(ctx, "user-1", "s1", "s2")
	if err != nil {
		t.Fatalf("MarkTransitionProcessed() error = %v", err)
	}
	if !claimed {
		t.Error("first MarkTransitionProcessed() = false, expected claim to win")
	}

	claimed, err = ledger.MarkTransitionProcessed(ctx, "user-1", "s1", "s2")
	if err != nil {
		t.Fatalf("MarkTransitionProcessed() error = %v", err)
	}
	if claimed {
		t.Error("second MarkTransitionProcessed() = true, expected claim to lose")
	}

	processed, err = ledger.IsTransitionProcessed(ctx, "user-1", "s1", "s2")
	if err != nil {
		t.Fatalf("IsTransitionProcessed() error = %v", err)
	}
	if !processed {
		t.Error("IsTransitionProcessed() = false after mark")
	}
}

func TestRedisTransitionLedger_PairsAreIndependent(t *testing.T) {
	_, client := setupTestRedis(t)
	ledger := NewRedisTransitionLedger(client, RedisTransitionLedgerConfig{})
	ctx := context.Background()

	if _, err := ledger.MarkTransitionProcessed(ctx, "user-1", "s1", "s2"); err != nil {
		t.Fatalf("MarkTransitionProcessed() error = %v", err)
	}

	// A different season pair and a different user both stay unclaimed.
	for _, tc := range []struct{ user, from, to string }{
		{"user-1", "s2", "s3"},
		{"user-2", "s1", "s2"},
	} {
		processed, err := ledger.IsTransitionProcessed(ctx, tc.user, tc.from, tc.to)
		if err != nil {
			t.Fatalf("IsTransitionProcessed(%s, %s, %s) error = %v", tc.user, tc.from, tc.to, err)
		}
		if processed {
			t.Errorf("IsTransitionProcessed(%s, %s, %s) = true, expected false", tc.user, tc.from, tc.to)
		}
	}
}
