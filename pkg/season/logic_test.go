// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package season

import (
	"testing"
	"time"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		name     string
		points   int64
		expected int
	}{
		{name: "zero points", points: 0, expected: 0},
		{name: "just below first level", points: 99, expected: 0},
		{name: "exactly first level", points: 100, expected: 1},
		{name: "mid level", points: 250, expected: 2},
		{name: "high total", points: 1250, expected: 12},
		{name: "negative clamps to zero", points: -50, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateLevel(tt.points); got != tt.expected {
				t.Errorf("CalculateLevel(%d) = %d, expected %d", tt.points, got, tt.expected)
			}
		})
	}
}

// Level depends only on the cumulative total, not on how it was accumulated.
func TestCalculateLevel_OrderIndependent(t *testing.T) {
	increments := []int64{30, 170, 1, 99, 300}

	var viaSteps UserSeasonProgress
	var total int64
	for _, inc := range increments {
		viaSteps = ApplyPoints(viaSteps, inc)
		total += inc
	}

	if viaSteps.PointsInSeason != total {
		t.Fatalf("PointsInSeason = %d, expected %d", viaSteps.PointsInSeason, total)
	}
	if viaSteps.Level != CalculateLevel(total) {
		t.Errorf("incremental level = %d, expected %d from total %d",
			viaSteps.Level, CalculateLevel(total), total)
	}
}

func TestSeasonIsActiveAt(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(30 * 24 * time.Hour)
	s := Season{SeasonID: "s1", StartTime: start, EndTime: end}

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{name: "before start", now: start.Add(-time.Second), expected: false},
		{name: "exactly at start", now: start, expected: false},
		{name: "just after start", now: start.Add(time.Second), expected: true},
		{name: "mid season", now: start.Add(15 * 24 * time.Hour), expected: true},
		{name: "exactly at end", now: end, expected: false},
		{name: "after end", now: end.Add(time.Second), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.IsActiveAt(tt.now); got != tt.expected {
				t.Errorf("IsActiveAt(%v) = %v, expected %v", tt.now, got, tt.expected)
			}
		})
	}
}

func TestFindActiveSeason(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return base.Add(time.Duration(d) * 24 * time.Hour) }

	seasons := []Season{
		{SeasonID: "a", StartTime: day(0), EndTime: day(10)},
		{SeasonID: "b", StartTime: day(12), EndTime: day(20)},
	}

	if got := FindActiveSeason(seasons, day(5)); got == nil || got.SeasonID != "a" {
		t.Errorf("expected season a active at day 5, got %v", got)
	}
	if got := FindActiveSeason(seasons, day(11)); got != nil {
		t.Errorf("expected no active season in the gap, got %s", got.SeasonID)
	}

	// Overlapping windows: first match in catalog order wins.
	overlapping := []Season{
		{SeasonID: "first", StartTime: day(0), EndTime: day(10)},
		{SeasonID: "second", StartTime: day(2), EndTime: day(12)},
	}
	if got := FindActiveSeason(overlapping, day(5)); got == nil || got.SeasonID != "first" {
		t.Errorf("expected first catalog match on overlap, got %v", got)
	}
}

func TestFindSuccessor(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return base.Add(time.Duration(d) * 24 * time.Hour) }

	seasonA := Season{SeasonID: "A", StartTime: day(0), EndTime: day(10)}
	seasonB := Season{SeasonID: "B", StartTime: day(15), EndTime: day(20)}
	seasonC := Season{SeasonID: "C", StartTime: day(12), EndTime: day(18)}

	// C starts earliest after A's end, so it is the successor despite B
	// appearing earlier in the slice.
	catalog := []Season{seasonA, seasonB, seasonC}
	got := FindSuccessor(catalog, seasonA)
	if got == nil || got.SeasonID != "C" {
		t.Errorf("FindSuccessor = %v, expected C", got)
	}

	// A season starting exactly at the ended end time is not a successor
	// (start must be strictly after).
	boundary := Season{SeasonID: "D", StartTime: day(10), EndTime: day(11)}
	got = FindSuccessor([]Season{seasonA, boundary}, seasonA)
	if got != nil {
		t.Errorf("expected no successor for boundary start, got %s", got.SeasonID)
	}

	// No season after the ended one.
	if got := FindSuccessor([]Season{seasonA}, seasonA); got != nil {
		t.Errorf("expected no successor, got %s", got.SeasonID)
	}
}

func TestSortByStartTime(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return base.Add(time.Duration(d) * 24 * time.Hour) }

	seasons := []Season{
		{SeasonID: "late", StartTime: day(20), EndTime: day(30)},
		{SeasonID: "z-early", StartTime: day(0), EndTime: day(10)},
		{SeasonID: "a-early", StartTime: day(0), EndTime: day(9)},
	}

	sorted := SortByStartTime(seasons)

	want := []string{"a-early", "z-early", "late"}
	for i, id := range want {
		if sorted[i].SeasonID != id {
			t.Errorf("sorted[%d] = %s, expected %s", i, sorted[i].SeasonID, id)
		}
	}

	// Input order untouched.
	if seasons[0].SeasonID != "late" {
		t.Errorf("SortByStartTime mutated its input")
	}
}

func TestStartingLevelAfterReset(t *testing.T) {
	tests := []struct {
		name     string
		progress *UserSeasonProgress
		expected int
	}{
		{name: "no progress found", progress: nil, expected: StartingLevel},
		{
			name:     "below threshold",
			progress: &UserSeasonProgress{Level: ResetThresholdLevel - 1},
			expected: StartingLevel,
		},
		{
			name:     "exactly at threshold",
			progress: &UserSeasonProgress{Level: ResetThresholdLevel},
			expected: ResetToLevel,
		},
		{
			name:     "above threshold",
			progress: &UserSeasonProgress{Level: ResetThresholdLevel + 5},
			expected: ResetToLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartingLevelAfterReset(tt.progress); got != tt.expected {
				t.Errorf("StartingLevelAfterReset() = %d, expected %d", got, tt.expected)
			}
		})
	}
}
