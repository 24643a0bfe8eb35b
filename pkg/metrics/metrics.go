// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ActivityRecordingsTotal counts activity recordings by result
	// ("applied", "skipped", "failed").
	ActivityRecordingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "season_progression_activity_recordings_total",
			Help: "Total number of activity recording attempts by result",
		},
		[]string{"result"},
	)

	// PointsRecordedTotal sums all points applied to seasonal progress.
	PointsRecordedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "season_progression_points_recorded_total",
			Help: "Total points applied to user seasonal progress",
		},
	)

	// CatalogFetchFailuresTotal counts failed season catalog fetches.
	CatalogFetchFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "season_progression_catalog_fetch_failures_total",
			Help: "Total number of failed season catalog fetches",
		},
	)

	// ResolverCacheResultsTotal counts active-season resolutions by cache
	// outcome ("hit", "miss").
	ResolverCacheResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "season_progression_resolver_cache_results_total",
			Help: "Active-season resolver cache hits and misses",
		},
		[]string{"outcome"},
	)

	// SeasonTransitionsTotal counts reset checks by derived transition state.
	SeasonTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "season_progression_transitions_total",
			Help: "Total number of season reset checks by derived state",
		},
		[]string{"state"},
	)
)

// Collectors returns every custom collector for registration on the metrics
// server's registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		ActivityRecordingsTotal,
		PointsRecordedTotal,
		CatalogFetchFailuresTotal,
		ResolverCacheResultsTotal,
		SeasonTransitionsTotal,
	}
}
