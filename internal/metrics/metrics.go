// Package metrics exposes the engine's Prometheus instrumentation. The
// collectors are package-level promauto vars so every component shares one
// registry; the API server mounts them at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var Completions = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fittracker_completions_total",
	Help: "Habit completions recorded.",
})

var CompletionConflicts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fittracker_completion_conflicts_total",
	Help: "Completions rejected because the habit was already done today.",
})

var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fittracker_level_ups_total",
	Help: "User level promotions from completions.",
})

var Depletions = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fittracker_depletions_total",
	Help: "Life-point depletions that cost a level.",
})

var RolloverUsers = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fittracker_rollover_users_total",
	Help: "Users reconciled by the daily rollover.",
})

var XPAwarded = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "fittracker_xp_awarded",
	Help:    "XP awarded per completion.",
	Buckets: prometheus.ExponentialBuckets(5, 2, 8),
})
