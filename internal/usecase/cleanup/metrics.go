package cleanup

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	TriggerManual        = "manual"
	TriggerOpportunistic = "opportunistic"
	TriggerBackground    = "background"
)

var (
	sweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixforge_janitor_sweeps_total",
		Help: "Number of janitor sweeps by trigger",
	}, []string{"trigger"})

	filesDeletedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixforge_janitor_files_deleted_total",
		Help: "Number of files removed by the janitor",
	}, []string{"area"})

	errorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pixforge_janitor_errors_total",
		Help: "Number of listing or delete failures seen by the janitor",
	})

	sweepDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pixforge_janitor_sweep_duration_seconds",
		Help:    "Duration of a full sweep over both areas",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	})
)
