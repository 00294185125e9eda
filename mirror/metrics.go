package mirror

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// candidatesTotal counts wall sequences examined by walkers.
	candidatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mirrorpath_candidates_total",
		Help: "Total wall sequences examined by mirror-receiver walkers",
	})

	// prunedTotal counts rejected prefixes whose subtree was cut.
	prunedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mirrorpath_pruned_total",
		Help: "Total rejected wall prefixes whose deeper sequences were skipped",
	})

	// pathsTotal counts yielded reflection paths.
	pathsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mirrorpath_paths_total",
		Help: "Total admissible reflection paths yielded",
	})

	// pathDepth tracks the reflection order of yielded paths.
	pathDepth = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mirrorpath_path_depth",
		Help:    "Reflection order of yielded paths",
		Buckets: prometheus.LinearBuckets(1, 1, 8),
	})
)
