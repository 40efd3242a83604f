package bitonic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSorted    = "sorted"
	outcomeBadLength = "bad_length"
)

var (
	sortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "bitonic",
		Name:      "sorts_total",
		Help:      "The total number of sort calls, by sorter and outcome",
	}, []string{"sorter", "outcome"})

	swapsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "bitonic",
		Name:      "swaps_total",
		Help:      "The total number of element exchanges performed",
	}, []string{"sorter"})

	comparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "bitonic",
		Name:      "comparisons_total",
		Help:      "The total number of comparator calls performed",
	}, []string{"sorter"})

	sortLength = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Namespace: "bitonic",
		Name:      "sort_length",
		Help:      "Length of successfully sorted sequences",
		Buckets:   prometheus.ExponentialBuckets(2, 4, 12), //nolint:mnd
	}, []string{"sorter"})

	sortDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Namespace: "bitonic",
		Name:      "sort_duration_seconds",
		Help:      "Wall time of successful sorts",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12), //nolint:mnd
	}, []string{"sorter"})
)
