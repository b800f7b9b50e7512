// Package metrics defines and registers all custom Prometheus metrics for
// the housing units API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto and register themselves with the default registry at
// package init; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "housing_units"

// ── Ingestion metrics ─────────────────────────────────────────────────────────

// IngestionRowsInsertedTotal counts dataset rows persisted by ingestion jobs.
var IngestionRowsInsertedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_rows_inserted_total",
		Help:      "Total number of dataset rows bulk-persisted by ingestion jobs.",
	},
)

// IngestionRowsSkippedTotal counts rows dropped because field mapping failed.
// Label:
//   - reason: short description of the mapping failure (e.g. "missing_field", "bad_timestamp")
var IngestionRowsSkippedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_rows_skipped_total",
		Help:      "Total number of dataset rows skipped due to per-row mapping failures.",
	},
	[]string{"reason"},
)

// IngestionJobsTotal counts completed ingestion jobs.
// Label:
//   - result: "succeeded" or "failed"
var IngestionJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_jobs_total",
		Help:      "Total number of ingestion jobs by terminal result.",
	},
	[]string{"result"},
)

// ── Job queue metrics ─────────────────────────────────────────────────────────

// JobsQueueDepth tracks the number of submitted jobs waiting for a worker.
var JobsQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "jobs_queue_depth",
		Help:      "Current number of submitted jobs pending in the runner channel.",
	},
)

// JobDuration measures how long a background job runs from dequeue to
// terminal state.
// Label:
//   - result: "succeeded" or "failed"
var JobDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Duration of background jobs from dequeue to completion.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// ── Record lifecycle metrics ──────────────────────────────────────────────────

// UnitsCreatedTotal counts housing units created through the API (manual
// creates only; ingested rows are counted by the ingestion metrics).
// Label:
//   - borough: the record's borough field
var UnitsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "units_created_total",
		Help:      "Total number of housing units created via the API, by borough.",
	},
	[]string{"borough"},
)

// UnitsDeletedTotal counts housing units deleted through the API.
var UnitsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "units_deleted_total",
		Help:      "Total number of housing units deleted via the API.",
	},
)
