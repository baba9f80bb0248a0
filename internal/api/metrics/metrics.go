// Package metrics defines and registers the custom Prometheus metrics of the
// leads service. HTTP request counts and latencies come from the echoprometheus
// middleware; the collectors here describe what happened to leads.
//
// All collectors are registered with the default registry on package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "leads"

// Store operation label values for StoreErrorsTotal.
const (
	OpList        = "list"
	OpCreate      = "create"
	OpUpdateStage = "update_stage"
	OpUpdateOwner = "update_owner"
)

// CreatedTotal counts leads inserted by POST /leads. Replays are not counted.
// Label:
//   - source: the acquisition channel (e.g. "LinkedIn")
var CreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of leads created, by source.",
	},
	[]string{"source"},
)

// UpdatedTotal counts successful targeted updates.
// Label:
//   - field: "stage" or "owner"
var UpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updated_total",
		Help:      "Total number of lead updates, by field.",
	},
	[]string{"field"},
)

// StoreErrorsTotal counts requests answered with 500 because the store failed.
// Label:
//   - operation: one of the Op* constants
var StoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Total number of lead store failures, by operation.",
	},
	[]string{"operation"},
)

// IdempotentReplaysTotal counts creates answered from the idempotency store.
var IdempotentReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of POST /leads requests answered with a previously created lead.",
	},
)

// ListDuration measures the list use case, search and count included.
var ListDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "list_duration_seconds",
		Help:      "Duration of lead list requests from handler to response.",
		Buckets:   prometheus.DefBuckets,
	},
)
