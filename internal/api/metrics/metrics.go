// Package metrics defines and registers all custom Prometheus metrics for the
// claims intake API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "claims"

// ── Claim metrics ─────────────────────────────────────────────────────────────

// ClaimsCreatedTotal counts newly submitted claims.
// Label:
//   - category: the free-text claim category as supplied by the client
var ClaimsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of claims created, by category.",
	},
	[]string{"category"},
)

// SearchesTotal counts claim searches.
// Label:
//   - mode: "exact" (public strict search), "wildcard" (insurer search) or
//     "policy" (lookup by policy number)
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of claim searches, by search mode.",
	},
	[]string{"mode"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "no_user", "mismatch" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── External API metrics ──────────────────────────────────────────────────────

// ExternalRequestsTotal counts calls to the external mapping/places APIs.
// Labels:
//   - api: "static_map" or "autocomplete"
//   - outcome: "ok" or "error"
var ExternalRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "external_requests_total",
		Help:      "Total number of outbound requests to external map APIs.",
	},
	[]string{"api", "outcome"},
)

// ExternalRequestDuration measures outbound request latency end-to-end.
// Label:
//   - api: "static_map" or "autocomplete"
var ExternalRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "external_request_duration_seconds",
		Help:      "Duration of outbound requests to external map APIs.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"api"},
)
