// Package metrics defines and registers all custom Prometheus metrics for the
// Vexel dashboard API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vexel"

// ── Procedure metrics ─────────────────────────────────────────────────────────

// ProcedureCallsTotal counts RPC procedure invocations.
// Labels:
//   - procedure: dotted procedure name (e.g. "tasks.toggle")
//   - outcome: "ok", "client_error" or "server_error"
var ProcedureCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "procedure_calls_total",
		Help:      "Total number of RPC procedure calls, by outcome.",
	},
	[]string{"procedure", "outcome"},
)

// ProcedureDuration measures procedure latency including middleware.
// Label:
//   - procedure: dotted procedure name
var ProcedureDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "procedure_duration_seconds",
		Help:      "Duration of RPC procedure calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"procedure"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SessionResolutionsTotal counts session cookie resolutions.
// Label:
//   - result: "authenticated", "anonymous" (no cookie) or "rejected"
var SessionResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolutions_total",
		Help:      "Total number of session cookie resolutions, by result.",
	},
	[]string{"result"},
)

// OAuthCallbacksTotal counts OAuth callback completions.
// Label:
//   - result: "success", "invalid", "replayed" or "failed"
var OAuthCallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "oauth_callbacks_total",
		Help:      "Total number of OAuth callbacks, by result.",
	},
	[]string{"result"},
)

// ── System metrics ────────────────────────────────────────────────────────────

// NotificationsTotal counts owner notification attempts.
// Label:
//   - result: "delivered", "failed" or "rejected" (invalid input or misconfiguration)
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "owner_notifications_total",
		Help:      "Total number of owner notifications, by result.",
	},
	[]string{"result"},
)

// AssetUploadBytes observes the size of uploaded asset files.
var AssetUploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "asset_upload_bytes",
		Help:      "Size of uploaded asset files in bytes.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 9), // 1KiB .. 64MiB
	},
)
