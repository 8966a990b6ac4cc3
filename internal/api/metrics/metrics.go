// Package metrics defines all custom Prometheus metrics for the CareerBridge
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register with the default registry at package init and are
// exposed through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "careerbridge"

// RegistrationsTotal counts created accounts.
// Label:
//   - method: "basic" (simple form) or "detailed" (wizard)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by registration method.",
	},
	[]string{"method"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UploadsRejectedTotal counts files refused by the size cap or allow-list.
// Label:
//   - field: the upload field ("resume" or "evidence")
var UploadsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_rejected_total",
		Help:      "Total number of uploads rejected by validation, by field.",
	},
	[]string{"field"},
)

// SubmissionsTotal counts accepted visitor submissions.
// Label:
//   - kind: "lead", "message", "application", or "fraud_report"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of visitor submissions stored, by kind.",
	},
	[]string{"kind"},
)
