// Package metrics defines and registers all custom Prometheus metrics for
// the capabilities API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// via promauto on first import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "capabilities"

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

// RosterMutationsTotal counts roster mutation attempts.
// Labels:
//   - action: "register" or "unregister"
//   - result: "success", "not_found", "forbidden", or "conflict"
var RosterMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roster_mutations_total",
		Help:      "Total number of roster mutation attempts, by action and result.",
	},
	[]string{"action", "result"},
)

// RegistrationRequestsTotal counts self-service registration requests.
var RegistrationRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_requests_total",
		Help:      "Total number of self-service registration requests received.",
	},
)

// AuditEventsTotal counts audit events by delivery outcome.
// Label:
//   - result: "enqueued", "dropped", or "failed"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, by delivery outcome.",
	},
	[]string{"result"},
)
