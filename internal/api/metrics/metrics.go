// Package metrics defines and registers all custom Prometheus metrics for
// the employee directory API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry via promauto at
// package load; the echoprometheus handler on /metrics exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// EmployeesCreatedTotal counts successfully created employee records.
var EmployeesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_created_total",
		Help:      "Total number of employee records created.",
	},
)

// AuthAttemptsTotal counts authentication attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// QueriesTotal counts directory listing queries.
// Label:
//   - criteria: "none", "byEmailDomain", "byRole", or "byAge"
var QueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Total number of directory listing queries, by criteria.",
	},
	[]string{"criteria"},
)

// ManagerBindingsTotal counts manager relationship changes.
// Label:
//   - action: "bind" or "unbind"
var ManagerBindingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "manager_bindings_total",
		Help:      "Total number of manager bind/unbind operations applied.",
	},
	[]string{"action"},
)

// DirectoryCleansTotal counts bulk delete-all invocations.
var DirectoryCleansTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cleans_total",
		Help:      "Total number of directory clean (delete-all) operations.",
	},
)
