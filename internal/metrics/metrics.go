// Package metrics exposes Prometheus counters for ledger operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TripsCreated counts trips created since process start.
	TripsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitease_trips_created_total",
		Help: "Number of trips created.",
	})

	// ExpensesRecorded counts expenses recorded, labeled by category.
	ExpensesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitease_expenses_recorded_total",
		Help: "Number of expenses recorded.",
	}, []string{"category"})

	// DebtsSettled counts settlement operations that zeroed a balance.
	DebtsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitease_debts_settled_total",
		Help: "Number of debt settlements performed.",
	})
)
