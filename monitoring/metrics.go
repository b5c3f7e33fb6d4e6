package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	wizardTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_transitions_total",
			Help: "Wizard step transitions by operation and outcome",
		},
		[]string{"operation", "step", "outcome"},
	)

	bulkOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bulk_operations_total",
			Help: "Bulk operations by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	bulkRecipients = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bulk_operation_size",
			Help:    "Number of tickets or recipients per bulk operation",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"action"},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Notification deliveries by outcome",
		},
		[]string{"outcome"},
	)

	activeBoards = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_boards_active",
			Help: "Dashboard boards currently held in memory",
		},
	)
)

func RecordWizardTransition(operation, step, outcome string) {
	wizardTransitions.WithLabelValues(operation, step, outcome).Inc()
}

func RecordBulkOperation(action string, total, failed int, errored bool) {
	outcome := "success"
	switch {
	case errored:
		outcome = "error"
	case failed > 0:
		outcome = "partial"
	}
	bulkOperations.WithLabelValues(action, outcome).Inc()
	bulkRecipients.WithLabelValues(action).Observe(float64(total))
}

func RecordNotifications(successful, failed int) {
	notifications.WithLabelValues("sent").Add(float64(successful))
	notifications.WithLabelValues("failed").Add(float64(failed))
}

func SetActiveBoards(n int) {
	activeBoards.Set(float64(n))
}
