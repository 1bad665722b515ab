package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReturnsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "returns_created_total",
		Help: "Total number of return requests successfully created.",
	})

	ReturnTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "returns_transitions_total",
		Help: "Total number of return status transitions by target status.",
	},
		[]string{"status"},
	)

	RefundsProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "returns_refunds_processed_total",
		Help: "Total number of refunds settled by refund method.",
	},
		[]string{"method"},
	)

	NotificationsQueuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "returns_notifications_queued_total",
		Help: "Total number of notification intents handed to the notifier.",
	},
		[]string{"kind"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "returns_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	OutboxTasksPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "returns_outbox_tasks_published_total",
		Help: "Total number of outbox tasks delivered to the broker.",
	})

	OutboxTasksFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "returns_outbox_tasks_failed_total",
		Help: "Total number of outbox delivery attempts that failed.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "returns_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status code.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"route", "code"},
	)
)
