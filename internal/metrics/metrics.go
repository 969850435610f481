package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "featuresgym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "featuresgym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "featuresgym_schedule_submissions_total",
			Help: "Total number of schedule submissions by terminal state",
		},
		[]string{"state"},
	)

	EntriesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "featuresgym_schedule_entries_created_total",
			Help: "Total number of schedule entries created",
		},
	)

	DatesSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "featuresgym_schedule_dates_skipped_total",
			Help: "Total number of dates skipped as duplicate bookings",
		},
	)

	DatesFullTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "featuresgym_schedule_dates_full_total",
			Help: "Total number of dates rejected because the slot was at capacity",
		},
	)

	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "featuresgym_notifications_sent_total",
			Help: "Total number of notifications sent",
		},
		[]string{"type", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "featuresgym_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSubmission(state string, created, skipped, full int) {
	SubmissionsTotal.WithLabelValues(state).Inc()
	EntriesCreatedTotal.Add(float64(created))
	DatesSkippedTotal.Add(float64(skipped))
	DatesFullTotal.Add(float64(full))
}

func RecordNotification(notifType, status string) {
	NotificationsSentTotal.WithLabelValues(notifType, status).Inc()
}
