package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   prometheus.CounterVec
	HTTPRequestDuration prometheus.HistogramVec

	// Scheduling metrics
	AppointmentsCreatedCounter prometheus.CounterVec
	SlotConflictsCounter       prometheus.Counter
	AvailabilityCacheCounter   prometheus.CounterVec

	// Billing metrics
	InvoicesCreatedCounter  prometheus.Counter
	PaymentsRecordedCounter prometheus.CounterVec
	OverdueSweepGauge       prometheus.Gauge

	// Database operation metrics
	DBOperationDuration prometheus.HistogramVec
)

// Init registers the Prometheus collectors under the given prefix.
func Init(prefix string) {
	HTTPRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AppointmentsCreatedCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_appointments_created_total",
			Help: "Total number of appointments created",
		},
		[]string{"origin"},
	)

	SlotConflictsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_slot_conflicts_total",
			Help: "Total number of bookings rejected for an occupied slot",
		},
	)

	AvailabilityCacheCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_availability_cache_total",
			Help: "Availability cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	InvoicesCreatedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_invoices_created_total",
			Help: "Total number of invoices created",
		},
	)

	PaymentsRecordedCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_payments_recorded_total",
			Help: "Total number of payments recorded, by method",
		},
		[]string{"method"},
	)

	OverdueSweepGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_overdue_sweep_marked",
			Help: "Invoices marked OVERDUE by the last nightly sweep",
		},
	)

	DBOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
}

// TrackDBOperation returns a function that records the duration of a
// database operation.
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		DBOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}

func RecordAppointmentCreated(origin string) {
	AppointmentsCreatedCounter.WithLabelValues(origin).Inc()
}

func RecordPayment(method string) {
	PaymentsRecordedCounter.WithLabelValues(method).Inc()
}

func RecordCacheLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	AvailabilityCacheCounter.WithLabelValues(outcome).Inc()
}
