package prometheus

import (
	"time"
	"warehouse-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	LoginAttemptsCounter prometheus.Counter
	LoginSuccessCounter  prometheus.Counter
	AuthErrorsCounter    *prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Ledger operation metrics
	LedgerOperationsCounter prometheus.CounterVec

	// Stock level metrics
	ProductStockGauge prometheus.GaugeVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	LoginAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	LoginSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_success_total",
			Help: "Total number of successful logins",
		},
	)

	AuthErrorsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"reason"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Ledger operation metrics
	LedgerOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_ledger_operations_total",
			Help: "Total number of stock ledger operations",
		},
		[]string{"ledger", "operation"},
	)

	// Stock level metrics, refreshed on every dashboard computation
	ProductStockGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_product_final_stock",
			Help: "Final stock level per product as of the last dashboard computation",
		},
		[]string{"computer_code", "production_type"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordLedgerOperation increments the counter for ledger operations
func RecordLedgerOperation(ledger string, operation string) {
	LedgerOperationsCounter.WithLabelValues(ledger, operation).Inc()
}

// RecordAuthError increments the counter for authentication errors
func RecordAuthError(reason string) {
	AuthErrorsCounter.WithLabelValues(reason).Inc()
}

// UpdateProductStock updates the gauge for a product's computed final stock
func UpdateProductStock(computerCode string, productionType string, finalStock float64) {
	ProductStockGauge.WithLabelValues(computerCode, productionType).Set(finalStock)
}
