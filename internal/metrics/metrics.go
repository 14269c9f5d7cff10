// Package metrics provides Prometheus metrics collection for the order service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OrderValidationsTotal counts checkout validations by outcome
	// ("accepted" or the failure kind).
	OrderValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_validations_total",
			Help: "Total number of order validations",
		},
		[]string{"outcome"},
	)

	// OrderValidationDuration tracks how long a full order validation takes.
	OrderValidationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_validation_duration_seconds",
			Help:    "Order validation duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// ItemsConfiguredTotal counts item configuration attempts per category.
	ItemsConfiguredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "items_configured_total",
			Help: "Total number of menu items configured",
		},
		[]string{"category", "outcome"},
	)

	// OrdersPlacedTotal counts persisted orders by payment method.
	OrdersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Total number of orders placed",
		},
		[]string{"payment_method"},
	)

	// OrderValue tracks the amount charged per placed order.
	OrderValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_value_dollars",
			Help:    "Amount charged per placed order in dollars",
			Buckets: []float64{5, 10, 20, 35, 50, 75, 100, 150, 250},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
		[]string{"cache"},
	)

	// CircuitBreakerState reports 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordOrderValidation records the outcome and latency of one validation.
func RecordOrderValidation(duration time.Duration, outcome string) {
	OrderValidationDuration.Observe(duration.Seconds())
	OrderValidationsTotal.WithLabelValues(outcome).Inc()
}

// RecordItemConfigured records one configuration attempt for category.
func RecordItemConfigured(category, outcome string) {
	ItemsConfiguredTotal.WithLabelValues(category, outcome).Inc()
}

// RecordOrderPlaced records a persisted order and the amount charged.
func RecordOrderPlaced(paymentMethod string, charged decimal.Decimal) {
	OrdersPlacedTotal.WithLabelValues(paymentMethod).Inc()
	OrderValue.Observe(charged.InexactFloat64())
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(cache string, size, capacity int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
	CacheCapacity.WithLabelValues(cache).Set(float64(capacity))
}

// SetCircuitBreakerState publishes the numeric state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
