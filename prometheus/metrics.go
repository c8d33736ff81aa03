package prometheus

import (
	"time"

	"storefront-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthErrorsCounter   prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Storefront metrics
	CatalogQueriesCounter prometheus.CounterVec
	ProductViewsCounter   prometheus.CounterVec
	CartOperationsCounter prometheus.CounterVec
	CheckoutsCounter      prometheus.Counter
	CheckoutRevenue       prometheus.Counter

	// Admin metrics
	ProductOperationsCounter prometheus.CounterVec
	OrderOperationsCounter   prometheus.CounterVec
	ProductInventoryGauge    prometheus.GaugeVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"reason"},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	CatalogQueriesCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_catalog_queries_total",
			Help: "Total number of catalog queries",
		},
		[]string{"sort"},
	)

	ProductViewsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_views_total",
			Help: "Total number of product views",
		},
		[]string{"product_id", "category"},
	)

	CartOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation", "mode"},
	)

	CheckoutsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_checkouts_total",
			Help: "Total number of completed checkouts",
		},
	)

	CheckoutRevenue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_checkout_revenue_total",
			Help: "Accumulated order totals from completed checkouts",
		},
	)

	ProductOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_operations_total",
			Help: "Total number of admin product operations",
		},
		[]string{"operation"},
	)

	OrderOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_order_operations_total",
			Help: "Total number of admin order operations",
		},
		[]string{"operation"},
	)

	ProductInventoryGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_product_inventory",
			Help: "Current inventory level for products",
		},
		[]string{"product_id", "product_name", "category"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordAuthError increments the auth error counter for a reason
func RecordAuthError(reason string) {
	AuthErrorsCounter.WithLabelValues(reason).Inc()
}

// RecordCartOperation increments the counter for cart operations
func RecordCartOperation(operation, mode string) {
	CartOperationsCounter.WithLabelValues(operation, mode).Inc()
}

// RecordProductOperation increments the counter for admin product operations
func RecordProductOperation(operation string) {
	ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordOrderOperation increments the counter for admin order operations
func RecordOrderOperation(operation string) {
	OrderOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordCheckout records a completed checkout and its revenue
func RecordCheckout(total float64) {
	CheckoutsCounter.Inc()
	CheckoutRevenue.Add(total)
}

// UpdateProductInventory updates the gauge for product inventory
func UpdateProductInventory(productID string, productName string, category string, count float64) {
	ProductInventoryGauge.WithLabelValues(productID, productName, category).Set(count)
}
