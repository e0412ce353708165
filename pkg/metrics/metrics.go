// Package metrics holds the prometheus collectors shared by the HTTP
// middleware and the database wrapper.
package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles every collector the service exposes
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal   *prometheus.CounterVec
	DBQueryDuration  *prometheus.HistogramVec
	DBPoolOpenConns  *prometheus.GaugeVec
	DBPoolIdleConns  *prometheus.GaugeVec
	DBPoolInUseConns *prometheus.GaugeVec
	DBPoolWaitCount  *prometheus.GaugeVec
}

// New creates and registers the collectors on the default registry
func New(serviceName string) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		DBQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"service", "operation", "status"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"service", "operation"},
		),
		DBPoolOpenConns: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_open_connections",
				Help: "Open connections in the pool",
			},
			[]string{"service"},
		),
		DBPoolIdleConns: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_idle_connections",
				Help: "Idle connections in the pool",
			},
			[]string{"service"},
		),
		DBPoolInUseConns: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_in_use_connections",
				Help: "Connections currently in use",
			},
			[]string{"service"},
		),
		DBPoolWaitCount: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_wait_count",
				Help: "Total number of connections waited for",
			},
			[]string{"service"},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBPoolOpenConns,
		m.DBPoolIdleConns,
		m.DBPoolInUseConns,
		m.DBPoolWaitCount,
	)

	return m
}

// ObserveHTTPRequest records one handled HTTP request
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(service, method, path).Observe(seconds)
}

// ObserveDBQuery records one database query
func (m *Metrics) ObserveDBQuery(service, operation, status string, seconds float64) {
	m.DBQueriesTotal.WithLabelValues(service, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(service, operation).Observe(seconds)
}

// SetDBPoolStats publishes a snapshot of the connection pool
func (m *Metrics) SetDBPoolStats(service string, stats sql.DBStats) {
	m.DBPoolOpenConns.WithLabelValues(service).Set(float64(stats.OpenConnections))
	m.DBPoolIdleConns.WithLabelValues(service).Set(float64(stats.Idle))
	m.DBPoolInUseConns.WithLabelValues(service).Set(float64(stats.InUse))
	m.DBPoolWaitCount.WithLabelValues(service).Set(float64(stats.WaitCount))
}
