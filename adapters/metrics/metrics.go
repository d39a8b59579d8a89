// Package metrics provides Prometheus metrics collection for coniql.
package metrics

import (
	"strings"
	"time"

	"github.com/artpar/coniql/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coniql"

// Collector holds all Prometheus metrics for coniql.
type Collector struct {
	// Request metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// GraphQL metrics
	GraphQLOperations *prometheus.CounterVec
	WSConnections     *prometheus.GaugeVec

	// Channel metrics
	ChannelFetches       *prometheus.CounterVec
	ChannelFetchDuration *prometheus.HistogramVec
	PutBatches           *prometheus.CounterVec
	PutBatchSize         *prometheus.HistogramVec
	PutDuration          *prometheus.HistogramVec
	SubscriptionsActive  *prometheus.GaugeVec

	// Config metrics
	ConfigReloads      prometheus.Counter
	ConfigReloadErrors prometheus.Counter
	ConfigLastReload   prometheus.Gauge
}

// New creates a new metrics collector registered with the default registry.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a new metrics collector with a custom registry.
// Useful for testing to avoid global state.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),

		GraphQLOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graphql_operations_total",
				Help:      "GraphQL operations by type and result",
			},
			[]string{"operation", "result"},
		),
		WSConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "websocket_connections",
				Help:      "Open GraphQL websocket connections by subprotocol",
			},
			[]string{"protocol"},
		),

		ChannelFetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "channel_fetches_total",
				Help:      "Plugin channel fetches by transport and outcome",
			},
			[]string{"transport", "outcome"},
		),
		ChannelFetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "channel_fetch_duration_seconds",
				Help:      "Plugin channel fetch duration in seconds",
				Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"transport"},
		),
		PutBatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "put_batches_total",
				Help:      "Batched channel writes by transport and outcome",
			},
			[]string{"transport", "outcome"},
		),
		PutBatchSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "put_batch_size",
				Help:      "Number of channels per batched write",
				Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
			},
			[]string{"transport"},
		),
		PutDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "put_duration_seconds",
				Help:      "Batched channel write duration in seconds",
				Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"transport"},
		),
		SubscriptionsActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "subscriptions_active",
				Help:      "Live channel subscriptions by transport",
			},
			[]string{"transport"},
		),

		ConfigReloads: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reloads_total",
				Help:      "Total number of successful config reloads",
			},
		),
		ConfigReloadErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reload_errors_total",
				Help:      "Total number of config reload errors",
			},
		),
		ConfigLastReload: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "config_last_reload_timestamp",
				Help:      "Unix timestamp of last successful config reload",
			},
		),
	}
}

// ObserveFetch implements ports.ChannelMetrics.
func (c *Collector) ObserveFetch(transport, outcome string, d time.Duration) {
	c.ChannelFetches.WithLabelValues(transport, outcome).Inc()
	c.ChannelFetchDuration.WithLabelValues(transport).Observe(d.Seconds())
}

// ObserveBatch implements ports.ChannelMetrics.
func (c *Collector) ObserveBatch(transport, outcome string, size int, d time.Duration) {
	c.PutBatches.WithLabelValues(transport, outcome).Inc()
	c.PutBatchSize.WithLabelValues(transport).Observe(float64(size))
	c.PutDuration.WithLabelValues(transport).Observe(d.Seconds())
}

// SubscriptionOpened implements ports.ChannelMetrics.
func (c *Collector) SubscriptionOpened(transport string) {
	c.SubscriptionsActive.WithLabelValues(transport).Inc()
}

// SubscriptionClosed implements ports.ChannelMetrics.
func (c *Collector) SubscriptionClosed(transport string) {
	c.SubscriptionsActive.WithLabelValues(transport).Dec()
}

// ObserveGraphQL counts one GraphQL operation by type and result.
func (c *Collector) ObserveGraphQL(operation, result string) {
	c.GraphQLOperations.WithLabelValues(operation, result).Inc()
}

// ConfigReloaded records the outcome of a configuration reload.
func (c *Collector) ConfigReloaded(err error, at time.Time) {
	if err != nil {
		c.ConfigReloadErrors.Inc()
		return
	}
	c.ConfigReloads.Inc()
	c.ConfigLastReload.Set(float64(at.Unix()))
}

var _ ports.ChannelMetrics = (*Collector)(nil)

// NormalizePath reduces cardinality for requests that did not match a route
// pattern. Channel ids in REST paths collapse to {id}.
func NormalizePath(path string) string {
	const channels = "/api/v1/channels/"
	if strings.HasPrefix(path, channels) && len(path) > len(channels) {
		return channels + "{id}"
	}
	if len(path) > 50 {
		return path[:50] + "..."
	}
	return path
}
