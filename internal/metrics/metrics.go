package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector handles Prometheus metrics for the suggestion service
type Collector struct {
	registry *prometheus.Registry
	metrics  map[string]prometheus.Collector
}

// NewCollector creates a new metrics collector
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestion_requests_total",
			Help: "Number of suggestion requests served",
		},
		[]string{"route", "status"},
	)

	scoringDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "suggestion_scoring_duration_seconds",
			Help:    "Time spent scoring recipes for a request",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	expiringItems := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "inventory_expiring_items",
			Help: "Items expiring inside the suggestion window, by restaurant",
		},
		[]string{"restaurant"},
	)

	inventoryValue := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "inventory_at_risk_value",
			Help: "Stock value expiring within the next week, by restaurant",
		},
		[]string{"restaurant"},
	)

	metrics := map[string]prometheus.Collector{
		"requests":        requestTotal,
		"scoring":         scoringDuration,
		"expiring_items":  expiringItems,
		"inventory_value": inventoryValue,
	}

	for _, metric := range metrics {
		registry.MustRegister(metric)
	}

	return &Collector{
		registry: registry,
		metrics:  metrics,
	}
}

// Registry exposes the underlying registry for the metrics endpoint.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordRequest counts a served request by route and status
func (c *Collector) RecordRequest(route, status string) {
	if counter, ok := c.metrics["requests"].(*prometheus.CounterVec); ok {
		counter.WithLabelValues(route, status).Inc()
	}
}

// RecordScoringDuration records how long a scoring pass took
func (c *Collector) RecordScoringDuration(route string, elapsed time.Duration) {
	if histogram, ok := c.metrics["scoring"].(*prometheus.HistogramVec); ok {
		histogram.WithLabelValues(route).Observe(elapsed.Seconds())
	}
}

// RecordExpiringItems records the expiring-item count for a restaurant
func (c *Collector) RecordExpiringItems(restaurant string, count int) {
	if gauge, ok := c.metrics["expiring_items"].(*prometheus.GaugeVec); ok {
		gauge.WithLabelValues(restaurant).Set(float64(count))
	}
}

// RecordAtRiskValue records the stock value expiring soon for a restaurant
func (c *Collector) RecordAtRiskValue(restaurant string, value float64) {
	if gauge, ok := c.metrics["inventory_value"].(*prometheus.GaugeVec); ok {
		gauge.WithLabelValues(restaurant).Set(value)
	}
}
