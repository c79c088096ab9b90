package monitoring

import (
	"sync"
	"time"
)

// Monitor collects lightweight operational metrics exposed on the
// /api/v1/metrics endpoint.
type Monitor struct {
	metrics      map[string]interface{}
	counters     map[string]int64
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		counters:  make(map[string]int64),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// RecordRequest increments the request counter for a route.
func (m *Monitor) RecordRequest(route string) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.counters["requests_"+route]++
}

// RecordSuggestionRun records the outcome of one suggestion pass: how
// many ingredients were expiring and how long scoring took.
func (m *Monitor) RecordSuggestionRun(route string, expiringCount int, elapsed time.Duration) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	prefix := route + "_"
	m.metrics[prefix+"expiring_count"] = expiringCount
	m.metrics[prefix+"duration_ms"] = elapsed.Milliseconds()
	m.metrics[prefix+"last_run"] = time.Now().Format(time.RFC3339)
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics)+len(m.counters)+1)
	for k, v := range m.metrics {
		metrics[k] = v
	}
	for k, v := range m.counters {
		metrics[k] = v
	}

	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
	m.counters = make(map[string]int64)
}
