package ports

import "time"

// MetricsCollector defines the interface for collecting operational
// metrics around evaluations. Implementations integrate with
// observability platforms like Prometheus or OpenTelemetry.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric. Useful for tracking
	// evaluation outcomes, fallbacks, and alignment failures.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)
}
