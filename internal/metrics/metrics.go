package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "combicalc"

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics records calculation metrics on a private registry. A private
// registry keeps repeated construction in tests free of duplicate
// registration panics.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	resultBits   *prometheus.GaugeVec
	mismatches   prometheus.Counter
	heapAlloc    prometheus.Gauge
	gcCycles     prometheus.Gauge
	hostCPU      prometheus.Gauge
	hostMemory   prometheus.Gauge
}

// New creates a Metrics instance with all collectors registered, including
// the Go runtime collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Number of calculations by operation, algorithm and status.",
		}, []string{"operation", "algorithm", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Duration of calculations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 9),
		}, []string{"operation", "algorithm"}),
		resultBits: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "result_bits",
			Help:      "Bit length of the last result per algorithm.",
		}, []string{"algorithm"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_mismatches_total",
			Help:      "Number of comparisons where algorithms disagreed.",
		}),
		heapAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heap_alloc_bytes",
			Help:      "Heap bytes in use after the last run.",
		}),
		gcCycles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gc_cycles",
			Help:      "Completed GC cycles after the last run.",
		}),
		hostCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "host_cpu_percent",
			Help:      "Host-wide CPU usage sampled at the end of the run.",
		}),
		hostMemory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "host_memory_percent",
			Help:      "Host-wide memory usage sampled at the end of the run.",
		}),
	}

	m.registry.MustRegister(
		m.calculations,
		m.duration,
		m.resultBits,
		m.mismatches,
		m.heapAlloc,
		m.gcCycles,
		m.hostCPU,
		m.hostMemory,
		collectors.NewGoCollector(),
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveCalculation records one finished calculation.
//
// Parameters:
//   - operation: "binomial" or "reduce".
//   - algorithm: The strategy key, or the operation name when there is only one.
//   - d: The calculation duration.
//   - err: The calculation error, nil on success.
func (m *Metrics) ObserveCalculation(operation, algorithm string, d time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.calculations.WithLabelValues(operation, algorithm, status).Inc()
	m.duration.WithLabelValues(operation, algorithm).Observe(d.Seconds())
}

// ObserveResultBits records the bit length of a result.
func (m *Metrics) ObserveResultBits(algorithm string, bits int) {
	m.resultBits.WithLabelValues(algorithm).Set(float64(bits))
}

// IncMismatch counts a comparison where results disagreed.
func (m *Metrics) IncMismatch() {
	m.mismatches.Inc()
}

// ObserveMemory publishes a memory snapshot.
func (m *Metrics) ObserveMemory(s MemorySnapshot) {
	m.heapAlloc.Set(float64(s.HeapAlloc))
	m.gcCycles.Set(float64(s.NumGC))
}

// ObserveHost publishes host-wide CPU and memory usage percentages.
func (m *Metrics) ObserveHost(cpuPercent, memPercent float64) {
	m.hostCPU.Set(cpuPercent)
	m.hostMemory.Set(memPercent)
}

// WriteTextfile writes every metric in the Prometheus text format, for the
// node_exporter textfile collector. The file is written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
