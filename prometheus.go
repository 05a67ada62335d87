package vector

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector aggregates the storage activity of any number of vectors into
// Prometheus metrics. A nil *Collector records nothing.
type Collector struct {
	allocations    prometheus.Counter
	allocatedBytes prometheus.Counter
	releasedBytes  prometheus.Counter
	reservedBytes  prometheus.Gauge
	failures       *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with
// registerer. If registerer is nil, metrics are not registered.
func NewCollector(registerer prometheus.Registerer, namespace, subsystem string) *Collector {
	c := Collector{
		allocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocations_total",
			Help:      "Number of backing buffers acquired",
		}),
		allocatedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocated_bytes_total",
			Help:      "Bytes of backing storage acquired",
		}),
		releasedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "released_bytes_total",
			Help:      "Bytes of backing storage released",
		}),
		reservedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reserved_bytes",
			Help:      "Bytes of backing storage currently held",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocation_failures_total",
			Help:      "Number of failed storage requests",
		}, []string{"reason"}),
	}

	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "vector"},
			registerer,
		)
		registerer.MustRegister(
			c.allocations,
			c.allocatedBytes,
			c.releasedBytes,
			c.reservedBytes,
			c.failures,
		)
	}

	return &c
}

func (c *Collector) observeAlloc(bytes int) {
	if c == nil || bytes == 0 {
		return
	}
	c.allocations.Inc()
	c.allocatedBytes.Add(float64(bytes))
	c.reservedBytes.Add(float64(bytes))
}

func (c *Collector) observeRelease(bytes int) {
	if c == nil || bytes == 0 {
		return
	}
	c.releasedBytes.Add(float64(bytes))
	c.reservedBytes.Sub(float64(bytes))
}

func (c *Collector) observeFailure(err error) {
	if c == nil {
		return
	}
	reason := "length"
	if errors.Is(err, ErrOutOfMemory) {
		reason = "out_of_memory"
	}
	c.failures.WithLabelValues(reason).Inc()
}
