package vector

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := NewCollector(registry, "test", "vec")
	v := New[int64](WithCollector(c))

	require.NoError(t, v.Reserve(4))
	require.Equal(t, 1.0, testutil.ToFloat64(c.allocations))
	require.Equal(t, 32.0, testutil.ToFloat64(c.allocatedBytes))
	require.Equal(t, 32.0, testutil.ToFloat64(c.reservedBytes))

	for i := range 5 {
		require.NoError(t, v.PushBack(int64(i)))
	}
	require.Equal(t, 2.0, testutil.ToFloat64(c.allocations))
	require.Equal(t, 96.0, testutil.ToFloat64(c.allocatedBytes))
	require.Equal(t, 32.0, testutil.ToFloat64(c.releasedBytes))
	require.Equal(t, 64.0, testutil.ToFloat64(c.reservedBytes))

	v.Release()
	require.Equal(t, 96.0, testutil.ToFloat64(c.releasedBytes))
	require.Equal(t, 0.0, testutil.ToFloat64(c.reservedBytes))
}

func TestCollectorFailures(t *testing.T) {
	c := NewCollector(nil, "", "")
	v := Of[int64](1)
	v.opts.collector = c

	require.ErrorIs(t, v.Reserve(v.MaxSize()), ErrOutOfMemory)
	require.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues("out_of_memory")))

	_, err := NewSized[int64](-1, WithCollector(c))
	require.ErrorIs(t, err, ErrLengthExceeded)
	require.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues("length")))
}

func TestCollectorShared(t *testing.T) {
	c := NewCollector(nil, "", "")
	a := New[int32](WithCollector(c))
	b := New[int32](WithCollector(c))

	require.NoError(t, a.Reserve(2))
	require.NoError(t, b.Reserve(3))
	require.Equal(t, 20.0, testutil.ToFloat64(c.reservedBytes))

	clone, err := b.Clone()
	require.NoError(t, err)
	require.Equal(t, 20.0, testutil.ToFloat64(c.reservedBytes), "empty clone reserved storage")

	require.NoError(t, clone.PushBack(1))
	require.Equal(t, 24.0, testutil.ToFloat64(c.reservedBytes))
}

func TestCollectorRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := NewCollector(registry, "test", "vec")

	require.NoError(t, New[int](WithCollector(c)).PushBack(1))
	c.observeFailure(ErrOutOfMemory)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
		for _, m := range f.GetMetric() {
			var component string
			for _, l := range m.GetLabel() {
				if l.GetName() == "component" {
					component = l.GetValue()
				}
			}
			require.Equal(t, "vector", component, "metric %s", f.GetName())
		}
	}
	for _, name := range []string{
		"test_vec_allocations_total",
		"test_vec_allocated_bytes_total",
		"test_vec_released_bytes_total",
		"test_vec_reserved_bytes",
		"test_vec_allocation_failures_total",
	} {
		require.True(t, names[name], "metric %s not registered", name)
	}
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	c.observeAlloc(8)
	c.observeRelease(8)
	c.observeFailure(ErrOutOfMemory)
}
