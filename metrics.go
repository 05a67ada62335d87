package vector

// BytesReserved returns the size in bytes of the backing storage.
func (v *Vector[T]) BytesReserved() int {
	return len(v.buf) * elemSize[T]()
}

// BytesInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) BytesInUse() int {
	return v.size * elemSize[T]()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if len(v.buf) == 0 {
		return 0
	}
	return float64(v.size) / float64(len(v.buf))
}

// Reallocations returns how many times the backing storage was replaced
// since the vector was constructed.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.size,
		Cap:           len(v.buf),
		ElemSize:      elemSize[T](),
		BytesReserved: v.BytesReserved(),
		BytesInUse:    v.BytesInUse(),
		Utilization:   v.Utilization(),
		Reallocations: v.reallocs,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Reserved slots
	ElemSize      int     // Bytes per slot
	BytesReserved int     // Size of the backing storage
	BytesInUse    int     // Bytes held by live elements
	Utilization   float64 // Ratio of live elements to capacity (0.0-1.0)
	Reallocations int     // Times the storage was replaced
}
