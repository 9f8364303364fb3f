package arena

// Cap returns the total capacity of the backing region in bytes.
func (a *Arena) Cap() int { return len(a.region) }

// Used returns the number of bytes currently allocated.
func (a *Arena) Used() int { return a.top }

// Available returns the number of bytes still allocatable.
func (a *Arena) Available() int { return len(a.region) - a.top }

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 for a zero-capacity arena.
func (a *Arena) Utilization() float64 {
	if len(a.region) == 0 {
		return 0
	}
	return float64(a.top) / float64(len(a.region))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		Capacity:    len(a.region),
		InUse:       a.top,
		Allocs:      a.allocs,
		Resets:      a.resets,
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	Capacity    int     // Region size in bytes
	InUse       int     // Bytes currently allocated
	Allocs      uint64  // Successful Alloc calls over the arena's lifetime
	Resets      uint64  // Reset calls over the arena's lifetime
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
