package ring

import "errors"

var (
	// ErrNoRegion indicates New was given an empty backing region.
	ErrNoRegion = errors.New("ring: backing region is empty")

	// ErrFull indicates a write was attempted on a queue at capacity.
	ErrFull = errors.New("ring: queue is full")

	// ErrEmpty indicates a read was attempted on a queue with no data.
	ErrEmpty = errors.New("ring: queue is empty")
)
