package ring

// Queue is a fixed-capacity FIFO byte queue over a caller-owned region.
// The region bytes are reused circularly; the queue never allocates.
//
// Queue instances are not safe for concurrent use. Callers must synchronize
// access externally, or restrict an instance to a single producer and a
// single consumer with external ordering.
type Queue struct {
	region []byte
	write  int // next write position, always < len(region)
	read   int // next read position, always < len(region)
	count  int // occupied bytes, 0..len(region)
}

// New binds a queue to region. The queue's capacity is len(region); the
// caller must keep the region alive for as long as the queue is used.
func New(region []byte) (*Queue, error) {
	if len(region) == 0 {
		return nil, ErrNoRegion
	}
	return &Queue{region: region}, nil
}

// Empty reports whether the queue holds no bytes.
func (q *Queue) Empty() bool { return q.count == 0 }

// Full reports whether the queue has no free space.
func (q *Queue) Full() bool { return q.count == len(q.region) }

// Len returns the number of bytes currently queued.
func (q *Queue) Len() int { return q.count }

// Free returns the number of bytes that can be written before the queue is full.
func (q *Queue) Free() int { return len(q.region) - q.count }

// Cap returns the queue capacity (the length of the backing region).
func (q *Queue) Cap() int { return len(q.region) }

// Write appends one byte. Returns ErrFull, with no state change, when the
// queue is at capacity. Writers must handle the failure; bytes are never
// overwritten.
func (q *Queue) Write(b byte) error {
	if q.count == len(q.region) {
		return ErrFull
	}
	q.region[q.write] = b
	q.write = q.next(q.write)
	q.count++
	return nil
}

// Read removes and returns the oldest byte. Returns ErrEmpty when the queue
// holds nothing.
func (q *Queue) Read() (byte, error) {
	if q.count == 0 {
		return 0, ErrEmpty
	}
	b := q.region[q.read]
	q.read = q.next(q.read)
	q.count--
	return b, nil
}

// WriteBytes appends as much of p as fits and returns the number of bytes
// written. A short count means the queue filled up; the accepted prefix is
// queued in order.
func (q *Queue) WriteBytes(p []byte) int {
	n := min(len(p), q.Free())
	if n == 0 {
		return 0
	}
	first := min(n, len(q.region)-q.write)
	copy(q.region[q.write:], p[:first])
	copy(q.region, p[first:n])
	q.write = (q.write + n) % len(q.region)
	q.count += n
	return n
}

// ReadBytes fills p with the oldest queued bytes in FIFO order and returns
// the number of bytes copied. A short count means the queue drained.
func (q *Queue) ReadBytes(p []byte) int {
	n := min(len(p), q.count)
	if n == 0 {
		return 0
	}
	first := min(n, len(q.region)-q.read)
	copy(p[:first], q.region[q.read:])
	copy(p[first:n], q.region)
	q.read = (q.read + n) % len(q.region)
	q.count -= n
	return n
}

// Reset discards all queued bytes and returns both cursors to the region
// start. The backing bytes are left as-is.
func (q *Queue) Reset() {
	q.write = 0
	q.read = 0
	q.count = 0
}

func (q *Queue) next(cursor int) int {
	cursor++
	if cursor == len(q.region) {
		return 0
	}
	return cursor
}
