// Package ring implements a fixed-capacity circular byte queue over a
// caller-owned backing region.
//
// # Overview
//
// The queue manages only cursors and a count; the storage itself is a byte
// slice supplied by the caller at New. Nothing is allocated after
// initialization, which makes the queue suitable for memory-constrained or
// real-time embeddings where dynamic allocation is disallowed.
//
// Ordering is strict FIFO: the Nth successful Read returns exactly the byte
// accepted by the Nth successful Write. There is no overwrite-on-full policy;
// Write fails with ErrFull and the producer decides what to drop.
//
// # Usage
//
//	storage := make([]byte, 64)
//	q, err := ring.New(storage)
//	if err != nil {
//	    return err
//	}
//	for _, b := range payload {
//	    if err := q.Write(b); err != nil {
//	        break // full: apply backpressure
//	    }
//	}
//
// # Thread Safety
//
// Queue instances are not thread-safe. Callers must synchronize access
// externally.
package ring
