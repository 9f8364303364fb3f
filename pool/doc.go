// Package pool implements a fixed-block freelist allocator over a
// caller-owned region.
//
// # Overview
//
// New divides the region into equal blocks and threads them onto an
// intrusive free chain: each free block's first bytes store the offset of
// the next free block, so the allocator needs no side storage at all.
// Alloc pops the chain head and Free pushes a block back, both O(1), which
// gives LIFO reuse - the most recently freed block is the next one handed
// out.
//
// The same bytes serve two roles over a block's lifetime: chain link while
// free, opaque payload while handed out. The public API never exposes the
// link; Alloc returns the whole block as payload and the stale link bytes
// may be overwritten immediately.
//
// # Trust contract
//
// Free performs only cheap range and alignment checks. It cannot detect a
// double-free (the chain would then yield the same block twice) or a
// reference fabricated by the caller from another pool. Callers must free
// each allocated block exactly once, to the pool that issued it.
//
// # Usage
//
//	region := make([]byte, 4096)
//	p, err := pool.New(region, 64)
//	if err != nil {
//	    return err
//	}
//	ref, block, err := p.Alloc()
//	if err != nil {
//	    return err // exhausted
//	}
//	// ... use block ...
//	if err := p.Free(ref); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Pool instances are not thread-safe. Callers must synchronize access
// externally.
package pool
