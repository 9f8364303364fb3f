package arena

import "github.com/phrzdgal/data-struct-library/internal/buf"

// Mark is an opaque rewind point inside an arena. Marks are offsets, not
// raw addresses, and are only meaningful for the arena that issued them.
type Mark int

// Arena is a LIFO bump allocator over a caller-owned region. Allocation
// advances a single top offset; memory is reclaimed only by rewinding that
// offset with FreeTo or Reset.
//
// Rewinding invalidates every slice handed out at or after the rewind point.
// This is an unchecked trust contract: the arena cannot detect use of an
// invalidated slice, and such use silently aliases later allocations.
//
// Arena instances are not thread-safe. Callers must synchronize access
// externally.
type Arena struct {
	region []byte
	top    int // next allocation offset, 0..len(region)

	allocs uint64
	resets uint64
}

// New binds an arena to region with top at zero. The caller must keep the
// region alive for as long as the arena or any slice allocated from it is in
// use. A nil or empty region yields an arena whose every Alloc fails.
func New(region []byte) *Arena {
	return &Arena{region: region}
}

// Alloc reserves the next n bytes of the region and returns the rewind mark
// for the allocation start together with the reserved sub-slice. Returns
// ErrBadSize when n is negative and ErrNoSpace when fewer than n bytes
// remain, including requests so large that top+n would overflow; no state
// changes on failure.
//
// Live allocations never alias: each call returns a disjoint sub-slice, and
// the slice's capacity is clipped so appends cannot spill into later
// allocations.
func (a *Arena) Alloc(n int) (Mark, []byte, error) {
	if n < 0 {
		return 0, nil, ErrBadSize
	}
	p, ok := buf.Slice(a.region, a.top, n)
	if !ok {
		return 0, nil, ErrNoSpace
	}
	m := Mark(a.top)
	a.top += n
	a.allocs++
	return m, p, nil
}

// Mark returns a rewind point for the current top. FreeTo with this mark
// releases everything allocated after the call.
func (a *Arena) Mark() Mark {
	return Mark(a.top)
}

// FreeTo rewinds the top to m, releasing every allocation made at or after
// that mark. Returns ErrBadMark when m is negative or beyond the current top.
//
// The caller must pass a mark obtained from this arena and must not rewind
// to a mark that an earlier FreeTo or Reset already invalidated; the arena
// can only range-check the offset, not its provenance.
func (a *Arena) FreeTo(m Mark) error {
	if m < 0 || int(m) > a.top {
		return ErrBadMark
	}
	a.top = int(m)
	return nil
}

// Reset rewinds the top to zero, releasing every outstanding allocation.
func (a *Arena) Reset() {
	a.top = 0
	a.resets++
}
