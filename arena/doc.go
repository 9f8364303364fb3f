// Package arena implements a LIFO bump allocator over a caller-owned region.
//
// Typical usage: take a Mark before a unit of work, allocate freely during
// it, then FreeTo the mark (or Reset) for O(1) cleanup. Individual
// allocations cannot be freed; the whole point of the LIFO discipline is
// that reclamation is a single offset rewind with no bookkeeping.
//
//	a := arena.New(make([]byte, 4096))
//	m := a.Mark()
//	_, scratch, err := a.Alloc(256)
//	if err != nil {
//	    return err
//	}
//	// ... use scratch ...
//	a.FreeTo(m) // scratch is now invalid
//
// The arena owns no storage: the caller supplies the region and controls its
// lifetime. Nothing is allocated after New.
package arena
