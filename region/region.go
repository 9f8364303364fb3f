// Package region provides backing regions for the fixed-capacity
// structures in this module.
//
// Every structure here borrows a caller-owned byte region and never
// allocates; where that region comes from is the caller's business. Any
// []byte works - a stack array, a global, a slice from make. This package
// covers the case where the region should live outside the Go heap: on
// unix systems Alloc returns a zeroed, page-aligned anonymous mapping that
// the garbage collector never scans or moves, with a release function to
// unmap it. On other platforms it falls back to an ordinary heap
// allocation whose release is a no-op.
package region

import "errors"

// ErrBadSize indicates a non-positive region size.
var ErrBadSize = errors.New("region: size must be positive")
