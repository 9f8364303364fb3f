package pool

import "errors"

var (
	// ErrBlockSize indicates a block size too small to hold the intrusive
	// chain link.
	ErrBlockSize = errors.New("pool: block size below link width")

	// ErrRegionSmall indicates a region too small for even one block.
	ErrRegionSmall = errors.New("pool: region smaller than one block")

	// ErrExhausted indicates no free block is available.
	ErrExhausted = errors.New("pool: no free blocks")

	// ErrBadRef indicates a block reference that is out of range or not
	// aligned to a block boundary.
	ErrBadRef = errors.New("pool: bad block reference")
)
