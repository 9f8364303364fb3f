package fixedmap

import "errors"

var (
	// ErrParams indicates a non-positive bucket count, key length, or value size.
	ErrParams = errors.New("fixedmap: invalid table parameters")

	// ErrRegionSmall indicates the region cannot hold the requested table.
	ErrRegionSmall = errors.New("fixedmap: region too small for table")

	// ErrValueSize indicates a value whose length differs from the declared
	// value size.
	ErrValueSize = errors.New("fixedmap: wrong value size")

	// ErrTableFull indicates no bucket could be found for the key in a full
	// probe pass.
	ErrTableFull = errors.New("fixedmap: table full")
)
