package arena

import "errors"

var (
	// ErrNoSpace indicates the region has fewer free bytes than requested.
	ErrNoSpace = errors.New("arena: not enough space")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("arena: size must be non-negative")

	// ErrBadMark indicates a rewind mark outside the currently allocated range.
	ErrBadMark = errors.New("arena: mark out of range")
)
