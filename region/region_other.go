//go:build !unix

package region

// Alloc returns a zeroed backing region of exactly size bytes from the Go
// heap, and a no-op release function.
func Alloc(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, ErrBadSize
	}
	return make([]byte, size), func() error { return nil }, nil
}
