//go:build unix

package region

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Alloc returns a zeroed backing region of exactly size bytes, backed by an
// anonymous private mapping, and a release function that unmaps it.
//
// The caller must not use the region, or any structure bound to it, after
// calling release. Releasing twice is a no-op.
func Alloc(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, ErrBadSize
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, err
	}
	release := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data[:size:size], release, nil
}
