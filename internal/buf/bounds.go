package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for count * stride calculations when carving a region into fixed slots.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// CheckTableBounds validates that count slots of stride bytes fit in a region of
// regionLen bytes. Returns the end offset of the last slot if valid, or an error
// describing the specific failure (overflow or out of bounds).
//
// This is the recommended way to validate a fixed-slot layout before binding it:
//
//	end, err := buf.CheckTableBounds(len(region), buckets, stride)
//	if err != nil {
//	    return fmt.Errorf("table: %w", err)
//	}
//	// Safe to address slots 0..buckets-1 within region[:end]
func CheckTableBounds(regionLen, count, stride int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if stride < 0 {
		return 0, fmt.Errorf("negative stride: %d", stride)
	}

	total, ok := MulOverflowSafe(count, stride)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * stride=%d", count, stride)
	}
	if total > regionLen {
		return 0, fmt.Errorf("bounds: need=%d > len=%d", total, regionLen)
	}
	return total, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b). The
// offset arithmetic is overflow-safe, so a huge n fails cleanly instead of
// wrapping past the bounds check. The result's capacity is clipped to n so
// appends cannot spill into the bytes that follow.
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end:end], true
}
