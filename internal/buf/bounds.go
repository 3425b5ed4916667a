package buf

import (
	"fmt"
	"math"
)

// CheckListBounds validates that count entries of at least entrySize bytes
// fit in a buffer of bufLen bytes starting at offset, and returns the end
// offset.
func CheckListBounds(bufLen, offset, count, entrySize int) (int, error) {
	if offset < 0 || count < 0 || entrySize < 0 {
		return 0, fmt.Errorf("negative bound: offset=%d count=%d size=%d", offset, count, entrySize)
	}
	if entrySize > 0 && count > (math.MaxInt-offset)/entrySize {
		return 0, fmt.Errorf("overflow: offset=%d + count=%d * size=%d", offset, count, entrySize)
	}
	end := offset + count*entrySize
	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return end, nil
}

// Slice returns b[off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) || n > len(b)-off {
		return nil, false
	}
	return b[off : off+n], true
}
