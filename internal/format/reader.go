package format

import (
	"fmt"
	"math"

	"github.com/joshuapare/pathtree/internal/buf"
)

// Reader decodes primitives from a blob with bounds checks on every read.
type Reader struct {
	data []byte
	off  int
	hdr  Header
}

// NewReader validates the header of data and positions the reader at the
// root node.
func NewReader(data []byte) (*Reader, error) {
	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	return &Reader{data: data, off: HeaderSize, hdr: hdr}, nil
}

// Header returns the parsed header.
func (r *Reader) Header() Header { return r.hdr }

// Offset returns the current read position.
func (r *Reader) Offset() int { return r.off }

// Done reports whether every byte has been consumed.
func (r *Reader) Done() error {
	if r.off != len(r.data) {
		return fmt.Errorf("offset 0x%x of 0x%x: %w", r.off, len(r.data), ErrTrailingData)
	}
	return nil
}

func (r *Reader) take(n int) ([]byte, error) {
	b, ok := buf.Slice(r.data, r.off, n)
	if !ok {
		return nil, fmt.Errorf("offset 0x%x: need %d bytes: %w", r.off, n, ErrTruncated)
	}
	r.off += n
	return b, nil
}

// Byte reads a single byte.
func (r *Reader) Byte() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return buf.U32LE(b), nil
}

// U64 reads a little-endian uint64.
func (r *Reader) U64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return buf.U64LE(b), nil
}

// I64 reads a little-endian int64.
func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

// F32 reads an IEEE 754 float32.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	return math.Float32frombits(v), err
}

// F64 reads an IEEE 754 float64.
func (r *Reader) F64() (float64, error) {
	v, err := r.U64()
	return math.Float64frombits(v), err
}

// String reads a length-prefixed string.
func (r *Reader) String() (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// NodeStart reads the entry count of a node and checks that the remaining
// bytes can hold that many entries.
func (r *Reader) NodeStart() (int, error) {
	n, err := r.U32()
	if err != nil {
		return 0, err
	}
	count := int(n)
	if _, err := buf.CheckListBounds(len(r.data), r.off, count, MinEntrySize); err != nil {
		return 0, fmt.Errorf("node at 0x%x with %d entries: %w: %w", r.off, count, ErrTruncated, err)
	}
	return count, nil
}
