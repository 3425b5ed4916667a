package format

import (
	"math"

	"github.com/joshuapare/pathtree/internal/buf"
)

// Writer accumulates an encoded blob.
type Writer struct {
	b []byte
}

// NewWriter returns a writer that has already emitted the header.
func NewWriter() *Writer {
	return &Writer{b: AppendHeader(make([]byte, 0, 256))}
}

// Bytes returns the encoded blob.
func (w *Writer) Bytes() []byte { return w.b }

// Byte appends a single byte.
func (w *Writer) Byte(v byte) { w.b = append(w.b, v) }

// U32 appends a little-endian uint32.
func (w *Writer) U32(v uint32) { w.b = buf.AppendU32LE(w.b, v) }

// U64 appends a little-endian uint64.
func (w *Writer) U64(v uint64) { w.b = buf.AppendU64LE(w.b, v) }

// I64 appends a little-endian int64.
func (w *Writer) I64(v int64) { w.U64(uint64(v)) }

// F32 appends the IEEE 754 bits of v.
func (w *Writer) F32(v float32) { w.U32(math.Float32bits(v)) }

// F64 appends the IEEE 754 bits of v.
func (w *Writer) F64(v float64) { w.U64(math.Float64bits(v)) }

// String appends a length-prefixed string.
func (w *Writer) String(s string) {
	w.U32(uint32(len(s)))
	w.b = append(w.b, s...)
}

// NodeStart appends the entry count of a node.
func (w *Writer) NodeStart(count int) { w.U32(uint32(count)) }
