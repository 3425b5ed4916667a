package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/pathtree/internal/buf"
)

// Header is the fixed prefix of a tree blob.
//
//	Offset  Size  Description
//	------  ----  -------------------------------
//	 0x000   4    'p' 't' 'r' 'e'
//	 0x004   2    Format version
//	 0x006   2    Flags (reserved, zero)
//
// The root node follows immediately.
type Header struct {
	Version uint16
	Flags   uint16
}

// ParseHeader validates and extracts the header fields.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("tree header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[:SignatureSize], Signature) {
		return Header{}, fmt.Errorf("tree header: %w", ErrSignatureMismatch)
	}
	h := Header{
		Version: buf.U16LE(b[VersionOffset:]),
		Flags:   buf.U16LE(b[FlagsOffset:]),
	}
	if h.Version == 0 || h.Version > Version {
		return Header{}, fmt.Errorf("tree header: version %d: %w", h.Version, ErrVersion)
	}
	return h, nil
}

// AppendHeader appends a header for the current Version to dst.
func AppendHeader(dst []byte) []byte {
	dst = append(dst, Signature...)
	dst = buf.AppendU16LE(dst, Version)
	return buf.AppendU16LE(dst, 0)
}
