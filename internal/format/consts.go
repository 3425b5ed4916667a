// Package format houses the low-level encoder and decoder for the binary
// tree file format. It knows nothing about trees themselves: callers walk
// their data and emit or consume the primitives defined here.
package format

// Signature is the four-byte signature at the start of every tree blob.
//
//	0x00  'p' 't' 'r' 'e'
var Signature = []byte{'p', 't', 'r', 'e'}

const (
	// Version is the current format version.
	Version uint16 = 1

	// Header layout.
	SignatureSize = 4
	VersionOffset = 0x04
	FlagsOffset   = 0x06
	HeaderSize    = 0x08

	// MaxDepth bounds nesting when decoding.
	MaxDepth = 512

	// MinEntrySize is the smallest encoded entry: key tag, zero-length name,
	// value tag.
	MinEntrySize = 1 + 4 + 1
)

// Key tags.
const (
	KeyName  byte = 0x00 // u32 length + UTF-8 bytes
	KeyIndex byte = 0x01 // i64
)

// Value tags. Integer tags keep the Go kind so decoding restores the exact
// type that was stored.
const (
	TagNil byte = iota
	TagFalse
	TagTrue
	TagInt     // i64
	TagInt8    // i64
	TagInt16   // i64
	TagInt32   // i64
	TagInt64   // i64
	TagUint    // u64
	TagUint8   // u64
	TagUint16  // u64
	TagUint32  // u64
	TagUint64  // u64
	TagFloat32 // u32 IEEE 754 bits
	TagFloat64 // u64 IEEE 754 bits
	TagString  // u32 length + bytes
	TagNode    // nested node

	tagCount
)

// ValidTag reports whether tag is a known value tag.
func ValidTag(tag byte) bool { return tag < tagCount }
