package format

import "errors"

var (
	// ErrSignatureMismatch indicates the blob does not start with Signature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrVersion indicates a blob written by a newer format version.
	ErrVersion = errors.New("format: unsupported version")
	// ErrUnknownTag indicates a key or value tag outside the known set.
	ErrUnknownTag = errors.New("format: unknown tag")
	// ErrTooDeep indicates nesting beyond MaxDepth.
	ErrTooDeep = errors.New("format: nesting too deep")
	// ErrTrailingData indicates bytes after the root node.
	ErrTrailingData = errors.New("format: trailing data")
)
