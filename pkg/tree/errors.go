package tree

import (
	"errors"
	"fmt"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindConfig ErrKind = iota // invalid or conflicting configuration
	ErrKindKey                   // key or path that cannot address an entry
	ErrKindCodec                 // serialization failures
)

// String returns the kind name.
func (k ErrKind) String() string {
	switch k {
	case ErrKindConfig:
		return "config"
	case ErrKindKey:
		return "key"
	case ErrKindCodec:
		return "codec"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels by kind and message so wrapped copies still compare equal.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil || e == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Sentinels returned by configuration and codec paths.
var (
	// ErrInvalidDelimiter indicates an empty delimiter was configured.
	ErrInvalidDelimiter = &Error{Kind: ErrKindConfig, Msg: "tree: delimiter must be a non-empty string"}
	// ErrDuplicateOption indicates the same option was supplied twice in one call.
	ErrDuplicateOption = &Error{Kind: ErrKindConfig, Msg: "tree: option supplied more than once"}
	// ErrUnknownOption indicates an option name that does not exist.
	ErrUnknownOption = &Error{Kind: ErrKindConfig, Msg: "tree: unknown option"}
	// ErrInvalidKey indicates a key that cannot address an entry.
	ErrInvalidKey = &Error{Kind: ErrKindKey, Msg: "tree: invalid key"}
	// ErrUnsupportedValue indicates a leaf the binary codec cannot encode.
	ErrUnsupportedValue = &Error{Kind: ErrKindCodec, Msg: "tree: unsupported value type"}
)

func wrapErr(sentinel *Error, format string, args ...any) error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Err: fmt.Errorf(format, args...)}
}
