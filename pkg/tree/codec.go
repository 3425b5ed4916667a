package tree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/joshuapare/pathtree/internal/format"
)

// entryError records the keys leading to a failed entry, innermost first.
type entryError struct {
	keys []string
	err  error
}

func (e *entryError) Error() string {
	var b strings.Builder
	for _, k := range slices.Backward(e.keys) {
		b.WriteString("[" + k + "]")
	}
	return b.String() + ": " + e.err.Error()
}

func (e *entryError) Unwrap() error { return e.err }

// inEntry adds k to the key path of err.
func inEntry(k Key, err error) error {
	if ee, ok := err.(*entryError); ok {
		ee.keys = append(ee.keys, k.String())
		return ee
	}
	return &entryError{keys: []string{k.String()}, err: err}
}

// MarshalBinary encodes t into an opaque, versioned blob. Leaves must be
// nil, bool, string, or an integer or float kind, and nesting may not
// exceed format.MaxDepth.
func (t *Tree) MarshalBinary() ([]byte, error) {
	w := format.NewWriter()
	if err := t.encodeBinary(w, 0); err != nil {
		return nil, &Error{Kind: ErrKindCodec, Msg: "tree: encode", Err: err}
	}
	return w.Bytes(), nil
}

func (t *Tree) encodeBinary(w *format.Writer, depth int) error {
	if depth > format.MaxDepth {
		return format.ErrTooDeep
	}
	w.NodeStart(len(t.keys))
	for _, k := range t.keys {
		if idx, ok := k.Index(); ok {
			w.Byte(format.KeyIndex)
			w.I64(int64(idx))
		} else {
			w.Byte(format.KeyName)
			w.String(k.name)
		}
		if err := encodeLeaf(w, t.values[k], depth); err != nil {
			return inEntry(k, err)
		}
	}
	return nil
}

func encodeLeaf(w *format.Writer, v any, depth int) error {
	switch x := v.(type) {
	case nil:
		w.Byte(format.TagNil)
	case bool:
		if x {
			w.Byte(format.TagTrue)
		} else {
			w.Byte(format.TagFalse)
		}
	case int:
		w.Byte(format.TagInt)
		w.I64(int64(x))
	case int8:
		w.Byte(format.TagInt8)
		w.I64(int64(x))
	case int16:
		w.Byte(format.TagInt16)
		w.I64(int64(x))
	case int32:
		w.Byte(format.TagInt32)
		w.I64(int64(x))
	case int64:
		w.Byte(format.TagInt64)
		w.I64(x)
	case uint:
		w.Byte(format.TagUint)
		w.U64(uint64(x))
	case uint8:
		w.Byte(format.TagUint8)
		w.U64(uint64(x))
	case uint16:
		w.Byte(format.TagUint16)
		w.U64(uint64(x))
	case uint32:
		w.Byte(format.TagUint32)
		w.U64(uint64(x))
	case uint64:
		w.Byte(format.TagUint64)
		w.U64(x)
	case float32:
		w.Byte(format.TagFloat32)
		w.F32(x)
	case float64:
		w.Byte(format.TagFloat64)
		w.F64(x)
	case string:
		w.Byte(format.TagString)
		w.String(x)
	case *Tree:
		if x == nil {
			w.Byte(format.TagNil)
			return nil
		}
		w.Byte(format.TagNode)
		return x.encodeBinary(w, depth+1)
	default:
		return wrapErr(ErrUnsupportedValue, "%T", v)
	}
	return nil
}

// UnmarshalBinary replaces the contents of t with a blob produced by
// MarshalBinary. On error t is unchanged.
func (t *Tree) UnmarshalBinary(data []byte) error {
	r, err := format.NewReader(data)
	if err != nil {
		return &Error{Kind: ErrKindCodec, Msg: "tree: decode", Err: err}
	}
	fresh := &Tree{values: make(map[Key]any)}
	if err := fresh.decodeBinary(r, 0); err != nil {
		return &Error{Kind: ErrKindCodec, Msg: "tree: decode", Err: err}
	}
	if err := r.Done(); err != nil {
		return &Error{Kind: ErrKindCodec, Msg: "tree: decode", Err: err}
	}
	t.reset()
	t.take(fresh)
	return nil
}

func (t *Tree) decodeBinary(r *format.Reader, depth int) error {
	if depth > format.MaxDepth {
		return format.ErrTooDeep
	}
	count, err := r.NodeStart()
	if err != nil {
		return err
	}
	for range count {
		k, err := decodeKey(r)
		if err != nil {
			return err
		}
		v, err := t.decodeLeaf(r, depth)
		if err != nil {
			return inEntry(k, err)
		}
		t.put(k, v)
	}
	return nil
}

func decodeKey(r *format.Reader) (Key, error) {
	tag, err := r.Byte()
	if err != nil {
		return Key{}, err
	}
	switch tag {
	case format.KeyIndex:
		i, err := r.I64()
		if err != nil {
			return Key{}, err
		}
		k, _ := KeyOf(i)
		return k, nil
	case format.KeyName:
		s, err := r.String()
		if err != nil {
			return Key{}, err
		}
		return Key{name: s}, nil
	}
	return Key{}, fmt.Errorf("key tag 0x%02x at 0x%x: %w", tag, r.Offset()-1, format.ErrUnknownTag)
}

func (t *Tree) decodeLeaf(r *format.Reader, depth int) (any, error) {
	tag, err := r.Byte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case format.TagNil:
		return nil, nil
	case format.TagFalse:
		return false, nil
	case format.TagTrue:
		return true, nil
	case format.TagInt, format.TagInt8, format.TagInt16, format.TagInt32, format.TagInt64:
		i, err := r.I64()
		if err != nil {
			return nil, err
		}
		switch tag {
		case format.TagInt:
			return int(i), nil
		case format.TagInt8:
			return int8(i), nil
		case format.TagInt16:
			return int16(i), nil
		case format.TagInt32:
			return int32(i), nil
		}
		return i, nil
	case format.TagUint, format.TagUint8, format.TagUint16, format.TagUint32, format.TagUint64:
		u, err := r.U64()
		if err != nil {
			return nil, err
		}
		switch tag {
		case format.TagUint:
			return uint(u), nil
		case format.TagUint8:
			return uint8(u), nil
		case format.TagUint16:
			return uint16(u), nil
		case format.TagUint32:
			return uint32(u), nil
		}
		return u, nil
	case format.TagFloat32:
		return r.F32()
	case format.TagFloat64:
		return r.F64()
	case format.TagString:
		return r.String()
	case format.TagNode:
		child := t.newChild()
		if err := child.decodeBinary(r, depth+1); err != nil {
			return nil, err
		}
		return child, nil
	}
	return nil, fmt.Errorf("value tag 0x%02x at 0x%x: %w", tag, r.Offset()-1, format.ErrUnknownTag)
}
