package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MarshalJSON encodes t with its insertion order. List-shaped trees
// (indices 0..n-1 in order) encode as arrays, all others as objects.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Tree) encodeJSON(buf *bytes.Buffer) error {
	list := t.isList()
	if list {
		buf.WriteByte('[')
	} else {
		buf.WriteByte('{')
	}
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if !list {
			name, err := json.Marshal(k.String())
			if err != nil {
				return err
			}
			buf.Write(name)
			buf.WriteByte(':')
		}
		v := t.values[k]
		if sub, ok := v.(*Tree); ok {
			if err := sub.encodeJSON(buf); err != nil {
				return err
			}
			continue
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("tree: encode %q: %w", k.String(), err)
		}
		buf.Write(data)
	}
	if list {
		buf.WriteByte(']')
	} else {
		buf.WriteByte('}')
	}
	return nil
}

// ToJSON returns the compact JSON encoding of t.
func (t *Tree) ToJSON() (string, error) {
	data, err := t.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// String returns t as indented JSON.
func (t *Tree) String() string {
	data, err := t.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<tree: %v>", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "    "); err != nil {
		return string(data)
	}
	return out.String()
}

// UnmarshalJSON replaces the contents of t with a JSON object or array.
// Member order is kept. Integral numbers decode as int (int64 when they
// do not fit), others as float64.
func (t *Tree) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("tree: decode json: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return fmt.Errorf("tree: decode json: expected object or array, got %v", tok)
	}

	fresh := &Tree{values: make(map[Key]any)}
	if err := fresh.decodeJSON(dec, delim); err != nil {
		return fmt.Errorf("tree: decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("tree: decode json: trailing data")
	}

	t.reset()
	t.take(fresh)
	return nil
}

// take moves the entries of src into the empty tree t.
func (t *Tree) take(src *Tree) {
	t.keys = src.keys
	t.values = src.values
	t.next, t.full = src.next, src.full
	for _, v := range t.values {
		if sub, ok := v.(*Tree); ok {
			sub.parent = t
			sub.owned = true
		}
	}
}

func (t *Tree) decodeJSON(dec *json.Decoder, open json.Delim) error {
	for dec.More() {
		var key Key
		if open == '{' {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			name, ok := tok.(string)
			if !ok {
				return fmt.Errorf("unexpected object key %v", tok)
			}
			key = NameKey(name)
		} else {
			key = IndexKey(t.next)
		}

		v, err := t.decodeJSONValue(dec)
		if err != nil {
			return err
		}
		t.put(key, v)
	}
	_, err := dec.Token() // closing delimiter
	return err
}

func (t *Tree) decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		child := t.newChild()
		if err := child.decodeJSON(dec, x); err != nil {
			return nil, err
		}
		return child, nil
	case json.Number:
		return decodeNumber(x)
	default:
		return x, nil
	}
}

func decodeNumber(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		if int64(int(i)) == i {
			return int(i), nil
		}
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, err
	}
	return f, nil
}
