package tree

import (
	"fmt"
	"strings"

	"github.com/joshuapare/pathtree/internal/logger"
)

// Path is an explicit list of segments. Empty strings, nil and Append
// segments append a new element.
type Path []any

// segment is one resolved step of a path.
type segment struct {
	key    Key
	append bool
	label  string
}

// resolved is a normalized key.
type resolved struct {
	segs     []segment
	verbatim bool // single key that exists at the top level
}

// normalize turns a key into segments. It reports false for key types that
// cannot address an entry.
func (t *Tree) normalize(key any) (resolved, bool) {
	switch x := key.(type) {
	case Path:
		return pathSegments([]any(x))
	case []any:
		return pathSegments(x)
	case []string:
		segs := make([]segment, len(x))
		for i, s := range x {
			segs[i] = stringSegment(s)
		}
		return resolved{segs: segs}, true
	case []Key:
		segs := make([]segment, len(x))
		for i, k := range x {
			segs[i] = segment{key: k, label: k.String()}
		}
		return resolved{segs: segs}, true
	}

	k, ok := KeyOf(key)
	if !ok {
		return resolved{}, false
	}
	if _, exists := t.values[k]; exists {
		return resolved{segs: []segment{{key: k, label: k.String()}}, verbatim: true}, true
	}

	s, isString := key.(string)
	delim := t.config().Delimiter
	if !isString || !strings.Contains(s, delim) {
		return resolved{segs: []segment{{key: k, label: k.String()}}}, true
	}

	parts := strings.Split(s, delim)
	segs := make([]segment, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if p == Append {
			segs = append(segs, segment{append: true, label: ""})
			continue
		}
		segs = append(segs, segment{key: NameKey(p), label: p})
	}
	return resolved{segs: segs}, true
}

func stringSegment(s string) segment {
	if s == "" || s == Append {
		return segment{append: true}
	}
	return segment{key: NameKey(s), label: s}
}

func pathSegments(path []any) (resolved, bool) {
	segs := make([]segment, len(path))
	for i, e := range path {
		if e == nil {
			segs[i] = segment{append: true}
			continue
		}
		if s, ok := e.(string); ok {
			segs[i] = stringSegment(s)
			continue
		}
		k, ok := KeyOf(e)
		if !ok {
			return resolved{}, false
		}
		segs[i] = segment{key: k, label: k.String()}
	}
	return resolved{segs: segs}, true
}

// Get returns the value at key, creating missing containers on the way.
//
// A nil key appends a new empty child. A key present verbatim at the top
// level is returned as is. Otherwise string keys containing the delimiter
// and explicit paths are walked segment by segment; missing or nil entries
// become empty children, including the final one. A leaf in the middle of
// a path, or a key of unsupported type, is reported to the undefined
// handler and its result returned.
func (t *Tree) Get(key any) any {
	if key == nil {
		if child := t.appendChild(); child != nil {
			return child
		}
		return t.undefined("[]")
	}
	r, ok := t.normalize(key)
	if !ok {
		return t.undefined(fmt.Sprintf("%T(%v)", key, key))
	}
	if r.verbatim {
		return t.values[r.segs[0].key]
	}

	cur := t
	for i, s := range r.segs {
		last := i == len(r.segs)-1
		if s.append {
			child := cur.appendChild()
			if child == nil {
				return t.undefined(label(r.segs[:i+1]))
			}
			if last {
				return child
			}
			cur = child
			continue
		}
		v, present := cur.values[s.key]
		if last {
			if present && v != nil {
				return v
			}
			return cur.putChild(s.key)
		}
		if !present || v == nil {
			cur = cur.putChild(s.key)
			continue
		}
		sub, isTree := v.(*Tree)
		if !isTree {
			return t.undefined(label(r.segs[:i+2]))
		}
		cur = sub
	}
	return cur
}

// Set stores value at key, creating missing containers on the way, and
// returns t.
//
// A nil key, or a final append segment, stores value under the next
// index. Existing entries are overwritten in place. A leaf in the middle
// of the path, an empty path, or a key of unsupported type is reported to
// the undefined handler and nothing is written; containers created before
// the failing segment remain.
func (t *Tree) Set(key any, value any) *Tree {
	if key == nil {
		if _, ok := t.appendValue(value); !ok {
			t.undefined("[]")
		}
		return t
	}
	r, ok := t.normalize(key)
	if !ok {
		t.undefined(fmt.Sprintf("%T(%v)", key, key))
		return t
	}
	if len(r.segs) == 0 {
		t.undefined(fmt.Sprintf("%q", fmt.Sprint(key)))
		return t
	}

	cur := t
	for i, s := range r.segs {
		last := i == len(r.segs)-1
		if s.append {
			if last {
				if _, ok := cur.appendValue(value); !ok {
					t.undefined(label(r.segs[:i+1]))
				}
				return t
			}
			if cur = cur.appendChild(); cur == nil {
				t.undefined(label(r.segs[:i+1]))
				return t
			}
			continue
		}
		if last {
			cur.put(s.key, value)
			return t
		}
		v, present := cur.values[s.key]
		if !present || v == nil {
			cur = cur.putChild(s.key)
			continue
		}
		sub, isTree := v.(*Tree)
		if !isTree {
			t.undefined(label(r.segs[:i+2]))
			return t
		}
		cur = sub
	}
	return t
}

// Lookup returns the value at key without creating anything. Append
// segments never match.
func (t *Tree) Lookup(key any) (any, bool) {
	if key == nil {
		return nil, false
	}
	r, ok := t.normalize(key)
	if !ok {
		return nil, false
	}
	if r.verbatim {
		return t.values[r.segs[0].key], true
	}

	cur := t
	for i, s := range r.segs {
		if s.append {
			return nil, false
		}
		v, present := cur.values[s.key]
		if !present {
			return nil, false
		}
		if i == len(r.segs)-1 {
			return v, true
		}
		sub, isTree := v.(*Tree)
		if !isTree {
			return nil, false
		}
		cur = sub
	}
	return cur, true
}

// undefined reports key to the configured handler.
func (t *Tree) undefined(key string) any {
	cfg := t.config()
	if cfg.Undefined != nil {
		return cfg.Undefined(key)
	}
	logger.Notice(cfg.Logger, "tree: undefined offset", "key", key)
	return nil
}

// label renders segments as [a][b][c].
func label(segs []segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('[')
		if !s.append {
			b.WriteString(s.label)
		}
		b.WriteByte(']')
	}
	return b.String()
}
