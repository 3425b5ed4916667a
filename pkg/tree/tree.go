package tree

import (
	"iter"
	"math"
	"slices"
	"sort"
)

// Entry is one key/value pair of a Tree.
type Entry struct {
	Key   Key
	Value any
}

// Tree is an ordered mapping from keys to leaves or nested trees.
//
// Nested trees are owned children: a *Tree returned by Get is the live
// child, and writes through it show up in its parent. A Tree is not safe
// for concurrent use.
type Tree struct {
	keys   []Key
	values map[Key]any
	next   int  // next append index
	full   bool // math.MaxInt is taken, appends fail

	parent *Tree
	owned  bool    // stored in parent
	cfg    *Config // nil inherits from parent
	base   Config  // target of WithDefault
}

func newTree(cfg Config) *Tree {
	c := cfg
	return &Tree{
		values: make(map[Key]any),
		cfg:    &c,
		base:   cfg,
	}
}

// newChild returns an empty tree owned by t.
func (t *Tree) newChild() *Tree {
	return &Tree{values: make(map[Key]any), parent: t}
}

// config returns the effective configuration of t.
func (t *Tree) config() Config {
	for n := t; n != nil; n = n.parent {
		if n.cfg != nil {
			return *n.cfg
		}
	}
	return DefaultConfig()
}

// Configure changes the settings of t. Children without their own
// configuration follow. On error t is unchanged.
func (t *Tree) Configure(opts ...Option) error {
	base := t.base
	if t.cfg == nil {
		base = t.config()
	}
	cfg, err := applyOptions(t.config(), base, opts)
	if err != nil {
		return err
	}
	if t.cfg == nil {
		t.base = base
	}
	t.cfg = &cfg
	return nil
}

// Option returns the effective value of the named setting.
func (t *Tree) Option(name string) (any, error) {
	return t.config().option(name)
}

// Parent returns the tree owning t, or nil for a root.
func (t *Tree) Parent() *Tree { return t.parent }

// Len returns the number of top-level entries.
func (t *Tree) Len() int { return len(t.keys) }

// Has reports whether key exists verbatim at the top level. Paths are not
// split.
func (t *Tree) Has(key any) bool {
	k, ok := KeyOf(key)
	if !ok {
		return false
	}
	_, exists := t.values[k]
	return exists
}

// Delete removes the top-level entry for key. Paths are not split.
func (t *Tree) Delete(key any) {
	k, ok := KeyOf(key)
	if !ok {
		return
	}
	v, exists := t.values[k]
	if !exists {
		return
	}
	delete(t.values, k)
	if i := slices.Index(t.keys, k); i >= 0 {
		t.keys = slices.Delete(t.keys, i, i+1)
	}
	t.detach(v)
}

// Keys returns the top-level keys in insertion order.
func (t *Tree) Keys() []Key {
	return slices.Clone(t.keys)
}

// Entries returns a shallow snapshot of the top-level entries in order.
// Nested trees are returned as the live children.
func (t *Tree) Entries() []Entry {
	out := make([]Entry, len(t.keys))
	for i, k := range t.keys {
		out[i] = Entry{Key: k, Value: t.values[k]}
	}
	return out
}

// All iterates the top-level entries in insertion order. Each call starts
// a fresh iteration over a snapshot of the keys.
func (t *Tree) All() iter.Seq2[Key, any] {
	keys := t.Keys()
	return func(yield func(Key, any) bool) {
		for _, k := range keys {
			v, ok := t.values[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of t as a detached root with t's effective
// configuration.
func (t *Tree) Clone() *Tree {
	c := newTree(t.config())
	if t.cfg != nil {
		c.base = t.base
	}
	t.copyInto(c)
	return c
}

func (t *Tree) copyInto(dst *Tree) {
	dst.keys = make([]Key, 0, len(t.keys))
	dst.next, dst.full = t.next, t.full
	for _, k := range t.keys {
		v := t.values[k]
		if sub, ok := v.(*Tree); ok {
			child := dst.newChild()
			sub.copyInto(child)
			child.owned = true
			v = child
		}
		dst.keys = append(dst.keys, k)
		dst.values[k] = v
	}
}

// Native converts t into plain Go values: []any when t is list-shaped
// (indices 0..n-1 in order), map[string]any otherwise.
func (t *Tree) Native() any {
	if t.isList() {
		out := make([]any, len(t.keys))
		for i, k := range t.keys {
			out[i] = nativeValue(t.values[k])
		}
		return out
	}
	out := make(map[string]any, len(t.keys))
	for _, k := range t.keys {
		out[k.String()] = nativeValue(t.values[k])
	}
	return out
}

func nativeValue(v any) any {
	if sub, ok := v.(*Tree); ok {
		return sub.Native()
	}
	return v
}

// isList reports whether the keys are exactly 0..n-1 in order.
func (t *Tree) isList() bool {
	for i, k := range t.keys {
		if idx, ok := k.Index(); !ok || idx != i {
			return false
		}
	}
	return true
}

// put stores v under k, keeping the position of an existing entry.
func (t *Tree) put(k Key, v any) {
	old, exists := t.values[k]
	oldTree, _ := old.(*Tree)
	if nv, ok := v.(*Tree); ok && exists && nv == oldTree {
		return
	}
	v = t.adopt(v)
	if !exists {
		t.keys = append(t.keys, k)
		if idx, ok := k.Index(); ok && idx >= t.next {
			if idx == math.MaxInt {
				t.next, t.full = math.MaxInt, true
			} else {
				t.next = idx + 1
			}
		}
	} else if oldTree != nil {
		t.detach(oldTree)
	}
	t.values[k] = v
}

// putChild replaces the entry for k with a new empty child and returns it.
func (t *Tree) putChild(k Key) *Tree {
	child := t.newChild()
	t.put(k, child)
	return child
}

// appendValue stores v under the next append index. It reports false,
// storing nothing, once the largest index has been used.
func (t *Tree) appendValue(v any) (Key, bool) {
	if t.full {
		return Key{}, false
	}
	k := IndexKey(t.next)
	t.put(k, v)
	return k, true
}

// appendChild appends a new empty child and returns it, or nil when no
// append index is left.
func (t *Tree) appendChild() *Tree {
	child := t.newChild()
	if _, ok := t.appendValue(child); !ok {
		return nil
	}
	return child
}

// adopt converts native containers into children and takes ownership of
// trees. A tree that already has a parent, or that would create a cycle,
// is copied instead.
func (t *Tree) adopt(v any) any {
	switch x := v.(type) {
	case *Tree:
		if x == nil {
			return nil
		}
		if x.parent == t && !x.owned {
			x.owned = true
			return x
		}
		if x.parent != nil || x.isAncestorOf(t) {
			child := t.newChild()
			x.copyInto(child)
			child.owned = true
			return child
		}
		x.parent = t
		x.owned = true
		x.cfg = nil
		return x
	case map[string]any:
		child := t.newChild()
		child.fillMap(x)
		child.owned = true
		return child
	case []any:
		child := t.newChild()
		for _, e := range x {
			child.appendValue(e)
		}
		child.owned = true
		return child
	case []string:
		child := t.newChild()
		for _, e := range x {
			child.appendValue(e)
		}
		child.owned = true
		return child
	}
	return v
}

// detach releases an owned child so it keeps working on its own.
func (t *Tree) detach(v any) {
	sub, ok := v.(*Tree)
	if !ok || sub.parent != t {
		return
	}
	if sub.cfg == nil {
		cfg := sub.config()
		sub.cfg = &cfg
		sub.base = cfg
	}
	sub.parent = nil
	sub.owned = false
}

func (t *Tree) isAncestorOf(n *Tree) bool {
	for p := n; p != nil; p = p.parent {
		if p == t {
			return true
		}
	}
	return false
}

func (t *Tree) fillMap(m map[string]any) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t.put(NameKey(name), m[name])
	}
}

// reset drops all entries, detaching owned children.
func (t *Tree) reset() {
	for _, k := range t.keys {
		t.detach(t.values[k])
	}
	t.keys = nil
	t.values = make(map[Key]any)
	t.next, t.full = 0, false
}
