package reshape

import "github.com/joshuapare/pathtree/pkg/tree"

// Rotations rotates set by every field at once. The result maps each field
// name to the table Rotate would build for it. When primary is non-nil the
// record's key is stored in every rotated record under primary, and the
// unmodified set is included under primary as well.
func Rotations(set *tree.Tree, primary any, last bool) *tree.Tree {
	out := newLike(set)
	pk, hasPK := primaryKey(primary)
	if hasPK {
		put(out, pk, set.Clone())
	}
	for k, rec := range records(set) {
		withPK := withPrimary(rec, pk, hasPK, k)
		for field, value := range rec.All() {
			vk, ok := valueKey(value)
			if !ok {
				continue
			}
			table := group(out, field)
			if !last && table.Has(vk) {
				continue
			}
			put(table, vk, without(withPK, field))
		}
	}
	return out
}

// Sorts is the all-fields form of RotateCategory: every field maps to a
// table of value -> list of records. With a primary key, primary maps to
// a list of single-entry trees {key: record} so every lookup has the same
// depth.
func Sorts(set *tree.Tree, primary any) *tree.Tree {
	out := newLike(set)
	pk, hasPK := primaryKey(primary)
	if hasPK {
		list := group(out, pk)
		for k, v := range set.All() {
			e := tree.New()
			put(e, k, v)
			list.Set(nil, e)
		}
	}
	for k, rec := range records(set) {
		withPK := withPrimary(rec, pk, hasPK, k)
		for field, value := range rec.All() {
			vk, ok := valueKey(value)
			if !ok {
				continue
			}
			group(group(out, field), vk).Set(nil, without(withPK, field))
		}
	}
	return out
}

// SortsJagged is the all-fields form of RotateJagged.
func SortsJagged(set *tree.Tree, primary any) *tree.Tree {
	out := newLike(set)
	pk, hasPK := primaryKey(primary)
	if hasPK {
		put(out, pk, set.Clone())
	}
	j := jagged{}
	for k, rec := range records(set) {
		withPK := withPrimary(rec, pk, hasPK, k)
		for field, value := range rec.All() {
			vk, ok := valueKey(value)
			if !ok {
				continue
			}
			j.add(group(out, field), vk, without(withPK, field))
		}
	}
	return out
}

// Without returns a copy of t minus the given top-level keys. A *tree.Tree
// argument contributes all of its keys.
func Without(t *tree.Tree, keys ...any) *tree.Tree {
	c := t.Clone()
	for _, k := range keys {
		if other, ok := k.(*tree.Tree); ok {
			for _, key := range other.Keys() {
				c.Delete(key)
			}
			continue
		}
		c.Delete(k)
	}
	return c
}

// FlipKeys returns a tree mapping each key to its position in keys. For
// repeated keys the last position wins.
func FlipKeys(keys ...any) *tree.Tree {
	out := tree.New()
	for i, k := range keys {
		if kk, ok := tree.KeyOf(k); ok {
			put(out, kk, i)
		}
	}
	return out
}

// FillKeys returns a tree mapping every key to value.
func FillKeys(value any, keys ...any) *tree.Tree {
	out := tree.New()
	for _, k := range keys {
		if kk, ok := tree.KeyOf(k); ok {
			put(out, kk, value)
		}
	}
	return out
}

func primaryKey(primary any) (tree.Key, bool) {
	if primary == nil {
		return tree.Key{}, false
	}
	return tree.KeyOf(primary)
}

func withPrimary(rec *tree.Tree, pk tree.Key, hasPK bool, from tree.Key) *tree.Tree {
	c := rec.Clone()
	if hasPK {
		put(c, pk, keyValue(from))
	}
	return c
}

// without returns a copy of rec minus k.
func without(rec *tree.Tree, k tree.Key) *tree.Tree {
	c := rec.Clone()
	c.Delete(k)
	return c
}

func valueKey(v any) (tree.Key, bool) {
	if v == nil {
		return tree.Key{}, false
	}
	return tree.KeyOf(v)
}
