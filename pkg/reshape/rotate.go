package reshape

import (
	"iter"
	"log/slog"

	"github.com/joshuapare/pathtree/pkg/tree"
)

// Rotate re-keys set by the value of field. The field is removed from each
// record and the record's old key is stored under oldKey, or appended when
// oldKey is nil. On duplicate field values the first record wins, or the
// last one when last is set.
//
//	{u1: {name: ann, role: admin}} rotated by "role" gives
//	{admin: {name: ann, 0: u1}}
func Rotate(set *tree.Tree, field, oldKey any, last bool) *tree.Tree {
	out := newLike(set)
	for k, rec := range records(set) {
		categ, ok := fieldKey(rec, field)
		if !ok {
			continue
		}
		if !last && out.Has(categ) {
			continue
		}
		put(out, categ, moved(rec, field, oldKey, k))
	}
	return out
}

// RotateCategory is Rotate without collisions: every distinct field value
// maps to a list of the records carrying it, even when there is only one.
func RotateCategory(set *tree.Tree, field, oldKey any) *tree.Tree {
	out := newLike(set)
	for k, rec := range records(set) {
		categ, ok := fieldKey(rec, field)
		if !ok {
			continue
		}
		group(out, categ).Set(nil, moved(rec, field, oldKey, k))
	}
	return out
}

// RotateJagged groups records into a list only when their field value
// collides; unique values map straight to the record.
func RotateJagged(set *tree.Tree, field, oldKey any) *tree.Tree {
	out := newLike(set)
	j := jagged{}
	for k, rec := range records(set) {
		categ, ok := fieldKey(rec, field)
		if !ok {
			continue
		}
		j.add(out, categ, moved(rec, field, oldKey, k))
	}
	return out
}

// moved copies rec without field, recording its former key.
func moved(rec *tree.Tree, field, oldKey any, from tree.Key) *tree.Tree {
	c := rec.Clone()
	if k, ok := tree.KeyOf(field); ok {
		c.Delete(k)
	}
	if oldKey == nil {
		c.Set(nil, keyValue(from))
	} else if k, ok := tree.KeyOf(oldKey); ok {
		put(c, k, keyValue(from))
	}
	return c
}

// jagged remembers which entries of each table were promoted to lists.
type jagged map[*tree.Tree]map[tree.Key]bool

func (j jagged) add(dst *tree.Tree, k tree.Key, rec *tree.Tree) {
	prev, exists := lookup(dst, k)
	switch {
	case !exists:
		put(dst, k, rec)
	case j[dst][k]:
		prev.(*tree.Tree).Set(nil, rec)
	default:
		list := tree.New()
		list.Set(nil, prev)
		list.Set(nil, rec)
		put(dst, k, list)
		if j[dst] == nil {
			j[dst] = map[tree.Key]bool{}
		}
		j[dst][k] = true
	}
}

// records iterates the entries of set that are records.
func records(set *tree.Tree) iter.Seq2[tree.Key, *tree.Tree] {
	return func(yield func(tree.Key, *tree.Tree) bool) {
		for k, v := range set.All() {
			rec, ok := v.(*tree.Tree)
			if !ok {
				continue
			}
			if !yield(k, rec) {
				return
			}
		}
	}
}

func fieldValue(rec *tree.Tree, field any) (any, bool) {
	k, ok := tree.KeyOf(field)
	if !ok {
		return nil, false
	}
	return lookup(rec, k)
}

// fieldKey returns the value of field in rec as a key.
func fieldKey(rec *tree.Tree, field any) (tree.Key, bool) {
	v, ok := fieldValue(rec, field)
	if !ok || v == nil {
		return tree.Key{}, false
	}
	return tree.KeyOf(v)
}

// lookup reads k from t without splitting it as a path.
func lookup(t *tree.Tree, k tree.Key) (any, bool) {
	if !t.Has(k) {
		return nil, false
	}
	return t.Lookup([]tree.Key{k})
}

// put stores v under k without splitting it as a path.
func put(t *tree.Tree, k tree.Key, v any) {
	t.Set([]tree.Key{k}, v)
}

// group returns the list stored under k, replacing anything else.
func group(t *tree.Tree, k tree.Key) *tree.Tree {
	if v, ok := lookup(t, k); ok {
		if sub, isTree := v.(*tree.Tree); isTree {
			return sub
		}
	}
	put(t, k, tree.New())
	v, _ := lookup(t, k)
	return v.(*tree.Tree)
}

// keyValue converts a key back into the value it was built from.
func keyValue(k tree.Key) any {
	if i, ok := k.Index(); ok {
		return i
	}
	return k.String()
}

// newLike returns an empty tree configured like t.
func newLike(t *tree.Tree) *tree.Tree {
	out := tree.New()
	var opts []tree.Option
	if d, err := t.Option(tree.OptionDelimiter); err == nil {
		opts = append(opts, tree.WithDelimiter(d.(string)))
	}
	if fn, err := t.Option(tree.OptionUndefined); err == nil {
		opts = append(opts, tree.WithUndefined(fn.(tree.UndefinedFunc)))
	}
	if l, err := t.Option(tree.OptionLogger); err == nil {
		opts = append(opts, tree.WithLogger(l.(*slog.Logger)))
	}
	if err := out.Configure(opts...); err != nil {
		return tree.New()
	}
	return out
}
