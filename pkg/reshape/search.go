package reshape

import (
	"reflect"

	"github.com/joshuapare/pathtree/pkg/tree"
)

// Search returns the keys of every record whose field equals value.
func Search(set *tree.Tree, field, value any) []tree.Key {
	var found []tree.Key
	for k, rec := range records(set) {
		if v, ok := fieldValue(rec, field); ok && same(v, value) {
			found = append(found, k)
		}
	}
	return found
}

// Find returns the key of the first record whose field equals value, or
// the last one when last is set.
func Find(set *tree.Tree, field, value any, last bool) (tree.Key, bool) {
	found := Search(set, field, value)
	if len(found) == 0 {
		return tree.Key{}, false
	}
	if last {
		return found[len(found)-1], true
	}
	return found[0], true
}

// same compares two leaves with Go equality. Nested trees and values of
// uncomparable types never match.
func same(a, b any) bool {
	if _, ok := a.(*tree.Tree); ok {
		return false
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
