package reshape

import "github.com/joshuapare/pathtree/pkg/tree"

// FloorIndex returns the largest index below i that holds a non-nil value.
// Negative i is treated as its absolute value; i == 0 has no floor.
func FloorIndex(t *tree.Tree, i int) (int, bool) {
	if i < 1 {
		if i == 0 {
			return 0, false
		}
		i = -i
	}
	for j := i - 1; j >= 0; j-- {
		if holds(t, j) {
			return j, true
		}
	}
	return 0, false
}

// CeilIndex returns the smallest index above i that holds a non-nil value.
// Negative i is treated as its absolute value.
func CeilIndex(t *tree.Tree, i int) (int, bool) {
	if i < 1 {
		i = -i
	}
	highest, ok := MaxIndex(t)
	if !ok {
		return 0, false
	}
	for j := i + 1; j <= highest; j++ {
		if holds(t, j) {
			return j, true
		}
	}
	return 0, false
}

// MaxIndex returns the largest index key of t. Name keys are ignored.
func MaxIndex(t *tree.Tree) (int, bool) {
	return extremeIndex(t, func(a, b int) bool { return a > b })
}

// MinIndex returns the smallest index key of t. Name keys are ignored.
func MinIndex(t *tree.Tree) (int, bool) {
	return extremeIndex(t, func(a, b int) bool { return a < b })
}

func extremeIndex(t *tree.Tree, better func(a, b int) bool) (int, bool) {
	best, found := 0, false
	for _, k := range t.Keys() {
		i, ok := k.Index()
		if !ok {
			continue
		}
		if !found || better(i, best) {
			best, found = i, true
		}
	}
	return best, found
}

func holds(t *tree.Tree, i int) bool {
	v, ok := lookup(t, tree.IndexKey(i))
	return ok && v != nil
}
