package treefile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/pathtree/pkg/tree"
)

// ErrKeyNotFound is returned when a key path does not exist in the file.
var ErrKeyNotFound = errors.New("treefile: key not found")

// GetValue returns the value stored at key in the tree file at path.
// Nothing is created; a missing key is ErrKeyNotFound.
//
// Example:
//
//	theme, err := treefile.GetValue("settings.tree", "display/theme", nil)
func GetValue(path, key string, opts *OperationOptions) (any, error) {
	t, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	v, ok := t.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return v, nil
}

// SetValue stores value at key in the tree file at path, creating
// intermediate containers.
func SetValue(path, key string, value any, opts *OperationOptions) error {
	opts = opts.orDefault()
	t, err := Load(path, opts)
	if errors.Is(err, ErrNotFound) && opts.CreateMissing {
		t, err = opts.newTree(), nil
	}
	if err != nil {
		return err
	}

	var blocked error
	restore := catchUndefined(t, &blocked)
	t.Set(key, value)
	if err := restore(); err != nil {
		return err
	}
	if blocked != nil {
		return blocked
	}
	return Save(path, t, opts)
}

// DeleteKey removes the entry at key from the tree file at path. The key
// may be a path; only its last segment is removed.
func DeleteKey(path, key string, opts *OperationOptions) error {
	t, err := Load(path, opts)
	if err != nil {
		return err
	}
	parent, last, err := splitLast(t, key)
	if err != nil {
		return err
	}
	if !parent.Has(last) {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	parent.Delete(last)
	return Save(path, t, opts)
}

// splitLast resolves every segment of key except the last one.
func splitLast(t *tree.Tree, key string) (*tree.Tree, string, error) {
	if t.Has(key) {
		return t, key, nil
	}
	d, err := t.Option(tree.OptionDelimiter)
	if err != nil {
		return nil, "", err
	}
	var segs []string
	for _, s := range strings.Split(key, d.(string)) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return nil, "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	parent := t
	if len(segs) > 1 {
		v, ok := t.Lookup(segs[:len(segs)-1])
		sub, isTree := v.(*tree.Tree)
		if !ok || !isTree {
			return nil, "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}
		parent = sub
	}
	return parent, segs[len(segs)-1], nil
}

// catchUndefined swaps in a handler that records blocked writes as an
// error. The returned function restores the previous handler.
func catchUndefined(t *tree.Tree, blocked *error) func() error {
	prev, err := t.Option(tree.OptionUndefined)
	if err != nil {
		return func() error { return err }
	}
	handler := func(key string) any {
		*blocked = fmt.Errorf("%w: %s", tree.ErrInvalidKey, key)
		return nil
	}
	if err := t.Configure(tree.WithUndefined(handler)); err != nil {
		return func() error { return err }
	}
	return func() error {
		fn, _ := prev.(tree.UndefinedFunc)
		return t.Configure(tree.WithUndefined(fn))
	}
}
