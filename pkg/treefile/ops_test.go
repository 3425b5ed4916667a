package treefile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pathtree/pkg/tree"
)

func TestGetValue(t *testing.T) {
	path := writeTree(t, tree.New().Set("display/theme", "dark"))

	v, err := GetValue(path, "display/theme", nil)
	require.NoError(t, err)
	require.Equal(t, "dark", v)

	_, err = GetValue(path, "display/missing", nil)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSetValue(t *testing.T) {
	path := writeTree(t, tree.New())

	require.NoError(t, SetValue(path, "a/b/c", "x", nil))
	require.NoError(t, SetValue(path, "a/list/[ ]", 1, nil))

	v, err := GetValue(path, "a/b/c", nil)
	require.NoError(t, err)
	require.Equal(t, "x", v)
	v, err = GetValue(path, "a/list/0", nil)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestSetValueBlockedByLeaf(t *testing.T) {
	path := writeTree(t, tree.New().Set("leaf", "v"))

	err := SetValue(path, "leaf/child", 1, nil)
	require.ErrorIs(t, err, tree.ErrInvalidKey)
	require.Contains(t, err.Error(), "[leaf][child]")

	v, err := GetValue(path, "leaf", nil)
	require.NoError(t, err)
	require.Equal(t, "v", v)
}

func TestSetValueCreateMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.tree")

	require.ErrorIs(t, SetValue(path, "k", 1, nil), ErrNotFound)
	require.NoError(t, SetValue(path, "k", 1, &OperationOptions{CreateMissing: true}))

	v, err := GetValue(path, "k", nil)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestDeleteKey(t *testing.T) {
	path := writeTree(t, tree.New().Set("a/b", 1).Set("a/c", 2).Set("top", true))

	require.NoError(t, DeleteKey(path, "a/b", nil))
	require.NoError(t, DeleteKey(path, "top", nil))

	got, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": map[string]any{"c": 2}}, got.Native())

	require.ErrorIs(t, DeleteKey(path, "a/b", nil), ErrKeyNotFound)
	require.ErrorIs(t, DeleteKey(path, "x/y", nil), ErrKeyNotFound)
	require.ErrorIs(t, DeleteKey(path, "/", nil), ErrKeyNotFound)
}
