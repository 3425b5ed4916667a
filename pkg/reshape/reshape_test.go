package reshape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pathtree/pkg/tree"
)

type M = map[string]any
type L = []any

func users() *tree.Tree {
	return tree.FromEntries(
		tree.Entry{Key: tree.NameKey("u1"), Value: M{"name": "ann", "role": "admin"}},
		tree.Entry{Key: tree.NameKey("u2"), Value: M{"name": "bob", "role": "user"}},
		tree.Entry{Key: tree.NameKey("u3"), Value: M{"name": "cat", "role": "admin"}},
		tree.Entry{Key: tree.NameKey("note"), Value: "not a record"},
	)
}

func requireNative(t *testing.T, want any, got *tree.Tree) {
	t.Helper()
	if diff := cmp.Diff(want, got.Native()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchAndFind(t *testing.T) {
	set := users()
	require.Equal(t, []tree.Key{tree.NameKey("u1"), tree.NameKey("u3")}, Search(set, "role", "admin"))
	require.Empty(t, Search(set, "role", []int{1}))
	require.Empty(t, Search(set, "missing", "admin"))

	k, ok := Find(set, "role", "admin", false)
	require.True(t, ok)
	require.Equal(t, tree.NameKey("u1"), k)

	k, ok = Find(set, "role", "admin", true)
	require.True(t, ok)
	require.Equal(t, tree.NameKey("u3"), k)

	_, ok = Find(set, "role", "guest", false)
	require.False(t, ok)
}

func TestRotate(t *testing.T) {
	set := users()

	requireNative(t, M{
		"admin": M{"name": "ann", "0": "u1"},
		"user":  M{"name": "bob", "0": "u2"},
	}, Rotate(set, "role", nil, false))

	requireNative(t, M{
		"admin": M{"name": "cat", "id": "u3"},
		"user":  M{"name": "bob", "id": "u2"},
	}, Rotate(set, "role", "id", true))

	require.Equal(t, 4, set.Len(), "input must not change")
	require.Equal(t, "admin", set.Get("u1/role"))
}

func TestRotateKeepsConfig(t *testing.T) {
	set := users()
	require.NoError(t, set.Configure(tree.WithDelimiter(".")))

	out := Rotate(set, "role", "id", false)
	require.Equal(t, "u1", out.Get("admin.id"))
}

func TestRotateCategory(t *testing.T) {
	requireNative(t, M{
		"admin": L{M{"name": "ann", "id": "u1"}, M{"name": "cat", "id": "u3"}},
		"user":  L{M{"name": "bob", "id": "u2"}},
	}, RotateCategory(users(), "role", "id"))
}

func TestRotateJagged(t *testing.T) {
	set := users()
	set.Set("u4", M{"name": "dan", "role": "admin"})

	requireNative(t, M{
		"admin": L{
			M{"name": "ann", "id": "u1"},
			M{"name": "cat", "id": "u3"},
			M{"name": "dan", "id": "u4"},
		},
		"user": M{"name": "bob", "id": "u2"},
	}, RotateJagged(set, "role", "id"))
}

func TestRotations(t *testing.T) {
	set := users()
	out := Rotations(set, "id", false)

	require.Equal(t, []tree.Key{tree.NameKey("id"), tree.NameKey("name"), tree.NameKey("role")}, out.Keys())
	requireNative(t, set.Native(), out.Get("id").(*tree.Tree))
	requireNative(t, M{
		"ann": M{"role": "admin", "id": "u1"},
		"bob": M{"role": "user", "id": "u2"},
		"cat": M{"role": "admin", "id": "u3"},
	}, out.Get("name").(*tree.Tree))
	requireNative(t, M{
		"admin": M{"name": "ann", "id": "u1"},
		"user":  M{"name": "bob", "id": "u2"},
	}, out.Get("role").(*tree.Tree))

	last := Rotations(set, nil, true)
	require.False(t, last.Has("id"))
	requireNative(t, M{"name": "cat"}, last.Get("role/admin").(*tree.Tree))
}

func TestSorts(t *testing.T) {
	set := users()
	out := Sorts(set, "id")

	ids := out.Get("id").(*tree.Tree)
	require.Equal(t, 4, ids.Len())
	requireNative(t, M{"u1": M{"name": "ann", "role": "admin"}}, ids.Get(0).(*tree.Tree))
	requireNative(t, M{"note": "not a record"}, ids.Get(3).(*tree.Tree))

	requireNative(t, M{
		"admin": L{M{"name": "ann", "id": "u1"}, M{"name": "cat", "id": "u3"}},
		"user":  L{M{"name": "bob", "id": "u2"}},
	}, out.Get("role").(*tree.Tree))
	requireNative(t, L{M{"role": "user", "id": "u2"}}, out.Get("name/bob").(*tree.Tree))
}

func TestSortsJagged(t *testing.T) {
	out := SortsJagged(users(), nil)

	requireNative(t, M{
		"admin": L{M{"name": "ann"}, M{"name": "cat"}},
		"user":  M{"name": "bob"},
	}, out.Get("role").(*tree.Tree))
	requireNative(t, M{"role": "user"}, out.Get("name/bob").(*tree.Tree))
}

func TestWithout(t *testing.T) {
	src := tree.FromMap(M{"a": 1, "b": 2, "c": 3})

	requireNative(t, M{"a": 1, "c": 3}, Without(src, "b"))
	requireNative(t, M{"c": 3}, Without(src, tree.FromMap(M{"a": 0, "b": 0})))
	require.Equal(t, 3, src.Len())
}

func TestFlipAndFillKeys(t *testing.T) {
	flipped := FlipKeys("a", "b", "a")
	require.Equal(t, []tree.Key{tree.NameKey("a"), tree.NameKey("b")}, flipped.Keys())
	require.Equal(t, 2, flipped.Get("a"))
	require.Equal(t, 1, flipped.Get("b"))

	filled := FillKeys(nil, "x", "y", struct{}{})
	require.Equal(t, 2, filled.Len())
	v, ok := filled.Lookup("x")
	require.True(t, ok)
	require.Nil(t, v)
}

func TestIndexHelpers(t *testing.T) {
	tr := tree.New().Set(0, "a").Set(3, "d").Set(5, nil).Set("name", "x").Set(7, "h")

	cases := []struct {
		name string
		fn   func(*tree.Tree, int) (int, bool)
		in   int
		want int
		ok   bool
	}{
		{"floor 3", FloorIndex, 3, 0, true},
		{"floor 5 skips nil", FloorIndex, 5, 3, true},
		{"floor 0", FloorIndex, 0, 0, false},
		{"floor negative", FloorIndex, -4, 3, true},
		{"ceil 3 skips nil", CeilIndex, 3, 7, true},
		{"ceil past max", CeilIndex, 7, 0, false},
		{"ceil negative", CeilIndex, -1, 3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.fn(tr, tc.in)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}

	hi, ok := MaxIndex(tr)
	require.True(t, ok)
	require.Equal(t, 7, hi)
	lo, ok := MinIndex(tr)
	require.True(t, ok)
	require.Equal(t, 0, lo)

	_, ok = MaxIndex(tree.New().Set("only", "names"))
	require.False(t, ok)
	_, ok = CeilIndex(tree.New(), 1)
	require.False(t, ok)
}
