package tree

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pathtree/internal/format"
)

func sampleTree() *Tree {
	tr := New()
	tr.Set("name", "widget")
	tr.Set("count", 3)
	tr.Set("ratio", 0.25)
	tr.Set("small", float32(1.5))
	tr.Set("flags/on", true)
	tr.Set("flags/off", false)
	tr.Set("flags/unset", nil)
	tr.Set("sizes", []any{int8(1), int16(2), int32(3), int64(4)})
	tr.Set("unsigned", []any{uint(1), uint8(2), uint16(3), uint32(4), uint64(5)})
	tr.Set("-7", "negative index")
	return tr
}

func TestBinaryRoundTrip(t *testing.T) {
	tr := sampleTree()
	blob, err := tr.MarshalBinary()
	require.NoError(t, err)

	got := New()
	require.NoError(t, got.UnmarshalBinary(blob))

	require.Equal(t, tr.Keys(), got.Keys())
	if diff := cmp.Diff(tr.Native(), got.Native()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, float32(1.5), got.Get("small"))
	require.Equal(t, uint16(3), got.Get("unsigned/2"))
	require.Same(t, got, got.Get("flags").(*Tree).Parent())
}

func TestUnmarshalBinaryReplacesContents(t *testing.T) {
	blob, err := Of("a", "b").MarshalBinary()
	require.NoError(t, err)

	tr := New().Set("old", 1)
	old := tr.Get("nested").(*Tree)
	require.NoError(t, tr.UnmarshalBinary(blob))

	require.False(t, tr.Has("old"))
	require.Nil(t, old.Parent())
	require.Equal(t, []any{"a", "b"}, tr.Native())

	tr.Set(nil, "c")
	require.Equal(t, "c", tr.Get(2))
}

func TestMarshalBinaryRejectsUnsupportedLeaf(t *testing.T) {
	tr := New().Set("ch", make(chan int))

	_, err := tr.MarshalBinary()
	require.ErrorIs(t, err, ErrUnsupportedValue)
	require.Contains(t, err.Error(), "chan int")
}

func TestUnmarshalBinaryErrors(t *testing.T) {
	good, err := sampleTree().MarshalBinary()
	require.NoError(t, err)

	cases := map[string]struct {
		data []byte
		want error
	}{
		"empty":     {nil, format.ErrTruncated},
		"signature": {append([]byte("nope"), good[4:]...), format.ErrSignatureMismatch},
		"truncated": {good[:len(good)-3], format.ErrTruncated},
		"trailing":  {append(append([]byte(nil), good...), 0), format.ErrTrailingData},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tr := New().Set("keep", 1)
			err := tr.UnmarshalBinary(tc.data)
			require.ErrorIs(t, err, tc.want)

			var te *Error
			require.True(t, errors.As(err, &te))
			require.Equal(t, ErrKindCodec, te.Kind)
			require.Equal(t, 1, tr.Get("keep"))
		})
	}
}

func TestUnmarshalBinaryUnknownTag(t *testing.T) {
	w := format.NewWriter()
	w.NodeStart(1)
	w.Byte(format.KeyName)
	w.String("k")
	w.Byte(0xEE)

	err := New().UnmarshalBinary(w.Bytes())
	require.ErrorIs(t, err, format.ErrUnknownTag)
}

func TestUnmarshalBinaryDepthLimit(t *testing.T) {
	w := format.NewWriter()
	for range format.MaxDepth + 2 {
		w.NodeStart(1)
		w.Byte(format.KeyIndex)
		w.I64(0)
		w.Byte(format.TagNode)
	}
	w.NodeStart(0)

	err := New().UnmarshalBinary(w.Bytes())
	require.ErrorIs(t, err, format.ErrTooDeep)
}

// chain nests depth trees under repeated "d" keys.
func chain(depth int) *Tree {
	tr := New()
	cur := tr
	for range depth {
		cur = cur.Get("d").(*Tree)
	}
	cur.Set("leaf", 1)
	return tr
}

func TestBinaryDepthLimit(t *testing.T) {
	blob, err := chain(format.MaxDepth).MarshalBinary()
	require.NoError(t, err)
	got := New()
	require.NoError(t, got.UnmarshalBinary(blob))
	require.Equal(t, 1, got.Get(strings.Repeat("d/", format.MaxDepth)+"leaf"))

	_, err = chain(format.MaxDepth + 1).MarshalBinary()
	require.ErrorIs(t, err, format.ErrTooDeep)

	var te *Error
	require.True(t, errors.As(err, &te))
	require.Equal(t, ErrKindCodec, te.Kind)
	require.Less(t, len(err.Error()), 4*format.MaxDepth+100)
	require.Equal(t, 1, strings.Count(err.Error(), "tree: encode"))
}

func TestCodecErrorsNameTheEntry(t *testing.T) {
	tr := New().Set("a/b/ch", make(chan int))
	_, err := tr.MarshalBinary()
	require.ErrorIs(t, err, ErrUnsupportedValue)
	require.Equal(t, "tree: encode: [a][b][ch]: tree: unsupported value type: chan int", err.Error())

	w := format.NewWriter()
	w.NodeStart(1)
	w.Byte(format.KeyName)
	w.String("a")
	w.Byte(format.TagNode)
	w.NodeStart(1)
	w.Byte(format.KeyName)
	w.String("b")
	w.Byte(0xEE)

	err = New().UnmarshalBinary(w.Bytes())
	require.ErrorIs(t, err, format.ErrUnknownTag)
	require.True(t, strings.HasPrefix(err.Error(), "tree: decode: [a][b]: value tag 0xee"), err.Error())
}

func TestJSONRoundTripKeepsOrder(t *testing.T) {
	src := `{"z":1,"a":{"k":[true,null,"s",2.5]},"8":"eight"}`
	tr := New()
	require.NoError(t, json.Unmarshal([]byte(src), tr))

	require.Equal(t, []Key{NameKey("z"), NameKey("a"), IndexKey(8)}, tr.Keys())
	require.Equal(t, 1, tr.Get("z"))
	require.Equal(t, 2.5, tr.Get("a/k/3"))

	out, err := tr.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, src, out)
	require.Equal(t, src, out)
}

func TestJSONListShape(t *testing.T) {
	tr := Of("a", "b")
	out, err := json.Marshal(tr)
	require.NoError(t, err)
	require.Equal(t, `["a","b"]`, string(out))

	tr.Delete(0)
	out, err = json.Marshal(tr)
	require.NoError(t, err)
	require.Equal(t, `{"1":"b"}`, string(out))

	out, err = json.Marshal(New())
	require.NoError(t, err)
	require.Equal(t, `[]`, string(out))
}

func TestUnmarshalJSONErrors(t *testing.T) {
	tr := New().Set("keep", 1)

	require.Error(t, tr.UnmarshalJSON([]byte(`"scalar"`)))
	require.Error(t, tr.UnmarshalJSON([]byte(`{"a":`)))
	require.Error(t, tr.UnmarshalJSON([]byte(`{} {}`)))
	require.Equal(t, 1, tr.Get("keep"))
}

func TestUnmarshalJSONLargeIntegers(t *testing.T) {
	tr := New()
	require.NoError(t, tr.UnmarshalJSON([]byte(`{"big":9007199254740993,"f":1e3}`)))
	require.Equal(t, 9007199254740993, tr.Get("big"))
	require.Equal(t, 1000.0, tr.Get("f"))
}

func TestStringIsIndentedJSON(t *testing.T) {
	tr := New().Set("a/b", 1)
	require.Equal(t, "{\n    \"a\": {\n        \"b\": 1\n    }\n}", tr.String())
}
