package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/pathtree/pkg/tree"
)

func sample() *tree.Tree {
	return tree.New().
		Set("name", "widget").
		Set("flags/enabled", true).
		Set("n", nil)
}

func render(t *testing.T, tr *tree.Tree, opts Options) string {
	t.Helper()
	out, err := Sprint(tr, opts)
	require.NoError(t, err)
	return out
}

func TestText(t *testing.T) {
	want := "[name] = \"widget\"\n" +
		"[flags]\n" +
		"  [enabled] = true\n" +
		"[n] = null\n"
	require.Equal(t, want, render(t, sample(), DefaultOptions()))
}

func TestTextMaxDepth(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDepth = 1
	out := render(t, sample(), opts)
	require.Contains(t, out, "[flags] (1 entries)\n")
	require.NotContains(t, out, "enabled")
}

func TestJSON(t *testing.T) {
	out := render(t, sample(), Options{Format: FormatJSON})
	require.Equal(t, `{"name":"widget","flags":{"enabled":true},"n":null}`+"\n", out)

	pretty := render(t, tree.New().Set("a", 1), Options{Format: FormatJSON, Pretty: true})
	require.Equal(t, "{\n  \"a\": 1\n}\n", pretty)
}

func TestYAMLKeepsOrder(t *testing.T) {
	tr := tree.New().
		Set("zeta", "last-alpha").
		Set("ports/[ ]", 80).
		Set("ports/[ ]", 443).
		Set("8", "eight").
		Set("alpha", "true")
	out := render(t, tr, Options{Format: FormatYAML})

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	root := doc.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind)

	var keys []string
	for i := 0; i < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}
	require.Equal(t, []string{"zeta", "ports", "8", "alpha"}, keys)
	require.Equal(t, yaml.SequenceNode, root.Content[3].Kind)
	require.Equal(t, "!!str", root.Content[7].Tag, "string that looks like a bool stays a string")

	ports := root.Content[3].Content
	require.Len(t, ports, 2)
	require.Equal(t, "80", ports[0].Value)
	require.Equal(t, "443", ports[1].Value)
}

func TestYAMLEmpty(t *testing.T) {
	require.Equal(t, "[]\n", render(t, tree.New(), Options{Format: FormatYAML}))
}

func TestArrayPHP(t *testing.T) {
	require.Equal(t, `[ 0 => "a",  1 => "b"]`+"\n", render(t, tree.Of("a", "b"), Options{Format: FormatArrayPHP}))

	tr := tree.New().Set("k", true).Set("l", []any{1})
	want := "[\n" +
		"  \"k\" => true,\n" +
		"  \"l\" => [\n" +
		"     0 => 1\n" +
		"  ]\n" +
		"]\n"
	require.Equal(t, want, render(t, tr, Options{Format: FormatArrayPHP, Pretty: true}))
}

func TestArrayJSON(t *testing.T) {
	require.Equal(t, `{"0": "a", "1": "b"}`+"\n", render(t, tree.Of("a", "b"), Options{Format: FormatArrayJSON}))

	tr := tree.New().Set("q", `it's "x"`)
	require.Equal(t, `{"q": "it\'s \"x\""}`+"\n", render(t, tr, Options{Format: FormatArrayJSON}))
}

func TestPrintPath(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{Format: FormatJSON})

	require.NoError(t, p.PrintPath(sample(), "name"))
	require.NoError(t, p.PrintPath(sample(), "flags"))
	require.Equal(t, "\"widget\"\n{\"enabled\":true}\n", buf.String())

	require.Error(t, p.PrintPath(sample(), "missing/key"))
}

func TestUnknownFormat(t *testing.T) {
	_, err := Sprint(sample(), Options{Format: "xml"})
	require.ErrorContains(t, err, `unknown format "xml"`)
}
