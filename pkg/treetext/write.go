package treetext

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/pathtree/pkg/tree"
)

// Write renders t as a document. Each subtree becomes a section after the
// entries of its parent, so leaves are written before nested trees.
// Leaves must be nil, bool, string, or an integer or float kind.
func Write(w io.Writer, t *tree.Tree, opts Options) error {
	enc, err := charset(opts.Charset)
	if err != nil {
		return err
	}
	out := w
	var tw *transform.Writer
	if enc != unicode.UTF8 {
		tw = transform.NewWriter(w, enc.NewEncoder())
		out = tw
	}
	bw := bufio.NewWriter(out)
	if err := writeSection(bw, t, nil); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("treetext: write: %w", err)
	}
	if tw != nil {
		if err := tw.Close(); err != nil {
			return fmt.Errorf("treetext: write: %w", err)
		}
	}
	return nil
}

// String renders t as a UTF-8 document.
func String(t *tree.Tree) (string, error) {
	var b strings.Builder
	if err := Write(&b, t, Options{}); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeSection(w *bufio.Writer, t *tree.Tree, path []string) error {
	var subs []tree.Entry
	leaves := 0
	for k, v := range t.All() {
		if _, ok := v.(*tree.Tree); ok {
			subs = append(subs, tree.Entry{Key: k, Value: v})
			continue
		}
		leaves++
	}

	if len(path) > 0 && (leaves > 0 || t.Len() == 0) {
		segs := make([]string, len(path))
		for i, s := range path {
			segs[i] = quoteIfNeeded(s)
		}
		fmt.Fprintf(w, "%s%s%s\n", SectionOpen, strings.Join(segs, PathSeparator), SectionClose)
	}
	for k, v := range t.All() {
		if _, ok := v.(*tree.Tree); ok {
			continue
		}
		text, err := formatValue(v)
		if err != nil {
			return fmt.Errorf("treetext: %s: %w", strings.Join(append(path, k.String()), PathSeparator), err)
		}
		fmt.Fprintf(w, "%s %s %s\n", quoteIfNeeded(k.String()), Assignment, text)
	}
	for _, e := range subs {
		if err := writeSection(w, e.Value.(*tree.Tree), append(path[:len(path):len(path)], e.Key.String())); err != nil {
			return err
		}
	}
	return nil
}

func formatValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return LiteralNull, nil
	case bool:
		return strconv.FormatBool(x), nil
	case string:
		return strconv.Quote(x), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), nil
	case float32:
		return formatFloat(float64(x), 32), nil
	case float64:
		return formatFloat(x, 64), nil
	}
	return "", fmt.Errorf("unsupported value type %T", v)
}

// formatFloat keeps a decimal point so the value reads back as a float.
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

// quoteIfNeeded quotes names that would not read back verbatim.
func quoteIfNeeded(s string) string {
	if s == "" || strings.TrimSpace(s) != s ||
		strings.ContainsAny(s, PathSeparator+SectionOpen+SectionClose+Quote+Assignment+CommentPrefix+AltCommentPrefix+"\\\n\r") {
		return strconv.Quote(s)
	}
	return s
}
