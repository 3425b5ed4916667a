package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/pathtree/pkg/tree"
)

// arrayStyle holds the punctuation of a bracketed dump.
type arrayStyle struct {
	open, close string
	sep         string
	bareIndex   bool // index keys unquoted, with a leading space
}

var (
	phpStyle  = arrayStyle{open: "[", close: "]", sep: " => ", bareIndex: true}
	jsonStyle = arrayStyle{open: "{", close: "}", sep: ": "}
)

var slashes = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `"`, `\"`, "\x00", `\0`)

func (p *Printer) printArray(t *tree.Tree, style arrayStyle) error {
	indent, eol := "", ""
	if p.opts.Pretty {
		indent, eol = strings.Repeat(" ", p.opts.IndentSize), "\n"
	}
	var b strings.Builder
	writeArray(&b, t, style, indent, eol, 1)
	b.WriteByte('\n')
	_, err := fmt.Fprint(p.writer, b.String())
	return err
}

func writeArray(b *strings.Builder, t *tree.Tree, style arrayStyle, indent, eol string, depth int) {
	b.WriteString(style.open)
	b.WriteString(eol)
	n := t.Len()
	i := 0
	for k, v := range t.All() {
		b.WriteString(strings.Repeat(indent, depth))
		if k.IsIndex() && style.bareIndex {
			fmt.Fprintf(b, " %s%s", k, style.sep)
		} else {
			fmt.Fprintf(b, "%q%s", k.String(), style.sep)
		}
		if sub, ok := v.(*tree.Tree); ok {
			writeArray(b, sub, style, indent, eol, depth+1)
		} else {
			b.WriteString(arrayLeaf(v))
		}
		i++
		switch {
		case i == n:
			b.WriteString(eol)
		case eol == "":
			b.WriteString(", ")
		default:
			b.WriteString(",")
			b.WriteString(eol)
		}
	}
	b.WriteString(strings.Repeat(indent, depth-1))
	b.WriteString(style.close)
}

// arrayLeaf renders booleans and numbers bare and anything else as a
// slash-escaped string.
func arrayLeaf(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return formatLeaf(x)
	case string:
		return `"` + slashes.Replace(x) + `"`
	}
	return `"` + slashes.Replace(fmt.Sprint(v)) + `"`
}
