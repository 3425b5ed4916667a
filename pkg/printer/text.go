package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/pathtree/pkg/tree"
)

// printText prints one [key] line per entry, nesting children by indent.
func (p *Printer) printText(t *tree.Tree, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	for k, v := range t.All() {
		sub, isTree := v.(*tree.Tree)
		if !isTree {
			if _, err := fmt.Fprintf(p.writer, "%s[%s] = %s\n", indent, k, formatLeaf(v)); err != nil {
				return err
			}
			continue
		}
		if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth && sub.Len() > 0 {
			if _, err := fmt.Fprintf(p.writer, "%s[%s] (%d entries)\n", indent, k, sub.Len()); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(p.writer, "%s[%s]\n", indent, k); err != nil {
			return err
		}
		if err := p.printText(sub, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// formatLeaf renders a scalar: strings quoted, nil as null.
func formatLeaf(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return fmt.Sprint(v)
}
