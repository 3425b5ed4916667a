// Package printer renders trees for humans and for other tools.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/pathtree/pkg/tree"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented key listing.
	FormatText Format = "text"

	// FormatJSON outputs JSON, preserving key order.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML, preserving key order.
	FormatYAML Format = "yaml"

	// FormatArrayPHP outputs a bracketed dump: [ 0 => "a", "k" => true].
	FormatArrayPHP Format = "array-php"

	// FormatArrayJSON outputs the same dump with JSON punctuation and
	// every key quoted.
	FormatArrayJSON Format = "array-json"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatArrayPHP, FormatArrayJSON}

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format.
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per nesting level.
	// Default: 2
	IndentSize int

	// MaxDepth limits how deep the text format descends (0 = unlimited).
	// Deeper trees are summarized by their entry count.
	MaxDepth int

	// Pretty spreads JSON and array dumps over multiple lines.
	Pretty bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
	}
}

// Printer writes trees to an io.Writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.Options{Format: printer.FormatYAML})
//	p.Print(t)
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{opts: opts, writer: w}
}

// Print writes t in the configured format.
func (p *Printer) Print(t *tree.Tree) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(t)
	case FormatYAML:
		return p.printYAML(t)
	case FormatArrayPHP:
		return p.printArray(t, phpStyle)
	case FormatArrayJSON:
		return p.printArray(t, jsonStyle)
	case FormatText, "":
		return p.printText(t, 0)
	}
	return fmt.Errorf("printer: unknown format %q", p.opts.Format)
}

// PrintPath writes the value stored at key. Nothing is created; a missing
// key is an error.
func (p *Printer) PrintPath(t *tree.Tree, key any) error {
	v, ok := t.Lookup(key)
	if !ok {
		return fmt.Errorf("printer: no value at %v", key)
	}
	if sub, isTree := v.(*tree.Tree); isTree {
		return p.Print(sub)
	}
	return p.printLeaf(v)
}

// Sprint renders t with opts into a string.
func Sprint(t *tree.Tree, opts Options) (string, error) {
	var b strings.Builder
	if err := New(&b, opts).Print(t); err != nil {
		return "", err
	}
	return b.String(), nil
}
