package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/joshuapare/pathtree/pkg/tree"
)

var (
	treeDepth  int
	treeValues bool
	treeASCII  bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeValues, "values", false, "Show leaf values too")
	cmd.Flags().BoolVar(&treeASCII, "ascii", false, "ASCII-only characters")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file> [path]",
		Short: "Display tree structure",
		Long: `The tree command draws the nesting of a tree.

Example:
  treectl tree settings.tree
  treectl tree settings.tree display --depth 2
  treectl tree settings.tree --values --ascii`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
}

type branchSet struct {
	tee, elbow, pipe, blank string
}

var (
	unicodeBranches = branchSet{"├── ", "└── ", "│   ", "    "}
	asciiBranches   = branchSet{"|-- ", "`-- ", "|   ", "    "}
)

// treeStyles colors the drawing. All styles are plain with --no-color.
type treeStyles struct {
	branch lipgloss.Style
	node   lipgloss.Style
	leaf   lipgloss.Style
	value  lipgloss.Style
}

func newTreeStyles() treeStyles {
	if noColor {
		return treeStyles{
			branch: lipgloss.NewStyle(),
			node:   lipgloss.NewStyle(),
			leaf:   lipgloss.NewStyle(),
			value:  lipgloss.NewStyle(),
		}
	}
	return treeStyles{
		branch: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		node:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		leaf:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		value:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func runTree(args []string) error {
	t, err := load(args[0])
	if err != nil {
		return err
	}
	root := "."
	if len(args) > 1 {
		root = args[1]
		t, err = subtree(t, args[1])
		if err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(t)
	}

	d := drawer{styles: newTreeStyles(), branches: unicodeBranches, maxDepth: treeDepth, values: treeValues}
	if treeASCII {
		d.branches = asciiBranches
	}
	var b strings.Builder
	b.WriteString(d.styles.node.Render(root))
	b.WriteByte('\n')
	d.draw(&b, t, "", 1)
	_, err = fmt.Fprint(os.Stdout, b.String())
	return err
}

type drawer struct {
	styles   treeStyles
	branches branchSet
	maxDepth int
	values   bool
}

func (d drawer) draw(b *strings.Builder, t *tree.Tree, prefix string, depth int) {
	entries := t.Entries()
	for i, e := range entries {
		last := i == len(entries)-1
		branch, next := d.branches.tee, d.branches.pipe
		if last {
			branch, next = d.branches.elbow, d.branches.blank
		}
		b.WriteString(d.styles.branch.Render(prefix + branch))

		sub, isTree := e.Value.(*tree.Tree)
		switch {
		case isTree:
			b.WriteString(d.styles.node.Render(e.Key.String()))
			if d.maxDepth > 0 && depth >= d.maxDepth && sub.Len() > 0 {
				fmt.Fprintf(b, " (%d)", sub.Len())
			}
		case d.values:
			b.WriteString(d.styles.leaf.Render(e.Key.String()))
			b.WriteString(" = ")
			b.WriteString(d.styles.value.Render(leafString(e.Value)))
		default:
			b.WriteString(d.styles.leaf.Render(e.Key.String()))
		}
		b.WriteByte('\n')

		if isTree && (d.maxDepth == 0 || depth < d.maxDepth) {
			d.draw(b, sub, prefix+next, depth+1)
		}
	}
}

func leafString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", x)
	}
	return fmt.Sprint(v)
}
