package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathtree/pkg/printer"
	"github.com/joshuapare/pathtree/pkg/tree"
	"github.com/joshuapare/pathtree/pkg/treetext"
)

var (
	exportFormat  string
	exportPretty  bool
	exportOutput  string
	exportCharset string
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format (text, json, yaml, array-php, array-json, treetext)")
	cmd.Flags().BoolVar(&exportPretty, "pretty", false, "Spread json and array output over multiple lines")
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().StringVar(&exportCharset, "charset", "", "Charset for treetext output (utf-8, windows-1252, iso-8859-1)")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file> [path]",
		Short: "Convert a tree file to another format",
		Long: `The export command writes a tree, or the subtree at a path, in a text
format. The treetext format can be read back with import.

Example:
  treectl export settings.tree --format yaml
  treectl export settings.tree display --format json --pretty
  treectl export settings.tree --format treetext -o settings.txt --charset windows-1252`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
}

func runExport(args []string) error {
	t, err := load(args[0])
	if err != nil {
		return err
	}
	if len(args) > 1 {
		t, err = subtree(t, args[1])
		if err != nil {
			return err
		}
	}

	var w io.Writer = os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := export(w, t); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	if exportOutput != "" {
		printVerbose("Wrote %s\n", exportOutput)
	}
	return nil
}

func export(w io.Writer, t *tree.Tree) error {
	format := exportFormat
	if format == "" && !jsonOut {
		format = cfg.Format
	}
	if format == formatTreeText {
		charset := exportCharset
		if charset == "" {
			charset = cfg.Charset
		}
		return treetext.Write(w, t, treetext.Options{Charset: charset})
	}
	return printer.New(w, printerOptions(format, exportPretty)).Print(t)
}
