package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathtree/pkg/printer"
)

var (
	getFormat string
	getPretty bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVarP(&getFormat, "format", "f", "", "Output format (text, json, yaml, array-php, array-json)")
	cmd.Flags().BoolVar(&getPretty, "pretty", false, "Spread json and array output over multiple lines")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> [path]",
		Short: "Print the value at a path",
		Long: `The get command prints the value stored at a path. Without a path the
whole tree is printed. Nothing is created when the path is missing.

Example:
  treectl get settings.tree display/theme
  treectl get settings.tree display --format yaml
  treectl get settings.tree --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

// printerOptions resolves the output format from flags and config.
func printerOptions(format string, pretty bool) printer.Options {
	opts := printer.DefaultOptions()
	opts.IndentSize = cfg.Indent
	opts.Pretty = pretty
	opts.Format = printer.Format(cfg.Format)
	if format != "" {
		opts.Format = printer.Format(format)
	}
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	if opts.Format == formatTreeText {
		opts.Format = printer.FormatText
	}
	return opts
}

func runGet(args []string) error {
	t, err := load(args[0])
	if err != nil {
		return err
	}

	p := printer.New(os.Stdout, printerOptions(getFormat, getPretty))
	if len(args) == 1 {
		return p.Print(t)
	}
	if err := p.PrintPath(t, args[1]); err != nil {
		return fmt.Errorf("failed to get %s: %w", args[1], err)
	}
	return nil
}
