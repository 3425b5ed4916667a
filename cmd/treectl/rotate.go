package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathtree/pkg/printer"
	"github.com/joshuapare/pathtree/pkg/reshape"
	"github.com/joshuapare/pathtree/pkg/tree"
	"github.com/joshuapare/pathtree/pkg/treefile"
)

// Reshape modes.
const (
	modeRotate      = "rotate"
	modeCategory    = "category"
	modeJagged      = "jagged"
	modeRotations   = "rotations"
	modeSorts       = "sorts"
	modeSortsJagged = "sorts-jagged"
)

var (
	rotateBy      string
	rotateOldKey  string
	rotateLast    bool
	rotatePrimary string
	rotateMode    string
	rotateOutput  string
	rotateFormat  string
)

func init() {
	cmd := newRotateCmd()
	cmd.Flags().StringVar(&rotateBy, "by", "", "Field to re-key records by (rotate, category, jagged)")
	cmd.Flags().StringVar(&rotateOldKey, "old-key", "", "Store each record's old key under this name (default: append)")
	cmd.Flags().BoolVar(&rotateLast, "last", false, "On duplicate values keep the last record instead of the first")
	cmd.Flags().StringVar(&rotatePrimary, "primary", "", "Primary key name for rotations, sorts and sorts-jagged")
	cmd.Flags().StringVar(&rotateMode, "mode", modeRotate, "Reshape mode (rotate, category, jagged, rotations, sorts, sorts-jagged)")
	cmd.Flags().StringVarP(&rotateOutput, "output", "o", "", "Save the result as a tree file instead of printing it")
	cmd.Flags().StringVarP(&rotateFormat, "format", "f", "", "Output format when printing")
	rootCmd.AddCommand(cmd)
}

func newRotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate <file> [path]",
		Short: "Re-key a table of records by a field",
		Long: `The rotate command treats the tree at a path as a table of records and
builds an index keyed by field values. The input file is never modified.

Example:
  treectl rotate users.tree --by role
  treectl rotate users.tree --by role --mode category --old-key id
  treectl rotate users.tree --mode sorts --primary id -o index.tree`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRotate(args)
		},
	}
}

func runRotate(args []string) error {
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

	out, err := reshapeTree(t)
	if err != nil {
		return err
	}
	printVerbose("Reshaped %d records into %d keys\n", t.Len(), out.Len())

	if rotateOutput != "" {
		opts, err := fileOptions(false)
		if err != nil {
			return err
		}
		if err := treefile.Save(rotateOutput, out, opts); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}
		printInfo("Wrote %s\n", rotateOutput)
		return nil
	}
	return printer.New(os.Stdout, printerOptions(rotateFormat, false)).Print(out)
}

func reshapeTree(t *tree.Tree) (*tree.Tree, error) {
	oldKey := optional(rotateOldKey)
	primary := optional(rotatePrimary)

	switch rotateMode {
	case modeRotate, modeCategory, modeJagged:
		if rotateBy == "" {
			return nil, fmt.Errorf("--by is required for mode %s", rotateMode)
		}
	}

	switch rotateMode {
	case modeRotate:
		return reshape.Rotate(t, rotateBy, oldKey, rotateLast), nil
	case modeCategory:
		return reshape.RotateCategory(t, rotateBy, oldKey), nil
	case modeJagged:
		return reshape.RotateJagged(t, rotateBy, oldKey), nil
	case modeRotations:
		return reshape.Rotations(t, primary, rotateLast), nil
	case modeSorts:
		return reshape.Sorts(t, primary), nil
	case modeSortsJagged:
		return reshape.SortsJagged(t, primary), nil
	}
	return nil, fmt.Errorf("unknown mode %q", rotateMode)
}

// optional maps an empty flag to nil.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
