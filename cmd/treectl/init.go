package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathtree/pkg/treefile"
)

var initForce bool

func init() {
	cmd := newInitCmd()
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
	rootCmd.AddCommand(cmd)
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <file>",
		Short: "Create an empty tree file",
		Long: `The init command writes an empty tree file.

Example:
  treectl init settings.tree
  treectl init settings.tree --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args)
		},
	}
}

func runInit(args []string) error {
	path := args[0]

	opts, err := fileOptions(false)
	if err != nil {
		return err
	}

	if initForce {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	if err := treefile.Create(path, opts); err != nil {
		return fmt.Errorf("failed to create tree: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"file": path, "success": true})
	}
	printInfo("Created %s\n", path)
	return nil
}
