package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathtree/pkg/treefile"
)

var (
	deleteBackup bool
	deleteDryRun bool
)

func init() {
	cmd := newDeleteCmd()
	cmd.Flags().BoolVar(&deleteBackup, "backup", false, "Create backup")
	cmd.Flags().BoolVar(&deleteDryRun, "dry-run", false, "Show what would be removed without writing")
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <file> <path>",
		Aliases: []string{"rm"},
		Short:   "Remove the entry at a path",
		Long: `The delete command removes the entry named by the last segment of a
path, along with everything below it.

Example:
  treectl delete settings.tree display/theme
  treectl rm settings.tree plugins --backup`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
}

func runDelete(args []string) error {
	path, key := args[0], args[1]

	opts, err := fileOptions(deleteBackup)
	if err != nil {
		return err
	}
	opts.DryRun = deleteDryRun

	if err := treefile.DeleteKey(path, key, opts); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file":    path,
			"path":    key,
			"dry_run": deleteDryRun,
			"success": true,
		})
	}
	if deleteDryRun {
		printInfo("Would delete %s\n", key)
		return nil
	}
	printInfo("Deleted %s\n", key)
	return nil
}
