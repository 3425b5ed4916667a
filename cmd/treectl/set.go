package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathtree/pkg/tree"
	"github.com/joshuapare/pathtree/pkg/treefile"
)

var (
	setType   string
	setBackup bool
	setCreate bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVarP(&setType, "type", "t", "auto", "Value type (auto, string, int, float, bool, null, json)")
	cmd.Flags().BoolVar(&setBackup, "backup", false, "Create backup")
	cmd.Flags().BoolVar(&setCreate, "create", false, "Create the file if it doesn't exist")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Store a value at a path",
		Long: `The set command stores a value at a path, creating intermediate trees.
A "[ ]" segment appends a new element.

Example:
  treectl set settings.tree display/theme dark
  treectl set settings.tree display/width 80 --type int
  treectl set settings.tree plugins/[ ] '{"name":"git"}' --type json
  treectl set new.tree a/b true --create`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	path, key, raw := args[0], args[1], args[2]

	opts, err := fileOptions(setBackup)
	if err != nil {
		return err
	}
	opts.CreateMissing = setCreate

	value, err := parseValue(raw, setType, opts.Factory)
	if err != nil {
		return fmt.Errorf("failed to parse value: %w", err)
	}

	printVerbose("Setting %s in %s\n", key, path)
	if err := treefile.SetValue(path, key, value, opts); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file":    path,
			"path":    key,
			"type":    fmt.Sprintf("%T", value),
			"success": true,
		})
	}
	printInfo("Set %s\n", key)
	return nil
}

// parseValue converts a command line argument into a tree value.
func parseValue(raw, typ string, f *tree.Factory) (any, error) {
	switch strings.ToLower(typ) {
	case "string", "str":
		return raw, nil
	case "int":
		return strconv.Atoi(raw)
	case "float":
		return strconv.ParseFloat(raw, 64)
	case "bool":
		return strconv.ParseBool(raw)
	case "null", "nil":
		return nil, nil
	case "json":
		t := f.New()
		if err := t.UnmarshalJSON([]byte(raw)); err != nil {
			return nil, err
		}
		return t, nil
	case "auto", "":
		return autoValue(raw), nil
	}
	return nil, fmt.Errorf("unknown value type %q", typ)
}

// autoValue guesses the type of raw: integers, floats, booleans and null
// are recognized, anything else stays a string.
func autoValue(raw string) any {
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	return raw
}
