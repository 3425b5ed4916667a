package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathtree/pkg/keys"
	"github.com/joshuapare/pathtree/pkg/tree"
)

var keysQuoted bool

func init() {
	cmd := newKeysCmd()
	cmd.Flags().BoolVar(&keysQuoted, "quoted", false, "Print keys as one quoted, comma separated line")
	rootCmd.AddCommand(cmd)
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <file> [path]",
		Short: "List the keys of a tree",
		Long: `The keys command lists the direct keys of the tree at a path, in
insertion order.

Example:
  treectl keys settings.tree
  treectl keys settings.tree display --quoted
  treectl keys settings.tree display --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
}

func runKeys(args []string) error {
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

	if jsonOut {
		names := make([]string, 0, t.Len())
		for _, k := range t.Keys() {
			names = append(names, k.String())
		}
		return printJSON(names)
	}
	if keysQuoted {
		fmt.Println(keys.Quoted(t))
		return nil
	}
	for _, k := range t.Keys() {
		fmt.Println(k.String())
	}
	return nil
}

// subtree looks up the tree at key without creating anything.
func subtree(t *tree.Tree, key string) (*tree.Tree, error) {
	v, ok := t.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("no value at %s", key)
	}
	sub, isTree := v.(*tree.Tree)
	if !isTree {
		return nil, fmt.Errorf("%s is a leaf, not a tree", key)
	}
	return sub, nil
}
