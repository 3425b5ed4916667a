package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathtree/pkg/tree"
	"github.com/joshuapare/pathtree/pkg/treefile"
	"github.com/joshuapare/pathtree/pkg/treetext"
)

var (
	importFrom    string
	importCharset string
	importMerge   bool
	importBackup  bool
)

func init() {
	cmd := newImportCmd()
	cmd.Flags().StringVar(&importFrom, "from", "auto", "Input format (auto, json, treetext)")
	cmd.Flags().StringVar(&importCharset, "charset", "", "Charset of treetext input")
	cmd.Flags().BoolVar(&importMerge, "merge", false, "Merge into the existing file instead of replacing it")
	cmd.Flags().BoolVar(&importBackup, "backup", false, "Create backup")
	rootCmd.AddCommand(cmd)
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file> <input>",
		Short: "Build a tree file from JSON or treetext",
		Long: `The import command reads JSON or treetext and writes it as a tree file.
Use "-" to read from stdin. With --merge the input is applied over the
existing file: treetext entries overwrite in place, JSON replaces top level
entries.

Example:
  treectl import settings.tree settings.json
  treectl import settings.tree settings.txt --charset windows-1252
  cat extra.txt | treectl import settings.tree - --from treetext --merge`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args)
		},
	}
}

func runImport(args []string) error {
	path, input := args[0], args[1]

	opts, err := fileOptions(importBackup)
	if err != nil {
		return err
	}

	data, err := readInput(input)
	if err != nil {
		return err
	}

	dst := opts.Factory.New()
	if importMerge {
		dst, err = treefile.Load(path, opts)
		if errors.Is(err, treefile.ErrNotFound) {
			dst, err = opts.Factory.New(), nil
		}
		if err != nil {
			return err
		}
	}

	from := importFrom
	if from == "auto" || from == "" {
		from = sniffFormat(input, data)
	}
	printVerbose("Importing %s as %s\n", input, from)

	switch from {
	case "json":
		src := opts.Factory.New()
		if err := src.UnmarshalJSON(bytes.TrimPrefix(data, []byte("\ufeff"))); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
		for k, v := range src.All() {
			dst.Set([]tree.Key{k}, v)
		}
	case formatTreeText:
		charset := importCharset
		if charset == "" {
			charset = cfg.Charset
		}
		if err := treetext.ParseInto(dst, bytes.NewReader(data), treetext.Options{Charset: charset}); err != nil {
			return fmt.Errorf("failed to parse treetext: %w", err)
		}
	default:
		return fmt.Errorf("unknown input format %q", from)
	}

	if err := treefile.Save(path, dst, opts); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"file": path, "keys": dst.Len(), "success": true})
	}
	printInfo("Imported %d top level keys into %s\n", dst.Len(), path)
	return nil
}

func readInput(input string) ([]byte, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// sniffFormat picks json for .json files or for input that is a valid
// JSON object or array, and treetext otherwise.
func sniffFormat(name string, data []byte) string {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return "json"
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') && json.Valid(trimmed) {
		return "json"
	}
	return formatTreeText
}
