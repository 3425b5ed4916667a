package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathtree/internal/logger"
	"github.com/joshuapare/pathtree/pkg/tree"
	"github.com/joshuapare/pathtree/pkg/treefile"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	delimiter  string
	configPath string

	// cfg is the effective configuration after flags are applied.
	cfg = defaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Inspect and edit path tree files",
	Long: `treectl reads, edits, reshapes and converts tree files: ordered,
path-addressed containers stored in a compact binary format.

Keys are addressed with delimited paths such as "display/colors/theme".
The segment "[ ]" appends a new element.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVarP(&delimiter, "delimiter", "d", "", "Path delimiter (default from config, else \"/\")")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/treectl/config.yaml)")
}

func execute() {
	err := rootCmd.Execute()
	if cerr := logger.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("failed to close log file: %w", cerr)
	}
	if err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// setup loads the config file, applies global flags and starts logging.
func setup() error {
	loaded, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if delimiter != "" {
		loaded.Delimiter = delimiter
	}
	if err := loaded.validate(); err != nil {
		return err
	}
	cfg = loaded

	level, err := parseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if verbose {
		level = min(level, slog.LevelDebug)
	}
	return logger.Init(logger.Options{
		Enabled: !quiet,
		Output:  os.Stderr,
		LogDir:  cfg.Log.Dir,
		Level:   level,
		Format:  logger.Format(cfg.Log.Format),
	})
}

// factory builds trees with the configured delimiter.
func factory() (*tree.Factory, error) {
	return tree.NewFactory(tree.WithDelimiter(cfg.Delimiter), tree.WithLogger(logger.L))
}

// fileOptions returns treefile options for the current configuration.
func fileOptions(backup bool) (*treefile.OperationOptions, error) {
	f, err := factory()
	if err != nil {
		return nil, err
	}
	return &treefile.OperationOptions{
		Factory:      f,
		CreateBackup: backup || cfg.Backup,
	}, nil
}

// load opens a tree file with the current configuration.
func load(path string) (*tree.Tree, error) {
	opts, err := fileOptions(false)
	if err != nil {
		return nil, err
	}
	printVerbose("Loading tree: %s\n", path)
	return treefile.Load(path, opts)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
