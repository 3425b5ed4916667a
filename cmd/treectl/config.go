package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/pathtree/internal/logger"
	"github.com/joshuapare/pathtree/pkg/printer"
	"github.com/joshuapare/pathtree/pkg/tree"
	"github.com/joshuapare/pathtree/pkg/treetext"
)

// formatTreeText selects treetext output in export.
const formatTreeText = "treetext"

// cliConfig is the treectl config file.
type cliConfig struct {
	Delimiter string    `yaml:"delimiter"`
	Backup    bool      `yaml:"backup"`
	Format    string    `yaml:"format"`
	Indent    int       `yaml:"indent"`
	Charset   string    `yaml:"charset"`
	Log       logConfig `yaml:"log"`
}

type logConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		Delimiter: tree.DefaultDelimiter,
		Format:    string(printer.FormatText),
		Indent:    printer.DefaultIndentSize,
		Charset:   treetext.CharsetUTF8,
		Log:       logConfig{Level: "notice", Format: string(logger.FormatText)},
	}
}

// defaultConfigPath returns the per-user config location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "treectl", "config.yaml")
}

// loadConfig reads path over the defaults. An empty path falls back to the
// per-user config file when it exists.
func loadConfig(path string) (cliConfig, error) {
	c := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return c, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return c, nil
}

func (c cliConfig) validate() error {
	if c.Delimiter == "" {
		return fmt.Errorf("config: %w", tree.ErrInvalidDelimiter)
	}
	if c.Format != formatTreeText && !slices.Contains(printer.Formats, printer.Format(c.Format)) {
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.Indent < 0 {
		return fmt.Errorf("config: negative indent %d", c.Indent)
	}
	switch logger.Format(c.Log.Format) {
	case logger.FormatText, logger.FormatJSON, "":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// parseLevel maps a level name to a slog level.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "notice", "":
		return logger.LevelNotice, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("config: unknown log level %q", s)
}
