package treefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joshuapare/pathtree/internal/fsync"
	"github.com/joshuapare/pathtree/internal/logger"
	"github.com/joshuapare/pathtree/internal/mmfile"
	"github.com/joshuapare/pathtree/pkg/tree"
)

var (
	// ErrExists is returned by Create when the target already exists.
	ErrExists = errors.New("treefile: file already exists")
	// ErrNotFound is returned when the tree file does not exist.
	ErrNotFound = errors.New("treefile: file not found")
)

// Create writes an empty tree to path. It fails if path already exists.
func Create(path string, opts *OperationOptions) error {
	opts = opts.orDefault()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	return Save(path, opts.newTree(), opts)
}

// Load decodes the tree stored at path.
func Load(path string, opts *OperationOptions) (*tree.Tree, error) {
	opts = opts.orDefault()
	data, release, err := mmfile.Map(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer release()

	t := opts.newTree()
	if err := t.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	logger.Debug("treefile: loaded", "path", path, "bytes", len(data), "keys", t.Len())
	return t, nil
}

// Save encodes t and atomically replaces the file at path.
func Save(path string, t *tree.Tree, opts *OperationOptions) error {
	opts = opts.orDefault()
	data, err := t.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}
	if opts.DryRun {
		logger.Debug("treefile: dry run, not writing", "path", path, "bytes", len(data))
		return nil
	}

	if opts.CreateBackup && fileExists(path) {
		backupPath := path + ".bak"
		if err := copyFile(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup at %s: %w", backupPath, err)
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := fsync.File(tmp, opts.FullSync); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	if err := fsync.Dir(dir); err != nil {
		return err
	}
	logger.Debug("treefile: saved", "path", path, "bytes", len(data))
	return nil
}

// copyFile copies src to dst, replacing dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy data: %w", err)
	}
	return dstFile.Close()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
