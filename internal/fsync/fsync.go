// Package fsync flushes written tree files to stable storage.
package fsync

import (
	"fmt"
	"os"
)

// File flushes the data of f to disk. With full set, platforms that keep a
// volatile drive cache are asked to flush it too.
func File(f *os.File, full bool) error {
	if err := fdatasync(f, full); err != nil {
		return fmt.Errorf("fsync: %s: %w", f.Name(), err)
	}
	return nil
}

// Dir flushes the directory entry table of dir so a rename into it
// survives a crash.
func Dir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	if err := syncDir(d); err != nil {
		return fmt.Errorf("fsync: dir %s: %w", dir, err)
	}
	return nil
}
