//go:build windows

package fsync

import (
	"os"

	"golang.org/x/sys/windows"
)

func fdatasync(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}

// syncDir is a no-op: directory handles cannot be flushed on Windows.
func syncDir(*os.File) error { return nil }
