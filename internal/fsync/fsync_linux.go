//go:build linux || freebsd

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync skips the metadata flush; full is ignored.
func fdatasync(f *os.File, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}

func syncDir(d *os.File) error {
	return unix.Fsync(int(d.Fd()))
}
