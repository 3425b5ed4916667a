//go:build darwin

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync uses F_FULLFSYNC when full is set; plain fsync only reaches the
// drive cache on macOS.
func fdatasync(f *os.File, full bool) error {
	if full {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(int(f.Fd()))
}

func syncDir(d *os.File) error {
	return unix.Fsync(int(d.Fd()))
}
