//go:build !linux && !freebsd && !darwin && !windows

package fsync

import "os"

func fdatasync(f *os.File, _ bool) error { return f.Sync() }

func syncDir(d *os.File) error { return d.Sync() }
