//go:build !unix

package mmfile

import "os"

// Map reads the whole file; there is no mapping to release.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}

func noop() error { return nil }
