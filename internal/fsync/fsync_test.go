package fsync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "data.bin"))
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Write([]byte("ptre"))
	require.NoError(t, err)
	require.NoError(t, File(f, false))
	require.NoError(t, File(f, true))
}

func TestFileClosed(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "data.bin"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	err = File(f, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "data.bin")
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Dir(dir))
	require.Error(t, Dir(filepath.Join(dir, "missing")))
}
