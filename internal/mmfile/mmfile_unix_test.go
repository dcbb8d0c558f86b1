//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapReadWriteUnix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mram.bin")
	size := 2 * PageSize()
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))

	m, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, size, m.Size())

	copy(m.Bytes()[PageSize():], []byte{0xde, 0xad, 0xbe, 0xef})
	require.NoError(t, m.Sync(PageSize(), PageSize()))
	require.NoError(t, m.Datasync())
	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "second Close must be a no-op")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, got[PageSize():PageSize()+4])
}

func TestMapRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Map(path)
	require.Error(t, err)
}

func TestSyncAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mram.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, PageSize()), 0o644))

	m, err := Map(path)
	require.NoError(t, err)
	require.NoError(t, m.Close())
	require.ErrorIs(t, m.Sync(0, PageSize()), ErrClosed)
}
