package filex

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "Data", "nested")

	require.NoError(t, EnsureDir(want))

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Data")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(""))
	require.NoError(t, EnsureDir("."))
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "Data")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o660))

	require.Error(t, EnsureDir(p), "should fail when a file exists with the same name")
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadLines_StripsCRLF(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(p, []byte("a,b\r\nc,d\n\ne"), 0o600))

	got, err := ReadLines(p)
	require.NoError(t, err)
	require.Equal(t, []string{"a,b", "c,d", "", "e"}, got)
}

func TestWriteLines_ReplacesContentAndCreatesDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "Data", "People.txt")

	require.NoError(t, WriteLines(p, []string{"1", "2", "3"}))
	require.NoError(t, WriteLines(p, []string{"4"}))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "4\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(p))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteLines_Empty(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, WriteLines(p, nil))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestAppendLine(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "log.txt")

	require.NoError(t, AppendLine(p, "first"))
	require.NoError(t, AppendLine(p, "second"))

	got, err := ReadLines(p)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, got)
}
