package jsonfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "db.json")
	in := map[string]interface{}{"categories": []string{"a", "b"}}

	require.NoError(t, Write(path, in))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(raw), "\n  \"categories\""), "expected pretty-printed output, got %s", raw)

	var out map[string][]string
	require.NoError(t, Read(path, &out))
	require.Equal(t, []string{"a", "b"}, out["categories"])

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestReadMissingFile(t *testing.T) {
	var v map[string]interface{}
	err := Read(filepath.Join(t.TempDir(), "absent.json"), &v)
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var v map[string]interface{}
	err := Read(path, &v)
	require.Error(t, err)
	require.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestWriteUnencodableKeepsPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, Write(path, map[string]int{"order": 1}))

	// channels cannot be encoded; the previous file must survive
	require.Error(t, Write(path, map[string]interface{}{"bad": make(chan int)}))

	var out map[string]int
	require.NoError(t, Read(path, &out))
	require.Equal(t, 1, out["order"])
}
