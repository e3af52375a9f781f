package sessions

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileRepository_MissingFileIsEmpty(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "tokens.json"))
	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
	require.NoError(t, repo.Delete(context.Background(), "nope"))
}

func TestFileRepository_CreateGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "tokens.json")
	repo := NewFileRepository(path)
	ctx := context.Background()

	s := &Session{Token: "abc", Email: "admin@example.com", ExpiresAt: 1700000000000}
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.Create(ctx, &Session{Token: "def", Email: "admin@example.com", ExpiresAt: 1}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Len(t, onDisk, 2)
	require.Equal(t, "admin@example.com", onDisk["abc"]["email"])
	require.EqualValues(t, 1700000000000, onDisk["abc"]["expiresAt"])

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, s, got)

	require.NoError(t, repo.Delete(ctx, "abc"))
	got, err = repo.Get(ctx, "abc")
	require.NoError(t, err)
	require.Nil(t, got)

	other, err := repo.Get(ctx, "def")
	require.NoError(t, err)
	require.NotNil(t, other)
}

func TestFileRepository_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err := NewFileRepository(path).Get(context.Background(), "x")
	require.Error(t, err)
}
