package local_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lengolf/internal/domain"
	"lengolf/internal/storage/local"
)

func TestStore_SaveAndOpen(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "LENGOLF_Acme_Inv_202405.pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.FileExists(t, path)

	rc, artifact, err := store.Open(context.Background(), "LENGOLF_Acme_Inv_202405.pdf")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(data))
	assert.Equal(t, "LENGOLF_Acme_Inv_202405.pdf", artifact.Filename)
	assert.Equal(t, int64(len(data)), artifact.Size)
}

func TestStore_SaveOverwritesExisting(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Save(ctx, "a.pdf", []byte("first"))
	require.NoError(t, err)
	_, err = store.Save(ctx, "a.pdf", []byte("second"))
	require.NoError(t, err)

	rc, artifact, err := store.Open(ctx, "a.pdf")
	require.NoError(t, err)
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	assert.Equal(t, "second", string(data))
	assert.Equal(t, int64(len("second")), artifact.Size)
}

func TestStore_OpenMissing(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Open(context.Background(), "nope.pdf")
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestStore_OpenRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	secret := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("secret"), 0o644))

	store, err := local.NewStore(filepath.Join(dir, "artifacts"))
	require.NoError(t, err)

	for _, name := range []string{"../secret.txt", "..", ".", "", "a/b.pdf"} {
		_, _, err := store.Open(context.Background(), name)
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound, "name %q", name)
	}
}

func TestStore_ListRecent(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Save(ctx, "old.pdf", []byte("old"))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = store.Save(ctx, "new.pdf", []byte("new"))
	require.NoError(t, err)
	_, err = store.Save(ctx, "notes.txt", []byte("ignored"))
	require.NoError(t, err)

	artifacts, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)

	require.Len(t, artifacts, 2)
	assert.Equal(t, "new.pdf", artifacts[0].Filename)
	assert.Equal(t, "old.pdf", artifacts[1].Filename)
}

func TestStore_ListRecentLimit(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		_, err := store.Save(ctx, name, []byte(name))
		require.NoError(t, err)
	}

	artifacts, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, artifacts, 2)
}
