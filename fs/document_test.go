package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/querysum"
	"github.com/fwojciec/querysum/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore_ReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("reads file named by document ID", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "12"), []byte("<title>x</title>"), 0644))

		store := fs.NewDocumentStore(dir + string(filepath.Separator))
		html, err := store.ReadDocument(context.Background(), "12")

		require.NoError(t, err)
		assert.Equal(t, "<title>x</title>", html)
	})

	t.Run("concatenates base directory and ID verbatim", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "page-7"), []byte("seven"), 0644))

		store := fs.NewDocumentStore(filepath.Join(dir, "page-"))
		html, err := store.ReadDocument(context.Background(), "7")

		require.NoError(t, err)
		assert.Equal(t, "seven", html)
		assert.Equal(t, filepath.Join(dir, "page-7"), store.Path("7"))
	})

	t.Run("returns ENOTFOUND for missing document", func(t *testing.T) {
		t.Parallel()

		store := fs.NewDocumentStore(t.TempDir() + string(filepath.Separator))
		_, err := store.ReadDocument(context.Background(), "99")

		require.Error(t, err)
		assert.Equal(t, querysum.ENOTFOUND, querysum.ErrorCode(err))
		assert.Contains(t, querysum.ErrorMessage(err), `document "99" not found`)
	})

	t.Run("returns EINTERNAL when the path is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "3"), 0755))

		store := fs.NewDocumentStore(dir + string(filepath.Separator))
		_, err := store.ReadDocument(context.Background(), "3")

		require.Error(t, err)
		assert.Equal(t, querysum.EINTERNAL, querysum.ErrorCode(err))
	})
}
