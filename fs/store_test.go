package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docbundle"
	"github.com/fwojciec/docbundle/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ docbundle.PageStore = &fs.Store{}
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes content to the page path", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		store := fs.NewStore(root)

		err := store.Save(context.Background(), &docbundle.Page{
			URL:     "https://docs.rs/my-crate/latest/my_crate/struct.Foo.html",
			Path:    "struct.Foo.md",
			Content: "# Struct Foo\n\nA foo.",
		})

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(root, "struct.Foo.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Struct Foo\n\nA foo.", string(content))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		store := fs.NewStore(filepath.Join(root, "output", "my-crate"))

		err := store.Save(context.Background(), &docbundle.Page{
			URL:     "https://docs.rs/my-crate/latest/my_crate/a/b/fn.c.html",
			Path:    "a/b/fn.c.md",
			Content: "fn c",
		})

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(root, "output", "my-crate", "a", "b", "fn.c.md"))
		require.NoError(t, err)
	})

	t.Run("overwrites existing page", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		store := fs.NewStore(root)
		page := &docbundle.Page{URL: "https://docs.rs/x/latest/x/index.html", Path: "index.md", Content: "old"}
		require.NoError(t, store.Save(context.Background(), page))

		page.Content = "new"
		require.NoError(t, store.Save(context.Background(), page))

		content, err := os.ReadFile(filepath.Join(root, "index.md"))
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("validates page", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		err := store.Save(context.Background(), &docbundle.Page{Content: "orphan"})

		require.Error(t, err)
		assert.Equal(t, docbundle.EINVALID, docbundle.ErrorCode(err))
	})

	t.Run("rejects paths outside the root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		store := fs.NewStore(filepath.Join(root, "out"))

		err := store.Save(context.Background(), &docbundle.Page{
			URL:     "https://docs.rs/x/latest/x/index.html",
			Path:    "../escaped.md",
			Content: "nope",
		})

		require.Error(t, err)
		assert.Equal(t, docbundle.EINVALID, docbundle.ErrorCode(err))
		_, statErr := os.Stat(filepath.Join(root, "escaped.md"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("rejects the unified file name", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		err := store.Save(context.Background(), &docbundle.Page{
			URL:     "https://docs.rs/x/latest/x/unified.html",
			Path:    "sub/unified.md",
			Content: "clash",
		})

		assert.Equal(t, docbundle.EINVALID, docbundle.ErrorCode(err))
	})

	t.Run("reports filesystem errors", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		// A regular file where a directory is needed.
		require.NoError(t, os.WriteFile(filepath.Join(root, "a"), []byte("file"), 0644))
		store := fs.NewStore(root)

		err := store.Save(context.Background(), &docbundle.Page{
			URL:     "https://docs.rs/x/latest/x/a/fn.b.html",
			Path:    "a/fn.b.md",
			Content: "b",
		})

		require.Error(t, err)
		assert.Equal(t, docbundle.EINTERNAL, docbundle.ErrorCode(err))
	})
}
