// Package fs provides file-based storage for crawled documentation.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docbundle"
)

// Ensure Store implements docbundle.PageStore at compile time.
var _ docbundle.PageStore = (*Store)(nil)

// Store writes pages as Markdown files under a root directory.
// Existing files are overwritten.
type Store struct {
	root string
}

// NewStore creates a new Store that writes beneath root.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the directory pages are written under.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) Save(ctx context.Context, page *docbundle.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath, err := s.resolve(page.Path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(page.Content), 0644)
}

// resolve joins rel onto the root, rejecting paths that leave it.
func (s *Store) resolve(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", docbundle.Errorf(docbundle.EINVALID, "page path %q escapes output directory", rel)
	}
	if filepath.Base(clean) == docbundle.UnifiedFile {
		return "", docbundle.Errorf(docbundle.EINVALID, "page path %q is reserved", rel)
	}
	return filepath.Join(s.root, clean), nil
}
