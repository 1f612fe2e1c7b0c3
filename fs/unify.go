package fs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/docbundle"
)

// Ensure Unifier implements docbundle.Unifier at compile time.
var _ docbundle.Unifier = (*Unifier)(nil)

// separator joins the pieces of a unified file.
const separator = "\n\n"

// Unifier concatenates the Markdown pages of a directory tree into one
// UnifiedFile per directory, working from the leaves up.
type Unifier struct {
	// Logger receives one record per unified directory. Optional.
	Logger *slog.Logger

	// OnUnified is called after each directory's file is written. Optional.
	OnUnified func(dir string)
}

// NewUnifier creates a new Unifier.
func NewUnifier(logger *slog.Logger) *Unifier {
	return &Unifier{Logger: logger}
}

// Unify writes a UnifiedFile into root and every directory beneath it.
//
// A directory's file holds its own pages (index.md first, the rest by name)
// followed by the unified files of its subdirectories (by name). Pieces are
// separated by a single blank line. An empty directory gets an empty file.
func (u *Unifier) Unify(ctx context.Context, root string) (int, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, docbundle.Errorf(docbundle.ENOTFOUND, "output directory %s not found", root)
		}
		return 0, err
	}
	if !info.IsDir() {
		return 0, docbundle.Errorf(docbundle.EINVALID, "%s is not a directory", root)
	}

	var count int
	if err := u.unifyDir(ctx, root, &count); err != nil {
		return count, err
	}
	return count, nil
}

// unifyDir handles children before dir itself so their unified files
// exist by the time dir reads them.
func (u *Unifier) unifyDir(ctx context.Context, dir string, count *int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var pages, subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, name)
		case name == docbundle.UnifiedFile:
		case strings.HasSuffix(name, ".md"):
			pages = append(pages, name)
		}
	}
	sort.Strings(subdirs)
	sortPages(pages)

	for _, sub := range subdirs {
		if err := u.unifyDir(ctx, filepath.Join(dir, sub), count); err != nil {
			return err
		}
	}

	pieces := make([]string, 0, len(pages)+len(subdirs))
	for _, name := range pages {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		pieces = append(pieces, string(data))
	}
	for _, sub := range subdirs {
		data, err := os.ReadFile(filepath.Join(dir, sub, docbundle.UnifiedFile))
		if err != nil {
			return err
		}
		pieces = append(pieces, string(data))
	}

	content := strings.Join(pieces, separator)
	if err := os.WriteFile(filepath.Join(dir, docbundle.UnifiedFile), []byte(content), 0644); err != nil {
		return err
	}
	*count++

	if u.Logger != nil {
		u.Logger.Debug("unified", "dir", dir, "pages", len(pages), "subdirs", len(subdirs), "bytes", len(content))
	}
	if u.OnUnified != nil {
		u.OnUnified(dir)
	}
	return nil
}

// sortPages orders names ascending with IndexFile first.
func sortPages(names []string) {
	sort.Slice(names, func(i, j int) bool {
		if names[i] == docbundle.IndexFile || names[j] == docbundle.IndexFile {
			return names[i] == docbundle.IndexFile && names[j] != docbundle.IndexFile
		}
		return names[i] < names[j]
	})
}
