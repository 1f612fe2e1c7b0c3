package docbundle

import "context"

// UnifiedFile is the name of the per-directory aggregate document.
const UnifiedFile = "unified.md"

// IndexFile is the name a directory's index page is written under.
const IndexFile = "index.md"

// Page represents a crawled documentation page ready to be written.
type Page struct {
	URL     string
	Path    string // relative to the output directory, slash separated
	Content string // Markdown
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Path == "" {
		return Errorf(EINVALID, "page path required")
	}
	return nil
}

// PageStore persists pages. Writing a page that already exists overwrites it.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
}

// Unifier aggregates a directory tree of Markdown pages bottom-up.
type Unifier interface {
	// Unify writes a UnifiedFile into every directory under root,
	// including root itself, and returns how many were written.
	Unify(ctx context.Context, root string) (int, error)
}
