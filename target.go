package docbundle

import (
	"net/url"
	"path"
	"strings"
)

// DefaultHost is the documentation host crates are fetched from.
const DefaultHost = "https://docs.rs"

// Target identifies the documentation tree of a single crate.
type Target struct {
	// Name is the crate name as published (e.g., "serde-json").
	Name string

	// Dir is the crate name as it appears in documentation paths,
	// with hyphens replaced by underscores (e.g., "serde_json").
	Dir string

	// BaseURL is the prefix every crawled page must share.
	// It always ends with a slash.
	BaseURL string
}

// NewTarget returns the target for crate name hosted at host.
// An empty host selects DefaultHost.
func NewTarget(host, name string) (*Target, error) {
	if name == "" {
		return nil, Errorf(EINVALID, "crate name required")
	}
	if strings.ContainsAny(name, "/?#") {
		return nil, Errorf(EINVALID, "invalid crate name %q", name)
	}
	if host == "" {
		host = DefaultHost
	}
	if _, err := url.Parse(host); err != nil {
		return nil, Errorf(EINVALID, "invalid host %q: %v", host, err)
	}

	dir := strings.ReplaceAll(name, "-", "_")
	return &Target{
		Name:    name,
		Dir:     dir,
		BaseURL: strings.TrimSuffix(host, "/") + "/" + name + "/latest/" + dir + "/",
	}, nil
}

// StartURL returns the crate's documentation index page.
func (t *Target) StartURL() string {
	return t.BaseURL + "index.html"
}

// Contains reports whether rawURL, once normalized, falls under the base URL.
func (t *Target) Contains(rawURL string) bool {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return false
	}
	return strings.HasPrefix(normalized, t.BaseURL)
}

// NormalizeURL strips the query string and fragment from rawURL.
// The result is the key used for crawl deduplication.
func NormalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	return u.String(), nil
}

// PagePath maps a page URL under the base URL to a slash-separated file
// path relative to the output directory.
//
// Directory URLs and index.html pages map to index.md in the matching
// directory; any other page has its extension replaced with ".md".
// Returns EINVALID if rawURL is not under the base URL.
func (t *Target) PagePath(rawURL string) (string, error) {
	if !t.Contains(rawURL) {
		return "", Errorf(EINVALID, "URL %q is outside %s", rawURL, t.BaseURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	base, err := url.Parse(t.BaseURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid base URL %q: %v", t.BaseURL, err)
	}

	rel := strings.TrimPrefix(u.Path, base.Path)

	switch {
	case rel == "" || strings.HasSuffix(rel, "/"):
		rel += IndexFile
	case path.Base(rel) == "index.html":
		rel = path.Join(path.Dir(rel), IndexFile)
	default:
		rel = strings.TrimSuffix(rel, path.Ext(rel)) + ".md"
	}

	// Rooting the path before cleaning keeps ".." from escaping it.
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	if rel == "" || path.Base(rel) == UnifiedFile {
		return "", Errorf(EINVALID, "URL %q does not map to a page file", rawURL)
	}
	return rel, nil
}
