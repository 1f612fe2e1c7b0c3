package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/docbundle"
	"github.com/fwojciec/docbundle/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Target *docbundle.Target
	OutDir string

	Crawler *crawl.Crawler
	Unifier docbundle.Unifier // nil skips unification
}

// BundleCmd crawls a crate's documentation and unifies the result.
type BundleCmd struct{}

// Run executes the bundle command.
func (c *BundleCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Crawling documentation for %s...\n", deps.Target.Name)

	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "Saved: %s\n", filepath.Join(deps.OutDir, filepath.FromSlash(e.Path)))
		case crawl.ProgressFetchFailed:
			fmt.Fprintf(deps.Stderr, "Failed to fetch %s: %v\n", e.URL, e.Error)
		case crawl.ProgressConvertFailed:
			fmt.Fprintf(deps.Stderr, "Error converting %s: %v\n", e.URL, e.Error)
		}
	}

	// Errors are returned unprinted; main reports them.
	result, err := deps.Crawler.Crawl(deps.Ctx, deps.Target, progress)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, crawl.FormatResult(result))
	if result.RunID != "" {
		fmt.Fprintf(deps.Stdout, "Manifest run: %s\n", result.RunID)
	}

	if deps.Unifier != nil {
		if result.Saved == 0 {
			fmt.Fprintln(deps.Stdout, "No pages saved, skipping unification")
		} else {
			fmt.Fprintln(deps.Stdout, "Generating unified Markdown files...")
			if _, err := deps.Unifier.Unify(deps.Ctx, deps.OutDir); err != nil {
				return fmt.Errorf("unifying %s: %w", deps.OutDir, err)
			}
		}
	}

	fmt.Fprintln(deps.Stdout, "Done.")
	return nil
}
