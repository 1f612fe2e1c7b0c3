package main

import (
	"context"

	"github.com/fwojciec/docbundle"
	"github.com/fwojciec/docbundle/crawl"
)

// ChooseFetcher fetches startURL with both fetchers and returns the one the
// crawl should use.
//
// Decision flow:
//   - plain fetch fails → rendering fetcher
//   - rendering fetch fails → plain fetcher
//   - rendered page extracts to substantially more Markdown → rendering fetcher
//   - otherwise → plain fetcher
//
// Always returns one of the two fetchers; never fails.
func ChooseFetcher(
	ctx context.Context,
	startURL string,
	crate string,
	plainFetcher docbundle.Fetcher,
	renderFetcher docbundle.Fetcher,
	extractor docbundle.Extractor,
) docbundle.Fetcher {
	plainHTML, err := plainFetcher.Fetch(ctx, startURL)
	if err != nil {
		return renderFetcher
	}

	renderedHTML, err := renderFetcher.Fetch(ctx, startURL)
	if err != nil {
		return plainFetcher
	}

	if crawl.ContentDiffers(plainHTML, renderedHTML, crate, extractor) {
		return renderFetcher
	}
	return plainFetcher
}
