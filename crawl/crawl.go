// Package crawl provides documentation crawling orchestration.
// It walks a crate's documentation breadth-first, extracts every page to
// Markdown and hands the result to a page store.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/fwojciec/docbundle"
)

// Frontier configuration for the crawl.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate of the filter fast path.
	frontierFalsePositiveRate = 0.01
)

// Crawler orchestrates the crawling of a crate's documentation.
// Pages are processed one at a time in breadth-first order.
type Crawler struct {
	Fetcher   docbundle.Fetcher
	Extractor docbundle.Extractor
	Links     docbundle.LinkSelector
	Store     docbundle.PageStore

	// Optional collaborators.
	Frontier docbundle.URLFrontier // defaults to a fresh Frontier per crawl
	Limiter  docbundle.DomainLimiter
	Manifest docbundle.Manifest
	Logger   *slog.Logger

	// MaxPages caps the number of URLs visited. Zero means no cap.
	MaxPages int
}

// Result holds the outcome of a crawl operation.
type Result struct {
	RunID   string
	Visited int
	Saved   int
	Failed  int
	Bytes   int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type  ProgressType
	URL   string
	Path  string
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressSaved ProgressType = iota
	ProgressFetchFailed
	ProgressConvertFailed
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl visits every page reachable from the target's start URL without
// leaving its base URL, and saves each page's extracted Markdown.
//
// Fetch and extraction failures are reported and skipped. Store and
// manifest failures abort the crawl. The returned Result is never nil.
func (c *Crawler) Crawl(ctx context.Context, target *docbundle.Target, progress ProgressFunc) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	var result Result

	if c.Manifest != nil {
		run := &docbundle.Run{Crate: target.Name, BaseURL: target.BaseURL}
		if err := c.Manifest.CreateRun(ctx, run); err != nil {
			return &result, fmt.Errorf("creating manifest run: %w", err)
		}
		result.RunID = run.ID
	}

	var frontier docbundle.URLFrontier = c.Frontier
	if frontier == nil {
		frontier = NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	}
	frontier.Push(target.StartURL())

	for {
		if err := ctx.Err(); err != nil {
			return &result, err
		}

		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}
		if !frontier.Visit(pageURL) {
			continue
		}

		if c.MaxPages > 0 && result.Visited >= c.MaxPages {
			logger.Warn("page limit reached", "limit", c.MaxPages, "queued", frontier.Len()+1)
			break
		}
		result.Visited++

		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx, hostOf(pageURL)); err != nil {
				return &result, err
			}
		}

		html, err := c.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			if ctx.Err() != nil {
				return &result, ctx.Err()
			}
			result.Failed++
			logger.Warn("fetch failed", "url", pageURL, "err", err)
			progress(ProgressEvent{Type: ProgressFetchFailed, URL: pageURL, Error: err})
			continue
		}

		markdown, err := c.Extractor.Extract(html, target.Name)
		if err != nil {
			result.Failed++
			logger.Warn("conversion failed", "url", pageURL, "err", err)
			progress(ProgressEvent{Type: ProgressConvertFailed, URL: pageURL, Error: err})
			continue
		}

		path, err := target.PagePath(pageURL)
		if err != nil {
			result.Failed++
			logger.Warn("no output path", "url", pageURL, "err", err)
			progress(ProgressEvent{Type: ProgressConvertFailed, URL: pageURL, Error: err})
			continue
		}

		page := &docbundle.Page{URL: pageURL, Path: path, Content: markdown}
		if err := c.Store.Save(ctx, page); err != nil {
			return &result, fmt.Errorf("saving %s: %w", pageURL, err)
		}

		if c.Manifest != nil {
			entry := &docbundle.Entry{
				RunID:    result.RunID,
				URL:      pageURL,
				Path:     path,
				Position: result.Saved,
			}
			if err := c.Manifest.RecordEntry(ctx, entry, markdown); err != nil {
				return &result, fmt.Errorf("recording %s: %w", pageURL, err)
			}
		}

		result.Saved++
		result.Bytes += len(markdown)
		progress(ProgressEvent{Type: ProgressSaved, URL: pageURL, Path: path})

		links, err := c.Links.ExtractLinks(html, pageURL)
		if err != nil {
			logger.Warn("link extraction failed", "url", pageURL, "err", err)
			continue
		}

		var queued int
		for _, link := range links {
			if !target.Contains(link) || frontier.Visited(link) {
				continue
			}
			if frontier.Push(link) {
				queued++
			}
		}
		logger.Debug("links", "url", pageURL, "found", len(links), "queued", queued)
	}

	attrs := []any{"visited", result.Visited, "saved", result.Saved, "failed", result.Failed}
	if f, ok := frontier.(*Frontier); ok {
		attrs = append(attrs, "seen_estimate", f.EstimatedSeen())
	}
	logger.Debug("crawl finished", attrs...)

	if c.Manifest != nil {
		if err := c.Manifest.FinishRun(ctx, result.RunID, result.Saved, result.Failed); err != nil {
			return &result, fmt.Errorf("finishing manifest run: %w", err)
		}
	}

	return &result, nil
}

// hostOf returns the host of rawURL, or rawURL itself if it cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
