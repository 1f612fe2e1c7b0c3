package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/docbundle"
	"github.com/fwojciec/docbundle/crawl"
	"github.com/fwojciec/docbundle/fs"
	"github.com/fwojciec/docbundle/goquery"
	"github.com/fwojciec/docbundle/htmltomarkdown"
	dbhttp "github.com/fwojciec/docbundle/http"
	"github.com/fwojciec/docbundle/rod"
	dbslog "github.com/fwojciec/docbundle/slog"
	"github.com/fwojciec/docbundle/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the manifest. Nil unless --manifest is set.
	DB *sqlite.DB

	// Fetchers used instead of the HTTP and browser ones built from flags.
	// Injected fetchers are not closed by Run.
	HTTPFetcher   docbundle.Fetcher
	RenderFetcher docbundle.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crate      string        `arg:"" required:"" help:"Crate name as published on crates.io"`
	Output     string        `short:"o" default:"output" help:"Parent directory for the crate's output"`
	Host       string        `default:"https://docs.rs" help:"Documentation host"`
	Delay      time.Duration `short:"d" default:"0s" help:"Minimum delay between requests"`
	Timeout    time.Duration `short:"t" default:"0s" help:"Fetch timeout per page (0 uses the client default)"`
	MaxPages   int           `default:"0" help:"Stop after visiting this many pages (0 means no limit)"`
	Render     bool          `short:"r" help:"Render pages in a headless browser"`
	AutoRender bool          `short:"a" help:"Render pages only if the start page gains content when rendered"`
	Manifest   string        `short:"m" type:"path" help:"Record the run in a SQLite database at this path"`
	SkipUnify  bool          `help:"Write pages only, without unified.md files"`
	Verbose    bool          `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docbundle"),
		kong.Description("Bundle a crate's docs.rs documentation into Markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no crate specified. Run 'docbundle --help' for usage")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	target, err := docbundle.NewTarget(cli.Host, cli.Crate)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Target: target,
		OutDir: filepath.Join(cli.Output, cli.Crate),
	}

	extractor := htmltomarkdown.NewExtractor(nil)

	// Wire fetchers
	plainFetcher := m.HTTPFetcher
	if plainFetcher == nil {
		hf := dbhttp.NewFetcher(dbhttp.WithTimeout(cli.Timeout))
		defer hf.Close()
		plainFetcher = hf
	}

	var renderFetcher docbundle.Fetcher
	if cli.Render || cli.AutoRender {
		renderFetcher = m.RenderFetcher
		if renderFetcher == nil {
			var opts []rod.Option
			if cli.Timeout > 0 {
				opts = append(opts, rod.WithFetchTimeout(cli.Timeout))
			}
			rf, err := rod.NewFetcher(opts...)
			switch {
			case err == nil:
				defer rf.Close()
				renderFetcher = rf
			case cli.Render:
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			default:
				logger.Warn("browser unavailable, rendering disabled", "err", err)
			}
		}
	}

	fetcher := plainFetcher
	switch {
	case cli.Render:
		fetcher = renderFetcher
	case cli.AutoRender && renderFetcher != nil:
		fetcher = ChooseFetcher(ctx, target.StartURL(), target.Name, plainFetcher, renderFetcher, extractor)
		logger.Info("chose fetcher", "url", target.StartURL(), "render", fetcher == renderFetcher)
	}

	// Wire manifest
	var manifest docbundle.Manifest
	if cli.Manifest != "" {
		if err := os.MkdirAll(filepath.Dir(cli.Manifest), 0755); err != nil {
			return err
		}
		m.DB = sqlite.NewDB(cli.Manifest)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open manifest at %q: %w", cli.Manifest, err)
		}
		defer m.Close()
		manifest = dbslog.NewLoggingManifest(sqlite.NewManifest(m.DB), logger)
	}

	deps.Crawler = &crawl.Crawler{
		Fetcher:   dbslog.NewLoggingFetcher(fetcher, logger),
		Extractor: dbslog.NewLoggingExtractor(extractor, logger),
		Links:     goquery.NewAnchorSelector(),
		Store:     dbslog.NewLoggingPageStore(fs.NewStore(deps.OutDir), logger),
		Limiter:   crawl.NewDomainLimiter(cli.Delay),
		Manifest:  manifest,
		Logger:    logger,
		MaxPages:  cli.MaxPages,
	}

	if !cli.SkipUnify {
		unifier := fs.NewUnifier(logger)
		unifier.OnUnified = func(dir string) {
			fmt.Fprintf(stdout, "Generated %s for %s\n", docbundle.UnifiedFile, dir)
		}
		deps.Unifier = dbslog.NewLoggingUnifier(unifier, logger)
	}

	cmd := &BundleCmd{}
	return cmd.Run(deps)
}

// newLogger returns a logger writing human-readable records to w.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	return slog.New(handler)
}
