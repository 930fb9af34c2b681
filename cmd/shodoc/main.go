package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/shodoc/shodoc"
	"github.com/shodoc/shodoc/awesome"
	"github.com/shodoc/shodoc/fs"
	"github.com/shodoc/shodoc/github"
	"github.com/shodoc/shodoc/goast"
	"github.com/shodoc/shodoc/goquery"
	"github.com/shodoc/shodoc/htmltomarkdown"
	"github.com/shodoc/shodoc/resolve"
	shoslog "github.com/shodoc/shodoc/slog"
	"github.com/shodoc/shodoc/sqlite"
	"github.com/shodoc/shodoc/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Endpoint overrides for end-to-end testing.
	APIBaseURL string
	RawBaseURL string

	// Retry delays override for end-to-end testing. Nil uses the defaults.
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shodoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'shodoc --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SHODOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Runs = sqlite.NewRunService(m.DB)

	// Wire command-specific dependencies
	if cmd == "catalog" {
		deps.Catalog = awesome.NewLoader(cli.Catalog.Path, logger)
	}

	if cmd == "build" {
		deps.Catalog = awesome.NewLoader(cli.Build.Catalog, logger)

		opts := []github.Option{
			github.WithLogger(logger),
			github.WithLimiter(resolve.NewHostRateLimiter(cli.Build.RPS)),
			github.WithHTMLPipeline(
				htmltomarkdown.NewConverter(),
				goquery.NewExtractor(),
				trafilatura.NewExtractor(),
			),
		}
		if cli.Build.Token != "" {
			opts = append(opts, github.WithToken(cli.Build.Token))
		}
		if m.APIBaseURL != "" {
			opts = append(opts, github.WithAPIBaseURL(m.APIBaseURL))
		}
		if m.RawBaseURL != "" {
			opts = append(opts, github.WithRawBaseURL(m.RawBaseURL))
		}

		var cache shodoc.FetchCache
		if !cli.Build.SkipCache {
			cache = shoslog.NewLoggingCache(sqlite.NewCacheService(m.DB), logger)
		}

		deps.Resolver = &resolve.Resolver{
			Fetcher:   shoslog.NewLoggingFetcher(github.NewFetcher(opts...), logger),
			Extractor: goast.NewExtractor(),
			Cache:     cache,
			Delays:    m.RetryDelays,
			Logger:    logger,
		}

		if cli.Build.DryRun {
			deps.Store = fs.NewDryRunStore(logger)
		} else {
			out := filepath.Clean(cli.Build.Output)
			deps.Store = fs.NewFileStore(filepath.Dir(out), filepath.Base(out))
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SHODOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "shodoc.db"
	}
	dir := filepath.Join(home, ".shodoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "shodoc.db")
}
