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

	"github.com/alecthomas/kong"
	"github.com/fwojciec/dealscout"
	"github.com/fwojciec/dealscout/analyze"
	"github.com/fwojciec/dealscout/goquery"
	dealscouthttp "github.com/fwojciec/dealscout/http"
	dsslog "github.com/fwojciec/dealscout/slog"
	"github.com/fwojciec/dealscout/sqlite"
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
	// Database path. Overridden by --db or DEALSCOUT_DB.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. Wired from configuration when nil.
	Analyzer      dealscout.Analyzer
	SearchService dealscout.SearchService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dealscout"),
		kong.Description("Extract product details and similar items from clothing product pages."),
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
		return fmt.Errorf("no command specified. Run 'dealscout --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	// Open database
	if m.SearchService == nil {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DEALSCOUT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.SearchService = dsslog.NewLoggingSearchService(sqlite.NewSearchService(m.DB), logger)
	}
	deps.Searches = m.SearchService

	// Wire the analysis pipeline
	if m.Analyzer == nil {
		opts := []dealscouthttp.Option{dealscouthttp.WithTimeout(cli.Timeout)}
		if cli.ProxyURL != "" {
			opts = append(opts, dealscouthttp.WithProxy(dealscouthttp.ProxyConfig{
				Endpoint: cli.ProxyURL,
				APIKey:   cli.ProxyAPIKey,
			}))
		}
		fetcher := dsslog.NewLoggingFetcher(dealscouthttp.NewFetcher(opts...), logger)
		defer fetcher.Close()

		analyzer := &analyze.Analyzer{
			Fetcher: fetcher,
			Parser:  goquery.NewParser(),
		}
		if cli.Rate > 0 {
			analyzer.RateLimiter = analyze.NewDomainLimiter(cli.Rate)
		}
		m.Analyzer = dsslog.NewLoggingAnalyzer(analyzer, logger)
	}
	deps.Analyzer = m.Analyzer

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "dealscout.db"
	}
	dir := filepath.Join(home, ".dealscout")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "dealscout.db")
}
