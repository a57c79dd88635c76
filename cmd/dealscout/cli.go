package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/dealscout"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Analyzer dealscout.Analyzer
	Searches dealscout.SearchService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB          string        `name:"db" env:"DEALSCOUT_DB" help:"Path to the search history database"`
	Timeout     time.Duration `env:"DEALSCOUT_TIMEOUT" default:"10s" help:"Timeout for fetching a product page"`
	ProxyURL    string        `name:"proxy-url" env:"DEALSCOUT_PROXY_URL" help:"Scraping relay endpoint taking the target as a query parameter"`
	ProxyAPIKey string        `name:"proxy-api-key" env:"DEALSCOUT_PROXY_API_KEY" help:"API key for the scraping relay"`
	Rate        float64       `env:"DEALSCOUT_RATE" default:"0" help:"Requests per second per domain (0 disables limiting)"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze one or more product pages"`
	History HistoryCmd `cmd:"" help:"List recent searches"`
	Clear   ClearCmd   `cmd:"" help:"Clear the search history"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `env:"DEALSCOUT_ADDR" default:":3000" help:"Address to listen on"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URLs        []string `arg:"" name:"url" help:"Product page URLs"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent analysis limit"`
	Fingerprint bool     `help:"Include a content fingerprint of each result"`
	Save        bool     `help:"Record successful analyses in the search history"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"10" help:"Number of searches to show"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force bool `help:"Confirm clearing the history"`
}
