package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/firmlist"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Reader    firmlist.ListingReader
	Extractor firmlist.Extractor
	Writers   []NamedWriter

	// Logger is nil unless --debug is set.
	Logger *slog.Logger
}

// NamedWriter pairs a CompanyWriter with the name used in debug logs.
type NamedWriter struct {
	Name   string
	Writer firmlist.CompanyWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract companies from saved pages and write them to CSV"`
}

// ExtractCmd is the "extract" subcommand. It also runs when no command is
// given.
type ExtractCmd struct {
	Input       []string `short:"i" name:"input" env:"FIRMLIST_INPUT" help:"Saved search page to read (repeatable). Defaults to the eight federal district pages."`
	Dir         string   `short:"d" env:"FIRMLIST_DIR" help:"Directory relative input paths are resolved against"`
	Output      string   `short:"o" env:"FIRMLIST_OUTPUT" default:"${default_output}" help:"CSV file to write"`
	MinRecords  int      `short:"m" name:"min-records" env:"FIRMLIST_MIN_RECORDS" default:"${default_min_records}" help:"Minimum number of companies required to write output"`
	SourceURL   string   `name:"source-url" env:"FIRMLIST_SOURCE_URL" default:"${default_source_url}" help:"Value of the source column"`
	RevenueYear string   `name:"revenue-year" env:"FIRMLIST_REVENUE_YEAR" default:"${default_revenue_year}" help:"Value of the revenue_year column"`
	DB          string   `name:"db" env:"FIRMLIST_DB" help:"Also store the exported companies in this SQLite database"`
	Debug       bool     `env:"FIRMLIST_DEBUG" help:"Log per-file timings to stderr"`
}
