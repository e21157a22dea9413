package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/firmlist"
	"github.com/fwojciec/firmlist/fs"
	"github.com/fwojciec/firmlist/goquery"
	fslog "github.com/fwojciec/firmlist/slog"
	"github.com/fwojciec/firmlist/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Flags may also come from FIRMLIST_* variables in a local .env file.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened only when a snapshot path is given.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
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

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("firmlist"),
		kong.Description("Extract companies from saved rusprofile.ru search pages into a CSV file."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars(defaultVars()),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && args[0] == "help" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}
	// Kong keeps parsing after printing help because Exit is a no-op.
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse(args)
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	opts := &cli.Extract

	deps.Reader = fs.NewListingReader(opts.Dir)
	deps.Extractor = goquery.NewExtractor(
		goquery.WithSourceURL(opts.SourceURL),
		goquery.WithRevenueYear(opts.RevenueYear),
	)
	deps.Writers = []NamedWriter{{Name: "csv", Writer: fs.NewCSVWriter(opts.Output, stdout)}}

	if opts.DB != "" {
		m.DB = sqlite.NewDB(opts.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", opts.DB, err)
		}
		defer m.Close()

		deps.Writers = append(deps.Writers, NamedWriter{Name: "sqlite", Writer: sqlite.NewCompanyService(m.DB)})
	}

	if opts.Debug {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
		deps.Reader = fslog.NewLoggingListingReader(deps.Reader, deps.Logger)
		deps.Extractor = fslog.NewLoggingExtractor(deps.Extractor, deps.Logger)
		for i, w := range deps.Writers {
			deps.Writers[i].Writer = fslog.NewLoggingCompanyWriter(w.Writer, w.Name, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

// defaultVars exposes the package defaults to kong struct tags.
func defaultVars() kong.Vars {
	return kong.Vars{
		"default_output":       firmlist.DefaultOutputPath,
		"default_min_records":  strconv.Itoa(firmlist.DefaultMinRecords),
		"default_source_url":   firmlist.DefaultSourceURL,
		"default_revenue_year": firmlist.DefaultRevenueYear,
	}
}
