// Command fakegen writes a generated record view to a file or stdout, and
// optionally loads it into PostgreSQL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/fakerecords/internal/config"
	"github.com/JonMunkholm/fakerecords/internal/core"
	"github.com/JonMunkholm/fakerecords/internal/database"
	"github.com/JonMunkholm/fakerecords/internal/export"
	"github.com/JonMunkholm/fakerecords/internal/faker"
	"github.com/JonMunkholm/fakerecords/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", core.FormatUserError(err))
		os.Exit(1)
	}
}

// options are the parsed command-line flags.
type options struct {
	seed     int64
	region   string
	errors   int
	count    int
	format   string
	out      string
	policy   string
	db       bool
	list     bool
	logLevel string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("fakegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Int64Var(&opts.seed, "seed", 123, "random seed; the same seed always yields the same records")
	fs.StringVar(&opts.region, "region", core.RegionAll, "region filter: all, USA, Poland or Georgia")
	fs.IntVar(&opts.errors, "errors", 0, "error rate 0-10; each field is corrupted with probability errors/10")
	fs.IntVar(&opts.count, "count", core.DefaultCount, "records to generate before filtering")
	fs.StringVar(&opts.format, "format", string(export.FormatCSV), "output format: csv, legacy or json")
	fs.StringVar(&opts.out, "out", "", "output file (default: stdout)")
	fs.StringVar(&opts.policy, "policy", string(core.PolicyPerRecord), "region assignment: per-record or single")
	fs.BoolVar(&opts.db, "db", false, "also load the view into DATABASE_URL")
	fs.BoolVar(&opts.list, "list", false, "list regions and exit")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level for messages on stderr")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("%w: unexpected arguments %v", core.ErrInvalidArgument, fs.Args())
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(logging.New(stderr, opts.logLevel, "text"))

	if opts.list {
		for _, r := range core.Regions() {
			fmt.Fprintf(stdout, "%-8s %s\n", r, r.Label())
		}
		return nil
	}

	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	filter, err := core.ParseRegionFilter(opts.region)
	if err != nil {
		return err
	}
	policy, err := core.ParseRegionPolicy(opts.policy)
	if err != nil {
		return err
	}

	gen := core.NewGenerator(faker.Factory, core.WithRegionPolicy(policy))
	service := core.NewService(gen, faker.NoiseFactory, core.ServiceConfig{})

	req := core.Request{Seed: opts.seed, Region: filter, Count: opts.count, ErrorRate: opts.errors}
	view, err := service.View(ctx, req)
	if err != nil {
		return err
	}

	if err := writeOutput(opts.out, stdout, format, view.Records); err != nil {
		return err
	}
	slog.Info("view written",
		"seed", req.Seed,
		"region", filter.String(),
		"error_rate", req.ErrorRate,
		"rows", len(view.Records),
		"format", format,
	)

	if opts.db {
		return loadDatabase(ctx, req, view)
	}
	return nil
}

// writeOutput writes records to path, or to stdout when path is empty.
func writeOutput(path string, stdout io.Writer, format export.Format, records []core.Record) error {
	if path == "" {
		return export.Write(stdout, format, records)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := export.Write(f, format, records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// loadDatabase copies the view into the configured export table.
func loadDatabase(ctx context.Context, req core.Request, view *core.View) error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Database.Enabled() {
		return database.ErrNotConfigured
	}

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	store := database.NewRecordStore(pool, cfg.Database.Table)
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Database.Timeout)
	defer cancel()

	n, err := store.Insert(ctx, database.Batch{
		Seed:      req.Seed,
		Region:    req.Region,
		ErrorRate: req.ErrorRate,
		Records:   view.Records,
	})
	if err != nil {
		return err
	}
	slog.Info("view loaded", "table", store.Table(), "rows", n)
	return nil
}
