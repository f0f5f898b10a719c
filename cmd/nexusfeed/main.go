package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/robfig/cron/v3"

	"github.com/spacenexus/nexusfeed/pkg/aggregator"
	"github.com/spacenexus/nexusfeed/pkg/classifier"
	"github.com/spacenexus/nexusfeed/pkg/config"
	"github.com/spacenexus/nexusfeed/pkg/content"
	"github.com/spacenexus/nexusfeed/pkg/feed"
	"github.com/spacenexus/nexusfeed/pkg/repository"
	"github.com/spacenexus/nexusfeed/pkg/scheduler"
	"github.com/spacenexus/nexusfeed/pkg/service"
	"github.com/spacenexus/nexusfeed/server"
)

// Opts with all CLI options
type Opts struct {
	Config   string `short:"c" long:"config" env:"CONFIG" description:"config file, built-in defaults if not set"`
	DB       string `long:"db" env:"DB" description:"database DSN, overrides config"`
	Listen   string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Schedule string `long:"schedule" env:"SCHEDULE" description:"cron expression for periodic fetch passes, overrides config"`

	Register bool `long:"register" description:"register sources and exit"`
	Fetch    bool `long:"fetch" description:"run one fetch pass and exit"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[INFO] starting nexusfeed version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	fc := cfg.GetFetchConfig()
	agg := aggregator.New(aggregator.Config{
		Sources:    repos.Source,
		Articles:   repos.Article,
		Parser:     feed.NewParser(fc.Timeout, fc.UserAgent),
		Normalizer: content.NewNormalizer(fc.ExcerptLength),
		Classifier: classifier.NewKeyword(),
		MaxItems:   fc.MaxItems,
		MaxWorkers: fc.MaxWorkers,
	})

	if opts.Register || opts.Fetch {
		return runOnce(ctx, opts, cfg, agg)
	}

	// server mode keeps the store in sync with the configured registry
	if err := registerSources(ctx, cfg, agg); err != nil {
		return err
	}

	if fc.Schedule != "" {
		sched, err := scheduler.NewScheduler(agg, scheduler.Config{Schedule: fc.Schedule})
		if err != nil {
			return err
		}
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(cfg, agg, service.NewCatalog(repos.Source, repos.Article), revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadConfig reads the config file if given and applies CLI overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}

	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.Schedule != "" {
		if _, err := cron.ParseStandard(opts.Schedule); err != nil {
			return nil, fmt.Errorf("invalid schedule %q: %w", opts.Schedule, err)
		}
		cfg.Fetch.Schedule = opts.Schedule
	}
	return cfg, nil
}

// runOnce handles the one-shot --register and --fetch modes, registration goes first if both are set
func runOnce(ctx context.Context, opts Opts, cfg *config.Config, agg *aggregator.Aggregator) error {
	if opts.Register {
		if err := registerSources(ctx, cfg, agg); err != nil {
			return err
		}
	}

	if opts.Fetch {
		res, err := agg.FetchAll(ctx)
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}
		fmt.Printf("saved %d articles: %d sources succeeded, %d failed, %d skipped\n",
			res.Saved, res.Succeeded, res.Failed, res.Skipped)
	}
	return nil
}

func registerSources(ctx context.Context, cfg *config.Config, agg *aggregator.Aggregator) error {
	sources, err := cfg.GetSources()
	if err != nil {
		return fmt.Errorf("failed to load sources: %w", err)
	}
	if _, err := agg.RegisterSources(ctx, sources); err != nil {
		return fmt.Errorf("failed to register sources: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

