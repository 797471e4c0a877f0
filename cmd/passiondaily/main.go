package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/passiondaily/pkg/config"
	"github.com/umputun/passiondaily/pkg/domain"
	"github.com/umputun/passiondaily/pkg/feed"
	"github.com/umputun/passiondaily/pkg/remote"
	"github.com/umputun/passiondaily/pkg/repository"
	"github.com/umputun/passiondaily/pkg/rss"
	"github.com/umputun/passiondaily/pkg/scheduler"
	"github.com/umputun/passiondaily/server"
)

// Opts with all CLI options
type Opts struct {
	Config   string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen   string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Category string `long:"category" env:"CATEGORY" description:"category to open on start, overrides config"`

	// Common options
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

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting passiondaily version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
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

// run wires local cache, remote source, feed engine and optional document store, and serves until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.Category != "" {
		cfg.Feed.DefaultCategory = opts.Category
	}

	local, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Local.DSN,
		MaxOpenConns:    cfg.Local.MaxOpenConns,
		MaxIdleConns:    cfg.Local.MaxIdleConns,
		ConnMaxLifetime: cfg.Local.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to open local database: %w", err)
	}
	defer local.Close()

	userID := cfg.Feed.UserID
	if userID == "" {
		if userID, err = local.Setting.EnsureSetting(ctx, repository.SettingUserID, uuid.NewString); err != nil {
			return fmt.Errorf("failed to resolve user id: %w", err)
		}
	}
	lgr.Printf("[DEBUG] user id %s, remote store %s", userID, cfg.Remote.URL)

	deps := server.Deps{}
	if cfg.Store.Enabled {
		stop, err := startStore(ctx, cfg, local, &deps)
		if err != nil {
			return err
		}
		defer stop()
	}

	client := remote.New(remote.Config{
		BaseURL:   cfg.Remote.URL,
		Timeout:   cfg.Remote.Timeout,
		RateLimit: cfg.Remote.RateLimit,
		Burst:     cfg.Remote.Burst,
	})
	bus := feed.NewSignalBus(16)
	ctrl := feed.NewController(ctx, feed.Params{
		Source:         client,
		Daily:          client,
		Signals:        bus,
		PageSize:       cfg.Feed.PageSize,
		LoadTimeout:    cfg.Feed.LoadTimeout,
		InitialRetries: cfg.Feed.InitialRetries,
		DailyTimeout:   cfg.Feed.DailyTimeout,
		ShareTimeout:   cfg.Feed.ShareTimeout,
	})
	defer ctrl.Close()

	favs := feed.NewFavorites(feed.FavoritesParams{
		UserID:        userID,
		Feed:          ctrl,
		Categories:    local.Category,
		Quotes:        local.Quote,
		Store:         local.Favorite,
		Mirror:        client,
		Signals:       bus,
		MirrorRetries: cfg.Feed.MirrorRetries,
		MirrorTimeout: cfg.Feed.MirrorTimeout,
	})
	defer favs.Wait()

	deps.Feed, deps.Favorites = ctrl, favs
	srv := server.New(cfg, deps, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	if cfg.Feed.DefaultCategory != "" {
		g.Go(func() error {
			return openCategory(gctx, cfg, ctrl)
		})
	}
	return g.Wait()
}

// openCategory selects the default category once the server answers, the feed may be served by this instance
func openCategory(ctx context.Context, cfg *config.Config, ctrl *feed.Controller) error {
	c, err := domain.ParseCategory(cfg.Feed.DefaultCategory)
	if err != nil {
		return fmt.Errorf("invalid default category: %w", err)
	}
	if cfg.Store.Enabled {
		if err := waitReady(ctx, cfg.Server.Listen); err != nil {
			lgr.Printf("[WARN] server is not ready, opening %s anyway: %v", c, err)
		}
	}
	if err := ctrl.SelectCategory(c); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to open category %s: %w", c, err)
	}
	lgr.Printf("[INFO] opened category %s", c)
	return nil
}

// waitReady polls ping endpoint of the listening server
func waitReady(ctx context.Context, listen string) error {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return fmt.Errorf("invalid listen address %q: %w", listen, err)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	pingURL := "http://" + net.JoinHostPort(host, port) + "/ping"
	client := &http.Client{Timeout: time.Second}
	return repeater.NewFixed(50, 100*time.Millisecond).Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pingURL, http.NoBody)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("ping status %d", resp.StatusCode)
		}
		return nil
	}, context.Canceled)
}

// startStore opens the document store, starts feed imports and quote of the day rotation,
// and sets store dependencies of the server. The returned func stops background jobs.
func startStore(ctx context.Context, cfg *config.Config, local *repository.Repositories, deps *server.Deps) (func(), error) {
	store := local
	closeStore := func() {}
	if dsn := cfg.StoreDSN(); dsn != cfg.Local.DSN {
		var err error
		store, err = repository.NewRepositories(ctx, repository.Config{DSN: dsn, MaxOpenConns: cfg.Local.MaxOpenConns,
			MaxIdleConns: cfg.Local.MaxIdleConns, ConnMaxLifetime: cfg.Local.ConnMaxLifetime})
		if err != nil {
			return nil, fmt.Errorf("failed to open store database: %w", err)
		}
		closeStore = func() { _ = store.Close() }
	}

	daily := scheduler.NewDaily(store.Setting, store.Document)
	importer := rss.NewImporter(rss.NewParser(30*time.Second, cfg.Store.UserAgent), store.Document)

	sources := make([]scheduler.Source, 0, len(cfg.Store.Imports))
	for _, src := range cfg.ImportSources() {
		sources = append(sources, scheduler.Source{URL: src.URL, Category: src.Category})
	}
	sched := scheduler.NewScheduler(scheduler.Params{
		Importer:       importer,
		Rotator:        daily,
		Sources:        sources,
		ImportInterval: cfg.Store.ImportInterval,
		DailyInterval:  cfg.Store.DailyInterval,
		MaxWorkers:     cfg.Store.MaxWorkers,
	})
	sched.Start(ctx)
	lgr.Printf("[INFO] document store enabled, %d feed imports", len(sources))

	deps.Store, deps.Daily = store.Document, daily
	return func() {
		sched.Stop()
		closeStore()
	}, nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
