package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"leadhunt-engine/internal/browser"
	"leadhunt-engine/internal/config"
	"leadhunt-engine/internal/dedup"
	"leadhunt-engine/internal/logger"
	"leadhunt-engine/internal/scrape"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	// Data dir: use env if provided, else local folder.
	dataDir := os.Getenv("LEADHUNT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}
	if err := config.LoadDotEnv(dataDir); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, dataDir); err != nil {
		stop()
		log.Fatal(err)
	}
}

func run(ctx context.Context, dataDir string) error {
	cfg, warnings, err := loadConfig(dataDir)
	if err != nil {
		return err
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	runID := uuid.NewString()
	lg = lg.With(logger.String("run_id", runID))
	for _, w := range warnings {
		lg.Warn("config warning", logger.String("warning", w))
	}

	platforms := scrape.EnabledPlatforms(cfg)
	if len(platforms) == 0 {
		return errors.New("nothing to do: no enabled platform has keywords")
	}

	storePath := cfg.Resolve(cfg.Store.Path)
	unlock, err := store.Lock(storePath)
	if err != nil {
		return err
	}
	defer func() { _ = unlock() }()

	leads, seen, tab, err := startup(ctx, cfg, storePath)
	if leads != nil {
		defer leads.Close()
	}
	if tab != nil {
		defer tab.Close()
	}
	if err != nil {
		return err
	}
	lg.Info("run started",
		logger.String("store", storePath),
		logger.String("store_kind", cfg.Store.Kind),
		logger.Int("known_profiles", seen.Len()),
		logger.Int("platforms", len(platforms)),
	)

	var total types.Summary
	for _, p := range platforms {
		if ctx.Err() != nil {
			break
		}
		plog := lg.With(logger.String("platform", string(p.Name)))

		if err := tab.Navigate(ctx, p.LoginURL, cfg.Browser.NavTimeout); err != nil {
			plog.Warn("login page did not load", logger.Error(err))
		}
		if !cfg.Browser.Headless {
			prompt := fmt.Sprintf("Log in to %s in the browser window, then press ENTER here to start scraping...", p.Name)
			if err := waitForEnter(ctx, os.Stdin, os.Stdout, prompt); err != nil {
				plog.Warn("login gate aborted", logger.Error(err))
				break
			}
		}

		opts := scrape.Options{
			Page:      tab,
			Extractor: p.Extractor,
			Acquirer:  p.Acquirer,
			Seen:      seen,
			Store:     leads,
			Log:       lg,
		}
		scrape.ApplyPacing(&opts, cfg)
		s, err := scrape.New(opts)
		if err != nil {
			return err
		}

		sum := s.Run(ctx, p.Keywords)
		scrape.LogSummary(plog, "platform done", sum)
		total.Add(sum)
	}

	scrape.LogSummary(lg, "run finished", total)
	if lost := total.Lost(); lost > 0 {
		lg.Warn("some accepted leads were not saved", logger.Int("lost", lost))
	}
	return nil
}

// loadConfig seeds, loads, overlays and validates the user config.
func loadConfig(dataDir string) (config.Config, []string, error) {
	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config bootstrap failed: %w", err)
	}
	cfg, err := config.Load(userCfgPath)
	if err != nil {
		return cfg, nil, fmt.Errorf("config load failed (%s): %w", userCfgPath, err)
	}
	if err := config.OverlayKeywords(&cfg, filepath.Join(dataDir, "keywords.yml")); err != nil {
		return cfg, nil, fmt.Errorf("keywords overlay: %w", err)
	}
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = dataDir
	}

	cfg, res := config.NormalizeAndValidate(cfg)
	if !res.OK() {
		return cfg, res.Warnings, fmt.Errorf("invalid config %s:\n- %s", userCfgPath, joinLines(res.Errors))
	}
	return cfg, res.Warnings, nil
}

// startup opens and seeds the store while Chrome launches. Whatever opened
// is returned even on error so the caller can close it.
func startup(ctx context.Context, cfg config.Config, storePath string) (store.LeadStore, *dedup.Set, *browser.Tab, error) {
	var (
		leads store.LeadStore
		seen  *dedup.Set
		tab   *browser.Tab
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := store.OpenLeadStore(cfg.Store.Kind, storePath, cfg.Store.Sheet)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		leads = s
		set, err := dedup.SeedFrom(gctx, s)
		if err != nil {
			return fmt.Errorf("seed dedup set: %w", err)
		}
		seen = set
		return nil
	})
	g.Go(func() error {
		t, err := browser.Launch(gctx, browser.Options{
			Headless:   cfg.Browser.Headless,
			ProfileDir: cfg.Resolve(cfg.Browser.ProfileDir),
			ExecPath:   cfg.Browser.ExecPath,
			UserAgent:  cfg.Browser.UserAgent,
		})
		if err != nil {
			return fmt.Errorf("launch browser: %w", err)
		}
		tab = t
		return nil
	})

	err := g.Wait()
	return leads, seen, tab, err
}
