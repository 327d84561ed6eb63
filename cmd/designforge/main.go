// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the DesignForge generator.
// It loads configuration, connects to Postgres, the object store, and
// the optional Valkey fingerprint cache, rebuilds the duplicate index
// from persisted designs, then runs the production loop.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"designforge/internal/batch"
	"designforge/internal/browser"
	"designforge/internal/cache"
	"designforge/internal/config"
	"designforge/internal/database"
	"designforge/internal/dupindex"
	"designforge/internal/generator"
	"designforge/internal/models"
	"designforge/internal/storage"
	"designforge/internal/store"
)

var (
	flagCount    int
	flagTotal    int
	flagCategory string
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "designforge",
		Short:         "Generate, screenshot, and publish HTML design samples",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().IntVar(&flagCount, "count", 1, "designs to produce per category")
	root.Flags().IntVar(&flagTotal, "total", -1, "total designs across all categories (overrides --count)")
	root.Flags().StringVar(&flagCategory, "category", "", "restrict to one category (exact name, e.g. \"Landing Page\")")

	if err := root.Execute(); err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	var category models.Category
	if flagCategory != "" {
		c, ok := models.ParseCategory(flagCategory)
		if !ok {
			return fmt.Errorf("unknown category %q (valid: %v)", flagCategory, models.AllCategories)
		}
		category = c
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	storageClient, err := storage.New(
		cfg.ObjectStoreURL, cfg.ObjectStoreRegion,
		cfg.ObjectStoreAccessKey, cfg.ObjectStoreServiceKey,
		cfg.ObjectStorePublicURL,
	)
	if err != nil {
		return fmt.Errorf("initialize object storage: %w", err)
	}

	// The Valkey fingerprint cache only speeds up the startup scan; the
	// generator runs fine without it.
	var fpCache dupindex.FingerprintCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, fingerprinting without cache", "error", err)
		} else {
			defer valkeyClient.Close()
			fpCache = cache.NewFingerprintCache(valkeyClient, cache.DefaultFingerprintTTL)
		}
	}

	// Cancel the run on SIGINT/SIGTERM; at most the in-flight design is
	// lost, the next run rebuilds its index from the table.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	designStore := store.NewDesignStore(db)

	index := dupindex.New()
	galleryCount, err := index.Load(ctx, designStore, fpCache)
	if err != nil {
		// Non-fatal: start with whatever was scanned. Slug collisions
		// with unseen rows are caught by the unique constraint.
		slog.Warn("failed to load duplicate index, continuing with partial history",
			"scanned", galleryCount, "error", err)
	}

	gen := generator.New(generator.Config{
		Index:        index,
		Store:        designStore,
		Renderer:     browser.New(browser.DefaultSettle),
		Uploader:     storageClient,
		Batch:        batch.NewQueue(cfg.BatchFile),
		GalleryCount: galleryCount,
	})

	summary := gen.Run(ctx, generator.RunSpec{
		Total:       flagTotal,
		PerCategory: flagCount,
		Category:    category,
	})

	// Per-slot failures are reported in the summary but never fail the
	// process; only startup misconfiguration exits nonzero.
	fmt.Printf("done: %d attempted, %d committed, %d skipped\n",
		summary.Attempted, summary.Committed, summary.Attempted-summary.Committed)
	return nil
}
