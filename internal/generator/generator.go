// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator runs the design production loop: pick a category,
// obtain HTML (sidecar batch first, otherwise a random variant and
// palette), reject structural duplicates, render, upload, and commit.
// One design at a time; all per-slot failures are logged and the loop
// moves on.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"designforge/internal/batch"
	"designforge/internal/describe"
	"designforge/internal/dupindex"
	"designforge/internal/fingerprint"
	"designforge/internal/models"
	"designforge/internal/palette"
	"designforge/internal/storage"
	"designforge/internal/store"
	"designforge/internal/templates"
)

// MaxAttempts bounds the variant/palette re-sampling when every draw
// fingerprints to something already in the index.
const MaxAttempts = 10

// DefaultInterDelay is the pause after a committed design before the
// next slot starts, keeping the browser and object store load gentle.
const DefaultInterDelay = 2 * time.Second

// Per-slot failure classes. Run counts skips by these.
var (
	ErrExhausted = errors.New("no structurally new design after max attempts")
	ErrRender    = errors.New("render failed")
	ErrUpload    = errors.New("upload failed")
	ErrCommit    = errors.New("commit failed")
)

// Renderer turns an HTML document into PNG bytes.
type Renderer interface {
	RenderPNG(ctx context.Context, html string) ([]byte, error)
}

// Uploader stores PNG bytes under a key and returns the public URL.
type Uploader interface {
	UploadPNG(ctx context.Context, key string, png []byte) (string, error)
}

// DesignStore commits finished designs.
type DesignStore interface {
	Insert(ctx context.Context, d *models.Design) (*models.Design, error)
}

// BatchQueue is the optional sidecar of pre-generated designs.
type BatchQueue interface {
	Pop(category models.Category) (*batch.Item, bool)
}

// Config wires a Generator. Index, Store, Renderer, and Uploader are
// required; Batch may be nil.
type Config struct {
	Index    *dupindex.Index
	Store    DesignStore
	Renderer Renderer
	Uploader Uploader
	Batch    BatchQueue

	// GalleryCount is the number of rows already persisted at startup.
	// Titles and slugs continue numbering from it.
	GalleryCount int

	// InterDelay overrides DefaultInterDelay; negative disables the
	// pause entirely.
	InterDelay time.Duration

	// Now overrides the clock used for object keys.
	Now func() time.Time
}

// Generator owns the production loop state for one run.
type Generator struct {
	index      *dupindex.Index
	store      DesignStore
	renderer   Renderer
	uploader   Uploader
	batch      BatchQueue
	gallery    int
	interDelay time.Duration
	now        func() time.Time
	produced   int
}

func New(cfg Config) *Generator {
	g := &Generator{
		index:      cfg.Index,
		store:      cfg.Store,
		renderer:   cfg.Renderer,
		uploader:   cfg.Uploader,
		batch:      cfg.Batch,
		gallery:    cfg.GalleryCount,
		interDelay: cfg.InterDelay,
		now:        cfg.Now,
	}
	if g.interDelay == 0 {
		g.interDelay = DefaultInterDelay
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// RunSpec selects how many designs to produce and for which categories.
// Total takes precedence over PerCategory when non-negative. An empty
// Category means all categories, cycled in registry order.
type RunSpec struct {
	Total       int
	PerCategory int
	Category    models.Category
}

// Summary reports what a run did.
type Summary struct {
	Attempted int
	Committed int
	Skipped   map[string]int
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrExhausted):
		return "uniqueness_exhausted"
	case errors.Is(err, ErrRender):
		return "render_error"
	case errors.Is(err, ErrUpload):
		return "upload_error"
	case errors.Is(err, ErrCommit):
		return "commit_error"
	default:
		return "error"
	}
}

// Run executes the production loop and returns a summary. Per-slot
// failures never abort the run; context cancellation does.
func (g *Generator) Run(ctx context.Context, spec RunSpec) Summary {
	cats := models.AllCategories
	if spec.Category != "" {
		cats = []models.Category{spec.Category}
	}

	target := spec.Total
	if target < 0 {
		target = spec.PerCategory * len(cats)
	}

	sum := Summary{Skipped: make(map[string]int)}
	for slot := 0; slot < target; slot++ {
		if ctx.Err() != nil {
			slog.Warn("run cancelled", "completed_slots", slot)
			break
		}

		cat := cats[slot%len(cats)]
		sum.Attempted++

		if err := g.produceOne(ctx, cat); err != nil {
			reason := skipReason(err)
			sum.Skipped[reason]++
			slog.Error("design slot failed", "category", cat, "reason", reason, "error", err)
			continue
		}
		sum.Committed++

		if g.interDelay > 0 && slot < target-1 {
			time.Sleep(g.interDelay)
		}
	}

	slog.Info("run finished",
		"attempted", sum.Attempted,
		"committed", sum.Committed,
		"skipped", sum.Attempted-sum.Committed,
		"reasons", sum.Skipped,
	)
	return sum
}

// produceOne drives a single slot from source selection through commit.
func (g *Generator) produceOne(ctx context.Context, cat models.Category) error {
	html, description, source, err := g.pickDesign(ctx, cat)
	if err != nil {
		return err
	}
	fp := fingerprint.Compute(html)
	prompt := source + " fp:" + fp[:12]

	png, err := g.renderer.RenderPNG(ctx, html)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	key := storage.ObjectKey(cat, g.produced, g.now())
	url, err := g.uploader.UploadPNG(ctx, key, png)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpload, err)
	}

	k := g.gallery + g.produced + 1
	row := &models.Design{
		Title:       fmt.Sprintf("%s Design #%d", cat, k),
		Description: description,
		ImageURL:    url,
		Category:    cat,
		Code:        html,
		Slug:        g.index.AllocateSlug(cat, k),
		Prompt:      prompt,
	}

	stored, err := g.store.Insert(ctx, row)
	if err != nil && store.IsUniqueViolation(err) {
		// Slug race with a concurrent writer: the table knows a slug our
		// snapshot missed. Reallocate once and retry.
		row.Slug = g.index.AllocateSlug(cat, k)
		slog.Warn("slug taken by concurrent writer, retrying", "slug", row.Slug)
		stored, err = g.store.Insert(ctx, row)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}

	g.produced++
	slog.Info("design committed",
		"slug", stored.Slug,
		"category", cat,
		"image_url", stored.ImageURL,
		"fingerprint", fp[:12],
	)
	return nil
}

// pickDesign obtains the slot's HTML: the batch sidecar wins when it has
// an item for the category (pre-vetted upstream, so no retry loop — its
// fingerprint is recorded as-is); otherwise variants and palettes are
// sampled until one fingerprints to something new.
func (g *Generator) pickDesign(ctx context.Context, cat models.Category) (html, description, source string, err error) {
	if g.batch != nil {
		if item, ok := g.batch.Pop(cat); ok {
			html = batch.InjectClasses(item.HTML, item.ClassTokens())
			g.index.Add(fingerprint.Compute(html))
			description = item.Description
			if description == "" {
				description = describe.Describe(cat, "")
			}
			slog.Info("using pre-generated design", "category", cat, "id", item.ID)
			return html, description, "external:" + item.ID, nil
		}
	}

	variants := templates.Variants(cat)
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		v := variants[rand.IntN(len(variants))]
		p := palette.All[rand.IntN(len(palette.All))]
		candidate := v.Produce(p)

		fp := fingerprint.Compute(candidate)
		if g.index.Contains(fp) {
			slog.Debug("duplicate structure, re-sampling",
				"category", cat, "variant", v.ID, "attempt", attempt+1)
			continue
		}
		g.index.Add(fp)
		return candidate, describe.Describe(cat, v.ID), "variant:" + v.ID, nil
	}
	return "", "", "", fmt.Errorf("%w: category %s after %d attempts", ErrExhausted, cat, MaxAttempts)
}
