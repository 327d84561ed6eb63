// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"designforge/internal/batch"
	"designforge/internal/dupindex"
	"designforge/internal/fingerprint"
	"designforge/internal/models"
	"designforge/internal/palette"
	"designforge/internal/templates"
)

type fakeRenderer struct {
	calls int
	err   error
}

func (r *fakeRenderer) RenderPNG(_ context.Context, _ string) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return []byte("\x89PNG fake"), nil
}

type fakeUploader struct {
	keys []string
	err  error
}

func (u *fakeUploader) UploadPNG(_ context.Context, key string, _ []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.keys = append(u.keys, key)
	return "https://cdn.test/" + key, nil
}

type fakeStore struct {
	rows []*models.Design

	// uniqueFails makes that many leading Insert calls fail with a
	// Postgres unique violation.
	uniqueFails int
	err         error
}

func (s *fakeStore) Insert(_ context.Context, d *models.Design) (*models.Design, error) {
	if s.uniqueFails > 0 {
		s.uniqueFails--
		return nil, fmt.Errorf("insert design: %w", &pgconn.PgError{Code: "23505"})
	}
	if s.err != nil {
		return nil, s.err
	}
	stored := *d
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	s.rows = append(s.rows, &stored)
	return &stored, nil
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestGenerator(t *testing.T, cfg Config) *Generator {
	t.Helper()
	if cfg.Index == nil {
		cfg.Index = dupindex.New()
	}
	if cfg.Store == nil {
		cfg.Store = &fakeStore{}
	}
	if cfg.Renderer == nil {
		cfg.Renderer = &fakeRenderer{}
	}
	if cfg.Uploader == nil {
		cfg.Uploader = &fakeUploader{}
	}
	cfg.InterDelay = -1
	if cfg.Now == nil {
		cfg.Now = fixedClock
	}
	return New(cfg)
}

func TestRunZeroSlots(t *testing.T) {
	st := &fakeStore{}
	g := newTestGenerator(t, Config{Store: st})

	for _, spec := range []RunSpec{
		{Total: 0},
		{Total: -1, PerCategory: 0},
	} {
		sum := g.Run(context.Background(), spec)
		if sum.Attempted != 0 || sum.Committed != 0 {
			t.Errorf("Run(%+v) = %+v, want zero attempts", spec, sum)
		}
	}
	if len(st.rows) != 0 {
		t.Errorf("store has %d rows, want 0", len(st.rows))
	}
}

func TestRunSingleSlot(t *testing.T) {
	idx := dupindex.New()
	st := &fakeStore{}
	up := &fakeUploader{}
	g := newTestGenerator(t, Config{Index: idx, Store: st, Uploader: up})

	sum := g.Run(context.Background(), RunSpec{Total: -1, PerCategory: 1, Category: models.CategoryBlog})
	if sum.Attempted != 1 || sum.Committed != 1 {
		t.Fatalf("summary = %+v, want 1 attempted, 1 committed", sum)
	}
	if len(st.rows) != 1 {
		t.Fatalf("store has %d rows, want 1", len(st.rows))
	}

	row := st.rows[0]
	if row.Category != "Blog" {
		t.Errorf("category = %q, want Blog", row.Category)
	}
	if row.Slug != "blog-design-1" {
		t.Errorf("slug = %q, want blog-design-1", row.Slug)
	}
	if row.Title != "Blog Design #1" {
		t.Errorf("title = %q, want Blog Design #1", row.Title)
	}
	if !strings.HasPrefix(row.Prompt, "variant:blog-") || !strings.Contains(row.Prompt, " fp:") {
		t.Errorf("prompt = %q, want variant id and truncated fingerprint", row.Prompt)
	}
	if row.Description == "" {
		t.Error("description is empty")
	}

	wantKey := "designs/20260301_120000_blog_0.png"
	if len(up.keys) != 1 || up.keys[0] != wantKey {
		t.Errorf("uploaded keys = %v, want [%s]", up.keys, wantKey)
	}
	if row.ImageURL != "https://cdn.test/"+wantKey {
		t.Errorf("image_url = %q", row.ImageURL)
	}

	if !idx.Contains(fingerprint.Compute(row.Code)) {
		t.Error("committed fingerprint missing from index")
	}
	if !idx.HasSlug(row.Slug) {
		t.Error("committed slug missing from slug set")
	}
}

func TestRunContinuesNumberingFromGallery(t *testing.T) {
	st := &fakeStore{}
	g := newTestGenerator(t, Config{Store: st, GalleryCount: 3})

	g.Run(context.Background(), RunSpec{Total: -1, PerCategory: 1, Category: models.CategoryDashboard})
	if len(st.rows) != 1 {
		t.Fatalf("store has %d rows, want 1", len(st.rows))
	}
	if st.rows[0].Slug != "dashboard-design-4" {
		t.Errorf("slug = %q, want dashboard-design-4", st.rows[0].Slug)
	}
	if st.rows[0].Title != "Dashboard Design #4" {
		t.Errorf("title = %q, want Dashboard Design #4", st.rows[0].Title)
	}
}

func TestRunUniquenessExhausted(t *testing.T) {
	idx := dupindex.New()
	// Every structure the category can produce is already known.
	for _, v := range templates.Variants(models.CategoryComponents) {
		idx.Add(fingerprint.Compute(v.Produce(palette.All[0])))
	}
	st := &fakeStore{}
	rend := &fakeRenderer{}
	g := newTestGenerator(t, Config{Index: idx, Store: st, Renderer: rend})

	sum := g.Run(context.Background(), RunSpec{Total: 1, Category: models.CategoryComponents})
	if sum.Attempted != 1 || sum.Committed != 0 {
		t.Fatalf("summary = %+v, want 1 attempted, 0 committed", sum)
	}
	if sum.Skipped["uniqueness_exhausted"] != 1 {
		t.Errorf("skip reasons = %v, want uniqueness_exhausted", sum.Skipped)
	}
	if rend.calls != 0 {
		t.Errorf("renderer called %d times for an exhausted slot", rend.calls)
	}
	if len(st.rows) != 0 {
		t.Errorf("store has %d rows, want 0", len(st.rows))
	}
}

func TestRunRenderFailureSkipsSlot(t *testing.T) {
	idx := dupindex.New()
	st := &fakeStore{}
	g := newTestGenerator(t, Config{
		Index:    idx,
		Store:    st,
		Renderer: &fakeRenderer{err: errors.New("browser crashed")},
	})

	sum := g.Run(context.Background(), RunSpec{Total: 1, Category: models.CategoryBlog})
	if sum.Committed != 0 || sum.Skipped["render_error"] != 1 {
		t.Fatalf("summary = %+v, want render_error skip", sum)
	}
	if len(st.rows) != 0 {
		t.Error("row committed despite render failure")
	}
	// The failed structure stays in the index so the same draw is not
	// immediately re-attempted.
	if idx.Len() != 1 {
		t.Errorf("index has %d fingerprints, want 1", idx.Len())
	}
}

func TestRunSlugCollisionSuffix(t *testing.T) {
	idx := dupindex.New()
	idx.AddSlug("dashboard-design-1")
	st := &fakeStore{}
	g := newTestGenerator(t, Config{Index: idx, Store: st})

	g.Run(context.Background(), RunSpec{Total: 1, Category: models.CategoryDashboard})
	if len(st.rows) != 1 {
		t.Fatalf("store has %d rows, want 1", len(st.rows))
	}
	if st.rows[0].Slug != "dashboard-design-1-2" {
		t.Errorf("slug = %q, want dashboard-design-1-2", st.rows[0].Slug)
	}
}

func TestRunSlugRaceRetriesOnce(t *testing.T) {
	st := &fakeStore{uniqueFails: 1}
	g := newTestGenerator(t, Config{Store: st})

	sum := g.Run(context.Background(), RunSpec{Total: 1, Category: models.CategoryDashboard})
	if sum.Committed != 1 {
		t.Fatalf("summary = %+v, want 1 committed after slug retry", sum)
	}
	if st.rows[0].Slug != "dashboard-design-1-2" {
		t.Errorf("slug = %q, want dashboard-design-1-2", st.rows[0].Slug)
	}
}

func TestRunCommitFailureSkipsSlot(t *testing.T) {
	st := &fakeStore{err: errors.New("connection reset")}
	g := newTestGenerator(t, Config{Store: st})

	sum := g.Run(context.Background(), RunSpec{Total: 1, Category: models.CategoryBlog})
	if sum.Committed != 0 || sum.Skipped["commit_error"] != 1 {
		t.Fatalf("summary = %+v, want commit_error skip", sum)
	}
}

func TestRunBalancedTotal(t *testing.T) {
	st := &fakeStore{}
	g := newTestGenerator(t, Config{Store: st})

	sum := g.Run(context.Background(), RunSpec{Total: 12})
	if sum.Committed != 12 {
		t.Fatalf("committed = %d, want 12 (skipped: %v)", sum.Committed, sum.Skipped)
	}

	perCategory := make(map[models.Category]int)
	for i, row := range st.rows {
		perCategory[row.Category]++
		want := models.AllCategories[i%len(models.AllCategories)]
		if row.Category != want {
			t.Errorf("row %d category = %q, want %q (round-robin)", i, row.Category, want)
		}
	}
	for _, c := range models.AllCategories {
		if perCategory[c] != 2 {
			t.Errorf("category %s has %d rows, want 2", c, perCategory[c])
		}
	}

	// Slugs within a run are pairwise distinct.
	seen := make(map[string]bool)
	for _, row := range st.rows {
		if seen[row.Slug] {
			t.Errorf("duplicate slug %q in one run", row.Slug)
		}
		seen[row.Slug] = true
	}
}

func TestRunBatchPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advanced_designs.json")
	items := []batch.Item{{
		ID:          "ext-7",
		Category:    "Portfolio",
		HTML:        `<html><body><main class="wrap">external</main></body></html>`,
		Style:       &batch.Style{TailwindClasses: []string{"dark"}},
		Description: "external",
	}}
	data, err := json.Marshal(items)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	idx := dupindex.New()
	st := &fakeStore{}
	g := newTestGenerator(t, Config{Index: idx, Store: st, Batch: batch.NewQueue(path)})

	sum := g.Run(context.Background(), RunSpec{Total: 1, Category: models.CategoryPortfolio})
	if sum.Committed != 1 {
		t.Fatalf("summary = %+v, want 1 committed", sum)
	}

	row := st.rows[0]
	want := `<html><body><main class="wrap dark">external</main></body></html>`
	if row.Code != want {
		t.Errorf("code = %q, want the sidecar HTML with injected classes", row.Code)
	}
	if row.Description != "external" {
		t.Errorf("description = %q, want external", row.Description)
	}
	if !strings.HasPrefix(row.Prompt, "external:ext-7") {
		t.Errorf("prompt = %q, want external id", row.Prompt)
	}
	if !idx.Contains(fingerprint.Compute(row.Code)) {
		t.Error("sidecar fingerprint missing from index")
	}

	// The consumed item must be gone from the sidecar on disk.
	left, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rest []batch.Item
	if err := json.Unmarshal(left, &rest); err != nil {
		t.Fatalf("rewritten sidecar is malformed: %v", err)
	}
	if len(rest) != 0 {
		t.Errorf("sidecar has %d items left, want 0", len(rest))
	}
}

func TestRunCancelledContext(t *testing.T) {
	st := &fakeStore{}
	g := newTestGenerator(t, Config{Store: st})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum := g.Run(ctx, RunSpec{Total: 5})
	if sum.Attempted != 0 {
		t.Errorf("attempted = %d after cancelled context, want 0", sum.Attempted)
	}
}
