// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package dupindex maintains the in-memory history the generator checks
// before accepting a design: the set of structural fingerprints already
// seen and the set of slugs already taken. Both are owned by the single
// orchestrator goroutine; no locking is needed.
package dupindex

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"designforge/internal/fingerprint"
	"designforge/internal/models"
	"designforge/internal/slug"
)

// loadPageSize is how many rows the startup scan requests at a time.
// A short page terminates the scan.
const loadPageSize = 500

// RowSource yields persisted designs in stable pages for the startup scan.
type RowSource interface {
	ListPage(ctx context.Context, limit, offset int) ([]models.Design, error)
}

// FingerprintCache is an optional side channel mapping a design row id to
// its previously computed fingerprint, so repeated startups skip hashing
// full HTML blobs. Misses and failures simply fall back to computing.
type FingerprintCache interface {
	Fingerprint(ctx context.Context, id uuid.UUID) (string, bool)
	StoreFingerprint(ctx context.Context, id uuid.UUID, fp string)
}

// Index is the duplicate index plus the slug set. It only ever grows
// during a run.
type Index struct {
	fingerprints map[string]struct{}
	slugs        map[string]struct{}
}

// New returns an empty index.
func New() *Index {
	return &Index{
		fingerprints: make(map[string]struct{}),
		slugs:        make(map[string]struct{}),
	}
}

// Contains reports whether the fingerprint has been seen.
func (i *Index) Contains(fp string) bool {
	_, ok := i.fingerprints[fp]
	return ok
}

// Add records a fingerprint. Adding an existing fingerprint is a no-op.
func (i *Index) Add(fp string) {
	i.fingerprints[fp] = struct{}{}
}

// Len returns the number of distinct fingerprints recorded.
func (i *Index) Len() int {
	return len(i.fingerprints)
}

// HasSlug reports whether the slug is already taken.
func (i *Index) HasSlug(s string) bool {
	_, ok := i.slugs[s]
	return ok
}

// AddSlug records a slug as taken.
func (i *Index) AddSlug(s string) {
	i.slugs[s] = struct{}{}
}

// AllocateSlug returns a slug unique within the slug set for the n-th
// design of the given category, records it, and returns it. Collisions
// get a numeric suffix: blog-design-1, blog-design-1-2, blog-design-1-3.
func (i *Index) AllocateSlug(category models.Category, n int) string {
	base := slug.Generate(fmt.Sprintf("%s Design %d", category, n))
	candidate := base
	for suffix := 2; i.HasSlug(candidate); suffix++ {
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
	i.AddSlug(candidate)
	return candidate
}

// Load scans the full designs table in pages, fingerprinting every
// stored code blob and snapshotting every non-empty slug. cache may be
// nil. Returns the number of rows scanned.
func (i *Index) Load(ctx context.Context, src RowSource, cache FingerprintCache) (int, error) {
	total := 0
	for offset := 0; ; offset += loadPageSize {
		page, err := src.ListPage(ctx, loadPageSize, offset)
		if err != nil {
			return total, fmt.Errorf("load duplicate index at offset %d: %w", offset, err)
		}

		for _, d := range page {
			i.Add(i.rowFingerprint(ctx, cache, d))
			if d.Slug != "" {
				i.AddSlug(d.Slug)
			}
		}
		total += len(page)

		// A short page means the table is exhausted.
		if len(page) < loadPageSize {
			break
		}
	}

	slog.Info("duplicate index loaded", "rows", total, "fingerprints", i.Len())
	return total, nil
}

// rowFingerprint resolves a row's fingerprint through the cache when one
// is configured, computing and backfilling on miss.
func (i *Index) rowFingerprint(ctx context.Context, cache FingerprintCache, d models.Design) string {
	if cache != nil {
		if fp, ok := cache.Fingerprint(ctx, d.ID); ok {
			return fp
		}
	}
	fp := fingerprint.Compute(d.Code)
	if cache != nil {
		cache.StoreFingerprint(ctx, d.ID, fp)
	}
	return fp
}
