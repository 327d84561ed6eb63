// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// fingerprints.go provides a Valkey-backed cache of design fingerprints.
// The startup scan fingerprints every stored code blob; caching the digest
// per row id means repeated runs only hash rows committed since the last
// one. A cache failure is never fatal — the loader just recomputes.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// fpKeyPrefix is the Valkey key prefix for cached fingerprints.
	fpKeyPrefix = "design:fp:"

	// DefaultFingerprintTTL is how long a cached fingerprint stays valid.
	// Committed rows never change, so the TTL only bounds cache growth.
	DefaultFingerprintTTL = 30 * 24 * time.Hour
)

// FingerprintCache maps design row ids to their structural fingerprints.
type FingerprintCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFingerprintCache creates a fingerprint cache backed by the given
// Valkey client.
func NewFingerprintCache(client *redis.Client, ttl time.Duration) *FingerprintCache {
	if ttl == 0 {
		ttl = DefaultFingerprintTTL
	}
	return &FingerprintCache{client: client, ttl: ttl}
}

// Fingerprint retrieves the cached fingerprint for a design row.
// Returns ("", false) on miss or error.
func (fc *FingerprintCache) Fingerprint(ctx context.Context, id uuid.UUID) (string, bool) {
	val, err := fc.client.Get(ctx, fpKeyPrefix+id.String()).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("fingerprint cache get error", "id", id, "error", err)
		return "", false
	}
	return val, true
}

// StoreFingerprint records a computed fingerprint for a design row.
func (fc *FingerprintCache) StoreFingerprint(ctx context.Context, id uuid.UUID, fp string) {
	if err := fc.client.Set(ctx, fpKeyPrefix+id.String(), fp, fc.ttl).Err(); err != nil {
		slog.Warn("fingerprint cache set error", "id", id, "error", err)
	}
}
