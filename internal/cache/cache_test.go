// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, fpKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func TestFingerprintCacheRoundTrip(t *testing.T) {
	client := testValkeyClient(t)
	fc := NewFingerprintCache(client, time.Minute)
	ctx := context.Background()

	id := uuid.New()
	const fp = "0123456789abcdef0123456789abcdef"

	if _, ok := fc.Fingerprint(ctx, id); ok {
		t.Error("unexpected hit before store")
	}

	fc.StoreFingerprint(ctx, id, fp)

	got, ok := fc.Fingerprint(ctx, id)
	if !ok {
		t.Fatal("expected hit after store")
	}
	if got != fp {
		t.Errorf("Fingerprint = %q, want %q", got, fp)
	}
}

func TestFingerprintCacheMissIsolatedPerID(t *testing.T) {
	client := testValkeyClient(t)
	fc := NewFingerprintCache(client, time.Minute)
	ctx := context.Background()

	fc.StoreFingerprint(ctx, uuid.New(), "ffffffffffffffffffffffffffffffff")

	if _, ok := fc.Fingerprint(ctx, uuid.New()); ok {
		t.Error("hit for an id that was never stored")
	}
}

func TestConnectValkeyUnreachable(t *testing.T) {
	if _, err := ConnectValkey("localhost", "1", ""); err == nil {
		t.Error("expected error connecting to closed port")
	}
}
