// design_test.go exercises the DesignStore against a real PostgreSQL
// instance. Tests are skipped if the database is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"designforge/internal/database"
	"designforge/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "designforge")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "designforge")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

func testDesign(slug string) *models.Design {
	return &models.Design{
		Title:       "Blog Design #1",
		Description: "A clean editorial layout",
		ImageURL:    "https://objects.example.com/designs-bucket/designs/test.png",
		Category:    models.CategoryBlog,
		Code:        "<html><body><article><h1>Test</h1></article></body></html>",
		Slug:        slug,
		Prompt:      "variant:blog-editorial fp:0123456789ab",
	}
}

func cleanDesign(t *testing.T, db *sql.DB, slug string) {
	t.Helper()
	if _, err := db.Exec("DELETE FROM designs WHERE slug = $1", slug); err != nil {
		t.Logf("cleanup failed for %s: %v", slug, err)
	}
}

func TestDesignStoreInsert(t *testing.T) {
	db := testDB(t)
	s := NewDesignStore(db)
	ctx := context.Background()

	slug := "store-test-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanDesign(t, db, slug) })

	stored, err := s.Insert(ctx, testDesign(slug))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if stored.ID == uuid.Nil {
		t.Error("expected store-assigned UUID")
	}
	if stored.CreatedAt.IsZero() {
		t.Error("expected store-assigned creation timestamp")
	}
	if stored.Slug != slug {
		t.Errorf("slug: got %q, want %q", stored.Slug, slug)
	}
	if stored.Category != models.CategoryBlog {
		t.Errorf("category: got %q, want %q", stored.Category, models.CategoryBlog)
	}
}

func TestDesignStoreSlugUniqueViolation(t *testing.T) {
	db := testDB(t)
	s := NewDesignStore(db)
	ctx := context.Background()

	slug := "store-test-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanDesign(t, db, slug) })

	if _, err := s.Insert(ctx, testDesign(slug)); err != nil {
		t.Fatalf("first Insert: %v", err)
	}

	_, err := s.Insert(ctx, testDesign(slug))
	if err == nil {
		t.Fatal("expected unique violation on duplicate slug")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation(%v) = false, want true", err)
	}
}

func TestDesignStoreListPageAndCount(t *testing.T) {
	db := testDB(t)
	s := NewDesignStore(db)
	ctx := context.Background()

	before, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	slugs := make([]string, 3)
	for i := range slugs {
		slugs[i] = "store-test-" + uuid.NewString()[:8]
		sl := slugs[i]
		t.Cleanup(func() { cleanDesign(t, db, sl) })
		if _, err := s.Insert(ctx, testDesign(sl)); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}

	after, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if after != before+3 {
		t.Errorf("Count: got %d, want %d", after, before+3)
	}

	// Page through everything and check the inserted slugs show up once.
	seen := make(map[string]int)
	for offset := 0; ; offset += 2 {
		page, err := s.ListPage(ctx, 2, offset)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		for _, d := range page {
			seen[d.Slug]++
		}
		if len(page) < 2 {
			break
		}
	}
	for _, sl := range slugs {
		if seen[sl] != 1 {
			t.Errorf("slug %q seen %d times in scan, want 1", sl, seen[sl])
		}
	}
}

func TestIsUniqueViolationNonPgError(t *testing.T) {
	if IsUniqueViolation(sql.ErrNoRows) {
		t.Error("sql.ErrNoRows misclassified as unique violation")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil misclassified as unique violation")
	}
}
