// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"designforge/internal/models"
)

func writeQueue(t *testing.T, items []Item) *Queue {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advanced_designs.json")
	data, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return NewQueue(path)
}

func TestPopRemovesFirstMatch(t *testing.T) {
	q := writeQueue(t, []Item{
		{ID: "a1", Category: "Blog", HTML: "<html>a</html>"},
		{ID: "b1", Category: "Portfolio", HTML: "<html>b</html>"},
		{ID: "a2", Category: "Blog", HTML: "<html>c</html>"},
	})

	item, ok := q.Pop(models.CategoryBlog)
	if !ok {
		t.Fatal("Pop() returned no item")
	}
	if item.ID != "a1" {
		t.Errorf("ID = %q, want a1", item.ID)
	}

	// The file must be rewritten with the item removed, other
	// categories untouched, order preserved.
	rest := q.read()
	if len(rest) != 2 {
		t.Fatalf("remaining items = %d, want 2", len(rest))
	}
	if rest[0].ID != "b1" || rest[1].ID != "a2" {
		t.Errorf("remaining order = %q, %q; want b1, a2", rest[0].ID, rest[1].ID)
	}

	// Second pop for the same category yields the next item.
	item, ok = q.Pop(models.CategoryBlog)
	if !ok || item.ID != "a2" {
		t.Fatalf("second Pop() = %+v, %v; want a2", item, ok)
	}
	if _, ok := q.Pop(models.CategoryBlog); ok {
		t.Error("third Pop() should find nothing")
	}
}

func TestPopNoMatchLeavesFileAlone(t *testing.T) {
	q := writeQueue(t, []Item{{ID: "x", Category: "Dashboard", HTML: "<html></html>"}})
	if _, ok := q.Pop(models.CategoryBlog); ok {
		t.Fatal("Pop() matched the wrong category")
	}
	if got := len(q.read()); got != 1 {
		t.Errorf("file has %d items after non-matching pop, want 1", got)
	}
}

func TestPopMissingAndMalformedFile(t *testing.T) {
	missing := NewQueue(filepath.Join(t.TempDir(), "nope.json"))
	if _, ok := missing.Pop(models.CategoryBlog); ok {
		t.Error("missing file should behave as empty")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	malformed := NewQueue(path)
	if _, ok := malformed.Pop(models.CategoryBlog); ok {
		t.Error("malformed file should behave as empty")
	}
}

func TestClassTokens(t *testing.T) {
	it := &Item{Style: &Style{
		TailwindClasses: []string{"p-4", "grid"},
		Classes:         []string{"dark"},
	}}
	got := it.ClassTokens()
	want := []string{"p-4", "grid", "dark"}
	if len(got) != len(want) {
		t.Fatalf("ClassTokens() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ClassTokens()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	var none Item
	if tokens := none.ClassTokens(); tokens != nil {
		t.Errorf("ClassTokens() without style = %v, want nil", tokens)
	}
}

func TestInjectClasses(t *testing.T) {
	tests := []struct {
		name   string
		html   string
		tokens []string
		want   string
	}{
		{
			name:   "appends sorted tokens",
			html:   `<body><main class="wrap">x</main></body>`,
			tokens: []string{"z-top", "a-bottom"},
			want:   `<body><main class="wrap a-bottom z-top">x</main></body>`,
		},
		{
			name:   "skips tokens already present",
			html:   `<main class="wrap dark">x</main>`,
			tokens: []string{"dark", "wide"},
			want:   `<main class="wrap dark wide">x</main>`,
		},
		{
			name:   "all present leaves document unchanged",
			html:   `<main class="wrap">x</main>`,
			tokens: []string{"wrap"},
			want:   `<main class="wrap">x</main>`,
		},
		{
			name:   "only first main is decorated",
			html:   `<main class="a">1</main><main class="b">2</main>`,
			tokens: []string{"x"},
			want:   `<main class="a x">1</main><main class="b">2</main>`,
		},
		{
			name:   "no main with class attribute",
			html:   `<main>1</main>`,
			tokens: []string{"x"},
			want:   `<main>1</main>`,
		},
		{
			name:   "no tokens",
			html:   `<main class="a">1</main>`,
			tokens: nil,
			want:   `<main class="a">1</main>`,
		},
		{
			name:   "duplicate tokens collapse",
			html:   `<main class="a">1</main>`,
			tokens: []string{"x", "x"},
			want:   `<main class="a x">1</main>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InjectClasses(tt.html, tt.tokens); got != tt.want {
				t.Errorf("InjectClasses() = %q, want %q", got, tt.want)
			}
		})
	}
}
