package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
		ok    bool
	}{
		{"landing page", "Landing Page", CategoryLandingPage, true},
		{"dashboard", "Dashboard", CategoryDashboard, true},
		{"ecommerce", "E-commerce", CategoryEcommerce, true},
		{"portfolio", "Portfolio", CategoryPortfolio, true},
		{"blog", "Blog", CategoryBlog, true},
		{"components", "Components", CategoryComponents, true},
		{"case sensitive", "landing page", "", false},
		{"unknown", "Newsletter", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCategorySnake(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryLandingPage, "landing_page"},
		{CategoryDashboard, "dashboard"},
		{CategoryEcommerce, "e-commerce"},
		{CategoryPortfolio, "portfolio"},
		{CategoryBlog, "blog"},
		{CategoryComponents, "components"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := tt.category.Snake(); got != tt.want {
				t.Errorf("Snake() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestAllCategoriesOrder pins the registry order the orchestrator cycles
// through; reordering would change the round-robin output of a run.
func TestAllCategoriesOrder(t *testing.T) {
	want := []Category{
		CategoryLandingPage, CategoryDashboard, CategoryEcommerce,
		CategoryPortfolio, CategoryBlog, CategoryComponents,
	}
	if len(AllCategories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(AllCategories))
	}
	for i, c := range want {
		if AllCategories[i] != c {
			t.Errorf("AllCategories[%d] = %q, want %q", i, AllCategories[i], c)
		}
	}
}
