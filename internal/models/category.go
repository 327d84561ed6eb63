// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "strings"

// Category is one of the fixed UI kinds the generator produces.
// The set is closed; the gallery frontend groups designs by these values.
type Category string

const (
	CategoryLandingPage Category = "Landing Page"
	CategoryDashboard   Category = "Dashboard"
	CategoryEcommerce   Category = "E-commerce"
	CategoryPortfolio   Category = "Portfolio"
	CategoryBlog        Category = "Blog"
	CategoryComponents  Category = "Components"
)

// AllCategories lists every category in registry order. The orchestrator
// cycles through this slice so output stays balanced across categories.
var AllCategories = []Category{
	CategoryLandingPage,
	CategoryDashboard,
	CategoryEcommerce,
	CategoryPortfolio,
	CategoryBlog,
	CategoryComponents,
}

// ParseCategory returns the category matching the given name exactly,
// or ("", false) if the name is not in the closed set.
func ParseCategory(name string) (Category, bool) {
	for _, c := range AllCategories {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// Snake returns the category name lowercased with spaces replaced by
// underscores, for use in object-storage keys.
func (c Category) Snake() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "_")
}
