// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package templates holds the per-category registries of design variants.
// A variant pairs a stable id with a pure producer function taking a
// palette and returning a complete standalone HTML document. Producers
// must be deterministic for equal palettes, and every variant across all
// categories must be structurally distinct: the duplicate index is global,
// so two variants sharing a tag sequence and layout declarations would
// shadow each other.
package templates

import (
	"fmt"

	"designforge/internal/models"
	"designforge/internal/palette"
)

// Producer generates a standalone HTML document for the given palette.
type Producer func(palette.Palette) string

// Variant is one selectable layout within a category.
type Variant struct {
	ID      string
	Produce Producer
}

// registry maps each category to its ordered variant list.
var registry = map[models.Category][]Variant{
	models.CategoryLandingPage: landingVariants,
	models.CategoryDashboard:   dashboardVariants,
	models.CategoryEcommerce:   ecommerceVariants,
	models.CategoryPortfolio:   portfolioVariants,
	models.CategoryBlog:        blogVariants,
	models.CategoryComponents:  componentsVariants,
}

// Variants returns the ordered variant list for a category. Every
// category in models.AllCategories has at least one variant.
func Variants(category models.Category) []Variant {
	return registry[category]
}

// document wraps a style block and body markup into a complete HTML page.
func document(title, css, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:'Segoe UI',system-ui,-apple-system,sans-serif;-webkit-font-smoothing:antialiased}
%s</style>
</head>
<body>
%s
</body>
</html>`, title, css, body)
}
