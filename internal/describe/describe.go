// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package describe synthesizes the prose blurb shown under each design
// in the gallery. Every variant id maps to a handful of equivalent
// descriptions; one is chosen uniformly at random per call so repeated
// designs from the same variant don't read identically.
package describe

import (
	"fmt"
	"math/rand/v2"

	"designforge/internal/models"
)

// byVariant maps variant ids to their candidate descriptions.
var byVariant = map[string][]string{
	"landing-hero-split": {
		"A split hero landing page pairing bold headline copy with a product mockup, finished with dual call-to-action buttons.",
		"Two-column SaaS landing layout: persuasive copy on the left, dark product preview on the right, gradient-washed hero.",
	},
	"landing-hero-centered": {
		"A centered hero landing page with a radial gradient backdrop and a three-up feature grid beneath the fold.",
		"Conversion-focused landing layout leading with one centered headline and a pill-shaped call to action over card features.",
	},
	"landing-feature-panels": {
		"A full-bleed gradient banner over a numbered four-panel capability strip and a customer pull quote.",
		"Marketing page built from a saturated hero band, hairline-divided feature panels, and a centered testimonial.",
	},
	"landing-side-card": {
		"A sidebar-driven landing layout pinning signup cards beside tall marketing copy and a numbered onboarding walkthrough.",
		"Landing page with a dark conversion rail on the left and step-by-step product storytelling on the right.",
	},
	"dash-analytics": {
		"A classic analytics dashboard: dark sidebar navigation, four headline stat cards, and a weekly bar chart.",
		"Product analytics shell with sidebar, stat tiles showing deltas, and a gradient bar visualization of active users.",
	},
	"dash-kanban": {
		"A three-column kanban board with color-coded task cards, story points, and a sprint badge in the header.",
		"Project tracking board laying out to-do, in-progress, and done columns over a muted workspace canvas.",
	},
	"dash-crm": {
		"A CRM workspace combining a rail of saved views, an open-deals table with stage chips, and a live activity feed.",
		"Sales dashboard pairing a deal pipeline table with a timeline of calls, proposals, and signatures.",
	},
	"dash-monitoring": {
		"A dark operations dashboard with service health tiles, gradient sparklines, and a recent-incident feed.",
		"Monitoring console showing latency, error rate, and queue depth above severity-flagged incident entries.",
	},
	"shop-product-grid": {
		"An e-commerce catalog page with filter chips and a four-across grid of product cards with maker attributions.",
		"Storefront category view: rounded product cards, gradient photo placeholders, and stock badges under a slim header.",
	},
	"shop-product-detail": {
		"A product detail page splitting a large gallery with thumbnails from the purchase panel, ratings, and color options.",
		"E-commerce detail layout with breadcrumb trail, hero imagery, option pickers, and a full-width add-to-cart button.",
	},
	"shop-cart-checkout": {
		"A checkout page listing cart line items beside a sticky order summary with totals and a payment call to action.",
		"Shopping cart layout: itemized products with quantities on the left, order math and promo nudge on the right.",
	},
	"shop-storefront": {
		"A storefront home with an announcement bar, seasonal feature banner, and a mosaic of collection tiles.",
		"E-commerce front page leading with a gradient campaign panel over compact collection cards.",
	},
	"folio-work-grid": {
		"A portfolio wall of mixed-height project cards under a short personal introduction.",
		"Designer portfolio grid with gradient cover art, captioned disciplines, and an availability note up top.",
	},
	"folio-case-study": {
		"A long-form case study layout with a dark chapter rail, generous reading column, and outcome statistics.",
		"Portfolio case study pairing sticky chapter navigation with editorial body copy and a results row.",
	},
	"folio-minimal-list": {
		"A typography-first portfolio: serif introduction and a plain, underlined index of selected work by year.",
		"Minimal text-only portfolio listing projects as large linked headlines with publication years.",
	},
	"folio-split-showcase": {
		"A split-screen showreel portfolio: saturated intro pane on the left, dark scrolling film frames on the right.",
		"Cinematographer portfolio with a fixed colored bio panel beside captioned gradient stills.",
	},
	"blog-editorial": {
		"A single-column editorial article with a drop cap, pull quote, and a measured 680px reading line.",
		"Long-form essay layout: kicker, oversized serif headline, byline, and a bordered blockquote midway.",
	},
	"blog-magazine": {
		"A magazine front page pairing a lead story with photo against a rail of tagged headlines.",
		"Newspaper-style blog home: dominant feature article on the left, latest-stories list on the right.",
	},
	"blog-card-list": {
		"A blog archive with a dark hero, topic filter pills, and a two-up grid of summary cards.",
		"Engineering blog index: inverted header with tags above white post cards and read-more links.",
	},
	"blog-newsletter": {
		"A newsletter issue layout placing the article beside a sticky subscribe card and past-issue links.",
		"Editorial newsletter page with standfirst, section divider, and a persistent signup rail.",
	},
	"comp-buttons-forms": {
		"A UI kit sheet of button states and form controls: solid, soft, outline, destructive, inputs, and toggles.",
		"Component library page demonstrating button variants alongside labeled fields, hints, and error states.",
	},
	"comp-card-kit": {
		"A dark-surface card kit showing metric, profile, and notification card primitives with border elevation.",
		"Design-system card collection on a navy canvas: stat cards with trends, a follow card, and an alert card.",
	},
	"comp-navigation": {
		"A navigation pattern sheet: app bar, breadcrumbs, tab strip, and pagination in labeled demo frames.",
		"Component page cataloguing wayfinding primitives from top bar to pager, each in its own bordered demo.",
	},
	"comp-pricing": {
		"A three-tier pricing table with a highlighted popular plan, checkmarked feature lists, and contrasting calls to action.",
		"Classic pricing component: starter, team, and enterprise columns with the middle tier flagged and elevated.",
	},
}

// Describe returns a prose description for the given category and
// variant id, chosen uniformly at random when several exist. Unknown
// variant ids get a generic category blurb so the gallery never shows
// an empty description.
func Describe(category models.Category, variantID string) string {
	if opts, ok := byVariant[variantID]; ok && len(opts) > 0 {
		return opts[rand.IntN(len(opts))]
	}
	return fmt.Sprintf("A hand-crafted %s design with a cohesive color palette and a clean, responsive layout.",
		string(category))
}
