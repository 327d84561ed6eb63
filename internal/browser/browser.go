// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package browser renders HTML documents to PNG screenshots with a
// headless Chromium instance driven over the DevTools protocol.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	// ViewportWidth and ViewportHeight match the gallery's preview
	// frame. The screenshot captures the full page height, so content
	// taller than the viewport is not clipped.
	ViewportWidth  = 1920
	ViewportHeight = 1400

	// DefaultSettle is how long the page is left alone after the
	// document is set, so fonts and gradients finish painting before
	// the capture.
	DefaultSettle = 1 * time.Second

	renderTimeout = 45 * time.Second
)

// Renderer screenshots HTML documents. Each call spins up a fresh
// browser so renders cannot leak state into each other.
type Renderer struct {
	settle time.Duration
}

// New returns a Renderer with the given settle delay. A non-positive
// settle falls back to DefaultSettle.
func New(settle time.Duration) *Renderer {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Renderer{settle: settle}
}

// RenderPNG loads the document into a headless browser and returns a
// full-page PNG capture at the gallery viewport width.
func (r *Renderer) RenderPNG(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var png []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(ViewportWidth, ViewportHeight),
		chromedp.Navigate("about:blank"),
		setDocument(html),
		chromedp.Sleep(r.settle),
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	if len(png) == 0 {
		return nil, fmt.Errorf("render produced an empty screenshot")
	}

	slog.Debug("rendered design", "bytes", len(png))
	return png, nil
}

// setDocument replaces the blank page's document with the exact HTML,
// bypassing navigation so no server or data URL encoding is involved.
func setDocument(html string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return fmt.Errorf("failed to get frame tree: %w", err)
		}
		return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
	}
}
