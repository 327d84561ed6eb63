// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package browser

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"
)

func TestNewSettleFallback(t *testing.T) {
	if r := New(0); r.settle != DefaultSettle {
		t.Errorf("settle = %v, want %v", r.settle, DefaultSettle)
	}
	if r := New(-time.Second); r.settle != DefaultSettle {
		t.Errorf("settle = %v, want %v", r.settle, DefaultSettle)
	}
	if r := New(250 * time.Millisecond); r.settle != 250*time.Millisecond {
		t.Errorf("settle = %v, want 250ms", r.settle)
	}
}

func chromeAvailable() bool {
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// TestRenderPNG is an integration test and needs a Chromium binary on
// PATH. It is skipped otherwise.
func TestRenderPNG(t *testing.T) {
	if !chromeAvailable() {
		t.Skip("skipping: no Chromium binary on PATH")
	}

	r := New(100 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	png, err := r.RenderPNG(ctx, "<!DOCTYPE html><html><body><h1>hello</h1></body></html>")
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG")
	}
}
