// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fingerprint derives a color-insensitive structural digest from
// an HTML document. Two documents that differ only in hex color literals
// fingerprint identically; documents whose tag sequence or grid/flex
// layout declarations differ do not.
//
// The digest is what the duplicate index stores, so the definition here
// is load-bearing: changing it orphans every fingerprint computed from
// previously committed designs.
package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	// hexColor matches a CSS hex color literal: # followed by exactly
	// 6 or 3 hex digits (6 tried first so long forms win).
	hexColor = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})`)

	// openTag matches the name of an opening tag. The leading letter
	// requirement keeps closing tags (</div>), comments, and doctype
	// declarations out.
	openTag = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9-]*)`)

	// layoutDecl matches the CSS declarations that define layout
	// structure: grid column templates, flex direction, and grid/flex
	// display modes.
	layoutDecl = regexp.MustCompile(`grid-template-columns\s*:\s*[^;}]+|flex-direction\s*:\s*[a-zA-Z-]+|display\s*:\s*(?:grid|flex)\b`)

	// innerSpace collapses whitespace runs inside a matched declaration
	// so reformatting a value does not read as a new structure.
	innerSpace = regexp.MustCompile(`\s+`)
)

// colorSentinel replaces every hex color literal before structure
// extraction, making palette swaps invisible to the digest.
const colorSentinel = "COLOR"

// Compute returns the 128-bit structural fingerprint of the given HTML
// as a 32-character lowercase hex string. It is total: any input,
// including the empty string, produces a digest.
func Compute(html string) string {
	normalized := hexColor.ReplaceAllString(html, colorSentinel)

	var sb strings.Builder

	for _, m := range openTag.FindAllStringSubmatch(normalized, -1) {
		sb.WriteString(strings.ToLower(m[1]))
		sb.WriteByte('>')
	}

	sb.WriteByte('|')

	for _, m := range layoutDecl.FindAllString(normalized, -1) {
		sb.WriteString(innerSpace.ReplaceAllString(strings.TrimSpace(m), " "))
		sb.WriteByte(';')
	}

	sum := md5.Sum([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}
