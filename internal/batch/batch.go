// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package batch consumes an optional sidecar file of pre-generated
// designs. The file is a JSON array; items are dequeued one at a time
// by category and the remainder written straight back, so a crash
// between designs loses at most one item.
package batch

import (
	"encoding/json"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"

	"designforge/internal/models"
)

// Style carries the optional class decorations attached to a sidecar
// item. Both token lists are treated the same way on injection.
type Style struct {
	TailwindClasses []string `json:"tailwindClasses"`
	Classes         []string `json:"classes"`
	Label           string   `json:"label"`
}

// Item is one pre-generated design from the sidecar.
type Item struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	HTML        string `json:"html"`
	Style       *Style `json:"style,omitempty"`
	Description string `json:"description,omitempty"`
}

// ClassTokens returns every style class token on the item.
func (it *Item) ClassTokens() []string {
	if it.Style == nil {
		return nil
	}
	tokens := make([]string, 0, len(it.Style.TailwindClasses)+len(it.Style.Classes))
	tokens = append(tokens, it.Style.TailwindClasses...)
	tokens = append(tokens, it.Style.Classes...)
	return tokens
}

// Queue reads and rewrites the sidecar file at a fixed path.
type Queue struct {
	path string
}

func NewQueue(path string) *Queue {
	return &Queue{path: path}
}

// Pop removes and returns the first item matching the category. A
// missing or malformed file behaves as an empty queue. The remaining
// items are written back immediately; a write-back failure is logged
// and the item is still returned, accepting that it may be consumed
// again on the next run.
func (q *Queue) Pop(category models.Category) (*Item, bool) {
	items := q.read()
	for i := range items {
		if items[i].Category != string(category) {
			continue
		}
		item := items[i]
		rest := append(items[:i:i], items[i+1:]...)
		if err := q.write(rest); err != nil {
			slog.Warn("failed to rewrite batch file", "path", q.path, "error", err)
		}
		return &item, true
	}
	return nil, false
}

func (q *Queue) read() []Item {
	data, err := os.ReadFile(q.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read batch file", "path", q.path, "error", err)
		}
		return nil
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("malformed batch file, treating as empty", "path", q.path, "error", err)
		return nil
	}
	return items
}

func (q *Queue) write(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(q.path, data, 0o644)
}

var mainClassAttr = regexp.MustCompile(`<main\b[^>]*\bclass="([^"]*)"`)

// InjectClasses appends the given class tokens to the first
// `<main class="…">` element of the document. Tokens already present
// are skipped; the appended tokens are sorted so the result is stable.
// Documents without such an element are returned unchanged.
func InjectClasses(html string, tokens []string) string {
	if len(tokens) == 0 {
		return html
	}
	loc := mainClassAttr.FindStringSubmatchIndex(html)
	if loc == nil {
		return html
	}

	existing := strings.Fields(html[loc[2]:loc[3]])
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[c] = true
	}
	var added []string
	for _, tok := range tokens {
		if tok != "" && !have[tok] {
			have[tok] = true
			added = append(added, tok)
		}
	}
	if len(added) == 0 {
		return html
	}
	sort.Strings(added)

	merged := strings.Join(append(existing, added...), " ")
	return html[:loc[2]] + merged + html[loc[3]:]
}
