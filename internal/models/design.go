// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the persisted entities shared across the
// generator: the design row stored for the gallery and the closed set
// of design categories.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Design is one committed gallery entry. Code holds the exact HTML that
// was rendered and screenshotted; ImageURL points at the uploaded PNG.
type Design struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    Category  `json:"category"`
	Code        string    `json:"code"`
	Slug        string    `json:"slug"`
	Prompt      string    `json:"prompt"`
	CreatedAt   time.Time `json:"created_at"`
}
