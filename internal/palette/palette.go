// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package palette holds the fixed set of color schemes available to the
// template producers. Palettes are shared-immutable; producers read them
// and never modify them.
package palette

// Palette is a named triple of colors consumed by every template producer.
type Palette struct {
	Name      string
	Primary   string
	Secondary string
	Accent    string
}

// All is the registry of available palettes. Every color is a CSS hex
// literal so the structural fingerprint can normalize them away.
var All = []Palette{
	{Name: "Indigo Night", Primary: "#6366f1", Secondary: "#8b5cf6", Accent: "#ec4899"},
	{Name: "Deep Ocean", Primary: "#0ea5e9", Secondary: "#06b6d4", Accent: "#10b981"},
	{Name: "Sunset Ember", Primary: "#f97316", Secondary: "#ef4444", Accent: "#eab308"},
}
