package ui

import (
	"regexp"
	"slices"
	"strings"
)

// Theme is the colour treatment of a phase: a gradient from From to To.
type Theme struct {
	From string
	To   string
}

// Idle is used whenever the timer is not running.
var Idle = Theme{From: "#9CA3AF", To: "#4B5563"}

var themes = map[string]Theme{
	"sunrise": {From: "#F97316", To: "#EAB308"},
	"ocean":   {From: "#3B82F6", To: "#06B6D4"},
	"meadow":  {From: "#22C55E", To: "#10B981"},
	"dusk":    {From: "#8B5CF6", To: "#EC4899"},
}

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ThemeNames returns the built-in theme names in alphabetical order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for k := range themes {
		names = append(names, k)
	}

	slices.Sort(names)

	return names
}

// LookupTheme resolves a theme name or a #RRGGBB colour.
func LookupTheme(name string) (Theme, bool) {
	if hexColorRegex.MatchString(name) {
		return Theme{From: name, To: name}, true
	}

	t, ok := themes[strings.ToLower(name)]

	return t, ok
}
