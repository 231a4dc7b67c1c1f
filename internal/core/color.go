package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for duel elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPurple
)

type paletteEntry struct {
	name string
	hex  string // approximate sRGB value, used to snap arbitrary hex colors
}

var palette = map[Color]paletteEntry{
	ColorDefault:       {"default", "#c0c0c0"},
	ColorRed:           {"red", "#cd0000"},
	ColorGreen:         {"green", "#00cd00"},
	ColorYellow:        {"yellow", "#cdcd00"},
	ColorBlue:          {"blue", "#0000ee"},
	ColorMagenta:       {"magenta", "#cd00cd"},
	ColorCyan:          {"cyan", "#00cdcd"},
	ColorWhite:         {"white", "#e5e5e5"},
	ColorBrightRed:     {"bright-red", "#ff0000"},
	ColorBrightGreen:   {"bright-green", "#00ff00"},
	ColorBrightYellow:  {"bright-yellow", "#ffff00"},
	ColorBrightBlue:    {"bright-blue", "#5c5cff"},
	ColorBrightMagenta: {"bright-magenta", "#ff00ff"},
	ColorBrightCyan:    {"bright-cyan", "#00ffff"},
	ColorBrightWhite:   {"bright-white", "#ffffff"},
	ColorOrange:        {"orange", "#ff8700"},
	ColorGray:          {"gray", "#8a8a8a"},
	ColorPurple:        {"purple", "#8700af"},
}

// SpellPalette is the cycling order offered for projectile colors.
var SpellPalette = []Color{
	ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorMagenta,
	ColorCyan, ColorOrange, ColorPurple, ColorWhite,
}

// String returns the palette name of the color.
func (c Color) String() string {
	if e, ok := palette[c]; ok {
		return e.name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Next returns the color after c in SpellPalette, wrapping around.
// Colors outside the palette restart at the first entry.
func (c Color) Next() Color {
	for i, pc := range SpellPalette {
		if pc == c {
			return SpellPalette[(i+1)%len(SpellPalette)]
		}
	}
	return SpellPalette[0]
}

// ParseColor accepts a palette name ("red", "bright-cyan") or a hex value
// ("#ff0000"). Hex values snap to the perceptually nearest palette color.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ColorDefault, fmt.Errorf("core: empty color")
	}

	for c, e := range palette {
		if e.name == s {
			return c, nil
		}
	}
	if s == "grey" {
		return ColorGray, nil
	}

	if !strings.HasPrefix(s, "#") {
		return ColorDefault, fmt.Errorf("core: unknown color %q", s)
	}

	target, err := colorful.Hex(s)
	if err != nil {
		return ColorDefault, fmt.Errorf("core: invalid hex color %q: %w", s, err)
	}
	return nearestColor(target), nil
}

// nearestColor finds the palette entry closest to target in Lab space.
// Iteration runs in Color order so ties resolve deterministically.
func nearestColor(target colorful.Color) Color {
	best := ColorDefault
	bestDist := -1.0
	for c := ColorDefault; c <= ColorPurple; c++ {
		e, ok := palette[c]
		if !ok || c == ColorDefault {
			continue
		}
		pc, err := colorful.Hex(e.hex)
		if err != nil {
			continue
		}
		d := target.DistanceLab(pc)
		if bestDist < 0 || d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
