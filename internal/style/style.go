// Package style defines the color and style descriptors used by the
// highlight facilities.
//
// A zero Style means "no override": facilities given a zero style keep
// their own default rendering.
package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a color value.
// The zero value is the terminal's default color.
type Color struct {
	R, G, B uint8

	// set distinguishes a real color from the default color.
	set bool
}

// RGB creates a color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsDefault reports whether this is the terminal's default color.
func (c Color) IsDefault() bool {
	return !c.set
}

// Hex returns the color as a "#rrggbb" string, or "default".
func (c Color) Hex() string {
	if !c.set {
		return "default"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses a color from a hex string ("#rgb" or "#rrggbb",
// leading '#' optional). An empty string parses to the default color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "default") {
		return Color{}, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		// Short form #rgb -> #rrggbb.
		s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// AutoForeground picks a readable foreground (near-black or near-white)
// for the given background, based on perceived luminance.
// The default background yields the default foreground.
func AutoForeground(bg Color) Color {
	if bg.IsDefault() {
		return Color{}
	}
	c := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	l, _, _ := c.Luv()
	if l > 0.55 {
		return RGB(0x1c, 0x1c, 0x1c)
	}
	return RGB(0xee, 0xee, 0xee)
}

// Style is a foreground/background pair applied to a highlight facility.
type Style struct {
	Foreground Color
	Background Color
}

// IsZero reports whether the style overrides nothing.
func (s Style) IsZero() bool {
	return s.Foreground.IsDefault() && s.Background.IsDefault()
}

// Equals reports whether two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground == other.Foreground && s.Background == other.Background
}

// Parse builds a style from foreground and background color strings.
// Either may be empty. When only the background is given, a readable
// foreground is derived from it.
func Parse(fg, bg string) (Style, error) {
	var st Style
	var err error

	st.Background, err = ParseColor(bg)
	if err != nil {
		return Style{}, err
	}
	st.Foreground, err = ParseColor(fg)
	if err != nil {
		return Style{}, err
	}
	if st.Foreground.IsDefault() && !st.Background.IsDefault() {
		st.Foreground = AutoForeground(st.Background)
	}
	return st, nil
}
