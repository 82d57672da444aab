package core

import "fmt"

// Color is a 24-bit RGB display color. The zero value means "terminal default".
type Color struct {
	R, G, B uint8
	Set     bool // false for the terminal's default foreground
}

// RGB builds a Color from its three channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Predefined colors used by the demos and the status line.
var (
	ColorDefault = Color{}
	ColorWhite   = RGB(255, 255, 255)
	ColorGray    = RGB(138, 138, 138)
	ColorOrange  = RGB(245, 128, 37) // Princeton orange
)

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("core: invalid color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return RGB(r, g, b), nil
}
