package tsm

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// parseXColorSpec parses an X11-style color spec as used by OSC 4/10/11:
// "rgb:R/G/B" with 1-4 hex digits per component, or "#RRGGBB" with exactly
// six hex digits.
func parseXColorSpec(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "rgb:"):
		parts := strings.Split(s[4:], "/")
		if len(parts) != 3 {
			return color.RGBA{}, false
		}
		r, ok1 := parseHexComponent(parts[0])
		g, ok2 := parseHexComponent(parts[1])
		b, ok3 := parseHexComponent(parts[2])
		if !ok1 || !ok2 || !ok3 {
			return color.RGBA{}, false
		}
		return color.RGBA{R: r, G: g, B: b, A: 255}, true
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) != 6 {
			return color.RGBA{}, false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
	default:
		return color.RGBA{}, false
	}
}

// parseHexComponent scales a 1-4 digit hex component to 8 bits, matching
// the X11 color spec convention where shorter strings are left-justified.
func parseHexComponent(s string) (uint8, bool) {
	if len(s) == 0 || len(s) > 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	bits := len(s) * 4
	scaled := v << (16 - bits) >> 8
	return uint8(scaled), true
}

// formatXOscReply formats the OSC 10/11 query reply ("rgb:rrrr/gggg/bbbb").
func formatXOscReply(code int, c color.RGBA) string {
	return fmt.Sprintf("\x1b]%d;rgb:%02x%02x/%02x%02x/%02x%02x\x07",
		code, c.R, c.R, c.G, c.G, c.B, c.B)
}
