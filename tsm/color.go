package tsm

import "image/color"

// ColorCode identifies how an Attr's foreground/background should be
// resolved. Indexed codes 0..15 select a palette slot;
// the two named sentinels select the palette's default fg/bg; Direct means
// the Attr carries an already-resolved 24-bit triple.
type ColorCode int32

const (
	ColorIndexedMin     ColorCode = 0
	ColorIndexedMax     ColorCode = 15
	ColorForeground     ColorCode = -2
	ColorBackground     ColorCode = -3
	ColorDirect         ColorCode = -1
	colorUnset          ColorCode = -4
)

// Color is one cell-attribute color: either a palette-deferred code or a
// resolved 24-bit RGB triple.
type Color struct {
	Code ColorCode
	RGB  color.RGBA // valid only when Code == ColorDirect
}

// DefaultColor is the unset sentinel used by a freshly reset Attr.
var DefaultColor = Color{Code: colorUnset}

// IndexedColor returns a Color selecting xterm color index idx (0..255):
// 0..15 are palette slots, 16..255 the derived cube and grayscale ramp.
func IndexedColor(idx int) Color {
	return Color{Code: ColorCode(idx)}
}

// DirectColor returns a Color carrying an already-resolved RGB triple.
func DirectColor(r, g, b uint8) Color {
	return Color{Code: ColorDirect, RGB: color.RGBA{R: r, G: g, B: b, A: 255}}
}

// Resolve converts c to a concrete RGBA using pal, falling back to the
// palette's own default fg/bg for the unset sentinel and the named
// foreground/background codes.
func (c Color) Resolve(pal *Palette, fg bool) color.RGBA {
	switch {
	case c.Code == ColorDirect:
		return c.RGB
	case c.Code == colorUnset, c.Code == ColorForeground && fg, c.Code == ColorBackground && !fg:
		if fg {
			return pal.Foreground
		}
		return pal.Background
	case c.Code == ColorForeground:
		return pal.Foreground
	case c.Code == ColorBackground:
		return pal.Background
	case c.Code >= ColorIndexedMin && c.Code <= 255:
		return pal.Resolve256(int(c.Code))
	default:
		if fg {
			return pal.Foreground
		}
		return pal.Background
	}
}

// cube6 are the six intensity levels used by the 256-color 6x6x6 cube
//, reproduced exactly as specified.
var cube6 = [6]uint8{0x00, 0x5F, 0x87, 0xAF, 0xD7, 0xFF}

// resolve256 converts an xterm 256-color index to RGB: 0-15 via the named
// palette, 16-231 the 6x6x6 cube, 232-255 a 24-step grayscale ramp.
func resolve256(pal *Palette, n int) color.RGBA {
	switch {
	case n < 16:
		return pal.Indexed[n]
	case n < 232:
		n -= 16
		r := cube6[n/36]
		g := cube6[(n/6)%6]
		b := cube6[n%6]
		return color.RGBA{R: r, G: g, B: b, A: 255}
	case n <= 255:
		gray := uint8((n-232)*10 + 8)
		return color.RGBA{R: gray, G: gray, B: gray, A: 255}
	default:
		return pal.Foreground
	}
}
