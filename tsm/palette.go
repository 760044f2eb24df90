package tsm

import "image/color"

// Palette holds the 16 named ANSI colors plus the default foreground and
// background used to resolve an Attr's Color values. Indices
// 16..255 are not stored per-palette: they're derived programmatically by
// Resolve256.
type Palette struct {
	Name       string
	Indexed    [16]color.RGBA
	Foreground color.RGBA
	Background color.RGBA
	Cursor     color.RGBA
}

// Resolve256 converts a 0..255 xterm color index to RGB under this palette.
func (p *Palette) Resolve256(n int) color.RGBA {
	return resolve256(p, n)
}

// basePalette16 is the standard xterm 16-color set shared by every named
// palette below except where a palette overrides it.
var basePalette16 = [16]color.RGBA{
	{0, 0, 0, 255}, {205, 49, 49, 255}, {13, 188, 121, 255}, {229, 229, 16, 255},
	{36, 114, 200, 255}, {188, 63, 188, 255}, {17, 168, 205, 255}, {229, 229, 229, 255},
	{102, 102, 102, 255}, {241, 76, 76, 255}, {35, 209, 139, 255}, {245, 245, 67, 255},
	{59, 142, 234, 255}, {214, 112, 214, 255}, {41, 184, 219, 255}, {255, 255, 255, 255},
}

// DefaultPalette is the standard xterm-like 16-color palette with a black
// background and light-gray foreground.
var DefaultPalette = &Palette{
	Name:       "default",
	Indexed:    basePalette16,
	Foreground: color.RGBA{229, 229, 229, 255},
	Background: color.RGBA{0, 0, 0, 255},
	Cursor:     color.RGBA{229, 229, 229, 255},
}

// solarizedAccents are the 8 accent colors shared by all three Solarized
// variants; only the base/background tones differ between them.
var solarizedAccents = [8]color.RGBA{
	{220, 50, 47, 255}, {203, 75, 22, 255}, {181, 137, 0, 255}, {133, 153, 0, 255},
	{42, 161, 152, 255}, {38, 139, 210, 255}, {108, 113, 196, 255}, {211, 54, 130, 255},
}

// SolarizedPalette is the canonical dark Solarized theme.
var SolarizedPalette = &Palette{
	Name: "solarized",
	Indexed: [16]color.RGBA{
		{7, 54, 66, 255}, solarizedAccents[0], solarizedAccents[3], solarizedAccents[2],
		solarizedAccents[5], solarizedAccents[7], solarizedAccents[4], {238, 232, 213, 255},
		{0, 43, 54, 255}, solarizedAccents[1], {88, 110, 117, 255}, {101, 123, 131, 255},
		{131, 148, 150, 255}, solarizedAccents[6], {147, 161, 161, 255}, {253, 246, 227, 255},
	},
	Foreground: color.RGBA{131, 148, 150, 255},
	Background: color.RGBA{0, 43, 54, 255},
	Cursor:     color.RGBA{131, 148, 150, 255},
}

// SolarizedBlackPalette is Solarized with a pure-black background, for
// displays that render dark gray poorly.
var SolarizedBlackPalette = &Palette{
	Name:       "solarized-black",
	Indexed:    SolarizedPalette.Indexed,
	Foreground: SolarizedPalette.Foreground,
	Background: color.RGBA{0, 0, 0, 255},
	Cursor:     SolarizedPalette.Cursor,
}

// SolarizedWhitePalette is the light Solarized variant.
var SolarizedWhitePalette = &Palette{
	Name: "solarized-white",
	Indexed: [16]color.RGBA{
		{238, 232, 213, 255}, solarizedAccents[0], solarizedAccents[3], solarizedAccents[2],
		solarizedAccents[5], solarizedAccents[7], solarizedAccents[4], {7, 54, 66, 255},
		{253, 246, 227, 255}, solarizedAccents[1], {147, 161, 161, 255}, {131, 148, 150, 255},
		{101, 123, 131, 255}, solarizedAccents[6], {88, 110, 117, 255}, {0, 43, 54, 255},
	},
	Foreground: color.RGBA{101, 123, 131, 255},
	Background: color.RGBA{253, 246, 227, 255},
	Cursor:     color.RGBA{101, 123, 131, 255},
}

// namedPalettes maps the palette names resolved by LookupPalette.
var namedPalettes = map[string]*Palette{
	"default":          DefaultPalette,
	"solarized":        SolarizedPalette,
	"solarized-black":  SolarizedBlackPalette,
	"solarized-white":  SolarizedWhitePalette,
}

// LookupPalette resolves a palette by name, returning ok=false for unknown
// names.
func LookupPalette(name string) (*Palette, bool) {
	p, ok := namedPalettes[name]
	return p, ok
}

// clonePalette copies p so a VTE can mutate its working palette (OSC 4/10/
// 11/104) without corrupting the shared named-palette singletons or another
// VTE's palette.
func clonePalette(p *Palette) *Palette {
	cp := *p
	return &cp
}
