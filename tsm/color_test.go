package tsm

import "testing"

func TestResolve256Cube(t *testing.T) {
	c := resolve256(DefaultPalette, 16) // first cube entry: 0,0,0
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("got %+v", c)
	}
	c = resolve256(DefaultPalette, 231) // last cube entry: 255,255,255
	if c.R != 0xFF || c.G != 0xFF || c.B != 0xFF {
		t.Fatalf("got %+v", c)
	}
}

func TestResolve256Grayscale(t *testing.T) {
	c := resolve256(DefaultPalette, 232)
	if c.R != 8 || c.G != 8 || c.B != 8 {
		t.Fatalf("got %+v", c)
	}
	c = resolve256(DefaultPalette, 255)
	if c.R != 238 {
		t.Fatalf("got %+v", c)
	}
}

func TestResolve256Indexed(t *testing.T) {
	c := resolve256(DefaultPalette, 1)
	if c != DefaultPalette.Indexed[1] {
		t.Fatalf("got %+v, want %+v", c, DefaultPalette.Indexed[1])
	}
}

func TestColorResolveSentinels(t *testing.T) {
	if got := DefaultColor.Resolve(DefaultPalette, true); got != DefaultPalette.Foreground {
		t.Fatalf("got %+v", got)
	}
	fgSentinel := Color{Code: ColorForeground}
	if got := fgSentinel.Resolve(DefaultPalette, false); got != DefaultPalette.Foreground {
		t.Fatalf("foreground sentinel used as bg should still resolve to palette Foreground, got %+v", got)
	}
}

func TestLookupPalette(t *testing.T) {
	p, ok := LookupPalette("solarized")
	if !ok || p.Name != "solarized" {
		t.Fatalf("got %+v ok=%v", p, ok)
	}
	if _, ok := LookupPalette("nonexistent"); ok {
		t.Fatalf("expected lookup miss")
	}
}
