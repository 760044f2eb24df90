package tsm

// handleSGR applies Select Graphic Rendition parameters to the Screen's
// current attribute template.
func (v *VTE) handleSGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	attr := v.screen.CurrentAttr()

	for i := 0; i < len(params); i++ {
		p := params[i]
		if p < 0 {
			p = 0
		}
		switch {
		case p == 0:
			attr = DefaultAttr
		case p == 1:
			attr.Flags |= AttrBold
		case p == 2:
			attr.Flags |= AttrDim
		case p == 3:
			attr.Flags |= AttrItalic
		case p == 4:
			attr.Flags |= AttrUnderline
		case p == 5:
			attr.Flags |= AttrBlink
		case p == 7:
			attr.Flags |= AttrInverse
		case p == 8:
			attr.Flags |= AttrInvisible
		case p == 9:
			attr.Flags |= AttrStrikethrough
		case p == 22:
			attr.Flags &^= AttrBold | AttrDim
		case p == 23:
			attr.Flags &^= AttrItalic
		case p == 24:
			attr.Flags &^= AttrUnderline
		case p == 25:
			attr.Flags &^= AttrBlink
		case p == 27:
			attr.Flags &^= AttrInverse
		case p == 28:
			attr.Flags &^= AttrInvisible
		case p == 29:
			attr.Flags &^= AttrStrikethrough
		case p >= 30 && p <= 37:
			attr.Foreground = IndexedColor(p - 30)
		case p == 38:
			c, consumed := v.parseExtendedColor(params[i+1:])
			attr.Foreground = c
			i += consumed
		case p == 39:
			attr.Foreground = DefaultColor
		case p >= 40 && p <= 47:
			attr.Background = IndexedColor(p - 40)
		case p == 48:
			c, consumed := v.parseExtendedColor(params[i+1:])
			attr.Background = c
			i += consumed
		case p == 49:
			attr.Background = DefaultColor
		case p >= 90 && p <= 97:
			attr.Foreground = IndexedColor(p - 90 + 8)
		case p >= 100 && p <= 107:
			attr.Background = IndexedColor(p - 100 + 8)
		default:
			v.logf(LogDebug, "unknown SGR parameter %d", p)
		}
	}

	v.screen.SetAttr(attr)
}

// parseExtendedColor parses the parameter tail after a 38 or 48 code:
// either "5;n" (256-color index) or "2;r;g;b" (direct RGB).
// Returns the resolved Color and how many extra parameters were consumed.
func (v *VTE) parseExtendedColor(rest []int) (Color, int) {
	if len(rest) == 0 {
		return DefaultColor, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return DefaultColor, len(rest)
		}
		return IndexedColor(clampByte(rest[1])), 2
	case 2:
		if len(rest) < 4 {
			return DefaultColor, len(rest)
		}
		return DirectColor(uint8(clampByte(rest[1])), uint8(clampByte(rest[2])), uint8(clampByte(rest[3]))), 4
	default:
		return DefaultColor, len(rest)
	}
}

func clampByte(n int) int {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
