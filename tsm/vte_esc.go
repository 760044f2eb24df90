package tsm

// EscDispatch handles a completed ESC sequence: charset designation when an
// intermediate byte was collected, otherwise one of the classic single-byte
// ESC commands.
func (v *VTE) EscDispatch(inters []byte, final byte) {
	if len(inters) == 1 {
		switch inters[0] {
		case '(':
			v.charsets.designate(G0, mapCharset(final))
			return
		case ')':
			v.charsets.designate(G1, mapCharset(final))
			return
		case '*':
			v.charsets.designate(G2, mapCharset(final))
			return
		case '+':
			v.charsets.designate(G3, mapCharset(final))
			return
		case '#':
			if final == '8' {
				v.decAlignmentTest()
			}
			return
		}
	}

	switch final {
	case 'D': // IND
		v.index()
	case 'E': // NEL
		v.screen.Newline()
	case 'H': // HTS
		v.screen.SetTabstop()
	case 'M': // RI
		v.reverseIndex()
	case 'N': // SS2
		v.charsets.singleShiftNext(G2)
	case 'O': // SS3
		v.charsets.singleShiftNext(G3)
	case 'n': // LS2: lock G2 into GL
		v.charsets.invoke(G2)
	case 'o': // LS3: lock G3 into GL
		v.charsets.invoke(G3)
	case '~': // LS1R: lock G1 into GR
		v.charsets.invokeGR(G1)
	case '}': // LS2R: lock G2 into GR
		v.charsets.invokeGR(G2)
	case '|': // LS3R: lock G3 into GR
		v.charsets.invokeGR(G3)
	case '7': // DECSC
		v.screen.SaveCursor(v.charsets.gl, v.charsets.gr)
	case '8': // DECRC
		if gl, gr, ok := v.screen.RestoreCursor(); ok {
			v.charsets.gl, v.charsets.gr = gl, gr
		}
	case '=': // DECKPAM
		v.appKeypad = true
	case '>': // DECKPNM
		v.appKeypad = false
	case 'c': // RIS
		v.fullReset()
	case 'Z': // DECID (reply primary DA)
		v.reply(primaryDAReply)
	case '\\': // stray ST
	default:
		v.logf(LogDebug, "unknown ESC sequence final=%q inters=%q", final, inters)
	}
}

func mapCharset(final byte) Charset {
	switch final {
	case '0':
		return CharsetDECSpecialGraphics
	case 'A':
		return CharsetUK
	default:
		return CharsetASCII
	}
}

// index implements IND: move down one line, scrolling if already at the
// bottom margin.
func (v *VTE) index() {
	row, _ := v.screen.CursorPosition()
	_, bottom := v.screen.ScrollRegion()
	if row == bottom {
		v.screen.ScrollUp(1)
		return
	}
	v.screen.MoveDown(1)
}

// reverseIndex implements RI: move up one line, scrolling down if already
// at the top margin.
func (v *VTE) reverseIndex() {
	row, _ := v.screen.CursorPosition()
	top, _ := v.screen.ScrollRegion()
	if row == top {
		v.screen.ScrollDown(1)
		return
	}
	v.screen.MoveUp(1)
}

// decAlignmentTest fills the screen with 'E' (DECALN).
func (v *VTE) decAlignmentTest() {
	cols, rows := v.screen.Size()
	e := v.screen.symbols.Intern('E', nil)
	for y := 0; y < rows; y++ {
		v.screen.MoveTo(y, 0)
		for x := 0; x < cols; x++ {
			v.screen.WriteSymbol(e, 1)
		}
	}
	v.screen.MoveTo(0, 0)
}

// fullReset implements RIS: reset modes, charsets, and the screen itself.
func (v *VTE) fullReset() {
	v.screen.Reset()
	v.charsets = newCharsetState()
	v.charsets.designate(G1, CharsetDECSpecialGraphics)
	v.appCursorKeys = false
	v.appKeypad = false
	v.bracketedPaste = false
	v.mouseMode = mouseOff
	v.mouseSGR = false
	v.localEcho = false
	v.title = ""
	v.titleStack = nil
	v.palette = clonePalette(DefaultPalette)
}
