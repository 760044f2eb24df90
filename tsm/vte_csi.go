package tsm

import "fmt"

// primaryDAReply is the Primary Device Attributes response: VT220 with
// 132-column (1), printer-port (6), selective-erase (9), and national
// replacement charset (15) options advertised.
var primaryDAReply = []byte("\x1b[?60;1;6;9;15c")

// secondaryDAReply is the Secondary Device Attributes response: terminal
// type 1 (VT220), firmware version 1, no ROM cartridge.
var secondaryDAReply = []byte("\x1b[>1;1;0c")

// paramAt returns params[i] if present, not the "omitted" sentinel (-1)
// and not zero, else def. Every CSI handler uses this instead of indexing params
// directly so short/omitted parameter lists behave like ECMA-48 defaults.
func paramAt(params []int, i, def int) int {
	if i >= len(params) || params[i] < 0 || params[i] == 0 {
		return def
	}
	return params[i]
}

// CsiDispatch handles a completed CSI sequence.
func (v *VTE) CsiDispatch(params []int, inters []byte, private byte, final byte) {
	if len(inters) > 0 && !(final == 'q' && len(inters) == 1 && inters[0] == '"') {
		v.logf(LogDebug, "ignoring CSI intermediates %q before final %q", inters, final)
	}

	switch final {
	case 'A':
		v.screen.MoveUp(paramAt(params, 0, 1))
	case 'B':
		v.screen.MoveDown(paramAt(params, 0, 1))
	case 'C':
		v.screen.MoveRight(paramAt(params, 0, 1))
	case 'D':
		v.screen.MoveLeft(paramAt(params, 0, 1))
	case 'E':
		v.screen.MoveDown(paramAt(params, 0, 1))
		v.screen.MoveToCol(0)
	case 'F':
		v.screen.MoveUp(paramAt(params, 0, 1))
		v.screen.MoveToCol(0)
	case 'G', '`':
		v.screen.MoveToCol(paramAt(params, 0, 1) - 1)
	case 'H', 'f':
		row := paramAt(params, 0, 1) - 1
		col := paramAt(params, 1, 1) - 1
		v.screen.MoveTo(row, col)
	case 'I':
		v.screen.TabRight(paramAt(params, 0, 1))
	case 'Z':
		v.screen.TabLeft(paramAt(params, 0, 1))
	case 'J':
		v.screen.EraseScreen(eraseModeFrom(paramAt(params, 0, 0)), private == '?')
	case 'K':
		v.screen.EraseLine(eraseModeFrom(paramAt(params, 0, 0)), private == '?')
	case 'L':
		v.screen.InsertLines(paramAt(params, 0, 1))
	case 'M':
		v.screen.DeleteLines(paramAt(params, 0, 1))
	case 'P':
		v.screen.DeleteChars(paramAt(params, 0, 1))
	case '@':
		v.screen.InsertChars(paramAt(params, 0, 1))
	case 'X':
		v.screen.EraseChars(paramAt(params, 0, 1))
	case 'S':
		v.screen.ScrollUp(paramAt(params, 0, 1))
	case 'T':
		v.screen.ScrollDown(paramAt(params, 0, 1))
	case 'd':
		row := paramAt(params, 0, 1) - 1
		_, col := v.screen.CursorPosition()
		v.screen.MoveTo(row, col)
	case 'r':
		top := paramAt(params, 0, 1) - 1
		_, rows := v.screen.Size()
		bottom := paramAt(params, 1, rows) - 1
		v.screen.SetScrollRegion(top, bottom)
	case 's':
		v.screen.SaveCursor(v.charsets.gl, v.charsets.gr)
	case 'u':
		if gl, gr, ok := v.screen.RestoreCursor(); ok {
			v.charsets.gl, v.charsets.gr = gl, gr
		}
	case 'h':
		v.setModes(params, private, true)
	case 'l':
		v.setModes(params, private, false)
	case 'm':
		v.handleSGR(params)
	case 'n':
		v.deviceStatusReport(paramAt(params, 0, 0))
	case 'c':
		switch private {
		case 0:
			v.reply(primaryDAReply)
		case '>':
			v.reply(secondaryDAReply)
		}
	case 'q':
		if len(inters) == 1 && inters[0] == '"' {
			v.decsca(paramAt(params, 0, 0))
		}
	case 't':
		// Window manipulation (resize/report/title stack depth): no host
		// window to manipulate, silently acknowledged.
	default:
		v.logf(LogDebug, "unknown CSI final=%q private=%q params=%v", final, private, params)
	}
}

func eraseModeFrom(n int) EraseMode {
	switch n {
	case 1:
		return EraseToStart
	case 2, 3:
		return EraseAll
	default:
		return EraseToEnd
	}
}

// deviceStatusReport answers DSR.
func (v *VTE) deviceStatusReport(n int) {
	switch n {
	case 5:
		v.reply([]byte("\x1b[0n"))
	case 6:
		row, col := v.screen.CursorPosition()
		v.reply([]byte(fmt.Sprintf("\x1b[%d;%dR", row+1, col+1)))
	}
}

// setModes implements SM/RM and their DEC-private (CSI ?) variants.
func (v *VTE) setModes(params []int, private byte, on bool) {
	for _, p := range params {
		if p < 0 {
			continue
		}
		if private == '?' {
			v.setDecMode(p, on)
		} else {
			v.setAnsiMode(p, on)
		}
	}
}

func (v *VTE) setDecMode(mode int, on bool) {
	switch mode {
	case 1: // DECCKM
		v.appCursorKeys = on
	case 3: // DECCOLM 80/132 columns: accepted, resize left to the embedder
	case 5: // DECSCNM
		v.screen.SetInverse(on)
	case 6: // DECOM
		v.screen.SetOriginMode(on)
	case 7: // DECAWM
		v.screen.SetAutowrap(on)
	case 12: // SRM (send/receive mode): reset enables local echo
		v.localEcho = !on
	case 25: // DECTCEM
		v.screen.SetCursorVisible(on)
	case 47, 1047:
		v.screen.SetAltScreen(on, mode == 1047 && !on)
	case 1048:
		if on {
			v.screen.SaveCursor(v.charsets.gl, v.charsets.gr)
		} else if gl, gr, ok := v.screen.RestoreCursor(); ok {
			v.charsets.gl, v.charsets.gr = gl, gr
		}
	case 1049:
		if on {
			v.screen.SaveCursor(v.charsets.gl, v.charsets.gr)
			v.screen.SetAltScreen(true, true)
		} else {
			v.screen.SetAltScreen(false, false)
			if gl, gr, ok := v.screen.RestoreCursor(); ok {
				v.charsets.gl, v.charsets.gr = gl, gr
			}
		}
	case 1000:
		v.mouseMode = ifMouse(on, mouseX10)
	case 1002:
		v.mouseMode = ifMouse(on, mouseButtonEvent)
	case 1003:
		v.mouseMode = ifMouse(on, mouseAnyEvent)
	case 1006:
		v.mouseSGR = on
	case 1004:
		v.focusEvents = on
	case 2004:
		v.bracketedPaste = on
	default:
		v.logf(LogDebug, "unknown DEC private mode %d", mode)
	}
}

func ifMouse(on bool, m mouseMode) mouseMode {
	if on {
		return m
	}
	return mouseOff
}

// decsca implements DECSCA (CSI Ps " q): sets or clears the protected
// attribute on the current SGR template, so subsequent writes land as
// protected cells that DECSED/DECSEL (CSI ? J / CSI ? K) will skip.
func (v *VTE) decsca(mode int) {
	a := v.screen.CurrentAttr()
	if mode == 1 {
		a.Flags |= AttrProtected
	} else {
		a.Flags &^= AttrProtected
	}
	v.screen.SetAttr(a)
}

func (v *VTE) setAnsiMode(mode int, on bool) {
	switch mode {
	case 4: // IRM
		v.screen.SetInsertMode(on)
	case 20: // LNM
		v.lnm = on
	default:
		v.logf(LogDebug, "unknown ANSI mode %d", mode)
	}
}
