package tsm

import "fmt"

// Keysym identifies a non-printable key TranslateKey knows how to encode.
// Printable keys are carried via KeyEvent.Rune instead.
type Keysym int

const (
	KeyNone Keysym = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyTab
	KeyEnter
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPDecimal
	KeyKPComma
	KeyKPAdd
	KeyKPSubtract
	KeyKPMultiply
	KeyKPDivide
	KeyKPEnter
)

// Modifiers are the modifier keys held alongside a KeyEvent.
type Modifiers int

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// KeyEvent is one keyboard input to translate into host bytes.
// Exactly one of Keysym or Rune should be set: Keysym for the named keys
// above, Rune for any printable character.
type KeyEvent struct {
	Keysym Keysym
	Rune   rune
	Mods   Modifiers
}

// TranslateKey converts a KeyEvent into the bytes vte's current mode state
// says a host expects to read, following these rules:
//  1. Ctrl+letter produces the corresponding C0 control code.
//  2. Arrow/Home/End keys use the application-cursor-keys (DECCKM) encoding
//     when enabled, else the normal-mode CSI encoding.
//  3. The numeric keypad's digits, decimal point, operators, and Enter
//     switch to the DECKPAM application encoding (ESC O <final>) when
//     app keypad mode is on, else they send their normal-mode character.
//  4. Alt adds an ESC prefix (xterm "meta sends escape" convention),
//     regardless of whether the key is a rune or a named Keysym.
//  5. Function keys F1-F4 use SS3 (\x1bO) encoding; F5 and above use CSI
//     with a numeric final.
//  6. Printable runes pass through as their UTF-8 encoding, modified only
//     by Ctrl (rule 1) and Alt (rule 4). Enter sends a bare CR normally,
//     or CR LF under LNM (line feed/new line mode).
//
// ok is false when the event carries neither a known Keysym nor a rune.
func TranslateKey(v *VTE, ev KeyEvent) ([]byte, bool) {
	var out []byte

	if ev.Keysym == KeyNone && ev.Rune == 0 {
		return nil, false
	}

	if ev.Keysym == KeyNone {
		out = encodeRune(ev)
	} else {
		out = encodeKeysym(v, ev)
	}
	if out == nil {
		return nil, false
	}

	if ev.Mods&ModAlt != 0 {
		out = append([]byte{0x1B}, out...)
	}
	return out, true
}

func encodeRune(ev KeyEvent) []byte {
	r := ev.Rune
	if ev.Mods&ModCtrl != 0 {
		c := ctrlEncode(r)
		if c < 0 {
			return nil
		}
		return []byte{byte(c)}
	}
	return []byte(string(r))
}

// ctrlEncode maps a letter to its C0 control code (Ctrl-A..Ctrl-Z -> 0x01-0x1A,
// plus a handful of punctuation keys), returning -1 if r has no Ctrl mapping.
func ctrlEncode(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 1
	case r == '[':
		return 0x1B
	case r == '\\':
		return 0x1C
	case r == ']':
		return 0x1D
	case r == '^' || r == '~':
		return 0x1E
	case r == '_' || r == '?':
		return 0x1F
	case r == ' ':
		return 0x00
	default:
		return -1
	}
}

func encodeKeysym(v *VTE, ev KeyEvent) []byte {
	app := v.AppCursorKeys()
	switch ev.Keysym {
	case KeyUp:
		return cursorSeq(app, 'A')
	case KeyDown:
		return cursorSeq(app, 'B')
	case KeyRight:
		return cursorSeq(app, 'C')
	case KeyLeft:
		return cursorSeq(app, 'D')
	case KeyHome:
		return cursorSeq(app, 'H')
	case KeyEnd:
		return cursorSeq(app, 'F')
	case KeyPageUp:
		return []byte("\x1b[5~")
	case KeyPageDown:
		return []byte("\x1b[6~")
	case KeyInsert:
		return []byte("\x1b[2~")
	case KeyDelete:
		return []byte("\x1b[3~")
	case KeyBackspace:
		return []byte{0x7F}
	case KeyTab:
		if ev.Mods&ModShift != 0 {
			return []byte("\x1b[Z")
		}
		return []byte{'\t'}
	case KeyEnter:
		return encodeEnter(v)
	case KeyEscape:
		return []byte{0x1B}
	case KeyF1, KeyF2, KeyF3, KeyF4:
		return []byte(fmt.Sprintf("\x1bO%c", "PQRS"[ev.Keysym-KeyF1]))
	case KeyF5:
		return []byte("\x1b[15~")
	case KeyF6:
		return []byte("\x1b[17~")
	case KeyF7:
		return []byte("\x1b[18~")
	case KeyF8:
		return []byte("\x1b[19~")
	case KeyF9:
		return []byte("\x1b[20~")
	case KeyF10:
		return []byte("\x1b[21~")
	case KeyF11:
		return []byte("\x1b[23~")
	case KeyF12:
		return []byte("\x1b[24~")
	case KeyKP0, KeyKP1, KeyKP2, KeyKP3, KeyKP4, KeyKP5, KeyKP6, KeyKP7, KeyKP8, KeyKP9:
		digit := byte(ev.Keysym - KeyKP0)
		if v.AppKeypad() {
			return []byte{0x1B, 'O', 'p' + digit}
		}
		return []byte{'0' + digit}
	case KeyKPDecimal:
		return keypadSeq(v, '.', 'n')
	case KeyKPComma:
		return keypadSeq(v, ',', 'l')
	case KeyKPSubtract:
		return keypadSeq(v, '-', 'm')
	case KeyKPMultiply:
		return keypadSeq(v, '*', 'j')
	case KeyKPDivide:
		return keypadSeq(v, '/', 'o')
	case KeyKPAdd:
		return keypadSeq(v, '+', 'k')
	case KeyKPEnter:
		if v.AppKeypad() {
			return []byte("\x1bOM")
		}
		return encodeEnter(v)
	default:
		return nil
	}
}

// keypadSeq picks the application-mode SS3 encoding (ESC O <final>) or the
// normal-mode literal character for a keypad separator key.
func keypadSeq(v *VTE, normal, final byte) []byte {
	if v.AppKeypad() {
		return []byte{0x1B, 'O', final}
	}
	return []byte{normal}
}

// encodeEnter sends a bare CR, or CR LF when LNM (line feed/new line mode)
// is active.
func encodeEnter(v *VTE) []byte {
	if v.LineFeedNewLine() {
		return []byte{'\r', '\n'}
	}
	return []byte{'\r'}
}

// cursorSeq picks the SS3 (application mode) or CSI (normal mode) encoding
// for an arrow/Home/End key.
func cursorSeq(app bool, final byte) []byte {
	if app {
		return []byte{0x1B, 'O', final}
	}
	return []byte{0x1B, '[', final}
}
