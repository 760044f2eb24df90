package tsm

import "sync"

// VTE (virtual terminal emulation) interprets a parsed byte stream against
// a Screen, and produces the host-bound replies some sequences require.
type VTE struct {
	mu sync.Mutex

	screen  *Screen
	parser  *Parser
	writer  WriteProvider
	logger  Logger
	palette *Palette

	charsets charsetState

	appCursorKeys  bool
	appKeypad      bool
	bracketedPaste bool
	mouseMode      mouseMode
	mouseSGR       bool
	focusEvents    bool
	lnm            bool
	localEcho      bool
	echoing        bool

	title      string
	titleStack []string

	dcsBuf   []byte
	dcsFinal byte
}

// mouseMode selects which mouse-tracking protocol, if any, is active.
type mouseMode int

const (
	mouseOff mouseMode = iota
	mouseX10
	mouseNormal
	mouseButtonEvent
	mouseAnyEvent
)

// VTEOption configures a VTE at construction time.
type VTEOption func(*VTE)

// WithWriter routes host-bound replies (DSR, DA, OSC queries) and the
// bytes sent by HandleKeyboard to w instead of discarding them.
func WithWriter(w WriteProvider) VTEOption {
	return func(v *VTE) { v.writer = w }
}

// WithVTELogger routes diagnostic messages to l.
func WithVTELogger(l Logger) VTEOption {
	return func(v *VTE) { v.logger = l }
}

// WithPalette sets the initial color palette. p is cloned, so
// mutating the VTE's working palette (OSC 4/10/11/104) never affects the
// caller's copy.
func WithPalette(p *Palette) VTEOption {
	return func(v *VTE) { v.palette = clonePalette(p) }
}

// NewVTE creates a VTE driving scr. Defaults: NoopWriter, NoopLogger, a
// private copy of DefaultPalette, DEC special graphics available in G1
// (common xterm default), app cursor keys and app keypad off.
func NewVTE(scr *Screen, opts ...VTEOption) *VTE {
	v := &VTE{
		screen:  scr,
		parser:  NewParser(),
		writer:  NoopWriter{},
		logger:  NoopLogger{},
		palette: clonePalette(DefaultPalette),
	}
	v.charsets = newCharsetState()
	v.charsets.designate(G1, CharsetDECSpecialGraphics)
	for _, o := range opts {
		o(v)
	}
	return v
}

// Screen returns the Screen this VTE drives.
func (v *VTE) Screen() *Screen { return v.screen }

// Palette returns the active color palette.
func (v *VTE) Palette() *Palette {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.palette
}

// SetPalette replaces the active color palette. p is cloned, so the
// VTE never mutates the caller's copy.
func (v *VTE) SetPalette(p *Palette) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.palette = clonePalette(p)
}

// Input feeds host bytes through the parser, dispatching each completed
// token against the Screen.
func (v *VTE) Input(data []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, b := range data {
		v.parser.Feed(b, v)
	}
}

// SetEightBitMode selects whether the parser treats bytes 0x80-0x9F as
// single-byte C1 controls (8-bit mode, e.g. 0x9B == CSI) or as part of the
// UTF-8 stream (7-bit mode, the default).
func (v *VTE) SetEightBitMode(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.parser.SetEightBit(on)
}

// LocalEcho reports whether send/receive mode (DEC private mode 12) has
// local echo enabled.
func (v *VTE) LocalEcho() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.localEcho
}

// LineFeedNewLine reports LNM (ANSI mode 20) state, consulted by
// TranslateKey to decide whether Enter sends a bare CR or CR LF.
func (v *VTE) LineFeedNewLine() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lnm
}

// HandleKeyboard translates ev, forwards the resulting bytes to the host,
// and, when local echo is active, feeds them straight back into the
// screen the way a real terminal echoes keystrokes without waiting for
// the host to bounce them back.
func (v *VTE) HandleKeyboard(ev KeyEvent) ([]byte, bool) {
	out, ok := TranslateKey(v, ev)
	if !ok {
		return nil, false
	}
	v.reply(out)
	if v.LocalEcho() {
		v.echoInput(out)
	}
	return out, true
}

// echoInput feeds b through the parser directly, guarded against
// reentrancy: a host or test harness that loops its own writes back into
// Input while an echo is already in flight would otherwise recurse
// without bound.
func (v *VTE) echoInput(b []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.echoing {
		return
	}
	v.echoing = true
	for _, c := range b {
		v.parser.Feed(c, v)
	}
	v.echoing = false
}

func (v *VTE) reply(b []byte) {
	if v.writer == nil {
		return
	}
	_, _ = v.writer.Write(b)
}

func (v *VTE) logf(level LogLevel, format string, args ...any) {
	if v.logger != nil {
		v.logger.Logf(level, format, args...)
	}
}

// AppCursorKeys reports DECCKM state, consulted by TranslateKey.
func (v *VTE) AppCursorKeys() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.appCursorKeys
}

// AppKeypad reports DECKPAM/DECKPNM state, consulted by TranslateKey.
func (v *VTE) AppKeypad() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.appKeypad
}

// BracketedPaste reports whether paste bracketing is enabled.
func (v *VTE) BracketedPaste() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.bracketedPaste
}

// Title returns the most recently set window title (OSC 0/2).
func (v *VTE) Title() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.title
}

// Print handles one decoded printable rune: charset translation, width
// computation, and placement on the Screen.
func (v *VTE) Print(r rune) {
	r = v.charsets.translate(r)
	w := runeWidth(r)
	sym := v.screen.symbols.Intern(r, nil)
	v.screen.WriteSymbol(sym, w)
}

// Execute handles a C0/C1 control code outside of any escape sequence.
func (v *VTE) Execute(b byte) {
	switch b {
	case 0x07: // BEL
	case 0x08: // BS
		v.screen.MoveLeft(1)
	case 0x09: // HT
		v.screen.TabRight(1)
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		v.screen.Newline()
	case 0x0D: // CR
		v.screen.MoveToCol(0)
	case 0x0E: // SO
		v.charsets.invoke(G1)
	case 0x0F: // SI
		v.charsets.invoke(G0)
	default:
		v.logf(LogDebug, "ignored control code 0x%02x", b)
	}
}
