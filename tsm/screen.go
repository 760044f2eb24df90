package tsm

import "sync"

// EraseMode selects how much of a line or screen an erase operation clears.
type EraseMode int

const (
	EraseToEnd EraseMode = iota
	EraseToStart
	EraseAll
)

// ScreenOption configures a Screen at construction time, mirroring the
// teacher library's functional-options constructors.
type ScreenOption func(*Screen)

// WithLogger routes malformed-input and diagnostic messages to l instead of
// discarding them.
func WithLogger(l Logger) ScreenOption {
	return func(s *Screen) { s.logger = l }
}

// WithSymbols points the Screen at a SymbolTable other than DefaultSymbols,
// useful for tests that want a fresh intern space.
func WithSymbols(t *SymbolTable) ScreenOption {
	return func(s *Screen) { s.symbols = t }
}

// WithScrollback sets the maximum number of lines the primary buffer
// retains once they scroll off the top. 0 disables scrollback. The
// alternate buffer never keeps scrollback.
func WithScrollback(lines int) ScreenOption {
	return func(s *Screen) { s.scrollbackCap = lines }
}

// Screen is the character grid: cursor, scroll region, tab stops, the
// primary/alternate buffer pair, and age-based dirty tracking.
type Screen struct {
	mu sync.RWMutex

	logger  Logger
	symbols *SymbolTable

	cols, rows    int
	scrollbackCap int

	primary   *buffer
	alternate *buffer
	active    *buffer
	altActive bool

	cursorRow, cursorCol int
	cursorVisible        bool
	cursorStyle          int
	wrapPending          bool

	attr Attr

	marginTop, marginBottom int
	originMode              bool
	insertMode              bool
	autowrap                bool
	inverse                 bool
	bce                     bool

	age uint64
}

// savedState is DECSC/DECRC's save slot: cursor position, attributes,
// GL/GR charset slots, auto-wrap, and origin mode. One lives on each
// buffer, so switching into the alternate screen and saving there never
// clobbers whatever the primary screen separately saved.
type savedState struct {
	row, col   int
	attr       Attr
	originMode bool
	autowrap   bool
	gl, gr     CharsetSlot
	valid      bool
}

// NewScreen creates a Screen with the given dimensions.
// Defaults: autowrap on, origin mode off, cursor visible, no scrollback cap
// override, DefaultSymbols, NoopLogger.
func NewScreen(cols, rows int, opts ...ScreenOption) *Screen {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s := &Screen{
		logger:        NoopLogger{},
		symbols:       DefaultSymbols,
		cols:          cols,
		rows:          rows,
		scrollbackCap: 1000,
		cursorVisible: true,
		autowrap:      true,
		bce:           true,
		marginTop:     0,
		marginBottom:  rows - 1,
		attr:          DefaultAttr,
	}
	for _, o := range opts {
		o(s)
	}
	s.primary = newBuffer(rows, cols, s.scrollbackCap)
	s.alternate = newBuffer(rows, cols, 0)
	s.active = s.primary
	return s
}

func (s *Screen) bumpAge() uint64 {
	s.age++
	return s.age
}

// Size returns the current (cols, rows).
func (s *Screen) Size() (cols, rows int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cols, s.rows
}

// Resize changes the grid dimensions, clamping the cursor and scroll region
// to stay in bounds.
func (s *Screen) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.bumpAge()
	s.primary.resize(rows, cols, s.attr, age)
	s.alternate.resize(rows, cols, s.attr, age)
	s.cols, s.rows = cols, rows
	s.marginTop = 0
	s.marginBottom = rows - 1
	if s.cursorRow >= rows {
		s.cursorRow = rows - 1
	}
	if s.cursorCol >= cols {
		s.cursorCol = cols - 1
	}
	s.wrapPending = false
}

// Reset restores default attributes, cursor position, scroll region, tab
// stops, and clears both buffers.
func (s *Screen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bumpAge()
	s.attr = DefaultAttr
	s.cursorRow, s.cursorCol = 0, 0
	s.cursorVisible = true
	s.wrapPending = false
	s.originMode = false
	s.insertMode = false
	s.autowrap = true
	s.marginTop, s.marginBottom = 0, s.rows-1
	s.inverse = false
	s.primary = newBuffer(s.rows, s.cols, s.scrollbackCap)
	s.alternate = newBuffer(s.rows, s.cols, 0)
	s.active = s.primary
	s.altActive = false
}

// CurrentAttr returns the attribute template new writes will use.
func (s *Screen) CurrentAttr() Attr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attr
}

// SetAttr replaces the attribute template used by subsequent writes
// (driven by SGR in the interpreter).
func (s *Screen) SetAttr(a Attr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attr = a
}

// CursorPosition returns the 0-based (row, col).
func (s *Screen) CursorPosition() (row, col int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursorRow, s.cursorCol
}

// SetCursorVisible toggles DECTCEM.
func (s *Screen) SetCursorVisible(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorVisible = v
}

// CursorVisible reports DECTCEM state.
func (s *Screen) CursorVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursorVisible
}

// SetOriginMode toggles DECOM: when on, move_to coordinates are relative to
// the scroll region rather than the whole screen.
func (s *Screen) SetOriginMode(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.originMode = v
	s.cursorRow, s.cursorCol = s.homeRow(), 0
}

func (s *Screen) homeRow() int {
	if s.originMode {
		return s.marginTop
	}
	return 0
}

// SetInsertMode toggles IRM.
func (s *Screen) SetInsertMode(v bool) { s.mu.Lock(); s.insertMode = v; s.mu.Unlock() }

// SetAutowrap toggles DECAWM.
func (s *Screen) SetAutowrap(v bool) { s.mu.Lock(); s.autowrap = v; s.mu.Unlock() }

// SetInverse toggles DECSCNM screen-wide reverse video.
func (s *Screen) SetInverse(v bool) { s.mu.Lock(); s.inverse = v; s.mu.Unlock() }

// Inverse reports DECSCNM state.
func (s *Screen) Inverse() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inverse
}

// SetBackColorErase toggles BCE: whether erase operations paint with the
// live SGR background (on, the common xterm default) or with
// DefaultAttr's background (off, plain VT100 behavior).
func (s *Screen) SetBackColorErase(v bool) { s.mu.Lock(); s.bce = v; s.mu.Unlock() }

// BackColorErase reports the current BCE setting.
func (s *Screen) BackColorErase() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bce
}

// eraseAttr is the attribute template erase operations fill blanked cells
// with: the live SGR attribute under BCE, DefaultAttr otherwise.
func (s *Screen) eraseAttr() Attr {
	if s.bce {
		return s.attr
	}
	return DefaultAttr
}

// SetScrollRegion sets the DECSTBM top/bottom margins (0-based, inclusive).
// An invalid region (top >= bottom) is ignored.
func (s *Screen) SetScrollRegion(top, bottom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if top < 0 {
		top = 0
	}
	if bottom >= s.rows {
		bottom = s.rows - 1
	}
	if top >= bottom {
		return
	}
	s.marginTop, s.marginBottom = top, bottom
	s.cursorRow, s.cursorCol = s.homeRow(), 0
}

// ScrollRegion returns the current top/bottom margins.
func (s *Screen) ScrollRegion() (top, bottom int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.marginTop, s.marginBottom
}

// SaveCursor stores cursor position, attributes, origin mode, auto-wrap,
// and the GL/GR charset slots for a later RestoreCursor (DECSC). The slot
// belongs to the active buffer, so saving in the alternate screen never
// touches what the primary screen has saved.
func (s *Screen) SaveCursor(gl, gr CharsetSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.saved = savedState{
		row: s.cursorRow, col: s.cursorCol, attr: s.attr,
		originMode: s.originMode, autowrap: s.autowrap,
		gl: gl, gr: gr, valid: true,
	}
}

// RestoreCursor restores the active buffer's previously saved cursor state
// (DECRC), returning the saved GL/GR slots for the caller to re-apply to
// its own charset state. ok is false if nothing was ever saved.
func (s *Screen) RestoreCursor() (gl, gr CharsetSlot, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := s.active.saved
	if !saved.valid {
		return 0, 0, false
	}
	s.cursorRow, s.cursorCol = saved.row, saved.col
	s.attr = saved.attr
	s.originMode = saved.originMode
	s.autowrap = saved.autowrap
	s.wrapPending = false
	return saved.gl, saved.gr, true
}

// SetAltScreen switches between the primary and alternate buffer (modes
// 47/1047/1049). clear additionally blanks the alternate
// buffer on entry, matching mode 1049's semantics.
func (s *Screen) SetAltScreen(on, clear bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on == s.altActive {
		return
	}
	s.altActive = on
	if on {
		if clear {
			s.bumpAge()
			s.alternate = newBuffer(s.rows, s.cols, 0)
		}
		s.active = s.alternate
	} else {
		s.active = s.primary
	}
}
