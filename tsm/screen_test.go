package tsm

import "testing"

func cellRune(t *testing.T, s *Screen, row, col int) rune {
	t.Helper()
	c := s.active.cell(row, col)
	if c == nil {
		t.Fatalf("cell (%d,%d) out of bounds", row, col)
	}
	r, _ := s.symbols.Decode(c.Symbol)
	return r
}

func TestScreenWriteAdvancesCursor(t *testing.T) {
	s := NewScreen(10, 3, WithSymbols(NewSymbolTable()))
	s.WriteSymbol(s.symbols.Intern('a', nil), 1)
	row, col := s.CursorPosition()
	if row != 0 || col != 1 {
		t.Fatalf("cursor at (%d,%d), want (0,1)", row, col)
	}
	if r := cellRune(t, s, 0, 0); r != 'a' {
		t.Fatalf("cell (0,0) = %q, want 'a'", r)
	}
}

func TestScreenAutowrap(t *testing.T) {
	s := NewScreen(3, 2, WithSymbols(NewSymbolTable()))
	for _, r := range "abcd" {
		s.WriteSymbol(s.symbols.Intern(r, nil), 1)
	}
	if r := cellRune(t, s, 1, 0); r != 'd' {
		t.Fatalf("expected wrap onto row 1, got %q", r)
	}
}

func TestScreenNewlineScrollsAtBottomMargin(t *testing.T) {
	s := NewScreen(5, 2, WithSymbols(NewSymbolTable()))
	s.WriteSymbol(s.symbols.Intern('1', nil), 1)
	s.Newline()
	s.WriteSymbol(s.symbols.Intern('2', nil), 1)
	s.Newline() // at bottom margin now, should scroll
	row, _ := s.CursorPosition()
	if row != 1 {
		t.Fatalf("cursor row after scroll = %d, want 1", row)
	}
	if r := cellRune(t, s, 0, 0); r != '2' {
		t.Fatalf("row 0 after scroll = %q, want '2'", r)
	}
}

func TestScreenResizeShrinkPushesScrollback(t *testing.T) {
	s := NewScreen(5, 4, WithScrollback(10), WithSymbols(NewSymbolTable()))
	s.Resize(5, 2)
	if got := s.active.scrollbackLen(); got == 0 {
		t.Fatalf("expected scrollback entries after shrink, got 0")
	}
}

func TestScreenEraseLineToEnd(t *testing.T) {
	s := NewScreen(5, 1, WithSymbols(NewSymbolTable()))
	for _, r := range "abcde" {
		s.WriteSymbol(s.symbols.Intern(r, nil), 1)
	}
	s.MoveTo(0, 2)
	s.EraseLine(EraseToEnd, false)
	if r := cellRune(t, s, 0, 2); r != ' ' {
		t.Fatalf("cell (0,2) = %q, want blank", r)
	}
	if r := cellRune(t, s, 0, 0); r != 'a' {
		t.Fatalf("cell (0,0) = %q, want 'a' (unaffected)", r)
	}
}

func TestScreenInsertDeleteChars(t *testing.T) {
	s := NewScreen(5, 1, WithSymbols(NewSymbolTable()))
	for _, r := range "abcde" {
		s.WriteSymbol(s.symbols.Intern(r, nil), 1)
	}
	s.MoveTo(0, 1)
	s.InsertChars(2)
	if r := cellRune(t, s, 0, 1); r != ' ' {
		t.Fatalf("expected blank at col1 after insert, got %q", r)
	}
	if r := cellRune(t, s, 0, 3); r != 'b' {
		t.Fatalf("expected shifted 'b' at col3, got %q", r)
	}

	s.MoveTo(0, 0)
	s.DeleteChars(1)
	if r := cellRune(t, s, 0, 0); r != ' ' {
		t.Fatalf("expected blank at col0 after delete, got %q", r)
	}
}

func TestScreenAltScreenRoundTrip(t *testing.T) {
	s := NewScreen(5, 2, WithSymbols(NewSymbolTable()))
	s.WriteSymbol(s.symbols.Intern('p', nil), 1)
	s.SetAltScreen(true, true)
	s.WriteSymbol(s.symbols.Intern('a', nil), 1)
	if r := cellRune(t, s, 0, 0); r != 'a' {
		t.Fatalf("alt screen cell = %q, want 'a'", r)
	}
	s.SetAltScreen(false, false)
	if r := cellRune(t, s, 0, 0); r != 'p' {
		t.Fatalf("primary screen cell after switch back = %q, want 'p'", r)
	}
}

func TestScreenTabStops(t *testing.T) {
	s := NewScreen(20, 1, WithSymbols(NewSymbolTable()))
	s.TabRight(1)
	_, col := s.CursorPosition()
	if col != 8 {
		t.Fatalf("tab landed at col %d, want 8", col)
	}
	s.TabLeft(1)
	_, col = s.CursorPosition()
	if col != 0 {
		t.Fatalf("tab-left landed at col %d, want 0", col)
	}
}

func TestScreenInverseFlipsDrawnAttr(t *testing.T) {
	s := NewScreen(3, 1, WithSymbols(NewSymbolTable()))
	s.WriteSymbol(s.symbols.Intern('x', nil), 1)
	s.SetInverse(true)
	var gotAttr Attr
	s.Draw(nil, func(x, y int, sym Symbol, width int, attr Attr, age uint64, ctx any) {
		if x == 0 {
			gotAttr = attr
		}
	}, nil, nil)
	if !gotAttr.Has(AttrInverse) {
		t.Fatalf("expected AttrInverse set on drawn cell under screen-wide inverse")
	}
}

func TestScreenBackColorErase(t *testing.T) {
	s := NewScreen(5, 1, WithSymbols(NewSymbolTable()))
	bg := Attr{Foreground: DefaultColor, Background: Color{Code: ColorCode(5)}}
	s.SetAttr(bg)
	s.SetBackColorErase(false)
	s.EraseLine(EraseAll, false)
	c := s.active.cell(0, 0)
	if c.Attr.Background.Code != DefaultColor.Code {
		t.Fatalf("expected DefaultAttr background without BCE, got %+v", c.Attr.Background)
	}

	s.SetAttr(bg)
	s.SetBackColorErase(true)
	s.EraseLine(EraseAll, false)
	c = s.active.cell(0, 0)
	if c.Attr.Background.Code != ColorCode(5) {
		t.Fatalf("expected live SGR background under BCE, got %+v", c.Attr.Background)
	}
}

func TestScreenSaveRestoreCursor(t *testing.T) {
	s := NewScreen(10, 3, WithSymbols(NewSymbolTable()))
	s.MoveTo(1, 1)
	s.SaveCursor(G0, G0)
	s.MoveTo(2, 2)
	s.RestoreCursor()
	row, col := s.CursorPosition()
	if row != 1 || col != 1 {
		t.Fatalf("restored cursor at (%d,%d), want (1,1)", row, col)
	}
}
