package tsm

// Draw iterates every cell of the active (or scrolled-into-history) view in
// scan order, invoking cellFn for each one.
// prepareFn runs once before the pass and renderFn once after; both may be
// nil. ctx is passed through to all three callbacks unchanged, letting a
// caller thread render-target state through without closures over Screen
// internals.
func (s *Screen) Draw(prepareFn DrawPrepareFunc, cellFn DrawCellFunc, renderFn DrawRenderFunc, ctx any) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if prepareFn != nil {
		prepareFn(ctx)
	}

	for y := 0; y < s.rows; y++ {
		l := s.active.viewLine(y)
		for x := 0; x < len(l.cells); x++ {
			c := l.cells[x]
			attr := c.Attr
			if s.inverse {
				attr.Flags ^= AttrInverse
			}
			if cellFn != nil {
				cellFn(x, y, c.Symbol, c.Width, attr, c.Age, ctx)
			}
		}
	}

	if renderFn != nil {
		renderFn(ctx)
	}
}

// CursorCell returns the cell currently under the cursor and whether it
// should be rendered (cursor visible and view not scrolled into history).
func (s *Screen) CursorCell() (row, col int, visible bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursorRow, s.cursorCol, s.cursorVisible && s.active.sbView == 0
}

// Symbols returns the SymbolTable backing this Screen's cells, for
// consumers that need to decode a Symbol back into runes.
func (s *Screen) Symbols() *SymbolTable {
	return s.symbols
}

// Age returns the Screen's current monotonic age counter. It advances on
// operations that change cell contents (writes, erases, insert/delete,
// scrolls, resize, reset, clearing alternate-screen entry); cursor moves,
// attribute and mode changes such as SetInverse, and scrollback view
// changes leave it unchanged.
func (s *Screen) Age() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.age
}
