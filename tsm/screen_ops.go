package tsm

// WriteSymbol places sym (of the given display width) at the cursor,
// advancing the cursor and handling autowrap. width should be
// 0 for a zero-width combining mark, which instead folds onto the previous
// cell's Symbol via the Screen's SymbolTable.
func (s *Screen) WriteSymbol(sym Symbol, width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.bumpAge()

	if width == 0 {
		s.foldCombining(sym, age)
		return
	}

	if s.wrapPending {
		s.lineFeedLocked(age)
		s.wrapPending = false
	}

	c := s.active.cell(s.cursorRow, s.cursorCol)
	if c != nil {
		*c = Cell{Symbol: sym, Width: width, Attr: s.attr, Age: age}
		s.active.lines[s.cursorRow].age = age
	}

	if s.cursorCol+width >= s.cols {
		if s.autowrap {
			s.active.lines[s.cursorRow].wrapped = true
			s.wrapPending = true
			s.cursorCol = s.cols - 1
		} else {
			s.cursorCol = s.cols - width
		}
	} else {
		s.cursorCol += width
	}
}

// foldCombining appends a zero-width mark onto the cell immediately behind
// the cursor, re-interning its Symbol.
func (s *Screen) foldCombining(mark Symbol, age uint64) {
	col := s.cursorCol - 1
	if s.wrapPending {
		col = s.cursorCol
	}
	if col < 0 {
		return
	}
	c := s.active.cell(s.cursorRow, col)
	if c == nil {
		return
	}
	base, comb := s.symbols.Decode(c.Symbol)
	markBase, _ := s.symbols.Decode(mark)
	c.Symbol = s.symbols.Intern(base, append(comb, markBase))
	c.Age = age
	s.active.lines[s.cursorRow].age = age
}

// Newline moves the cursor to the start of the next line, scrolling the
// active region up if already at the bottom margin.
func (s *Screen) Newline() {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.bumpAge()
	s.lineFeedLocked(age)
	s.wrapPending = false
}

func (s *Screen) lineFeedLocked(age uint64) {
	s.cursorCol = 0
	if s.cursorRow == s.marginBottom {
		s.active.scrollUp(s.marginTop, s.marginBottom, 1, s.eraseAttr(), age)
		return
	}
	if s.cursorRow < s.rows-1 {
		s.cursorRow++
	}
}

// MoveTo positions the cursor at (row, col), clamped to the screen (or to
// the scroll region when origin mode is on).
func (s *Screen) MoveTo(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	top, bottom := 0, s.rows-1
	if s.originMode {
		top, bottom = s.marginTop, s.marginBottom
		row += s.marginTop
	}
	if row < top {
		row = top
	}
	if row > bottom {
		row = bottom
	}
	if col < 0 {
		col = 0
	}
	if col >= s.cols {
		col = s.cols - 1
	}
	s.cursorRow, s.cursorCol = row, col
	s.wrapPending = false
}

// MoveToCol sets the cursor's column only, clamped to the screen, leaving
// the row untouched.
func (s *Screen) MoveToCol(col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if col < 0 {
		col = 0
	}
	if col >= s.cols {
		col = s.cols - 1
	}
	s.cursorCol = col
	s.wrapPending = false
}

// MoveUp, MoveDown, MoveLeft, MoveRight shift the cursor by n, clamped to
// the screen bounds; a cursor inside the scroll region stops at its
// margins. None of them scroll the buffer.
func (s *Screen) MoveUp(n int)    { s.move(-n, 0) }
func (s *Screen) MoveDown(n int)  { s.move(n, 0) }
func (s *Screen) MoveLeft(n int)  { s.move(0, -n) }
func (s *Screen) MoveRight(n int) { s.move(0, n) }

func (s *Screen) move(dr, dc int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, col := s.cursorRow+dr, s.cursorCol+dc
	top, bottom := 0, s.rows-1
	if s.cursorRow >= s.marginTop && s.cursorRow <= s.marginBottom {
		top, bottom = s.marginTop, s.marginBottom
	}
	if row < top {
		row = top
	}
	if row > bottom {
		row = bottom
	}
	if col < 0 {
		col = 0
	}
	if col >= s.cols {
		col = s.cols - 1
	}
	s.cursorRow, s.cursorCol = row, col
	s.wrapPending = false
}

// TabRight advances the cursor to the next tab stop, or the last column if
// none remain.
func (s *Screen) TabRight(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		next := -1
		for c := s.cursorCol + 1; c < s.cols; c++ {
			if s.active.tabstops[c] {
				next = c
				break
			}
		}
		if next < 0 {
			s.cursorCol = s.cols - 1
			break
		}
		s.cursorCol = next
	}
}

// TabLeft retreats the cursor to the previous tab stop, or column 0.
func (s *Screen) TabLeft(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		prev := -1
		for c := s.cursorCol - 1; c >= 0; c-- {
			if s.active.tabstops[c] {
				prev = c
				break
			}
		}
		if prev < 0 {
			s.cursorCol = 0
			break
		}
		s.cursorCol = prev
	}
}

// SetTabstop marks the current column as a tab stop.
func (s *Screen) SetTabstop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.tabstops[s.cursorCol] = true
}

// ClearTabstop clears the tab stop at the current column.
func (s *Screen) ClearTabstop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.tabstops[s.cursorCol] = false
}

// ClearAllTabstops removes every tab stop in the active buffer.
func (s *Screen) ClearAllTabstops() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.active.tabstops {
		s.active.tabstops[i] = false
	}
}

// InsertLines inserts n blank lines at the cursor row within the scroll
// region, pushing lines below down and off the bottom margin.
func (s *Screen) InsertLines(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursorRow < s.marginTop || s.cursorRow > s.marginBottom {
		return
	}
	age := s.bumpAge()
	s.active.scrollDown(s.cursorRow, s.marginBottom, n, s.eraseAttr(), age)
}

// DeleteLines removes n lines at the cursor row within the scroll region,
// pulling lines below up.
func (s *Screen) DeleteLines(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursorRow < s.marginTop || s.cursorRow > s.marginBottom {
		return
	}
	age := s.bumpAge()
	region := s.marginBottom - s.cursorRow + 1
	if n > region {
		n = region
	}
	copy(s.active.lines[s.cursorRow:s.marginBottom+1-n], s.active.lines[s.cursorRow+n:s.marginBottom+1])
	for i := s.marginBottom + 1 - n; i <= s.marginBottom; i++ {
		s.active.lines[i] = newLine(s.cols, s.eraseAttr(), age)
	}
}

// InsertChars shifts the cells from the cursor to the end of the line right
// by n, dropping cells pushed past the last column.
func (s *Screen) InsertChars(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.bumpAge()
	cells := s.active.lines[s.cursorRow].cells
	if n > s.cols-s.cursorCol {
		n = s.cols - s.cursorCol
	}
	end := s.cols - n
	if end < s.cursorCol {
		end = s.cursorCol
	}
	copy(cells[s.cursorCol+n:], cells[s.cursorCol:end])
	attr := s.eraseAttr()
	for i := s.cursorCol; i < s.cursorCol+n && i < s.cols; i++ {
		cells[i] = blankCell(attr, age)
	}
	s.active.lines[s.cursorRow].age = age
}

// DeleteChars removes n cells at the cursor, shifting the remainder of the
// line left and filling the vacated tail with blanks.
func (s *Screen) DeleteChars(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.bumpAge()
	cells := s.active.lines[s.cursorRow].cells
	if n > s.cols-s.cursorCol {
		n = s.cols - s.cursorCol
	}
	copy(cells[s.cursorCol:], cells[s.cursorCol+n:])
	attr := s.eraseAttr()
	for i := s.cols - n; i < s.cols; i++ {
		cells[i] = blankCell(attr, age)
	}
	s.active.lines[s.cursorRow].age = age
}

// ScrollUp scrolls the scroll region up by n lines (SU).
func (s *Screen) ScrollUp(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.bumpAge()
	s.active.scrollUp(s.marginTop, s.marginBottom, n, s.eraseAttr(), age)
}

// ScrollDown scrolls the scroll region down by n lines (SD).
func (s *Screen) ScrollDown(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.bumpAge()
	s.active.scrollDown(s.marginTop, s.marginBottom, n, s.eraseAttr(), age)
}

// EraseChars blanks n cells starting at the cursor without shifting the
// remainder of the line (ECH, distinct from DeleteChars).
func (s *Screen) EraseChars(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.bumpAge()
	cells := s.active.lines[s.cursorRow].cells
	end := s.cursorCol + n
	if end > s.cols {
		end = s.cols
	}
	attr := s.eraseAttr()
	for i := s.cursorCol; i < end; i++ {
		cells[i] = blankCell(attr, age)
	}
	s.active.lines[s.cursorRow].age = age
}

// EraseLine clears part or all of the cursor's row per mode. protect
// restricts the erase to unprotected cells (DECSEL, CSI ? K).
func (s *Screen) EraseLine(mode EraseMode, protect bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.bumpAge()
	s.eraseLineLocked(s.cursorRow, mode, age, protect)
}

func (s *Screen) eraseLineLocked(row int, mode EraseMode, age uint64, protect bool) {
	cells := s.active.lines[row].cells
	from, to := 0, s.cols
	switch mode {
	case EraseToEnd:
		from = s.cursorCol
	case EraseToStart:
		to = s.cursorCol + 1
	}
	if row != s.cursorRow {
		from, to = 0, s.cols
	}
	attr := s.eraseAttr()
	for i := from; i < to; i++ {
		if protect && cells[i].Attr.Has(AttrProtected) {
			continue
		}
		cells[i] = blankCell(attr, age)
	}
	s.active.lines[row].age = age
}

// EraseScreen clears part or all of the screen per mode. protect
// restricts the erase to unprotected cells (DECSED, CSI ? J).
func (s *Screen) EraseScreen(mode EraseMode, protect bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.bumpAge()
	switch mode {
	case EraseToEnd:
		s.eraseLineLocked(s.cursorRow, EraseToEnd, age, protect)
		for r := s.cursorRow + 1; r < s.rows; r++ {
			s.eraseLineLocked(r, EraseAll, age, protect)
		}
	case EraseToStart:
		s.eraseLineLocked(s.cursorRow, EraseToStart, age, protect)
		for r := 0; r < s.cursorRow; r++ {
			s.eraseLineLocked(r, EraseAll, age, protect)
		}
	case EraseAll:
		for r := 0; r < s.rows; r++ {
			s.eraseLineLocked(r, EraseAll, age, protect)
		}
	}
}
