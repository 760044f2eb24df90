package tsm

// AttrFlags are the boolean SGR attributes.
type AttrFlags uint16

const (
	AttrBold AttrFlags = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrInvisible
	AttrStrikethrough
	AttrProtected
)

// Attr is the full set of rendering attributes carried by a Cell.
// DefaultAttr, not the zero value, is "unset": no flags, foreground/
// background at the colorUnset sentinel so Resolve falls back to the
// palette defaults. The zero value's colors are palette index 0.
type Attr struct {
	Foreground Color
	Background Color
	Flags      AttrFlags
}

// DefaultAttr is the attribute state after a screen reset.
var DefaultAttr = Attr{Foreground: DefaultColor, Background: DefaultColor}

// Has reports whether every flag in mask is set.
func (a Attr) Has(mask AttrFlags) bool { return a.Flags&mask == mask }

// Cell is one grid position: a Symbol (possibly multi-rune grapheme), its
// display width in columns, its attributes, and the age at which it was
// last written.
type Cell struct {
	Symbol Symbol
	Width  int
	Attr   Attr
	Age    uint64
}

// blankCell is what erase operations write back into a position: the space
// symbol at width 1, carrying whatever Attr was passed to the erase call.
func blankCell(attr Attr, age uint64) Cell {
	return Cell{Symbol: Symbol(' '), Width: 1, Attr: attr, Age: age}
}

// line is one row of the grid plus its own age (bumped whenever any cell in
// the row changes; Draw does not consult it) and a flag recording whether the line wrapped into the next one as a single
// logical line.
type line struct {
	cells   []Cell
	age     uint64
	wrapped bool
}

// newLine allocates a blank line of the given width.
func newLine(width int, attr Attr, age uint64) line {
	l := line{cells: make([]Cell, width), age: age}
	for i := range l.cells {
		l.cells[i] = blankCell(attr, age)
	}
	return l
}

// resize grows or shrinks the line to width columns, padding new cells with
// blankCell(attr, age) and truncating extras.
func (l *line) resize(width int, attr Attr, age uint64) {
	if width == len(l.cells) {
		return
	}
	if width < len(l.cells) {
		l.cells = l.cells[:width]
		return
	}
	grown := make([]Cell, width)
	copy(grown, l.cells)
	for i := len(l.cells); i < width; i++ {
		grown[i] = blankCell(attr, age)
	}
	l.cells = grown
}
