package tsm

import (
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Symbol is a 32-bit grapheme identifier. Values at or below
// maxUnicode are themselves a Unicode code point; larger values index
// into a SymbolTable's intern slots.
type Symbol uint32

// maxUnicode is the highest code point representable directly as a Symbol
// without interning.
const maxUnicode = 0x10FFFF

// symbolEntry is one interned grapheme cluster: a base code point plus an
// ordered sequence of combining marks.
type symbolEntry struct {
	base rune
	comb []rune
	key  string // norm.NFC-canonicalized form, used for dedup
}

// SymbolTable interns multi-rune grapheme clusters into stable Symbol IDs.
// Growth is append-only and safe for the process lifetime: once a
// Symbol is handed out it never changes meaning or is reused.
type SymbolTable struct {
	mu      sync.RWMutex
	entries []symbolEntry
	byKey   map[string]Symbol
}

// NewSymbolTable returns an empty, ready-to-use table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byKey: make(map[string]Symbol)}
}

// DefaultSymbols is the process-wide table used by Screens and VTEs that
// are not given an explicit SymbolTable via WithSymbols.
var DefaultSymbols = NewSymbolTable()

// canonicalKey returns the NFC-normalized string form of a cluster, used
// only to decide symbol equality. Canonicalizing here — rather than
// hand-rolling combining-mark reordering — is exactly what
// golang.org/x/text/unicode/norm exists to do correctly.
func canonicalKey(base rune, comb []rune) string {
	buf := make([]rune, 0, len(comb)+1)
	buf = append(buf, base)
	buf = append(buf, comb...)
	return string(norm.NFC.Bytes([]byte(string(buf))))
}

// Intern returns the Symbol for (base, combining), allocating a new slot
// only if an equal cluster was never seen before. Clusters with no
// combining marks and a base at or below maxUnicode return the code point
// itself without touching the table.
func (t *SymbolTable) Intern(base rune, combining []rune) Symbol {
	if len(combining) == 0 && rune(uint32(base)) == base && base >= 0 && base <= maxUnicode {
		return Symbol(base)
	}

	key := canonicalKey(base, combining)

	t.mu.RLock()
	if sym, ok := t.byKey[key]; ok {
		t.mu.RUnlock()
		return sym
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if sym, ok := t.byKey[key]; ok {
		return sym
	}

	comb := make([]rune, len(combining))
	copy(comb, combining)
	id := Symbol(maxUnicode + 1 + len(t.entries))
	t.entries = append(t.entries, symbolEntry{base: base, comb: comb, key: key})
	t.byKey[key] = id
	return id
}

// Append folds an additional combining mark onto an existing Symbol,
// returning the Symbol for the combined cluster. Screen's own fold of a
// zero-width combining mark does the same Decode+Intern inline rather than
// calling Append.
func (t *SymbolTable) Append(sym Symbol, combining rune) Symbol {
	base, comb := t.Decode(sym)
	return t.Intern(base, append(append([]rune{}, comb...), combining))
}

// Decode returns the base code point and ordered combining sequence for a
// Symbol, for use by render consumers.
func (t *SymbolTable) Decode(sym Symbol) (rune, []rune) {
	if sym <= maxUnicode {
		return rune(sym), nil
	}

	idx := int(sym) - maxUnicode - 1
	t.mu.RLock()
	defer t.mu.RUnlock()
	if idx < 0 || idx >= len(t.entries) {
		return 0xFFFD, nil
	}
	e := t.entries[idx]
	out := make([]rune, len(e.comb))
	copy(out, e.comb)
	return e.base, out
}
