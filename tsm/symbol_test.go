package tsm

import "testing"

func TestSymbolInternASCIIIsCodepoint(t *testing.T) {
	tbl := NewSymbolTable()
	sym := tbl.Intern('A', nil)
	if sym != Symbol('A') {
		t.Fatalf("expected bare ASCII to skip interning, got %d", sym)
	}
}

func TestSymbolInternCombiningDedup(t *testing.T) {
	tbl := NewSymbolTable()
	a := tbl.Intern('e', []rune{0x0301}) // e + combining acute
	b := tbl.Intern('e', []rune{0x0301})
	if a != b {
		t.Fatalf("equal clusters interned to different symbols: %d != %d", a, b)
	}
	if a <= maxUnicode {
		t.Fatalf("expected interned symbol above maxUnicode, got %d", a)
	}
	base, comb := tbl.Decode(a)
	if base != 'e' || len(comb) != 1 || comb[0] != 0x0301 {
		t.Fatalf("decode mismatch: base=%q comb=%v", base, comb)
	}
}

func TestSymbolAppend(t *testing.T) {
	tbl := NewSymbolTable()
	sym := tbl.Intern('e', nil)
	sym2 := tbl.Append(sym, 0x0301)
	base, comb := tbl.Decode(sym2)
	if base != 'e' || len(comb) != 1 || comb[0] != 0x0301 {
		t.Fatalf("append result mismatch: base=%q comb=%v", base, comb)
	}
}

func TestSymbolDecodeUnknownReturnsReplacement(t *testing.T) {
	tbl := NewSymbolTable()
	base, comb := tbl.Decode(Symbol(maxUnicode + 5000))
	if base != 0xFFFD || comb != nil {
		t.Fatalf("expected replacement char for unknown symbol, got %q %v", base, comb)
	}
}
