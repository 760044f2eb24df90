package tsm

import "testing"

func TestTranslateKeyCtrlLetter(t *testing.T) {
	_, vte, _ := newTestVTE(10, 2)
	b, ok := TranslateKey(vte, KeyEvent{Rune: 'c', Mods: ModCtrl})
	if !ok || len(b) != 1 || b[0] != 0x03 {
		t.Fatalf("got %v ok=%v", b, ok)
	}
}

func TestTranslateKeyAltPrefixesEscape(t *testing.T) {
	_, vte, _ := newTestVTE(10, 2)
	b, ok := TranslateKey(vte, KeyEvent{Rune: 'x', Mods: ModAlt})
	if !ok || string(b) != "\x1bx" {
		t.Fatalf("got %q ok=%v", b, ok)
	}
}

func TestTranslateKeyFunctionKeys(t *testing.T) {
	_, vte, _ := newTestVTE(10, 2)
	b, ok := TranslateKey(vte, KeyEvent{Keysym: KeyF1})
	if !ok || string(b) != "\x1bOP" {
		t.Fatalf("got %q", b)
	}
	b, ok = TranslateKey(vte, KeyEvent{Keysym: KeyF5})
	if !ok || string(b) != "\x1b[15~" {
		t.Fatalf("got %q", b)
	}
}

func TestTranslateKeyPlainRune(t *testing.T) {
	_, vte, _ := newTestVTE(10, 2)
	b, ok := TranslateKey(vte, KeyEvent{Rune: 'a'})
	if !ok || string(b) != "a" {
		t.Fatalf("got %q", b)
	}
}

func TestTranslateKeyNoneFalse(t *testing.T) {
	_, vte, _ := newTestVTE(10, 2)
	_, ok := TranslateKey(vte, KeyEvent{})
	if ok {
		t.Fatalf("expected ok=false for empty event")
	}
}
