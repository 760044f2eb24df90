// Package tsm implements a VT100/xterm-compatible terminal emulator core.
//
// It consumes a byte stream from a host process, maintains a model of a
// character grid with attributes and a scrollback (Screen), translates that
// byte stream's escape sequences into grid mutations (VTE), and translates
// keyboard events into the byte sequences a host expects (TranslateKey).
//
// # Screen and VTE
//
// Screen owns the cell grid, cursor, scroll region, tab stops, and the
// primary/alternate buffer pair. VTE borrows a Screen for its lifetime and
// drives it from parsed escape sequences:
//
//	scr := tsm.NewScreen(80, 24)
//	vte := tsm.NewVTE(scr, tsm.WithWriter(ptyIn))
//	vte.Input(bytesFromHost)
//
// # Rendering
//
// Consumers pull cell state via Draw, which visits every cell of the view in
// scan order and passes each cell's age, so the caller can skip cells it
// already rendered:
//
//	scr.Draw(func(ctx any) {}, func(x, y int, sym tsm.Symbol, width int, attr tsm.Attr, age uint64, ctx any) {
//	    // render cell
//	}, func(ctx any) {}, nil)
//
// # Keyboard input
//
// TranslateKey converts a key event plus the VTE's current mode flags into
// the bytes a host-side program expects to read:
//
//	if b, ok := tsm.TranslateKey(vte, tsm.KeyEvent{Keysym: tsm.KeyUp}); ok {
//	    hostWriter.Write(b)
//	}
//
// # Thread safety
//
// Screen and VTE each guard their state with an internal mutex so that a
// host-read goroutine and a render goroutine may call into them
// concurrently, even though each one's own operations still apply in the
// single, serial order any one caller issues them in.
package tsm
