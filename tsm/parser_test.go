package tsm

import "testing"

type recordingSink struct {
	printed []rune
	csi     []string
	esc     []string
	osc     []string
}

func (r *recordingSink) Print(c rune) { r.printed = append(r.printed, c) }
func (r *recordingSink) Execute(b byte) {}
func (r *recordingSink) EscDispatch(inters []byte, final byte) {
	r.esc = append(r.esc, string(inters)+string(final))
}
func (r *recordingSink) CsiDispatch(params []int, inters []byte, private byte, final byte) {
	r.csi = append(r.csi, string(final))
}
func (r *recordingSink) Hook(params []int, inters []byte, private byte, final byte) {}
func (r *recordingSink) Put(b byte)                                                {}
func (r *recordingSink) Unhook()                                                   {}
func (r *recordingSink) OscDispatch(data []byte)                                    { r.osc = append(r.osc, string(data)) }

func feedString(p *Parser, sink Sink, s string) {
	for i := 0; i < len(s); i++ {
		p.Feed(s[i], sink)
	}
}

func TestParserPrintsGroundBytes(t *testing.T) {
	p := NewParser()
	sink := &recordingSink{}
	feedString(p, sink, "hi")
	if string(sink.printed) != "hi" {
		t.Fatalf("got %q", string(sink.printed))
	}
}

func TestParserCSIDispatch(t *testing.T) {
	p := NewParser()
	sink := &recordingSink{}
	feedString(p, sink, "\x1b[1;2H")
	if len(sink.csi) != 1 || sink.csi[0] != "H" {
		t.Fatalf("got %v", sink.csi)
	}
}

func TestParserEscDispatch(t *testing.T) {
	p := NewParser()
	sink := &recordingSink{}
	feedString(p, sink, "\x1bc")
	if len(sink.esc) != 1 || sink.esc[0] != "c" {
		t.Fatalf("got %v", sink.esc)
	}
}

func TestParserOscDispatchBEL(t *testing.T) {
	p := NewParser()
	sink := &recordingSink{}
	feedString(p, sink, "\x1b]0;title\x07")
	if len(sink.osc) != 1 || sink.osc[0] != "0;title" {
		t.Fatalf("got %v", sink.osc)
	}
}

func TestParserCANAbortsSequence(t *testing.T) {
	p := NewParser()
	sink := &recordingSink{}
	feedString(p, sink, "\x1b[1;2\x18H") // CAN mid-CSI, then 'H' prints in ground
	if len(sink.csi) != 0 {
		t.Fatalf("expected aborted CSI, got %v", sink.csi)
	}
	if string(sink.printed) != "H" {
		t.Fatalf("expected 'H' printed after abort, got %q", string(sink.printed))
	}
}

func TestParserUnknownCSIStillConsumesCleanly(t *testing.T) {
	p := NewParser()
	sink := &recordingSink{}
	feedString(p, sink, "\x1b[999z" + "ok")
	if string(sink.printed) != "ok" {
		t.Fatalf("got %q", string(sink.printed))
	}
}
