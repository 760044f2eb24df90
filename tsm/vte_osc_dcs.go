package tsm

import (
	"bytes"
	"strconv"
	"strings"
)

// Hook begins a DCS payload. tsm accepts any DCS payload —
// including Sixel graphics data — but has no graphics plane to render it
// into, so it is buffered only long enough to be discarded cleanly on
// Unhook.
func (v *VTE) Hook(params []int, inters []byte, private byte, final byte) {
	v.dcsBuf = v.dcsBuf[:0]
	v.dcsFinal = final
}

// Put appends one payload byte of an in-progress DCS string.
func (v *VTE) Put(b byte) {
	v.dcsBuf = append(v.dcsBuf, b)
}

// Unhook completes a DCS sequence. The payload is discarded; only its
// presence was ever observed.
func (v *VTE) Unhook() {
	v.logf(LogDebug, "discarded DCS payload (%d bytes, final=%q)", len(v.dcsBuf), v.dcsFinal)
	v.dcsBuf = nil
}

// OscDispatch handles a completed OSC string.
func (v *VTE) OscDispatch(data []byte) {
	parts := bytes.SplitN(data, []byte(";"), 2)
	if len(parts) == 0 {
		return
	}
	code, err := strconv.Atoi(string(parts[0]))
	if err != nil {
		v.logf(LogDebug, "malformed OSC %q", data)
		return
	}
	var arg string
	if len(parts) == 2 {
		arg = string(parts[1])
	}

	switch code {
	case 0, 1, 2:
		v.title = arg
	case 4:
		v.setIndexedColor(arg)
	case 10:
		v.reportOrSetColor(arg, true)
	case 11:
		v.reportOrSetColor(arg, false)
	case 52:
		// Clipboard access is a host/embedder concern, not core VT100
		// state; accepted and discarded.
	case 104:
		v.resetIndexedColor(arg)
	default:
		v.logf(LogDebug, "unknown OSC %d %q", code, arg)
	}
}

// setIndexedColor implements "OSC 4 ; index ; spec".
// Only the 16-entry ANSI palette is mutable; indices 16-255 are always
// derived programmatically and cannot be overridden.
func (v *VTE) setIndexedColor(arg string) {
	fields := strings.Split(arg, ";")
	for i := 0; i+1 < len(fields); i += 2 {
		idx, err := strconv.Atoi(fields[i])
		if err != nil || idx < 0 || idx > 15 {
			continue
		}
		rgb, ok := parseXColorSpec(fields[i+1])
		if !ok {
			continue
		}
		v.palette.Indexed[idx] = rgb
	}
}

func (v *VTE) resetIndexedColor(arg string) {
	if arg == "" {
		v.palette = clonePalette(DefaultPalette)
		return
	}
	for _, f := range strings.Split(arg, ";") {
		idx, err := strconv.Atoi(f)
		if err == nil && idx >= 0 && idx <= 15 {
			v.palette.Indexed[idx] = DefaultPalette.Indexed[idx]
		}
	}
}

// reportOrSetColor implements OSC 10/11 (default foreground/background
// colors). A "?" argument queries; anything else sets.
func (v *VTE) reportOrSetColor(arg string, fg bool) {
	if arg == "?" {
		c := v.palette.Background
		code := 11
		if fg {
			c = v.palette.Foreground
			code = 10
		}
		v.reply([]byte(formatXOscReply(code, c)))
		return
	}
	rgb, ok := parseXColorSpec(arg)
	if !ok {
		return
	}
	if fg {
		v.palette.Foreground = rgb
	} else {
		v.palette.Background = rgb
	}
}
