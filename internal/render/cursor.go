package render

// CursorStyleConfig carries the user-configurable cursor blink/color
// overrides consulted when InjectCursor resolves a segment's cursor
// styling (spec §4.3 "Cursor rendering").
type CursorStyleConfig struct {
	// BlinkOverride is "" (defer to the snapshot's cursor.blink), "true",
	// or "false".
	BlinkOverride string
	// ForegroundMode/BackgroundMode are "" (CSS default), "cell-foreground",
	// "cell-background", or an explicit color string passed through as-is.
	ForegroundMode string
	BackgroundMode string
}

// ResolveBlink implements "blink = config.blink == '' ? snapshot.blink :
// config.blink == 'true'".
func ResolveBlink(cfg CursorStyleConfig, snapshotBlink bool) bool {
	if cfg.BlinkOverride == "" {
		return snapshotBlink
	}
	return cfg.BlinkOverride == "true"
}

// ResolveCursorColor returns the literal color to paint and whether the
// caller should instead fall back to its CSS default (mode == "").
// "cell-foreground"/"cell-background" substitute the underlying cell's
// own fg/bg so the cursor reads as a color inversion of its cell.
func ResolveCursorColor(mode, cellFG, cellBG string) (color string, useDefault bool) {
	switch mode {
	case "":
		return "", true
	case "cell-foreground":
		return cellFG, false
	case "cell-background":
		return cellBG, false
	default:
		return mode, false
	}
}

// InjectCursor marks the segment covering column cursorCol as the
// cursor segment. A plain narrow run is split into up to three
// segments (before/cursor-cell/after) so only the single cursor cell
// carries IsCursor; a WIDE segment containing the cursor column is
// marked whole, since it can never be split (spec §4.3, §8 invariant 6).
// visible == false leaves segs untouched (cursor not drawn this frame,
// e.g. blinked off or pane not focused and the theme hides it then).
func InjectCursor(segs []Segment, cursorCol int, visible bool) []Segment {
	if !visible || cursorCol < 0 {
		return segs
	}

	out := make([]Segment, 0, len(segs)+2)
	col := 0
	for _, seg := range segs {
		start, end := col, col+seg.Cells // [start, end)
		if cursorCol < start || cursorCol >= end {
			out = append(out, seg)
			col = end
			continue
		}

		if seg.Kind != RunPlain {
			// WIDE, Single, or BGOnly: mark the whole segment, never split.
			marked := seg
			marked.IsCursor = true
			out = append(out, marked)
			col = end
			continue
		}

		runes := []rune(seg.Text)
		offset := cursorCol - start
		if offset < 0 || offset >= len(runes) {
			out = append(out, seg)
			col = end
			continue
		}
		if offset > 0 {
			before := seg
			before.Text = string(runes[:offset])
			before.Cells = offset
			out = append(out, before)
		}
		cursorSeg := seg
		cursorSeg.Text = string(runes[offset])
		cursorSeg.Cells = 1
		cursorSeg.IsCursor = true
		out = append(out, cursorSeg)
		if offset+1 < len(runes) {
			after := seg
			after.Text = string(runes[offset+1:])
			after.Cells = len(runes) - offset - 1
			out = append(out, after)
		}
		col = end
	}
	return out
}
