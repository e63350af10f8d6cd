package render

import "strings"

// Segment is a Run positioned on a rendered line: after Normalize, the
// sum of every Segment.Cells in a row equals the pane's column count
// (spec §8 invariant 4), and no Segment straddles a SPACER_TAIL (§8
// invariant 5).
type Segment struct {
	Run
	IsCursor bool
}

// Normalize truncates an over-long run stream (never splitting a WIDE
// or Single segment — such a segment is dropped whole) and pads a
// short one with a trailing plain-space segment, so the returned slice
// always sums to exactly cols cells (spec §4.3 "Runs → positioned
// segments").
func Normalize(runs []Run, cols int) []Segment {
	result := make([]Segment, 0, len(runs))
	total := 0

	for _, run := range runs {
		remaining := cols - total
		if remaining <= 0 {
			break
		}
		if run.Cells <= remaining {
			result = append(result, Segment{Run: run})
			total += run.Cells
			continue
		}
		if run.Kind == RunPlain || run.Kind == RunBGOnly {
			runes := []rune(run.Text)
			n := remaining
			if n > len(runes) {
				n = len(runes)
			}
			trimmed := run
			trimmed.Text = string(runes[:n])
			trimmed.Cells = remaining
			result = append(result, Segment{Run: trimmed})
			total += remaining
			continue
		}
		// RunWide / RunSingle: never split — drop the trailing cells
		// entirely rather than straddle a glyph boundary.
		break
	}

	if total < cols {
		pad := cols - total
		result = append(result, Segment{Run: Run{Kind: RunPlain, Text: strings.Repeat(" ", pad), Cells: pad, StyleID: 0}})
	}

	return result
}
