// Package textutil provides unicode and ANSI aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidthStyled returns the visual width of a styled string, skipping
// ANSI escape codes.
func VisualWidthStyled(s string) int {
	return ansi.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending with … when
// anything was cut. Escape codes in s are preserved.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidthStyled(s) <= maxWidth {
		return s
	}
	if maxWidth <= runewidth.StringWidth(TruncateEllipsis) {
		return TruncateEllipsis
	}
	return ansi.Truncate(s, maxWidth, TruncateEllipsis)
}

// FitLine cuts or pads s so it is exactly width columns wide. Unlike
// Truncate it never adds an ellipsis, which keeps panel edges stable while
// they slide.
func FitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := VisualWidthStyled(s)
	if w > width {
		s = ansi.Truncate(s, width, "")
		w = VisualWidthStyled(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// Window returns the columns [from, from+width) of s, padded with spaces
// where s is shorter. A wide rune split by either edge is replaced by
// padding so the result is always width columns.
func Window(s string, from, width int) string {
	if width <= 0 {
		return ""
	}
	if from < 0 {
		return strings.Repeat(" ", min(-from, width)) + Window(s, 0, width+from)
	}
	if from > 0 {
		remaining := VisualWidthStyled(s) - from
		if remaining <= 0 {
			return strings.Repeat(" ", width)
		}
		s = ansi.TruncateLeft(s, from, "")
		if lost := remaining - VisualWidthStyled(s); lost > 0 {
			s = strings.Repeat(" ", lost) + s
		}
	}
	return FitLine(s, width)
}

// Block splits plain text s into exactly height lines, each exactly width
// columns, with tabs expanded. Extra lines are dropped and missing lines are
// blank.
func Block(s string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	lines := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = FitLine(expandTabs(line), width)
	}
	return out
}

// TabWidth is the tab stop interval used by Block.
const TabWidth = 4

// expandTabs replaces tabs in a plain line with spaces up to the next tab
// stop, counting columns by rune width.
func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := TabWidth - col%TabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
