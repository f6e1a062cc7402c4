package toast

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayAt composites overlay on top of base with its top-left corner at
// cell (x, y). The result is exactly height lines of width cells; overlay
// cells outside the frame are clipped on every side.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := frameLines(base, width, height)
	if overlay == "" {
		return strings.Join(baseLines, "\n")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := maxLineWidth(overlayLines)

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		line = padRight(line, overlayWidth)

		// Clip the overlay line to the visible columns.
		start, end := max(x, 0), min(x+overlayWidth, width)
		if start >= end {
			continue
		}
		if x < 0 {
			line = ansi.TruncateLeft(line, -x, "")
		}
		line = padRight(ansi.Truncate(line, end-start, ""), end-start)

		// A wide rune straddling start or end is dropped; pad the gap so the
		// overlay stays on its columns.
		target := baseLines[row]
		left := ansi.Truncate(target, start, "")
		if w := ansi.StringWidth(left); w < start {
			left += strings.Repeat(" ", start-w)
		}
		right := ansi.TruncateLeft(target, end, "")
		for cut := end + 1; ansi.StringWidth(right) > width-end && cut <= width; cut++ {
			right = ansi.TruncateLeft(target, cut, "")
		}
		if gap := width - end - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

// frameLines normalises s to height lines of exactly width cells.
func frameLines(s string, width, height int) []string {
	lines := splitLines(s)
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], width, "")
		}
		out[i] = padRight(line, width)
	}
	return out
}

// dimBackdrop strips styling from base and redraws every cell of the frame
// in color, or faint when color is nil.
func dimBackdrop(base string, width, height int, color lipgloss.TerminalColor) string {
	style := lipgloss.NewStyle().Faint(true)
	if color != nil {
		style = lipgloss.NewStyle().Foreground(color)
	}
	lines := frameLines(ansi.Strip(base), width, height)
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
