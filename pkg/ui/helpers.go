package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncateWidth truncates s to maxWidth cells, appending suffix when cut.
// Uses go-runewidth so emoji and CJK count as two cells.
func truncateWidth(s string, maxWidth int, suffix string) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	suffixWidth := runewidth.StringWidth(suffix)
	if suffixWidth > maxWidth {
		return runewidth.Truncate(suffix, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth-suffixWidth, "") + suffix
}

// truncate truncates s to maxWidth cells with an ellipsis.
func truncate(s string, maxWidth int) string {
	return truncateWidth(s, maxWidth, "…")
}

// compressBlankLines collapses runs of more than two blank lines, which
// glamour sometimes emits around code blocks.
func compressBlankLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 2 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return out
}

// window returns lines[offset:offset+height] with offset clamped so the
// window is always full when there are enough lines.
func window(lines []string, offset, height int) (visible []string, clamped int) {
	if height < 1 {
		height = 1
	}
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[offset:end], offset
}
