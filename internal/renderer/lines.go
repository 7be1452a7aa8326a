package renderer

import (
	"strings"

	"github.com/dshills/incsel/internal/engine/region"
)

// Line is a byte range of one line, excluding the newline.
type Line struct {
	start, end region.Offset
}

func splitLines(text string) []Line {
	var lines []Line
	start := 0
	for {
		i := strings.IndexByte(text[start:], '\n')
		if i < 0 {
			lines = append(lines, Line{start: region.Offset(start), end: region.Offset(len(text))})
			return lines
		}
		lines = append(lines, Line{start: region.Offset(start), end: region.Offset(start + i)})
		start += i + 1
	}
}

// lineOf returns the index of the line holding off.
func lineOf(lines []Line, off region.Offset) int {
	for i, ln := range lines {
		if off <= ln.end {
			return i
		}
	}
	return len(lines) - 1
}
