package renderer

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/incsel/internal/engine/region"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/host/memview"
	"github.com/dshills/incsel/internal/renderer/backend"
)

// DefaultTabWidth is the number of cells a tab advances to.
const DefaultTabWidth = 4

// Renderer draws one view at a time.
type Renderer struct {
	backend   backend.Backend
	markerKey string
	tabWidth  int

	// top is the first visible line.
	top int
}

// New creates a renderer that draws the marker stored under markerKey.
func New(b backend.Backend, markerKey string) *Renderer {
	return &Renderer{backend: b, markerKey: markerKey, tabWidth: DefaultTabWidth}
}

// SetTabWidth changes the tab width. Values below 1 are ignored.
func (r *Renderer) SetTabWidth(n int) {
	if n > 0 {
		r.tabWidth = n
	}
}

// Render draws v and the status line, then flushes the backend.
func (r *Renderer) Render(v *memview.View, status StatusLine) {
	width, height := r.backend.Size()
	r.backend.Clear()
	if width <= 0 || height <= 0 {
		r.backend.Show()
		return
	}

	text := v.Text()
	live := v.Selection()
	marker, hasMarker := v.Regions(r.markerKey)
	markerStyle := styleFor(marker.Style.Flags)

	caret := region.Offset(0)
	if last, ok := live.Last(); ok {
		caret = last.Active
	}

	rows := height - 1
	lines := splitLines(text)
	caretLine := lineOf(lines, caret)
	r.scrollTo(caretLine, rows)

	caretX, caretY := -1, -1
	for row := 0; row < rows && r.top+row < len(lines); row++ {
		ln := lines[r.top+row]
		x := 0
		for i, ch := range text[ln.start:ln.end] {
			off := ln.start + region.Offset(i)
			if off == caret {
				caretX, caretY = x, row
			}

			style := backend.Style{}
			if hasMarker && covers(marker.Group, off) {
				style = markerStyle
			}
			if covers(live, off) {
				style.Reverse = true
			}

			if ch == '\t' {
				next := (x/r.tabWidth + 1) * r.tabWidth
				for ; x < next && x < width; x++ {
					r.backend.SetContent(x, row, ' ', style)
				}
				continue
			}
			w := runewidth.RuneWidth(ch)
			if w == 0 {
				continue
			}
			if x+w > width {
				break
			}
			r.backend.SetContent(x, row, ch, style)
			x += w
		}
		if caret == ln.end && caretX < 0 {
			caretX, caretY = min(x, width-1), row
		}
	}

	status.draw(r.backend, width, height-1)

	if caretX >= 0 {
		r.backend.ShowCursor(caretX, caretY)
	} else {
		r.backend.HideCursor()
	}
	r.backend.Show()
}

// scrollTo keeps line within the visible rows.
func (r *Renderer) scrollTo(line, rows int) {
	if rows <= 0 {
		return
	}
	if line < r.top {
		r.top = line
	}
	if line >= r.top+rows {
		r.top = line - rows + 1
	}
}

// styleFor maps overlay draw flags to a cell style.
func styleFor(flags host.DrawFlags) backend.Style {
	switch flags {
	case host.DrawFill:
		return backend.Style{Highlight: true}
	case host.DrawOutline:
		return backend.Style{Underline: true, Bold: true}
	case host.DrawUnderline:
		return backend.Style{Underline: true}
	default:
		return backend.Style{}
	}
}

// covers reports whether any non-empty region in g contains off.
func covers(g region.Group, off region.Offset) bool {
	for _, r := range g {
		if off >= r.Begin() && off < r.End() {
			return true
		}
	}
	return false
}
