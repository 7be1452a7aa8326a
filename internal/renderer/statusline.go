package renderer

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/incsel/internal/renderer/backend"
)

// StatusLine is the content of the bottom row.
type StatusLine struct {
	Name    string
	Live    int
	Saved   int
	Message string
}

func (s StatusLine) String() string {
	text := fmt.Sprintf(" %s | live %d | saved %d", s.Name, s.Live, s.Saved)
	if s.Message != "" {
		text += " | " + s.Message
	}
	return text
}

func (s StatusLine) draw(b backend.Backend, width, row int) {
	text := runewidth.Truncate(s.String(), width, "…")
	style := backend.Style{Reverse: true}

	x := 0
	for _, ch := range text {
		b.SetContent(x, row, ch, style)
		x += runewidth.RuneWidth(ch)
	}
	for ; x < width; x++ {
		b.SetContent(x, row, ' ', style)
	}
}
