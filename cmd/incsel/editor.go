package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/incsel/internal/app"
	"github.com/dshills/incsel/internal/engine/region"
	"github.com/dshills/incsel/internal/host/memview"
	"github.com/dshills/incsel/internal/renderer"
	"github.com/dshills/incsel/internal/renderer/backend"
)

var quitEvent = backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'q', Mod: backend.ModCtrl}

// editor connects terminal events to the application.
type editor struct {
	app      *app.Application
	backend  backend.Backend
	renderer *renderer.Renderer
	message  string
}

func newEditor(a *app.Application, b backend.Backend) *editor {
	return &editor{
		app:      a,
		backend:  b,
		renderer: renderer.New(b, a.Settings().Marker.Key),
	}
}

// run renders and handles events until quit.
func (e *editor) run() {
	for {
		e.render()
		if !e.handle(e.backend.PollEvent()) {
			return
		}
	}
}

func (e *editor) render() {
	doc := e.app.Documents().Active()
	if doc == nil {
		return
	}
	e.renderer.Render(doc.View, renderer.StatusLine{
		Name:    doc.Name(),
		Live:    doc.View.Selection().Len(),
		Saved:   e.app.Engine().Saved(doc.ID()).Len(),
		Message: e.message,
	})
}

// handle processes one event. Returns false to quit.
func (e *editor) handle(ev backend.Event) bool {
	key := ev.String()
	if key == "" {
		return true
	}
	if key == quitEvent.String() {
		return false
	}

	doc := e.app.Documents().Active()
	if doc == nil {
		return true
	}
	if e.motion(doc.View, key) {
		e.message = ""
		return true
	}

	res, ok := e.app.HandleKey(key)
	switch {
	case !ok:
		e.message = key + ": unbound"
	case res.Error != nil:
		e.message = fmt.Sprintf("%s: %v", key, res.Error)
	case res.Message != "":
		e.message = fmt.Sprintf("%s: %s", key, res.Message)
	default:
		e.message = fmt.Sprintf("%s: %s", key, res.Status)
	}
	return true
}

type moveFunc func(text string, off region.Offset) region.Offset

var moves = map[string]moveFunc{
	"left":  prevRune,
	"right": nextRune,
	"up":    lineUp,
	"down":  lineDown,
	"home":  lineStart,
	"end":   lineEnd,
}

// motion applies caret movement keys. Returns false for other keys.
func (e *editor) motion(v *memview.View, key string) bool {
	text := v.Text()

	if move, ok := moves[key]; ok {
		v.MapSelection(func(r region.Region) region.Region {
			return region.Caret(move(text, r.Active))
		})
		return true
	}

	const shift = "shift+"
	if len(key) > len(shift) && key[:len(shift)] == shift {
		if move, ok := moves[key[len(shift):]]; ok {
			sel := v.Selection()
			if last, ok := sel.Last(); ok {
				sel[len(sel)-1] = last.Extend(move(text, last.Active))
				v.SetSelection(sel)
			}
			return true
		}
	}

	switch key {
	case "ctrl+n":
		if last, ok := v.Selection().Last(); ok {
			if next := lineDown(text, last.Active); next != last.Active {
				v.AddSelection(region.Caret(next))
			}
		}
		return true
	case "esc":
		if last, ok := v.Selection().Last(); ok {
			v.SetSelection(region.Of(region.Caret(last.Active)))
		}
		return true
	}
	return false
}

func prevRune(text string, off region.Offset) region.Offset {
	if off <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:off])
	return off - region.Offset(size)
}

func nextRune(text string, off region.Offset) region.Offset {
	if int(off) >= len(text) {
		return region.Offset(len(text))
	}
	_, size := utf8.DecodeRuneInString(text[off:])
	return off + region.Offset(size)
}

func lineStart(text string, off region.Offset) region.Offset {
	for off > 0 && text[off-1] != '\n' {
		off--
	}
	return off
}

func lineEnd(text string, off region.Offset) region.Offset {
	for int(off) < len(text) && text[off] != '\n' {
		off++
	}
	return off
}

// lineUp keeps the byte column, clamped to the shorter line.
func lineUp(text string, off region.Offset) region.Offset {
	start := lineStart(text, off)
	if start == 0 {
		return off
	}
	prev := lineStart(text, start-1)
	return snap(text, min(prev+(off-start), start-1))
}

func lineDown(text string, off region.Offset) region.Offset {
	start := lineStart(text, off)
	end := lineEnd(text, off)
	if int(end) >= len(text) {
		return off
	}
	next := end + 1
	return snap(text, min(next+(off-start), lineEnd(text, next)))
}

// snap moves off back to the start of the rune it falls in.
func snap(text string, off region.Offset) region.Offset {
	for off > 0 && int(off) < len(text) && !utf8.RuneStart(text[off]) {
		off--
	}
	return off
}
