package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a backend on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a backend on an existing screen, such as a
// tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetContent(x, y int, r rune, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, r, nil, convertStyle(style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

func (t *Terminal) PostEvent(event Event) {
	if event.Type != EventKey {
		return
	}
	key, r := convertToTcellKey(event)
	_ = t.screen.PostEvent(tcell.NewEventKey(key, r, convertToTcellMod(event.Mod))) // best-effort; queue may be full
}

// convertStyle converts our style to a tcell style.
func convertStyle(s Style) tcell.Style {
	ts := tcell.StyleDefault
	if s.Reverse {
		ts = ts.Reverse(true)
	}
	if s.Underline {
		ts = ts.Underline(true)
	}
	if s.Bold {
		ts = ts.Bold(true)
	}
	if s.Highlight {
		ts = ts.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	}
	return ts
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}

func convertKeyEvent(e *tcell.EventKey) Event {
	ev := Event{Type: EventKey, Mod: convertMod(e.Modifiers())}

	k := e.Key()
	switch {
	case k == tcell.KeyRune:
		ev.Key, ev.Rune = KeyRune, e.Rune()
	case k == tcell.KeyEscape:
		ev.Key = KeyEscape
	case k == tcell.KeyEnter:
		ev.Key = KeyEnter
	case k == tcell.KeyTab:
		ev.Key = KeyTab
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		ev.Key = KeyBackspace
	case k == tcell.KeyDelete:
		ev.Key = KeyDelete
	case k == tcell.KeyHome:
		ev.Key = KeyHome
	case k == tcell.KeyEnd:
		ev.Key = KeyEnd
	case k == tcell.KeyPgUp:
		ev.Key = KeyPageUp
	case k == tcell.KeyPgDn:
		ev.Key = KeyPageDown
	case k == tcell.KeyUp:
		ev.Key = KeyUp
	case k == tcell.KeyDown:
		ev.Key = KeyDown
	case k == tcell.KeyLeft:
		ev.Key = KeyLeft
	case k == tcell.KeyRight:
		ev.Key = KeyRight
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		ev.Key, ev.Rune = KeyRune, 'a'+rune(k-tcell.KeyCtrlA)
		ev.Mod |= ModCtrl
	default:
		ev.Key = KeyNone
	}
	return ev
}

func convertMod(m tcell.ModMask) ModMask {
	var mod ModMask
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	return mod
}

func convertToTcellMod(m ModMask) tcell.ModMask {
	var mod tcell.ModMask
	if m.Has(ModShift) {
		mod |= tcell.ModShift
	}
	if m.Has(ModCtrl) {
		mod |= tcell.ModCtrl
	}
	if m.Has(ModAlt) {
		mod |= tcell.ModAlt
	}
	return mod
}

var tcellKeys = map[Key]tcell.Key{
	KeyEscape:    tcell.KeyEscape,
	KeyEnter:     tcell.KeyEnter,
	KeyTab:       tcell.KeyTab,
	KeyBackspace: tcell.KeyBackspace2,
	KeyDelete:    tcell.KeyDelete,
	KeyHome:      tcell.KeyHome,
	KeyEnd:       tcell.KeyEnd,
	KeyPageUp:    tcell.KeyPgUp,
	KeyPageDown:  tcell.KeyPgDn,
	KeyUp:        tcell.KeyUp,
	KeyDown:      tcell.KeyDown,
	KeyLeft:      tcell.KeyLeft,
	KeyRight:     tcell.KeyRight,
}

func convertToTcellKey(e Event) (tcell.Key, rune) {
	if e.Key == KeyRune {
		return tcell.KeyRune, e.Rune
	}
	if k, ok := tcellKeys[e.Key]; ok {
		return k, 0
	}
	return tcell.KeyNUL, 0
}
