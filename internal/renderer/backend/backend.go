// Package backend provides the terminal abstraction used by the renderer.
package backend

import "strings"

// Style is the presentation of one cell.
type Style struct {
	Reverse   bool
	Underline bool
	Bold      bool

	// Highlight paints a background color.
	Highlight bool
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Key represents a keyboard key. Control letters arrive as KeyRune with
// ModCtrl set.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = map[Key]string{
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int
}

// String returns the key in keymap notation, such as "ctrl+z" or
// "shift+left". Non-key events return "".
func (e Event) String() string {
	if e.Type != EventKey {
		return ""
	}

	var name string
	switch e.Key {
	case KeyRune:
		name = strings.ToLower(string(e.Rune))
	default:
		name = keyNames[e.Key]
	}
	if name == "" {
		return ""
	}

	var b strings.Builder
	if e.Mod.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if e.Mod.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if e.Mod.Has(ModShift) {
		b.WriteString("shift+")
	}
	b.WriteString(name)
	return b.String()
}

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init initializes the backend. Must be called before any other method.
	Init() error

	// Shutdown releases resources and restores the terminal.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets one cell. Positions outside the terminal are ignored.
	SetContent(x, y int, r rune, style Style)

	// Clear clears the screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next event.
	PollEvent() Event

	// PostEvent posts a synthetic key event.
	PostEvent(event Event)
}
