package ui

import (
	"github.com/gdamore/tcell/v2"
)

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsStartKey returns true if the key should start/confirm
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}

// MouseTracker turns tcell's button-state mouse events into clicks
type MouseTracker struct {
	prev tcell.ButtonMask
}

// Update records the event and reports whether the primary button was just pressed
func (m *MouseTracker) Update(ev *tcell.EventMouse) bool {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && m.prev&tcell.Button1 == 0
	m.prev = buttons
	return pressed
}
