// Package input defines the window-system independent event model the
// editor consumes.
package input

import "fmt"

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventQuit:
		return "quit"
	case EventWindowResize:
		return "resize"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventMouseMove:
		return "mouse-move"
	case EventMouseDown:
		return "mouse-down"
	case EventMouseUp:
		return "mouse-up"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Button is a mouse button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Mod is a bit set of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all bits of m2 are set.
func (m Mod) Has(m2 Mod) bool {
	return m&m2 == m2
}

// Event is a processed input event. Mouse coordinates are in window points.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool
	Mods   Mod
	Button Button
	X, Y   float32
	Width  int
	Height int
}

// IsKey reports whether e is a non-repeat key event of the given type.
func (e Event) IsKey(t EventType, k Key) bool {
	return e.Type == t && e.Key == k && !e.Repeat
}

// Events is one frame's worth of events.
type Events []Event

// KeyPressed checks if a specific key went down this frame.
func (es Events) KeyPressed(k Key) bool {
	for _, e := range es {
		if e.IsKey(EventKeyDown, k) {
			return true
		}
	}
	return false
}

// Quit reports whether a quit was requested this frame.
func (es Events) Quit() bool {
	for _, e := range es {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}
