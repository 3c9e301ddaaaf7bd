// Package sdlsource turns SDL2 events into input events.
package sdlsource

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/triedit/internal/engine/input"
)

var scancodes = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_I:        input.KeyI,
	sdl.SCANCODE_O:        input.KeyO,
	sdl.SCANCODE_P:        input.KeyP,
	sdl.SCANCODE_H:        input.KeyH,
	sdl.SCANCODE_J:        input.KeyJ,
	sdl.SCANCODE_K:        input.KeyK,
	sdl.SCANCODE_L:        input.KeyL,
	sdl.SCANCODE_C:        input.KeyC,
	sdl.SCANCODE_T:        input.KeyT,
	sdl.SCANCODE_F:        input.KeyF,
	sdl.SCANCODE_N:        input.KeyN,
	sdl.SCANCODE_B:        input.KeyB,
	sdl.SCANCODE_R:        input.KeyR,
	sdl.SCANCODE_W:        input.KeyW,
	sdl.SCANCODE_A:        input.KeyA,
	sdl.SCANCODE_S:        input.KeyS,
	sdl.SCANCODE_D:        input.KeyD,
	sdl.SCANCODE_1:        input.Key1,
	sdl.SCANCODE_2:        input.Key2,
	sdl.SCANCODE_3:        input.Key3,
	sdl.SCANCODE_4:        input.Key4,
	sdl.SCANCODE_5:        input.Key5,
	sdl.SCANCODE_6:        input.Key6,
	sdl.SCANCODE_7:        input.Key7,
	sdl.SCANCODE_8:        input.Key8,
	sdl.SCANCODE_9:        input.Key9,
	sdl.SCANCODE_KP_PLUS:  input.KeyZoomIn,
	sdl.SCANCODE_EQUALS:   input.KeyZoomIn,
	sdl.SCANCODE_KP_MINUS: input.KeyZoomOut,
	sdl.SCANCODE_MINUS:    input.KeyZoomOut,
	sdl.SCANCODE_ESCAPE:   input.KeyEscape,
	sdl.SCANCODE_F12:      input.KeyF12,
}

// MapScancode translates an SDL scancode. Unmapped keys return KeyUnknown.
func MapScancode(sc sdl.Scancode) input.Key {
	if k, ok := scancodes[sc]; ok {
		return k
	}
	return input.KeyUnknown
}

// MapButton translates an SDL mouse button index.
func MapButton(b uint8) input.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return input.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return input.ButtonRight
	default:
		return input.ButtonNone
	}
}

// MapMods translates an SDL modifier state.
func MapMods(mod sdl.Keymod) input.Mod {
	var m input.Mod
	if mod&sdl.KMOD_SHIFT != 0 {
		m |= input.ModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		m |= input.ModCtrl
	}
	if mod&sdl.KMOD_ALT != 0 {
		m |= input.ModAlt
	}
	return m
}

// Source polls SDL for events.
type Source struct {
	events input.Events
}

// New creates a new event source.
func New() *Source {
	return &Source{
		events: make(input.Events, 0, 16),
	}
}

// Poll drains the SDL queue and returns this frame's events. The returned
// slice is reused by the next Poll.
func (s *Source) Poll() input.Events {
	s.events = s.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.events = append(s.events, input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				s.events = append(s.events, input.Event{
					Type:   input.EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			key := MapScancode(e.Keysym.Scancode)
			if key == input.KeyUnknown {
				continue
			}
			ev := input.Event{
				Key:    key,
				Repeat: e.Repeat != 0,
				Mods:   MapMods(sdl.Keymod(e.Keysym.Mod)),
			}
			if e.Type == sdl.KEYDOWN {
				ev.Type = input.EventKeyDown
			} else {
				ev.Type = input.EventKeyUp
			}
			s.events = append(s.events, ev)

		case *sdl.MouseMotionEvent:
			s.events = append(s.events, input.Event{
				Type: input.EventMouseMove,
				X:    float32(e.X),
				Y:    float32(e.Y),
				Mods: MapMods(sdl.GetModState()),
			})

		case *sdl.MouseButtonEvent:
			ev := input.Event{
				Button: MapButton(e.Button),
				X:      float32(e.X),
				Y:      float32(e.Y),
				Mods:   MapMods(sdl.GetModState()),
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				ev.Type = input.EventMouseDown
			} else {
				ev.Type = input.EventMouseUp
			}
			s.events = append(s.events, ev)
		}
	}

	return s.events
}
