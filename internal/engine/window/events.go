package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/torus-demo/internal/engine/input"
)

var keyMap = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
	sdl.SCANCODE_F12:    input.KeyF12,
	sdl.SCANCODE_R:      input.KeyR,
}

// PollEvents drains the SDL queue and returns the converted events.
// The returned slice is reused by the next call.
func (w *Window) PollEvents() []input.Event {
	w.events = w.events[:0]
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := convert(event); ok {
			w.events = append(w.events, e)
		}
	}
	return w.events
}

func convert(event sdl.Event) (input.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return input.Event{Type: input.EventQuit}, true

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return input.Event{}, false
		}
		key, ok := keyMap[e.Keysym.Scancode]
		if !ok {
			key = input.KeyUnknown
		}
		typ := input.EventKeyUp
		if e.Type == sdl.KEYDOWN {
			typ = input.EventKeyDown
		}
		return input.Event{Type: typ, Key: key}, true

	case *sdl.MouseMotionEvent:
		return input.Event{
			Type:   input.EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			DX:     int(e.XRel),
			DY:     int(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		typ := input.EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			typ = input.EventMouseDown
		}
		return input.Event{
			Type:   typ,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: input.Button(e.Button),
		}, true

	case *sdl.MouseWheelEvent:
		wheel := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			wheel = -wheel
		}
		return input.Event{Type: input.EventMouseWheel, Wheel: wheel}, true
	}
	return input.Event{}, false
}
