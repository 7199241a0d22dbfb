// Package input defines the engine's input events and tracks button state
// between them. Events are produced by the window package.
package input

// EventType identifies what an Event carries.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Button is a mouse button. Values match SDL's button indices.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Key is a keyboard key the engine cares about.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF12
	KeyR
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	MouseX int
	MouseY int
	// DX and DY are the relative motion of a mouse move.
	DX, DY int
	Button Button
	// Wheel is the vertical scroll amount, positive away from the user.
	Wheel float32
}

// State remembers which mouse buttons are held.
type State struct {
	buttons [8]bool
}

// Apply updates the state from an event.
func (s *State) Apply(e Event) {
	if int(e.Button) >= len(s.buttons) {
		return
	}
	switch e.Type {
	case EventMouseDown:
		s.buttons[e.Button] = true
	case EventMouseUp:
		s.buttons[e.Button] = false
	}
}

// Held reports whether the button is currently down.
func (s *State) Held(b Button) bool {
	return int(b) < len(s.buttons) && s.buttons[b]
}

// Reset releases all buttons, e.g. when the window loses focus.
func (s *State) Reset() {
	s.buttons = [8]bool{}
}

// IsKeyPressed checks if a specific key was pressed in the batch.
func IsKeyPressed(events []Event, key Key) bool {
	for _, e := range events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

// QuitRequested reports whether the batch contains a quit event.
func QuitRequested(events []Event) bool {
	for _, e := range events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}
