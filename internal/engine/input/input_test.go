package input

import "testing"

func TestStateTracksButtons(t *testing.T) {
	var s State
	s.Apply(Event{Type: EventMouseDown, Button: ButtonLeft})
	s.Apply(Event{Type: EventMouseDown, Button: ButtonRight})
	s.Apply(Event{Type: EventMouseUp, Button: ButtonRight})

	if !s.Held(ButtonLeft) {
		t.Error("left button should be held")
	}
	if s.Held(ButtonRight) {
		t.Error("right button should be released")
	}

	s.Apply(Event{Type: EventMouseDown, Button: Button(200)}) // out of range, ignored
	if s.Held(Button(200)) {
		t.Error("out of range button reported as held")
	}

	s.Reset()
	if s.Held(ButtonLeft) {
		t.Error("Reset should release all buttons")
	}
}

func TestBatchQueries(t *testing.T) {
	events := []Event{
		{Type: EventMouseMove, DX: 3},
		{Type: EventKeyUp, Key: KeyF12},
		{Type: EventKeyDown, Key: KeyEscape},
	}
	if !IsKeyPressed(events, KeyEscape) {
		t.Error("escape press not found")
	}
	if IsKeyPressed(events, KeyF12) {
		t.Error("key up should not count as a press")
	}
	if QuitRequested(events) {
		t.Error("no quit event in batch")
	}
	if !QuitRequested(append(events, Event{Type: EventQuit})) {
		t.Error("quit event not detected")
	}
}
