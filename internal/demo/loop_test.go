package demo

import (
	"errors"
	"testing"

	"github.com/Faultbox/torus-demo/internal/engine/input"
	"github.com/Faultbox/torus-demo/pkg/math"
)

// scriptedHost hands out one batch of events per poll and a quit when the
// script runs out.
type scriptedHost struct {
	batches  [][]input.Event
	polls    int
	presents int
}

func (h *scriptedHost) PollEvents() []input.Event {
	h.polls++
	if len(h.batches) == 0 {
		return []input.Event{{Type: input.EventQuit}}
	}
	b := h.batches[0]
	h.batches = h.batches[1:]
	return b
}

func (h *scriptedHost) Present() { h.presents++ }

func TestRunUntilQuit(t *testing.T) {
	c, r := newTestContext(t)
	host := &scriptedHost{batches: [][]input.Event{nil, nil, nil}}

	if err := Run(c, host); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if c.Frames() != 3 || host.presents != 3 {
		t.Errorf("frames %d, presents %d, want 3 each", c.Frames(), host.presents)
	}
	if r.calls != 4 {
		t.Errorf("renders = %d, want initial + 3", r.calls)
	}
}

func TestRunStopsOnEscape(t *testing.T) {
	c, _ := newTestContext(t)
	host := &scriptedHost{batches: [][]input.Event{
		nil,
		{{Type: input.EventKeyDown, Key: input.KeyEscape}},
		nil,
	}}
	if err := Run(c, host); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if c.Frames() != 1 {
		t.Errorf("frames = %d, want 1", c.Frames())
	}
}

func TestRunReturnsRenderError(t *testing.T) {
	c, r := newTestContext(t)
	boom := errors.New("lost context")
	r.err = boom

	err := Run(c, &scriptedHost{batches: [][]input.Event{nil}})
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want wrapped %v", err, boom)
	}
}

func TestHandleEventsOrbit(t *testing.T) {
	c, _ := newTestContext(t)
	home := c.Camera.Position
	dist := home.Length()

	// Motion without a button does nothing
	c.HandleEvents([]input.Event{{Type: input.EventMouseMove, DX: 50, DY: 10}})
	if c.Camera.Position != home {
		t.Fatalf("hover moved the camera to %v", c.Camera.Position)
	}

	c.HandleEvents([]input.Event{
		{Type: input.EventMouseDown, Button: input.ButtonLeft},
		{Type: input.EventMouseMove, DX: 50, DY: 10},
		{Type: input.EventMouseUp, Button: input.ButtonLeft},
	})
	if c.Camera.Position.Distance(home) < 1e-3 {
		t.Error("left drag should rotate the camera")
	}
	if d := c.Camera.Position.Length(); d < dist-1e-3 || d > dist+1e-3 {
		t.Errorf("rotation changed distance to %v, want %v", d, dist)
	}

	c.HandleEvents([]input.Event{{Type: input.EventMouseWheel, Wheel: 1}})
	if d := c.Camera.Position.Distance(c.Camera.Target); d >= dist {
		t.Errorf("wheel up should zoom in, distance %v", d)
	}

	c.HandleEvents([]input.Event{
		{Type: input.EventMouseDown, Button: input.ButtonRight},
		{Type: input.EventMouseMove, DX: 20},
	})
	if c.Camera.Target == math.Origin {
		t.Error("right drag should pan the target")
	}

	if quit := c.HandleEvents([]input.Event{{Type: input.EventKeyDown, Key: input.KeyR}}); quit {
		t.Error("R should not quit")
	}
	if c.Camera.Position != home || c.Camera.Target != math.Origin {
		t.Errorf("R should reset the camera, got %v -> %v", c.Camera.Position, c.Camera.Target)
	}
}
