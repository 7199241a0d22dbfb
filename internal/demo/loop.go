package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/torus-demo/internal/engine/input"
)

// Run drives frames until the host reports a quit. Each iteration handles
// input, renders one frame and presents it.
func Run(c *Context, host Host) error {
	c.log.Info("frame loop started")
	for {
		if c.HandleEvents(host.PollEvents()) {
			c.log.Info("frame loop stopped", zap.Uint64("frames", c.frames))
			return nil
		}
		if err := c.Frame(); err != nil {
			return fmt.Errorf("frame %d: %w", c.frames, err)
		}
		host.Present()
	}
}

// HandleEvents forwards camera input to the orbit controls. It reports
// whether the demo should stop.
//
// Left drag rotates, right or middle drag pans, the wheel zooms and R puts
// the camera back where it started.
func (c *Context) HandleEvents(events []input.Event) bool {
	for _, e := range events {
		c.buttons.Apply(e)

		switch e.Type {
		case input.EventQuit:
			return true

		case input.EventKeyDown:
			switch e.Key {
			case input.KeyEscape:
				return true
			case input.KeyR:
				c.Controls.Reset()
			}

		case input.EventMouseMove:
			dx, dy := float32(e.DX), float32(e.DY)
			switch {
			case c.buttons.Held(input.ButtonLeft):
				c.Controls.HandleDrag(dx, dy)
			case c.buttons.Held(input.ButtonRight), c.buttons.Held(input.ButtonMiddle):
				c.Controls.HandlePan(dx, dy)
			}

		case input.EventMouseWheel:
			c.Controls.HandleZoom(e.Wheel)
		}
	}
	return false
}
