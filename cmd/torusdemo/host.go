package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/torus-demo/internal/engine/debug"
	"github.com/Faultbox/torus-demo/internal/engine/input"
	"github.com/Faultbox/torus-demo/internal/engine/renderer"
	"github.com/Faultbox/torus-demo/internal/engine/window"
	"github.com/Faultbox/torus-demo/internal/logger"
)

// host connects the frame loop to the SDL window. It also handles the
// debug keys that need the GL back buffer.
type host struct {
	win         *window.Window
	renderer    *renderer.Renderer
	screenshots *debug.ScreenshotCapture
	fps         *debug.FPSCounter

	wantShot  bool
	lastFrame time.Time
}

func (h *host) PollEvents() []input.Event {
	events := h.win.PollEvents()
	if input.IsKeyPressed(events, input.KeyF12) {
		h.wantShot = true
	}
	return events
}

func (h *host) Present() {
	if h.wantShot {
		h.wantShot = false
		h.capture()
	}
	h.win.SwapBuffers()

	if h.fps == nil {
		return
	}
	now := time.Now()
	if !h.lastFrame.IsZero() {
		if fps, ok := h.fps.Frame(now.Sub(h.lastFrame)); ok {
			logger.Debug("fps", zap.Float64("fps", fps))
		}
	}
	h.lastFrame = now
}

// capture saves the frame that is about to be presented.
func (h *host) capture() {
	pixels, w, hgt := h.renderer.ReadPixels()
	path, err := h.screenshots.CaptureFromPixels(pixels, w, hgt)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
