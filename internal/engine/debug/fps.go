package debug

import "time"

// FPSCounter averages frame rate over fixed windows.
type FPSCounter struct {
	Window  time.Duration
	frames  int
	elapsed time.Duration
}

// NewFPSCounter returns a counter that reports once per second.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{Window: time.Second}
}

// Frame records one frame that took dt. When a window completes it returns
// the average frame rate over it and true.
func (c *FPSCounter) Frame(dt time.Duration) (float64, bool) {
	c.frames++
	c.elapsed += dt
	if c.elapsed < c.Window {
		return 0, false
	}
	fps := float64(c.frames) / c.elapsed.Seconds()
	c.frames = 0
	c.elapsed = 0
	return fps, true
}
