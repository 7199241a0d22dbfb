// Package camera provides the perspective camera and orbit controls.
package camera

import (
	"github.com/Faultbox/torus-demo/pkg/math"
)

// Perspective is a pinhole camera looking from Position toward Target.
type Perspective struct {
	FOV    float32 // Vertical field of view, degrees
	Aspect float32 // Width / height
	Near   float32
	Far    float32

	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// NewPerspective creates a camera at the origin looking down -Z.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	return &Perspective{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: math.Vec3{X: 0, Y: 0, Z: -1},
		Up:     math.Up,
	}
}

// SetPosition moves the camera without changing what it looks at.
func (c *Perspective) SetPosition(x, y, z float32) {
	c.Position = math.Vec3{X: x, Y: y, Z: z}
}

// LookAt orients the camera toward a world point.
func (c *Perspective) LookAt(target math.Vec3) {
	c.Target = target
}

// Forward returns the unit view direction.
func (c *Perspective) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// ViewMatrix returns the world-to-view transform.
func (c *Perspective) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the view-to-clip transform.
func (c *Perspective) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), c.Aspect, c.Near, c.Far)
}
