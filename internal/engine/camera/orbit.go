package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/torus-demo/pkg/math"
)

// OrbitControls moves a bound camera on a sphere around a target point.
// Drag rotates, wheel zooms, pan slides the target in the view plane.
type OrbitControls struct {
	camera *Perspective

	// Spherical coordinates of the camera around camera.Target
	Distance float32
	Pitch    float32 // Elevation above the XZ plane (radians)
	Yaw      float32 // Rotation around Y, zero on +Z (radians, [0, 2π) after a drag)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	RotateSensitivity float32
	ZoomSensitivity   float32
	PanSensitivity    float32

	Enabled bool

	homePosition math.Vec3
	homeTarget   math.Vec3
}

// NewOrbitControls binds controls to a camera, starting from its current
// position and target. The camera is not moved until input arrives.
func NewOrbitControls(cam *Perspective) *OrbitControls {
	o := &OrbitControls{
		camera:            cam,
		MinDistance:       0.5,
		MaxDistance:       cam.Far / 2,
		MinPitch:          -math32.Pi/2 + 0.01,
		MaxPitch:          math32.Pi/2 - 0.01,
		RotateSensitivity: 0.005,
		ZoomSensitivity:   0.1,
		PanSensitivity:    0.002,
		Enabled:           true,
		homePosition:      cam.Position,
		homeTarget:        cam.Target,
	}

	offset := cam.Position.Sub(cam.Target)
	o.Distance = offset.Length()
	if o.Distance > 0 {
		o.Pitch = math32.Asin(offset.Y / o.Distance)
		o.Yaw = math32.Atan2(offset.X, offset.Z)
	}
	if o.Distance < o.MinDistance {
		o.MinDistance = o.Distance
	}
	return o
}

// Reset returns the camera to where it was when the controls were bound.
func (o *OrbitControls) Reset() {
	o.camera.Position = o.homePosition
	o.camera.Target = o.homeTarget
	offset := o.homePosition.Sub(o.homeTarget)
	o.Distance = offset.Length()
	if o.Distance > 0 {
		o.Pitch = math32.Asin(offset.Y / o.Distance)
		o.Yaw = math32.Atan2(offset.X, offset.Z)
	}
}

// HandleDrag rotates around the target by a pointer delta in pixels.
func (o *OrbitControls) HandleDrag(deltaX, deltaY float32) {
	if !o.Enabled {
		return
	}
	o.Yaw = math.WrapAngle(o.Yaw - deltaX*o.RotateSensitivity)
	o.Pitch += deltaY * o.RotateSensitivity
	o.Pitch = clamp(o.Pitch, o.MinPitch, o.MaxPitch)
	o.update()
}

// HandleZoom dollies toward (positive delta) or away from the target.
func (o *OrbitControls) HandleZoom(delta float32) {
	if !o.Enabled {
		return
	}
	o.Distance -= delta * o.Distance * o.ZoomSensitivity
	o.Distance = clamp(o.Distance, o.MinDistance, o.MaxDistance)
	o.update()
}

// HandlePan slides camera and target together along the view plane.
// Speed scales with distance so panning feels the same at any zoom.
func (o *OrbitControls) HandlePan(deltaX, deltaY float32) {
	if !o.Enabled {
		return
	}
	forward := o.camera.Forward()
	right := forward.Cross(o.camera.Up).Normalize()
	up := right.Cross(forward)

	speed := o.Distance * o.PanSensitivity
	move := right.Scale(-deltaX * speed).Add(up.Scale(deltaY * speed))

	o.camera.Target = o.camera.Target.Add(move)
	o.update()
}

// update writes the spherical coordinates back to the camera.
func (o *OrbitControls) update() {
	cosPitch := math32.Cos(o.Pitch)
	offset := math.Vec3{
		X: o.Distance * cosPitch * math32.Sin(o.Yaw),
		Y: o.Distance * math32.Sin(o.Pitch),
		Z: o.Distance * cosPitch * math32.Cos(o.Yaw),
	}
	o.camera.Position = o.camera.Target.Add(offset)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
