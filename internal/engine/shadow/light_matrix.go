package shadow

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/torus-demo/internal/engine/geometry"
	"github.com/Faultbox/torus-demo/internal/engine/lighting"
	"github.com/Faultbox/torus-demo/pkg/math"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// FromBounds converts geometry bounds into an AABB.
func FromBounds(b geometry.Bounds) AABB {
	return AABB{Min: b.Min, Max: b.Max}
}

// Center returns the center point of the AABB.
func (b AABB) Center() math.Vec3 {
	return math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
}

// Radius returns the distance from center to corner (half-diagonal).
func (b AABB) Radius() float32 {
	dx := (b.Max[0] - b.Min[0]) / 2
	dy := (b.Max[1] - b.Min[1]) / 2
	dz := (b.Max[2] - b.Min[2]) / 2
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// upFor picks an up vector that is not parallel to dir.
func upFor(dir math.Vec3) math.Vec3 {
	if math32.Abs(dir.Y) > 0.99 {
		return math.Vec3{X: 0, Y: 0, Z: 1}
	}
	return math.Up
}

// DirectionalLightMatrix computes the view-projection of a directional
// light. lightDir points from the scene towards the light.
func DirectionalLightMatrix(lightDir math.Vec3, sceneBounds AABB) math.Mat4 {
	center := sceneBounds.Center()
	radius := max(sceneBounds.Radius(), 0.5)
	dir := lightDir.Normalize()

	// Far enough back that the whole scene sits in front of the near plane
	lightDistance := radius * 2
	lightPos := center.Add(dir.Scale(lightDistance))

	view := math.LookAt(lightPos, center, upFor(dir))

	padding := radius * 0.1
	halfSize := radius + padding
	far := lightDistance + radius + padding
	proj := math.Ortho(-halfSize, halfSize, -halfSize, halfSize, 0.1, far)

	return proj.Mul(view)
}

// maxPointFOV caps the frustum when the light sits close to the scene.
const maxPointFOV = 170 * math32.Pi / 180

// PointLightMatrix computes a perspective view-projection from a point
// light towards the scene center, wide enough to cover the bounds.
func PointLightMatrix(lightPos math.Vec3, sceneBounds AABB) math.Mat4 {
	center := sceneBounds.Center()
	radius := max(sceneBounds.Radius(), 0.5)

	toScene := center.Sub(lightPos)
	dist := toScene.Length()
	if dist < 1e-4 {
		// Light at the center: look down and cover what we can
		toScene = math.Vec3{X: 0, Y: -1, Z: 0}
		dist = 0
	}

	var fov, near float32
	if dist > radius {
		fov = min(2*math32.Asin(radius/dist), maxPointFOV)
		near = max(dist-radius, 0.1)
	} else {
		fov = maxPointFOV
		near = 0.1
	}
	far := dist + radius

	target := lightPos.Add(toScene.Normalize())
	view := math.LookAt(lightPos, target, upFor(toScene.Normalize()))
	proj := math.Perspective(fov, 1, near, far)

	return proj.Mul(view)
}

// LightMatrix returns the view-projection used to render l's shadow map,
// or false if the light kind has no shadow map.
func LightMatrix(l *lighting.Light, sceneBounds AABB) (math.Mat4, bool) {
	switch l.Kind {
	case lighting.KindDirectional:
		return DirectionalLightMatrix(l.Direction(), sceneBounds), true
	case lighting.KindPoint:
		return PointLightMatrix(l.Position, sceneBounds), true
	}
	return math.Identity(), false
}
