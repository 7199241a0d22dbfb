package scene

import (
	"github.com/Faultbox/torus-demo/internal/engine/geometry"
	"github.com/Faultbox/torus-demo/internal/engine/material"
	"github.com/Faultbox/torus-demo/pkg/math"
)

// Transform places an object in the world: scale, then rotate, then translate.
type Transform struct {
	Position math.Vec3
	Rotation math.Euler
	Scale    math.Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Matrix returns the model matrix T * R * S.
func (t Transform) Matrix() math.Mat4 {
	return math.Translate(t.Position.X, t.Position.Y, t.Position.Z).
		Mul(t.Rotation.Matrix()).
		Mul(math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}

// Mesh is a geometry drawn with a material at a transform.
type Mesh struct {
	Name     string
	Geometry *geometry.Geometry
	Material *material.Material
	Transform

	CastShadow    bool
	ReceiveShadow bool
	Visible       bool
}

// NewMesh creates a visible mesh with the identity transform.
func NewMesh(name string, geo *geometry.Geometry, mat *material.Material) *Mesh {
	return &Mesh{
		Name:      name,
		Geometry:  geo,
		Material:  mat,
		Transform: NewTransform(),
		Visible:   true,
	}
}

// WorldBounds transforms the eight corners of the geometry bounds and
// returns the box around them.
func (m *Mesh) WorldBounds() geometry.Bounds {
	model := m.Matrix()

	var b geometry.Bounds
	for i, corner := range m.Geometry.Bounds.Corners() {
		p := model.TransformPoint(corner)
		if i == 0 {
			b.Min, b.Max = p, p
			continue
		}
		for k := 0; k < 3; k++ {
			b.Min[k] = min(b.Min[k], p[k])
			b.Max[k] = max(b.Max[k], p[k])
		}
	}
	return b
}
