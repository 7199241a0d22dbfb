package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/torus-demo/internal/engine/geometry"
	"github.com/Faultbox/torus-demo/internal/engine/lighting"
	"github.com/Faultbox/torus-demo/internal/engine/material"
	"github.com/Faultbox/torus-demo/pkg/math"
)

func TestTransformMatrix(t *testing.T) {
	tr := NewTransform()
	tr.Position = math.Vec3{X: 0, Y: -5, Z: 0}
	tr.Rotation.X = -math32.Pi / 2

	// A +Z (front-facing) point of the XY plane ends up pointing +Y after
	// rotating -90° around X, then gets lowered by 5.
	p := tr.Matrix().TransformPoint([3]float32{0, 0, 1})
	want := [3]float32{0, -4, 0}
	for i := range p {
		if math32.Abs(p[i]-want[i]) > 1e-5 {
			t.Fatalf("TransformPoint = %v, want %v", p, want)
		}
	}
}

func TestMeshWorldBounds(t *testing.T) {
	m := NewMesh("plane", geometry.New(geometry.Plane{Width: 20, Height: 20, WidthSegments: 1, HeightSegments: 1}), material.NewBasic(material.ColorWhite, false))
	m.Rotation.X = -math32.Pi / 2
	m.Position.Y = -5

	b := m.WorldBounds()
	if math32.Abs(b.Min[1]+5) > 1e-4 || math32.Abs(b.Max[1]+5) > 1e-4 {
		t.Errorf("flat plane should sit at y=-5, got %v..%v", b.Min[1], b.Max[1])
	}
	if math32.Abs(b.Min[2]+10) > 1e-4 || math32.Abs(b.Max[2]-10) > 1e-4 {
		t.Errorf("expected z extent ±10, got %v..%v", b.Min[2], b.Max[2])
	}
}

func TestSceneQueries(t *testing.T) {
	s := New()
	torus := NewMesh("subject", geometry.New(geometry.Torus{Radius: 3, Tube: 1, RadialSegments: 8, TubularSegments: 16}), material.NewNormal())
	hidden := NewMesh("hidden", geometry.New(geometry.Box{Width: 100, Height: 100, Depth: 100}), material.NewNormal())
	hidden.Visible = false
	s.AddMesh(torus, hidden)

	s.AddLight(
		lighting.NewAmbient(material.ColorWhite, 1),
		lighting.NewPoint(material.ColorWhite, 1, 0),
		lighting.NewDirectional(material.ColorWhite, 1),
	)

	if s.MeshByName("subject") != torus || s.MeshByName("missing") != nil {
		t.Error("MeshByName lookup failed")
	}
	if got := s.CountLights(lighting.KindDirectional); got != 1 {
		t.Errorf("CountLights(directional) = %d, want 1", got)
	}

	b := s.Bounds()
	if b.Max[0] > 4.001 || b.Min[0] < -4.001 {
		t.Errorf("hidden mesh leaked into bounds: %v", b)
	}
}
