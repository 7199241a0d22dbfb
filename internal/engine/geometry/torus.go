package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/torus-demo/pkg/math"
)

// Torus is a ring in the XY plane centered on the origin.
type Torus struct {
	Radius          float32 // Center of the ring to center of the tube
	Tube            float32 // Tube radius
	RadialSegments  int     // Segments around the tube cross-section
	TubularSegments int     // Segments along the ring
}

// Name implements Shape.
func (t Torus) Name() string { return "torus" }

func (t Torus) build() ([]Vertex, []uint32) {
	radial := max(t.RadialSegments, 2)
	tubular := max(t.TubularSegments, 3)

	vertices := make([]Vertex, 0, (radial+1)*(tubular+1))
	for j := 0; j <= radial; j++ {
		v := float32(j) / float32(radial) * math.TwoPi
		for i := 0; i <= tubular; i++ {
			u := float32(i) / float32(tubular) * math.TwoPi

			ring := t.Radius + t.Tube*math32.Cos(v)
			pos := math.Vec3{
				X: ring * math32.Cos(u),
				Y: ring * math32.Sin(u),
				Z: t.Tube * math32.Sin(v),
			}
			center := math.Vec3{X: t.Radius * math32.Cos(u), Y: t.Radius * math32.Sin(u)}

			vertices = append(vertices, Vertex{
				Position: pos.Array(),
				Normal:   pos.Sub(center).Normalize().Array(),
				UV:       [2]float32{float32(i) / float32(tubular), float32(j) / float32(radial)},
			})
		}
	}

	return vertices, gridIndices(tubular, radial, true)
}
