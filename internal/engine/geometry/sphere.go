package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/torus-demo/pkg/math"
)

// Sphere is a UV sphere centered on the origin.
type Sphere struct {
	Radius         float32
	WidthSegments  int // Around the Y axis
	HeightSegments int // Pole to pole
}

// Name implements Shape.
func (s Sphere) Name() string { return "sphere" }

func (s Sphere) build() ([]Vertex, []uint32) {
	cols := max(s.WidthSegments, 3)
	rows := max(s.HeightSegments, 2)

	vertices := make([]Vertex, 0, (cols+1)*(rows+1))
	for iy := 0; iy <= rows; iy++ {
		v := float32(iy) / float32(rows)
		theta := v * math32.Pi
		for ix := 0; ix <= cols; ix++ {
			u := float32(ix) / float32(cols)
			phi := u * math.TwoPi

			pos := math.Vec3{
				X: -s.Radius * math32.Cos(phi) * math32.Sin(theta),
				Y: s.Radius * math32.Cos(theta),
				Z: s.Radius * math32.Sin(phi) * math32.Sin(theta),
			}
			vertices = append(vertices, Vertex{
				Position: pos.Array(),
				Normal:   pos.Normalize().Array(),
				UV:       [2]float32{u, 1 - v},
			})
		}
	}

	// The first and last rows collapse onto the poles, so they get one
	// triangle per cell instead of two.
	stride := uint32(cols + 1)
	indices := make([]uint32, 0, cols*(rows-1)*6)
	for iy := 0; iy < rows; iy++ {
		for ix := 0; ix < cols; ix++ {
			a := stride*uint32(iy) + uint32(ix+1)
			b := stride*uint32(iy) + uint32(ix)
			c := stride*uint32(iy+1) + uint32(ix)
			d := stride*uint32(iy+1) + uint32(ix+1)
			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != rows-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	return vertices, indices
}
