package geometry

// Box is an axis-aligned cuboid centered on the origin.
type Box struct {
	Width, Height, Depth float32
}

// Name implements Shape.
func (b Box) Name() string { return "box" }

// boxFace spans a face from its center along two half-extent axes.
type boxFace struct {
	normal [3]float32
	u, v   [3]float32
}

var boxFaces = [6]boxFace{
	{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
	{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
}

func (b Box) build() ([]Vertex, []uint32) {
	half := [3]float32{b.Width / 2, b.Height / 2, b.Depth / 2}

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range boxFaces {
		base := uint32(len(vertices))
		// Corners in counter-clockwise order seen from outside
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			var pos [3]float32
			for i := 0; i < 3; i++ {
				pos[i] = (f.normal[i] + c[0]*f.u[i] + c[1]*f.v[i]) * half[i]
			}
			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   f.normal,
				UV:       [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}
