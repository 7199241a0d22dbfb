package geometry

// Plane is a flat grid in the XY plane facing +Z.
type Plane struct {
	Width, Height  float32
	WidthSegments  int
	HeightSegments int
}

// Name implements Shape.
func (p Plane) Name() string { return "plane" }

func (p Plane) build() ([]Vertex, []uint32) {
	cols := max(p.WidthSegments, 1)
	rows := max(p.HeightSegments, 1)
	segW := p.Width / float32(cols)
	segH := p.Height / float32(rows)

	vertices := make([]Vertex, 0, (cols+1)*(rows+1))
	for iy := 0; iy <= rows; iy++ {
		y := float32(iy)*segH - p.Height/2
		for ix := 0; ix <= cols; ix++ {
			x := float32(ix)*segW - p.Width/2
			vertices = append(vertices, Vertex{
				Position: [3]float32{x, -y, 0},
				Normal:   [3]float32{0, 0, 1},
				UV:       [2]float32{float32(ix) / float32(cols), 1 - float32(iy)/float32(rows)},
			})
		}
	}
	return vertices, gridIndices(cols, rows, false)
}
