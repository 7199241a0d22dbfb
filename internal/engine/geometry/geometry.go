// Package geometry builds indexed triangle meshes for primitive shapes.
package geometry

// Vertex is an interleaved mesh vertex ready for GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// VertexStride is the size of one Vertex in bytes.
const VertexStride = 8 * 4

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Corners returns the eight corners of the box. Bit 0 of the index selects
// Max on X, bit 1 on Y and bit 2 on Z.
func (b Bounds) Corners() [8][3]float32 {
	var out [8][3]float32
	for i := range out {
		out[i] = b.Min
		if i&1 != 0 {
			out[i][0] = b.Max[0]
		}
		if i&2 != 0 {
			out[i][1] = b.Max[1]
		}
		if i&4 != 0 {
			out[i][2] = b.Max[2]
		}
	}
	return out
}

// Shape describes the parameters of a primitive. The concrete types in this
// package are the only implementations.
type Shape interface {
	// Name returns a short identifier used in logs.
	Name() string
	build() ([]Vertex, []uint32)
}

// Geometry is a built shape: the parameters it came from plus its triangles.
type Geometry struct {
	Shape    Shape
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// New tessellates a shape.
func New(shape Shape) *Geometry {
	vertices, indices := shape.build()
	return &Geometry{
		Shape:    shape,
		Vertices: vertices,
		Indices:  indices,
		Bounds:   computeBounds(vertices),
	}
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	return b
}

// gridIndices emits two triangles per cell of a (cols+1) x (rows+1) vertex grid
// laid out row by row. reverse flips the winding of every triangle.
func gridIndices(cols, rows int, reverse bool) []uint32 {
	indices := make([]uint32, 0, cols*rows*6)
	stride := uint32(cols + 1)
	for iy := 0; iy < rows; iy++ {
		for ix := 0; ix < cols; ix++ {
			a := uint32(ix) + stride*uint32(iy)
			b := uint32(ix) + stride*uint32(iy+1)
			c := uint32(ix+1) + stride*uint32(iy+1)
			d := uint32(ix+1) + stride*uint32(iy)
			if reverse {
				indices = append(indices, b, a, c, a, d, c)
			} else {
				indices = append(indices, a, b, d, b, c, d)
			}
		}
	}
	return indices
}
