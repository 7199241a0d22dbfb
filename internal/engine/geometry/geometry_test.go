package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/torus-demo/pkg/math"
)

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// checkWinding verifies every triangle is counter-clockwise when seen from the
// side its vertex normals point to.
func checkWinding(t *testing.T, g *Geometry) {
	t.Helper()
	for i := 0; i+2 < len(g.Indices); i += 3 {
		v0 := g.Vertices[g.Indices[i]]
		v1 := g.Vertices[g.Indices[i+1]]
		v2 := g.Vertices[g.Indices[i+2]]

		face := vec(v1.Position).Sub(vec(v0.Position)).Cross(vec(v2.Position).Sub(vec(v0.Position)))
		if face.Length() < 1e-6 {
			continue
		}
		avg := vec(v0.Normal).Add(vec(v1.Normal)).Add(vec(v2.Normal))
		if face.Dot(avg) <= 0 {
			t.Fatalf("%s triangle %d winds against its normals", g.Shape.Name(), i/3)
		}
	}
}

func checkIndices(t *testing.T, g *Geometry) {
	t.Helper()
	if len(g.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(g.Indices))
	}
	for _, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(g.Vertices))
		}
	}
}

func TestTorus(t *testing.T) {
	shape := Torus{Radius: 3, Tube: 1, RadialSegments: 25, TubularSegments: 50}
	g := New(shape)

	if g.Shape != shape {
		t.Errorf("shape parameters not kept: %+v", g.Shape)
	}
	if want := 26 * 51; len(g.Vertices) != want {
		t.Errorf("expected %d vertices, got %d", want, len(g.Vertices))
	}
	if want := 25 * 50 * 2; g.TriangleCount() != want {
		t.Errorf("expected %d triangles, got %d", want, g.TriangleCount())
	}
	checkIndices(t, g)
	checkWinding(t, g)

	const eps = 1e-4
	if math32.Abs(g.Bounds.Max[0]-4) > eps || math32.Abs(g.Bounds.Min[0]+4) > eps {
		t.Errorf("expected x extent ±4, got %v..%v", g.Bounds.Min[0], g.Bounds.Max[0])
	}
	// 25 tube segments never land exactly on the top of the tube
	if g.Bounds.Max[2] > 1+eps || g.Bounds.Max[2] < 0.99 || g.Bounds.Min[2] < -1-eps || g.Bounds.Min[2] > -0.99 {
		t.Errorf("expected z extent close to ±1, got %v..%v", g.Bounds.Min[2], g.Bounds.Max[2])
	}

	// Every vertex sits on the tube surface
	for i, v := range g.Vertices {
		p := vec(v.Position)
		ringDist := math32.Sqrt(p.X*p.X+p.Y*p.Y) - 3
		tubeDist := math32.Sqrt(ringDist*ringDist + p.Z*p.Z)
		if math32.Abs(tubeDist-1) > eps {
			t.Fatalf("vertex %d is %v from the tube center line, want 1", i, tubeDist)
		}
		if l := vec(v.Normal).Length(); math32.Abs(l-1) > eps {
			t.Fatalf("vertex %d normal length %v", i, l)
		}
	}
}

func TestSphere(t *testing.T) {
	g := New(Sphere{Radius: 3, WidthSegments: 32, HeightSegments: 32})

	if want := 33 * 33; len(g.Vertices) != want {
		t.Errorf("expected %d vertices, got %d", want, len(g.Vertices))
	}
	if want := 32 * (2*32 - 2); g.TriangleCount() != want {
		t.Errorf("expected %d triangles, got %d", want, g.TriangleCount())
	}
	checkIndices(t, g)
	checkWinding(t, g)

	for i, v := range g.Vertices {
		if d := vec(v.Position).Length(); math32.Abs(d-3) > 1e-4 {
			t.Fatalf("vertex %d at distance %v, want 3", i, d)
		}
	}
}

func TestBox(t *testing.T) {
	g := New(Box{Width: 5, Height: 5, Depth: 5})

	if len(g.Vertices) != 24 {
		t.Errorf("expected 24 vertices, got %d", len(g.Vertices))
	}
	if g.TriangleCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", g.TriangleCount())
	}
	checkIndices(t, g)
	checkWinding(t, g)

	want := Bounds{Min: [3]float32{-2.5, -2.5, -2.5}, Max: [3]float32{2.5, 2.5, 2.5}}
	if g.Bounds != want {
		t.Errorf("expected bounds %v, got %v", want, g.Bounds)
	}
}

func TestPlane(t *testing.T) {
	g := New(Plane{Width: 20, Height: 20, WidthSegments: 32, HeightSegments: 32})

	if want := 33 * 33; len(g.Vertices) != want {
		t.Errorf("expected %d vertices, got %d", want, len(g.Vertices))
	}
	if want := 32 * 32 * 2; g.TriangleCount() != want {
		t.Errorf("expected %d triangles, got %d", want, g.TriangleCount())
	}
	checkIndices(t, g)
	checkWinding(t, g)

	if g.Bounds.Min[0] != -10 || g.Bounds.Max[0] != 10 || g.Bounds.Min[2] != 0 || g.Bounds.Max[2] != 0 {
		t.Errorf("unexpected bounds %v", g.Bounds)
	}
	for _, v := range g.Vertices {
		if v.Normal != [3]float32{0, 0, 1} {
			t.Fatalf("plane normal %v, want +Z", v.Normal)
		}
	}
}

func TestDegenerateSegmentsAreClamped(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"torus", Torus{Radius: 3, Tube: 1}},
		{"sphere", Sphere{Radius: 1}},
		{"plane", Plane{Width: 1, Height: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.shape)
			if g.TriangleCount() == 0 {
				t.Error("expected at least one triangle")
			}
			checkIndices(t, g)
		})
	}
}

func TestBoundsCorners(t *testing.T) {
	b := Bounds{Min: [3]float32{-1, -2, -3}, Max: [3]float32{1, 2, 3}}
	corners := b.Corners()

	if corners[0] != b.Min || corners[7] != b.Max {
		t.Errorf("Corners() should start at Min and end at Max, got %v / %v", corners[0], corners[7])
	}
	seen := make(map[[3]float32]bool)
	for i, c := range corners {
		for k := 0; k < 3; k++ {
			if c[k] != b.Min[k] && c[k] != b.Max[k] {
				t.Errorf("corner %d %v has component %d off the box faces", i, c, k)
			}
		}
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct corners, got %d", len(seen))
	}
}
