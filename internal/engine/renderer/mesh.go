package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/torus-demo/internal/engine/geometry"
	"github.com/Faultbox/torus-demo/internal/engine/scene"
)

// gpuMesh holds the GL buffers of one uploaded mesh.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	source        *geometry.Geometry
}

// upload creates buffers for meshes seen for the first time, and re-uploads
// meshes whose geometry was swapped.
func (r *Renderer) upload(s *scene.Scene) error {
	for _, m := range s.Meshes() {
		if m.Geometry == nil {
			return fmt.Errorf("mesh %q has no geometry", m.Name)
		}
		if gm, ok := r.meshes[m]; ok {
			if gm.source == m.Geometry {
				continue
			}
			gm.destroy()
		}
		gm, err := newGPUMesh(m.Geometry)
		if err != nil {
			return fmt.Errorf("uploading mesh %q: %w", m.Name, err)
		}
		r.meshes[m] = gm
		r.log.Debug("mesh uploaded",
			zap.String("name", m.Name),
			zap.String("shape", m.Geometry.Shape.Name()),
			zap.Int("vertices", len(m.Geometry.Vertices)),
			zap.Int("triangles", m.Geometry.TriangleCount()),
		)
	}
	return nil
}

func newGPUMesh(g *geometry.Geometry) (*gpuMesh, error) {
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return nil, fmt.Errorf("empty geometry")
	}

	gm := &gpuMesh{indexCount: int32(len(g.Indices)), source: g}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*geometry.VertexStride,
		unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4,
		unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, geometry.VertexStride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, geometry.VertexStride, 12)
	gl.EnableVertexAttribArray(1)
	// UV (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, geometry.VertexStride, 24)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return gm, nil
}

func (gm *gpuMesh) draw() {
	if gm == nil {
		return
	}
	gl.BindVertexArray(gm.vao)
	gl.DrawElements(gl.TRIANGLES, gm.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (gm *gpuMesh) destroy() {
	if gm.vao != 0 {
		gl.DeleteVertexArrays(1, &gm.vao)
	}
	if gm.vbo != 0 {
		gl.DeleteBuffers(1, &gm.vbo)
	}
	if gm.ebo != 0 {
		gl.DeleteBuffers(1, &gm.ebo)
	}
}
