package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/torus-demo/internal/engine/camera"
	"github.com/Faultbox/torus-demo/internal/engine/lighting"
	"github.com/Faultbox/torus-demo/internal/engine/material"
	"github.com/Faultbox/torus-demo/internal/engine/scene"
	"github.com/Faultbox/torus-demo/internal/engine/shadow"
	"github.com/Faultbox/torus-demo/pkg/math"
)

// firstShadowUnit is the texture unit of shadow map 0.
const firstShadowUnit = 1

func (r *Renderer) depthPass(s *scene.Scene, sm *shadow.Map, lightSpace math.Mat4) {
	sm.Bind()
	p := r.depthProgram
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uLightSpace"), 1, false, lightSpace.Ptr())

	for _, m := range s.Meshes() {
		if !m.Visible || !m.CastShadow {
			continue
		}
		model := m.Matrix()
		gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
		r.meshes[m].draw()
	}
	sm.Unbind()
}

func (r *Renderer) mainPass(s *scene.Scene, cam *camera.Perspective, lightSpace []float32) {
	bg := s.Background
	gl.ClearColor(bg.R, bg.G, bg.B, bg.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	p := r.meshProgram
	p.Use()

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.Uniform3f(p.Uniform("uCameraPos"), cam.Position.X, cam.Position.Y, cam.Position.Z)

	r.setLightUniforms(r.lights)
	r.setShadowUniforms(lightSpace)

	for _, m := range s.Meshes() {
		if !m.Visible || m.Material == nil {
			continue
		}
		model := m.Matrix()
		normal := model.NormalMatrix()
		gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
		gl.UniformMatrix3fv(p.Uniform("uNormalMatrix"), 1, false, &normal[0])

		receive := int32(0)
		if m.ReceiveShadow && m.Material.Lit() {
			receive = 1
		}
		gl.Uniform1i(p.Uniform("uReceiveShadow"), receive)
		r.setMaterialUniforms(m.Material)

		if m.Material.Wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		}
		r.meshes[m].draw()
		if m.Material.Wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
	}
}

func (r *Renderer) setMaterialUniforms(mat *material.Material) {
	p := r.meshProgram
	gl.Uniform1i(p.Uniform("uModelType"), int32(mat.Model))
	gl.Uniform3f(p.Uniform("uColor"), mat.Color.R, mat.Color.G, mat.Color.B)
	gl.Uniform3f(p.Uniform("uEmissive"), mat.Emissive.R, mat.Emissive.G, mat.Emissive.B)
	gl.Uniform3f(p.Uniform("uSpecular"), mat.Specular.R, mat.Specular.G, mat.Specular.B)
	gl.Uniform1f(p.Uniform("uShininess"), mat.Shininess)
	gl.Uniform1f(p.Uniform("uMetalness"), mat.Metalness)
	gl.Uniform1f(p.Uniform("uRoughness"), mat.Roughness)
	gl.Uniform1f(p.Uniform("uOpacity"), mat.Color.A)
}

func (r *Renderer) setLightUniforms(u *lighting.Uniforms) {
	p := r.meshProgram
	n := int32(lighting.MaxPerKind)

	gl.Uniform3f(p.Uniform("uAmbient"), u.Ambient[0], u.Ambient[1], u.Ambient[2])

	gl.Uniform1i(p.Uniform("uHemisphereCount"), int32(u.HemisphereCount))
	gl.Uniform3fv(p.Uniform("uHemisphereSky"), n, &u.HemisphereSky[0])
	gl.Uniform3fv(p.Uniform("uHemisphereGround"), n, &u.HemisphereGround[0])
	gl.Uniform3fv(p.Uniform("uHemisphereDir"), n, &u.HemisphereDir[0])

	gl.Uniform1i(p.Uniform("uPointCount"), int32(u.PointCount))
	gl.Uniform3fv(p.Uniform("uPointPositions"), n, &u.PointPositions[0])
	gl.Uniform3fv(p.Uniform("uPointColors"), n, &u.PointColors[0])
	gl.Uniform1fv(p.Uniform("uPointRanges"), n, &u.PointRanges[0])
	gl.Uniform1fv(p.Uniform("uPointDecays"), n, &u.PointDecays[0])
	gl.Uniform1iv(p.Uniform("uPointShadow"), n, &r.shadowSlots(u.PointShadow)[0])

	gl.Uniform1i(p.Uniform("uDirectionalCount"), int32(u.DirectionalCount))
	gl.Uniform3fv(p.Uniform("uDirectionalDirs"), n, &u.DirectionalDirs[0])
	gl.Uniform3fv(p.Uniform("uDirectionalColors"), n, &u.DirectionalColors[0])
	gl.Uniform1iv(p.Uniform("uDirectionalShadow"), n, &r.shadowSlots(u.DirectionalShadow)[0])
}

// shadowSlots hides every slot when shadows are off.
func (r *Renderer) shadowSlots(slots []int32) []int32 {
	if r.ShadowMapEnabled() {
		return slots
	}
	return disabledSlots(len(slots))
}

func disabledSlots(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = -1
	}
	return out
}

func (r *Renderer) setShadowUniforms(lightSpace []float32) {
	p := r.meshProgram
	settings := r.config.Shadow

	gl.UniformMatrix4fv(p.Uniform("uLightSpace"), lighting.MaxShadowCasters, false, &lightSpace[0])
	gl.Uniform1i(p.Uniform("uShadowKernel"), settings.Type.KernelRadius())
	gl.Uniform1f(p.Uniform("uShadowBias"), settings.Bias)
	gl.Uniform1f(p.Uniform("uShadowTexel"), texelSize(settings.Resolution))

	units := make([]int32, lighting.MaxShadowCasters)
	for i := range units {
		units[i] = int32(firstShadowUnit + i)
		if i < len(r.shadowMaps) {
			r.shadowMaps[i].BindTexture(gl.TEXTURE0 + uint32(units[i]))
		}
	}
	gl.Uniform1iv(p.Uniform("uShadowMaps"), lighting.MaxShadowCasters, &units[0])
}

func texelSize(resolution int32) float32 {
	if resolution <= 0 {
		resolution = shadow.DefaultResolution
	}
	return 1 / float32(resolution)
}
