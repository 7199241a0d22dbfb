// Package renderer draws a scene with OpenGL: one depth pass per shadow
// casting light, then a lit forward pass.
package renderer

import (
	"fmt"
	"strconv"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/torus-demo/internal/engine/camera"
	"github.com/Faultbox/torus-demo/internal/engine/lighting"
	"github.com/Faultbox/torus-demo/internal/engine/renderer/shaders"
	"github.com/Faultbox/torus-demo/internal/engine/scene"
	"github.com/Faultbox/torus-demo/internal/engine/shader"
	"github.com/Faultbox/torus-demo/internal/engine/shadow"
	"github.com/Faultbox/torus-demo/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	Antialias bool
	Shadow    shadow.Settings
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	meshProgram  *shader.Program
	depthProgram *shader.Program

	meshes     map[*scene.Mesh]*gpuMesh
	shadowMaps []*shadow.Map
	lights     *lighting.Uniforms
}

// New creates a new renderer.
// Must be called after the OpenGL context is created, on the same thread.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		meshes: make(map[*scene.Mesh]*gpuMesh),
		lights: lighting.NewUniforms(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if cfg.Antialias {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	if err := r.loadPrograms(); err != nil {
		r.Close()
		return nil, err
	}

	if cfg.Shadow.Enabled {
		for i := 0; i < lighting.MaxShadowCasters; i++ {
			sm, err := shadow.NewMap(cfg.Shadow.Resolution)
			if err != nil {
				r.Close()
				return nil, fmt.Errorf("shadow map %d: %w", i, err)
			}
			r.shadowMaps = append(r.shadowMaps, sm)
		}
		r.log.Info("shadow maps allocated",
			zap.Int("count", len(r.shadowMaps)),
			zap.Int32("resolution", r.shadowMaps[0].Resolution),
			zap.Stringer("type", cfg.Shadow.Type),
		)
	}

	return r, nil
}

// programDefines are the compile-time array sizes shared with the GLSL code.
func programDefines() shader.Defines {
	return shader.Defines{
		"MAX_LIGHTS":  strconv.Itoa(lighting.MaxPerKind),
		"MAX_SHADOWS": strconv.Itoa(lighting.MaxShadowCasters),
	}
}

func (r *Renderer) loadPrograms() error {
	defines := programDefines()

	programs := []struct {
		name string
		dst  **shader.Program
	}{
		{"mesh", &r.meshProgram},
		{"depth", &r.depthProgram},
	}
	for _, p := range programs {
		vs, fs, err := shader.Load(shaders.FS, p.name)
		if err != nil {
			return err
		}
		prog, err := shader.NewProgram(p.name, shader.Preprocess(vs, defines), shader.Preprocess(fs, defines))
		if err != nil {
			return err
		}
		*p.dst = prog
		r.log.Debug("shader program created", zap.String("name", p.name), zap.Uint32("program", prog.ID))
	}
	return nil
}

// ShadowMapEnabled reports whether shadow passes run.
func (r *Renderer) ShadowMapEnabled() bool {
	return r.config.Shadow.Enabled && len(r.shadowMaps) > 0
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for m, gm := range r.meshes {
		gm.destroy()
		delete(r.meshes, m)
	}
	for _, sm := range r.shadowMaps {
		sm.Destroy()
	}
	r.shadowMaps = nil
	if r.meshProgram != nil {
		r.meshProgram.Delete()
	}
	if r.depthProgram != nil {
		r.depthProgram.Delete()
	}
}

// Render draws the scene from the camera into the default framebuffer.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) error {
	r.lights.Collect(s.Lights())

	if err := r.upload(s); err != nil {
		return err
	}

	lightSpace := make([]float32, 16*lighting.MaxShadowCasters)
	if r.ShadowMapEnabled() {
		bounds := shadow.FromBounds(s.Bounds())
		for i, l := range r.lights.Casters {
			if !r.shadowMaps[i].IsValid() {
				continue
			}
			m, ok := shadow.LightMatrix(l, bounds)
			if !ok {
				continue
			}
			copy(lightSpace[i*16:], m[:])
			r.depthPass(s, r.shadowMaps[i], m)
		}
	}

	r.mainPass(s, cam, lightSpace)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("render: GL error 0x%x", code)
	}
	return nil
}
