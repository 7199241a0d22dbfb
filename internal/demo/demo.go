// Package demo builds the rotating-torus scene and drives its frames.
//
// Init assembles the scene once and renders it. Frame advances the
// subject's rotation and renders again; Run repeats that against a Host
// until the window closes. All state lives in Context.
package demo

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/torus-demo/internal/config"
	"github.com/Faultbox/torus-demo/internal/engine/camera"
	"github.com/Faultbox/torus-demo/internal/engine/input"
	"github.com/Faultbox/torus-demo/internal/engine/material"
	"github.com/Faultbox/torus-demo/internal/engine/scene"
	"github.com/Faultbox/torus-demo/internal/logger"
	"github.com/Faultbox/torus-demo/pkg/math"
)

// Mesh names used in the scene.
const (
	SubjectName = "subject"
	PlaneName   = "ground"
)

// ErrEmptySurface is returned when the surface has no drawable area.
var ErrEmptySurface = errors.New("demo: surface has zero size")

// Surface reports the pixel size of the render target.
type Surface interface {
	Size() (width, height int)
}

// Renderer draws a scene from a camera.
type Renderer interface {
	Render(s *scene.Scene, cam *camera.Perspective) error
}

// Host is the window side of the frame loop.
type Host interface {
	// PollEvents returns the input received since the last call.
	PollEvents() []input.Event
	// Present shows the rendered frame. With vsync it blocks until the
	// next display refresh.
	Present()
}

// Context owns everything the demo needs between frames.
type Context struct {
	Scene    *scene.Scene
	Camera   *camera.Perspective
	Controls *camera.OrbitControls
	Subject  *scene.Mesh
	Plane    *scene.Mesh

	Width, Height int
	// RateX and RateY are the radians the subject turns per frame.
	RateX, RateY float64

	renderer Renderer
	buttons  input.State
	frames   uint64
	log      *zap.Logger
}

// Init builds the scene described by cfg for the given surface and renders
// it once.
func Init(cfg config.SceneConfig, surface Surface, r Renderer) (*Context, error) {
	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySurface, width, height)
	}

	c := &Context{
		Scene:    scene.New(),
		Width:    width,
		Height:   height,
		RateX:    cfg.RotationRateX,
		RateY:    cfg.RotationRateY,
		renderer: r,
		log:      logger.Named("demo"),
	}
	c.Scene.Background = material.Hex(cfg.ClearColor)

	cc := cfg.Camera
	c.Camera = camera.NewPerspective(cc.FOV, float32(width)/float32(height), cc.Near, cc.Far)
	c.Camera.SetPosition(cc.Position[0], cc.Position[1], cc.Position[2])
	c.Camera.LookAt(math.Origin)

	geo, err := buildGeometry(cfg)
	if err != nil {
		return nil, err
	}
	mat, err := buildMaterial(cfg)
	if err != nil {
		return nil, err
	}
	c.Subject = scene.NewMesh(SubjectName, geo, mat)
	c.Subject.CastShadow = true
	c.Scene.AddMesh(c.Subject)

	lights, err := buildLights(cfg.LightSet)
	if err != nil {
		return nil, err
	}
	c.Scene.AddLight(lights...)

	c.Plane = buildPlane(cfg.Plane)
	c.Scene.AddMesh(c.Plane)

	c.Controls = camera.NewOrbitControls(c.Camera)

	c.log.Info("scene ready",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.String("geometry", geo.Shape.Name()),
		zap.Stringer("material", mat.Model),
		zap.String("lights", string(cfg.LightSet)),
		zap.Int("light_count", len(lights)),
	)

	if err := r.Render(c.Scene, c.Camera); err != nil {
		return nil, fmt.Errorf("initial render: %w", err)
	}
	return c, nil
}

// Tick advances the subject's rotation by the given number of frames.
// Angles are derived from the frame count modulo 2π.
func (c *Context) Tick(frames int) {
	if frames <= 0 {
		return
	}
	c.frames += uint64(frames)
	c.Subject.Rotation.X = math.AngleAfter(c.frames, c.RateX)
	c.Subject.Rotation.Y = math.AngleAfter(c.frames, c.RateY)
}

// Frames returns how many frames have been ticked.
func (c *Context) Frames() uint64 {
	return c.frames
}

// Frame advances one frame and renders it.
func (c *Context) Frame() error {
	c.Tick(1)
	return c.renderer.Render(c.Scene, c.Camera)
}
