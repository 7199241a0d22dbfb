package demo

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/torus-demo/internal/config"
	"github.com/Faultbox/torus-demo/internal/engine/geometry"
	"github.com/Faultbox/torus-demo/internal/engine/lighting"
	"github.com/Faultbox/torus-demo/internal/engine/material"
	"github.com/Faultbox/torus-demo/internal/engine/scene"
	"github.com/Faultbox/torus-demo/pkg/math"
)

func buildGeometry(cfg config.SceneConfig) (*geometry.Geometry, error) {
	switch cfg.Geometry {
	case config.GeometryTorus:
		t := cfg.Torus
		return geometry.New(geometry.Torus{
			Radius:          t.Radius,
			Tube:            t.Tube,
			RadialSegments:  t.RadialSegments,
			TubularSegments: t.TubularSegments,
		}), nil
	case config.GeometryBox:
		b := cfg.Box
		return geometry.New(geometry.Box{Width: b.Width, Height: b.Height, Depth: b.Depth}), nil
	case config.GeometrySphere:
		s := cfg.Sphere
		return geometry.New(geometry.Sphere{
			Radius:         s.Radius,
			WidthSegments:  s.WidthSegments,
			HeightSegments: s.HeightSegments,
		}), nil
	}
	return nil, fmt.Errorf("unknown geometry %q", cfg.Geometry)
}

func buildMaterial(cfg config.SceneConfig) (*material.Material, error) {
	switch cfg.Material {
	case config.MaterialStandard:
		s := cfg.Standard
		return material.NewStandard(material.Hex(s.Color), material.Hex(s.Emissive), s.Metalness, s.Roughness), nil
	case config.MaterialNormal:
		return material.NewNormal(), nil
	case config.MaterialBasic:
		return material.NewBasic(material.Hex(cfg.Basic.Color), cfg.Basic.Wireframe), nil
	case config.MaterialLambert:
		return material.NewLambert(material.ColorWhite), nil
	case config.MaterialPhong:
		p := cfg.Phong
		return material.NewPhong(material.Hex(p.Color), material.Hex(p.Specular), p.Shininess), nil
	}
	return nil, fmt.Errorf("unknown material %q", cfg.Material)
}

// buildPlane makes the shadow-receiving ground: an XY plane turned flat
// and lowered below the subject.
func buildPlane(cfg config.PlaneConfig) *scene.Mesh {
	geo := geometry.New(geometry.Plane{
		Width:          cfg.Width,
		Height:         cfg.Height,
		WidthSegments:  cfg.WidthSegments,
		HeightSegments: cfg.HeightSegments,
	})
	mat := material.NewStandard(material.Hex(cfg.Color), material.ColorBlack, 0, 1)

	m := scene.NewMesh(PlaneName, geo, mat)
	m.Rotation.X = -math32.Pi / 2
	m.Position = math.Vec3{X: 0, Y: cfg.OffsetY, Z: 0}
	m.ReceiveShadow = true
	return m
}

func directional(name string, hex uint32, intensity float32, pos math.Vec3, shadow bool) *lighting.Light {
	l := lighting.NewDirectional(material.Hex(hex), intensity)
	l.Name = name
	l.Position = pos
	l.CastShadow = shadow
	return l
}

// buildLights returns the named light set in scene order.
func buildLights(set config.LightSetKind) ([]*lighting.Light, error) {
	ambient := lighting.NewAmbient(material.Hex(0x444444), 1)

	point := lighting.NewPoint(material.Hex(0xFDB813), 1, 0)
	point.Position = math.Vec3{X: 10, Y: 7.5, Z: 5}
	point.CastShadow = true

	orange := directional("orange", 0xff8100, 0.5, math.Vec3{X: 2, Y: 10, Z: 1}, true)
	// Stays at the default position straight above the origin
	top := directional("top", 0xffffff, 0.5, math.Up, true)

	switch set {
	case config.LightSetReference:
		return []*lighting.Light{ambient, point, orange, top}, nil

	case config.LightSetTricolor:
		cyan := directional("cyan", 0x05c8ff, 0.5, math.Vec3{X: 10, Y: 1, Z: 2}, true)
		green := directional("green", 0x3dff00, 0.5, math.Vec3{X: 2, Y: 1, Z: 10}, false)
		return []*lighting.Light{ambient, point, cyan, orange, green, top}, nil

	case config.LightSetHemisphere:
		hemi := lighting.NewHemisphere(material.Hex(0xfdb813), material.Hex(0x080820), 1)
		return []*lighting.Light{ambient, hemi, point, orange, top}, nil
	}
	return nil, fmt.Errorf("unknown light set %q", set)
}
