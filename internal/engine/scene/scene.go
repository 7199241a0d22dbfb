// Package scene holds the renderable objects and lights of a 3D scene.
package scene

import (
	"github.com/Faultbox/torus-demo/internal/engine/geometry"
	"github.com/Faultbox/torus-demo/internal/engine/lighting"
	"github.com/Faultbox/torus-demo/internal/engine/material"
)

// Scene is a flat list of meshes and lights plus a background color.
type Scene struct {
	Background material.Color

	meshes []*Mesh
	lights []*lighting.Light
}

// New creates an empty scene with a black background.
func New() *Scene {
	return &Scene{Background: material.ColorBlack}
}

// AddMesh appends meshes to the scene.
func (s *Scene) AddMesh(meshes ...*Mesh) {
	s.meshes = append(s.meshes, meshes...)
}

// AddLight appends lights to the scene.
func (s *Scene) AddLight(lights ...*lighting.Light) {
	s.lights = append(s.lights, lights...)
}

// Meshes returns the meshes in insertion order.
func (s *Scene) Meshes() []*Mesh {
	return s.meshes
}

// Lights returns the lights in insertion order.
func (s *Scene) Lights() []*lighting.Light {
	return s.lights
}

// MeshByName returns the first mesh with the given name, or nil.
func (s *Scene) MeshByName(name string) *Mesh {
	for _, m := range s.meshes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// CountLights returns how many lights of the given kind the scene holds.
func (s *Scene) CountLights(kind lighting.Kind) int {
	n := 0
	for _, l := range s.lights {
		if l.Kind == kind {
			n++
		}
	}
	return n
}

// Bounds returns the world-space box around all visible meshes.
func (s *Scene) Bounds() geometry.Bounds {
	var (
		b     geometry.Bounds
		first = true
	)
	for _, m := range s.meshes {
		if !m.Visible || m.Geometry == nil {
			continue
		}
		mb := m.WorldBounds()
		if first {
			b = mb
			first = false
			continue
		}
		for i := 0; i < 3; i++ {
			b.Min[i] = min(b.Min[i], mb.Min[i])
			b.Max[i] = max(b.Max[i], mb.Max[i])
		}
	}
	return b
}
