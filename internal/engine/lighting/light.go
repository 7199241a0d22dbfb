// Package lighting provides light sources and their GPU uniform layout.
package lighting

import (
	"github.com/Faultbox/torus-demo/internal/engine/material"
	"github.com/Faultbox/torus-demo/pkg/math"
)

// Kind identifies the type of light source.
type Kind int

const (
	// KindAmbient lights every fragment equally. Never casts shadows.
	KindAmbient Kind = iota
	// KindHemisphere blends a sky and ground color by normal direction. Never casts shadows.
	KindHemisphere
	// KindPoint emits in all directions from a position.
	KindPoint
	// KindDirectional shines from Position toward Target as if infinitely far away.
	KindDirectional
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAmbient:
		return "ambient"
	case KindHemisphere:
		return "hemisphere"
	case KindPoint:
		return "point"
	case KindDirectional:
		return "directional"
	}
	return "unknown"
}

// Light is a light source. Only the fields relevant to Kind are used.
type Light struct {
	Kind      Kind
	Name      string
	Color     material.Color
	Ground    material.Color // Hemisphere only
	Intensity float32

	Position math.Vec3
	Target   math.Vec3 // Directional only

	// Distance is the point light cutoff range. Zero means no cutoff.
	Distance float32
	Decay    float32

	CastShadow bool
}

// NewAmbient creates an ambient light.
func NewAmbient(color material.Color, intensity float32) *Light {
	return &Light{Kind: KindAmbient, Name: "ambient", Color: color, Intensity: intensity}
}

// NewHemisphere creates a hemisphere light positioned directly above the origin.
func NewHemisphere(sky, ground material.Color, intensity float32) *Light {
	return &Light{
		Kind:      KindHemisphere,
		Name:      "hemisphere",
		Color:     sky,
		Ground:    ground,
		Intensity: intensity,
		Position:  math.Up,
	}
}

// NewPoint creates a point light at the origin.
func NewPoint(color material.Color, intensity, distance float32) *Light {
	return &Light{
		Kind:      KindPoint,
		Name:      "point",
		Color:     color,
		Intensity: intensity,
		Distance:  distance,
		Decay:     1,
	}
}

// NewDirectional creates a directional light above the origin, aimed at it.
func NewDirectional(color material.Color, intensity float32) *Light {
	return &Light{
		Kind:      KindDirectional,
		Name:      "directional",
		Color:     color,
		Intensity: intensity,
		Position:  math.Up,
		Target:    math.Origin,
	}
}

// Direction returns the unit vector pointing from the target toward the light.
// For hemisphere lights it is the sky direction.
func (l *Light) Direction() math.Vec3 {
	return l.Position.Sub(l.Target).Normalize()
}

// CanCastShadow reports whether this kind of light supports shadows.
func (l *Light) CanCastShadow() bool {
	return l.Kind == KindPoint || l.Kind == KindDirectional
}
