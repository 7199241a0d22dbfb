package lighting

import (
	"testing"

	"github.com/Faultbox/torus-demo/internal/engine/material"
	"github.com/Faultbox/torus-demo/pkg/math"
)

func TestDirectionalDefaults(t *testing.T) {
	l := NewDirectional(material.ColorWhite, 0.5)
	if l.Position != math.Up {
		t.Errorf("expected default position (0, 1, 0), got %v", l.Position)
	}
	if got := l.Direction(); got != math.Up {
		t.Errorf("expected direction straight up, got %v", got)
	}
	if !l.CanCastShadow() {
		t.Error("directional lights should support shadows")
	}
}

func TestCanCastShadow(t *testing.T) {
	tests := []struct {
		light *Light
		want  bool
	}{
		{NewAmbient(material.ColorWhite, 1), false},
		{NewHemisphere(material.ColorWhite, material.ColorBlack, 1), false},
		{NewPoint(material.ColorWhite, 1, 0), true},
		{NewDirectional(material.ColorWhite, 1), true},
	}
	for _, tt := range tests {
		if got := tt.light.CanCastShadow(); got != tt.want {
			t.Errorf("%s CanCastShadow() = %v, want %v", tt.light.Kind, got, tt.want)
		}
	}
}

func TestCollect(t *testing.T) {
	point := NewPoint(material.Hex(0xff0000), 2, 50)
	point.Position = math.Vec3{X: 10, Y: 7.5, Z: 5}

	sun := NewDirectional(material.ColorWhite, 0.5)
	sun.Position = math.Vec3{X: 0, Y: 10, Z: 0}

	u := NewUniforms()
	u.Collect([]*Light{
		NewAmbient(material.Hex(0x444444), 1),
		NewAmbient(material.Hex(0x444444), 1),
		point,
		sun,
		nil,
	})

	if u.PointCount != 1 || u.DirectionalCount != 1 || u.HemisphereCount != 0 {
		t.Fatalf("unexpected counts: point %d dir %d hemi %d", u.PointCount, u.DirectionalCount, u.HemisphereCount)
	}
	wantAmbient := 2 * float32(0x44) / 255
	if u.Ambient[0] != wantAmbient {
		t.Errorf("ambient = %v, want %v", u.Ambient[0], wantAmbient)
	}
	if u.PointPositions[0] != 10 || u.PointPositions[1] != 7.5 || u.PointPositions[2] != 5 {
		t.Errorf("point position = %v", u.PointPositions[:3])
	}
	if u.PointColors[0] != 2 || u.PointColors[1] != 0 {
		t.Errorf("point color not premultiplied: %v", u.PointColors[:3])
	}
	if u.PointRanges[0] != 50 {
		t.Errorf("point range = %v, want 50", u.PointRanges[0])
	}
	if u.DirectionalDirs[1] != 1 {
		t.Errorf("directional direction = %v, want +Y", u.DirectionalDirs[:3])
	}
	if u.DirectionalColors[0] != 0.5 {
		t.Errorf("directional color = %v, want 0.5", u.DirectionalColors[:3])
	}
	if len(u.PointPositions) != MaxPerKind*3 {
		t.Errorf("arrays must stay sized for the shader, got %d", len(u.PointPositions))
	}
}

func TestCollectOverflow(t *testing.T) {
	var lights []*Light
	for i := 0; i < MaxPerKind+3; i++ {
		lights = append(lights, NewPoint(material.ColorWhite, 1, 0))
	}

	u := NewUniforms()
	u.Collect(lights)
	if u.PointCount != MaxPerKind {
		t.Errorf("expected %d point lights, got %d", MaxPerKind, u.PointCount)
	}
	if u.Dropped != 3 {
		t.Errorf("expected 3 dropped, got %d", u.Dropped)
	}

	// Collect again resets state
	u.Collect(lights[:1])
	if u.PointCount != 1 || u.Dropped != 0 {
		t.Errorf("expected reset, got count %d dropped %d", u.PointCount, u.Dropped)
	}
}

func TestCollectAssignsShadowSlots(t *testing.T) {
	var lights []*Light
	for i := 0; i < MaxShadowCasters+1; i++ {
		l := NewDirectional(material.ColorWhite, 1)
		l.CastShadow = true
		lights = append(lights, l)
	}
	point := NewPoint(material.ColorWhite, 1, 0)
	point.CastShadow = true
	quiet := NewPoint(material.ColorWhite, 1, 0)
	lights = append([]*Light{point, quiet}, lights...)

	u := NewUniforms()
	u.Collect(lights)

	if len(u.Casters) != MaxShadowCasters {
		t.Fatalf("expected %d casters, got %d", MaxShadowCasters, len(u.Casters))
	}
	if u.Casters[0] != point || u.PointShadow[0] != 0 {
		t.Errorf("first point light should own slot 0, got %d", u.PointShadow[0])
	}
	if u.PointShadow[1] != -1 {
		t.Errorf("non-casting light got slot %d", u.PointShadow[1])
	}
	for i := 0; i < MaxShadowCasters-1; i++ {
		if u.DirectionalShadow[i] != int32(i+1) {
			t.Errorf("directional %d slot = %d, want %d", i, u.DirectionalShadow[i], i+1)
		}
	}
	if last := u.DirectionalShadow[MaxShadowCasters]; last != -1 {
		t.Errorf("caster beyond the limit got slot %d", last)
	}
}
