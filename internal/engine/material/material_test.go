package material

import "testing"

func TestHex(t *testing.T) {
	tests := []struct {
		hex  uint32
		want Color
	}{
		{0x000000, Color{0, 0, 0, 1}},
		{0xffffff, Color{1, 1, 1, 1}},
		{0xff0000, Color{1, 0, 0, 1}},
		{0x00ff00, Color{0, 1, 0, 1}},
		{0x0000ff, Color{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		if got := Hex(tt.hex); got != tt.want {
			t.Errorf("Hex(%#06x) = %v, want %v", tt.hex, got, tt.want)
		}
	}

	c := Hex(0x222222)
	if c.R != c.G || c.G != c.B || c.R < 0.13 || c.R > 0.14 {
		t.Errorf("Hex(0x222222) = %v, want grey ~0.133", c)
	}
}

func TestScaleKeepsAlpha(t *testing.T) {
	c := Color{0.5, 1, 0.25, 0.75}.Scale(0.5)
	if c != (Color{0.25, 0.5, 0.125, 0.75}) {
		t.Errorf("Scale() = %v", c)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		mat   *Material
		model Model
		lit   bool
	}{
		{"normal", NewNormal(), ModelNormal, false},
		{"basic", NewBasic(Hex(0x999999), true), ModelBasic, false},
		{"lambert", NewLambert(ColorWhite), ModelLambert, true},
		{"phong", NewPhong(ColorWhite, Hex(0x111111), 30), ModelPhong, true},
		{"standard", NewStandard(ColorWhite, Hex(0x222222), 0.75, 0.25), ModelStandard, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mat.Model != tt.model {
				t.Errorf("model = %v, want %v", tt.mat.Model, tt.model)
			}
			if tt.mat.Lit() != tt.lit {
				t.Errorf("Lit() = %v, want %v", tt.mat.Lit(), tt.lit)
			}
			if tt.mat.Model.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.mat.Model.String(), tt.name)
			}
		})
	}
}

func TestStandardPassesValuesThrough(t *testing.T) {
	m := NewStandard(ColorWhite, ColorBlack, 1.5, -0.25)
	if m.Metalness != 1.5 || m.Roughness != -0.25 {
		t.Errorf("out-of-range values altered: metalness %v roughness %v", m.Metalness, m.Roughness)
	}
	if !NewBasic(ColorWhite, true).Wireframe {
		t.Error("expected wireframe basic material")
	}
}
