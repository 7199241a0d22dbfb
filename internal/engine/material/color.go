package material

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// Hex creates an opaque color from a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return RGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// Scale returns the color with RGB multiplied by factor; alpha is kept.
func (c Color) Scale(factor float32) Color {
	return Color{c.R * factor, c.G * factor, c.B * factor, c.A}
}

// RGBArray returns the RGB components for a vec3 uniform.
func (c Color) RGBArray() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}
