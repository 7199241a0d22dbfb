package math

import (
	gomath "math"

	"github.com/chewxy/math32"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * math32.Pi

// Euler holds rotation angles in radians applied in X, Y, Z order.
type Euler struct {
	X, Y, Z float32
}

// Matrix returns the rotation matrix Rx * Ry * Rz.
func (e Euler) Matrix() Mat4 {
	return RotateX(e.X).Mul(RotateY(e.Y)).Mul(RotateZ(e.Z))
}

// AngleAfter returns steps*rate wrapped into [0, 2π). The product is
// formed in float64 so the angle stays exact over long runs.
func AngleAfter(steps uint64, rate float64) float32 {
	a := gomath.Mod(float64(steps)*rate, 2*gomath.Pi)
	if a < 0 {
		a += 2 * gomath.Pi
	}
	f := float32(a)
	if f >= TwoPi {
		f = 0
	}
	return f
}

// WrapAngle maps an angle in radians into [0, 2π).
func WrapAngle(a float32) float32 {
	a = math32.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
