// Package shadow provides real-time shadow mapping for 3D rendering.
package shadow

import "fmt"

// Type selects the shadow map filtering used in the lit pass.
type Type int

const (
	// Basic does a single depth comparison per fragment.
	Basic Type = iota
	// PCF averages a 3x3 kernel of hardware-filtered comparisons.
	PCF
	// PCFSoft averages a wider 5x5 kernel for softer edges.
	PCFSoft
)

var typeNames = map[Type]string{
	Basic:   "basic",
	PCF:     "pcf",
	PCFSoft: "pcf_soft",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// KernelRadius returns the half-width of the PCF kernel sampled for t.
func (t Type) KernelRadius() int32 {
	switch t {
	case PCF:
		return 1
	case PCFSoft:
		return 2
	default:
		return 0
	}
}

// Settings configures shadow rendering.
type Settings struct {
	Enabled    bool
	Type       Type
	Resolution int32
	// Bias is subtracted from the fragment depth before comparison.
	Bias float32
}

// DefaultSettings returns shadows enabled with soft PCF filtering.
func DefaultSettings() Settings {
	return Settings{
		Enabled:    true,
		Type:       PCFSoft,
		Resolution: DefaultResolution,
		Bias:       0.0005,
	}
}
