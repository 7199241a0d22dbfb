package config

import "fmt"

// Valid reports whether k names a known shape.
func (k GeometryKind) Valid() bool {
	switch k {
	case GeometryTorus, GeometryBox, GeometrySphere:
		return true
	}
	return false
}

// Valid reports whether k names a known material model.
func (k MaterialKind) Valid() bool {
	switch k {
	case MaterialStandard, MaterialNormal, MaterialBasic, MaterialLambert, MaterialPhong:
		return true
	}
	return false
}

// Valid reports whether k names a known light rig.
func (k LightSetKind) Valid() bool {
	switch k {
	case LightSetReference, LightSetTricolor, LightSetHemisphere:
		return true
	}
	return false
}

// Validate checks the selection points only. Numeric parameters are passed
// through to the renderer as given.
func (s SceneConfig) Validate() error {
	if !s.Geometry.Valid() {
		return fmt.Errorf("unknown geometry %q", s.Geometry)
	}
	if !s.Material.Valid() {
		return fmt.Errorf("unknown material %q", s.Material)
	}
	if !s.LightSet.Valid() {
		return fmt.Errorf("unknown light set %q", s.LightSet)
	}
	return nil
}
