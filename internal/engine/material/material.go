// Package material describes how mesh surfaces respond to light.
package material

// Model selects the shading model.
type Model int

const (
	// ModelNormal maps normals to RGB. Not lit.
	ModelNormal Model = iota
	// ModelBasic is a flat color, optionally wireframe. Not lit.
	ModelBasic
	// ModelLambert is diffuse-only lighting.
	ModelLambert
	// ModelPhong adds specular highlights.
	ModelPhong
	// ModelStandard is metalness/roughness physically based shading.
	ModelStandard
)

// String returns the model name.
func (m Model) String() string {
	switch m {
	case ModelNormal:
		return "normal"
	case ModelBasic:
		return "basic"
	case ModelLambert:
		return "lambert"
	case ModelPhong:
		return "phong"
	case ModelStandard:
		return "standard"
	}
	return "unknown"
}

// Material is the surface description for a mesh. Fields that do not apply to
// the selected Model are ignored by the renderer. Values are not range checked.
type Material struct {
	Model     Model
	Color     Color
	Emissive  Color
	Specular  Color
	Shininess float32
	Metalness float32
	Roughness float32
	Wireframe bool
}

// NewNormal returns a normal-visualizing material.
func NewNormal() *Material {
	return &Material{Model: ModelNormal, Color: ColorWhite, Emissive: ColorBlack}
}

// NewBasic returns an unlit flat-color material.
func NewBasic(color Color, wireframe bool) *Material {
	return &Material{Model: ModelBasic, Color: color, Emissive: ColorBlack, Wireframe: wireframe}
}

// NewLambert returns a diffuse material.
func NewLambert(color Color) *Material {
	return &Material{Model: ModelLambert, Color: color, Emissive: ColorBlack}
}

// NewPhong returns a specular material.
func NewPhong(color, specular Color, shininess float32) *Material {
	return &Material{
		Model:     ModelPhong,
		Color:     color,
		Emissive:  ColorBlack,
		Specular:  specular,
		Shininess: shininess,
	}
}

// NewStandard returns a physically based material.
func NewStandard(color, emissive Color, metalness, roughness float32) *Material {
	return &Material{
		Model:     ModelStandard,
		Color:     color,
		Emissive:  emissive,
		Metalness: metalness,
		Roughness: roughness,
	}
}

// Lit reports whether the material reacts to scene lights and shadows.
func (m *Material) Lit() bool {
	return m.Model == ModelLambert || m.Model == ModelPhong || m.Model == ModelStandard
}
