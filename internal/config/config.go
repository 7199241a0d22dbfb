// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`

	// Source is the file the config was read from, empty for defaults only.
	Source string `yaml:"-"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width            int  `yaml:"width"`
	Height           int  `yaml:"height"`
	Fullscreen       bool `yaml:"fullscreen"`
	VSync            bool `yaml:"vsync"`
	MSAASamples      int  `yaml:"msaa_samples"`      // 0 disables anti-aliasing
	ShadowResolution int  `yaml:"shadow_resolution"` // Per light, power of 2
}

// GeometryKind selects the subject mesh shape.
type GeometryKind string

const (
	GeometryTorus  GeometryKind = "torus"
	GeometryBox    GeometryKind = "box"
	GeometrySphere GeometryKind = "sphere"
)

// MaterialKind selects the subject mesh surface model.
type MaterialKind string

const (
	MaterialStandard MaterialKind = "standard"
	MaterialNormal   MaterialKind = "normal"
	MaterialBasic    MaterialKind = "basic"
	MaterialLambert  MaterialKind = "lambert"
	MaterialPhong    MaterialKind = "phong"
)

// LightSetKind selects the light rig.
type LightSetKind string

const (
	// LightSetReference is ambient + point + two shadow-casting directionals.
	LightSetReference LightSetKind = "reference"
	// LightSetTricolor replaces the warm directional with blue, orange and green ones.
	LightSetTricolor LightSetKind = "tricolor"
	// LightSetHemisphere adds a sky/ground hemisphere light to the reference rig.
	LightSetHemisphere LightSetKind = "hemisphere"
)

// SceneConfig describes the demo scene.
type SceneConfig struct {
	Geometry   GeometryKind `yaml:"geometry"`
	Material   MaterialKind `yaml:"material"`
	LightSet   LightSetKind `yaml:"light_set"`
	ClearColor uint32       `yaml:"clear_color"`

	Camera CameraConfig `yaml:"camera"`

	Torus  TorusConfig  `yaml:"torus"`
	Box    BoxConfig    `yaml:"box"`
	Sphere SphereConfig `yaml:"sphere"`

	Standard StandardMaterialConfig `yaml:"standard"`
	Basic    BasicMaterialConfig    `yaml:"basic"`
	Phong    PhongMaterialConfig    `yaml:"phong"`

	Plane PlaneConfig `yaml:"plane"`

	// Radians added to the subject rotation every frame.
	RotationRateX float64 `yaml:"rotation_rate_x"`
	RotationRateY float64 `yaml:"rotation_rate_y"`
}

// CameraConfig holds the perspective camera settings.
type CameraConfig struct {
	FOV      float32    `yaml:"fov"` // Vertical, degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
}

// TorusConfig holds torus shape parameters.
type TorusConfig struct {
	Radius          float32 `yaml:"radius"`
	Tube            float32 `yaml:"tube"`
	RadialSegments  int     `yaml:"radial_segments"`
	TubularSegments int     `yaml:"tubular_segments"`
}

// BoxConfig holds box shape parameters.
type BoxConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Depth  float32 `yaml:"depth"`
}

// SphereConfig holds sphere shape parameters.
type SphereConfig struct {
	Radius         float32 `yaml:"radius"`
	WidthSegments  int     `yaml:"width_segments"`
	HeightSegments int     `yaml:"height_segments"`
}

// StandardMaterialConfig holds physically based material parameters.
type StandardMaterialConfig struct {
	Color     uint32  `yaml:"color"`
	Emissive  uint32  `yaml:"emissive"`
	Metalness float32 `yaml:"metalness"`
	Roughness float32 `yaml:"roughness"`
}

// BasicMaterialConfig holds unlit material parameters.
type BasicMaterialConfig struct {
	Color     uint32 `yaml:"color"`
	Wireframe bool   `yaml:"wireframe"`
}

// PhongMaterialConfig holds specular material parameters.
type PhongMaterialConfig struct {
	Color     uint32  `yaml:"color"`
	Specular  uint32  `yaml:"specular"`
	Shininess float32 `yaml:"shininess"`
}

// PlaneConfig holds the ground plane settings.
type PlaneConfig struct {
	Width          float32 `yaml:"width"`
	Height         float32 `yaml:"height"`
	WidthSegments  int     `yaml:"width_segments"`
	HeightSegments int     `yaml:"height_segments"`
	Color          uint32  `yaml:"color"`
	OffsetY        float32 `yaml:"offset_y"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	// ScreenshotScale resizes captures; 1 keeps the drawable size.
	ScreenshotScale float32 `yaml:"screenshot_scale"`
	LogFPS          bool    `yaml:"log_fps"`
}

// Default returns a Config reproducing the reference scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:            1280,
			Height:           720,
			Fullscreen:       false,
			VSync:            true,
			MSAASamples:      4,
			ShadowResolution: 2048,
		},
		Scene: SceneConfig{
			Geometry:   GeometryTorus,
			Material:   MaterialStandard,
			LightSet:   LightSetReference,
			ClearColor: 0xdddddd,
			Camera: CameraConfig{
				FOV:      50,
				Near:     0.1,
				Far:      10000,
				Position: [3]float32{10, 10, 10},
			},
			Torus: TorusConfig{
				Radius:          3,
				Tube:            1,
				RadialSegments:  25,
				TubularSegments: 50,
			},
			Box: BoxConfig{Width: 5, Height: 5, Depth: 5},
			Sphere: SphereConfig{
				Radius:         3,
				WidthSegments:  32,
				HeightSegments: 32,
			},
			Standard: StandardMaterialConfig{
				Color:     0xffffff,
				Emissive:  0x222222,
				Metalness: 0.75,
				Roughness: 0.25,
			},
			Basic: BasicMaterialConfig{Color: 0x999999, Wireframe: true},
			Phong: PhongMaterialConfig{
				Color:     0xffffff,
				Specular:  0x111111,
				Shininess: 30,
			},
			Plane: PlaneConfig{
				Width:          20,
				Height:         20,
				WidthSegments:  32,
				HeightSegments: 32,
				Color:          0xaaaaaa,
				OffsetY:        -5,
			},
			RotationRateX: 0.01,
			RotationRateY: 0.02,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Debug: DebugConfig{
			ScreenshotDir:   "screenshots",
			ScreenshotScale: 1,
			LogFPS:          false,
		},
	}
}
