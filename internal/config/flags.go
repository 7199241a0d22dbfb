package config

import (
	"flag"
	"fmt"
)

// Overrides are the command-line values layered over the config file.
// Zero values leave the file or default setting untouched.
type Overrides struct {
	Path       string
	SaveConfig bool
	Debug      bool
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Geometry   string
	Material   string
	Lights     string
}

// RegisterFlags binds the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Overrides {
	o := &Overrides{}
	fs.StringVar(&o.Path, "config", "", "Path to config file")
	fs.BoolVar(&o.SaveConfig, "save-config", false, "Write the effective config to the user config dir and exit")
	fs.BoolVar(&o.Debug, "debug", false, "Enable debug logging and FPS reports")
	fs.BoolVar(&o.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&o.Fullscreen, "fullscreen", false, "Run in fullscreen mode (wins over -windowed)")
	fs.IntVar(&o.Width, "width", 0, "Window width")
	fs.IntVar(&o.Height, "height", 0, "Window height")
	fs.StringVar(&o.Geometry, "geometry", "", "Subject shape: torus, box, sphere")
	fs.StringVar(&o.Material, "material", "", "Subject material: standard, normal, basic, lambert, phong")
	fs.StringVar(&o.Lights, "lights", "", "Light set: reference, tricolor, hemisphere")
	return o
}

// ParseArgs parses command-line arguments into overrides. Positional
// arguments are rejected.
func ParseArgs(name string, args []string) (*Overrides, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	o := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

func (o *Overrides) apply(cfg *Config) {
	if o.Debug {
		cfg.Logging.Level = "debug"
		cfg.Debug.LogFPS = true
	}

	switch {
	case o.Fullscreen:
		cfg.Graphics.Fullscreen = true
	case o.Windowed:
		cfg.Graphics.Fullscreen = false
	}
	if o.Width > 0 {
		cfg.Graphics.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Graphics.Height = o.Height
	}

	if o.Geometry != "" {
		cfg.Scene.Geometry = GeometryKind(o.Geometry)
	}
	if o.Material != "" {
		cfg.Scene.Material = MaterialKind(o.Material)
	}
	if o.Lights != "" {
		cfg.Scene.LightSet = LightSetKind(o.Lights)
	}
}
