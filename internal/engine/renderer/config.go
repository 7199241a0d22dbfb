package renderer

import (
	"github.com/Faultbox/torus-demo/internal/config"
	"github.com/Faultbox/torus-demo/internal/engine/shadow"
)

// ConfigFrom builds the renderer configuration for a drawable of the given
// size. Shadows are always on with soft PCF filtering.
func ConfigFrom(g config.GraphicsConfig, width, height int) Config {
	settings := shadow.DefaultSettings()
	if g.ShadowResolution > 0 {
		settings.Resolution = int32(g.ShadowResolution)
	}
	return Config{
		Width:     width,
		Height:    height,
		Antialias: g.MSAASamples > 0,
		Shadow:    settings,
	}
}
