package renderer

import (
	"strings"
	"testing"

	"github.com/Faultbox/torus-demo/internal/config"
	"github.com/Faultbox/torus-demo/internal/engine/renderer/shaders"
	"github.com/Faultbox/torus-demo/internal/engine/shader"
	"github.com/Faultbox/torus-demo/internal/engine/shadow"
)

func TestEmbeddedProgramsUseDefines(t *testing.T) {
	defines := programDefines()
	for _, name := range []string{"mesh", "depth"} {
		vs, fs, err := shader.Load(shaders.FS, name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		for _, src := range []string{vs, fs} {
			out := shader.Preprocess(src, defines)
			if !strings.HasPrefix(out, "#version 410 core\n") {
				t.Errorf("%s: preprocessed source must keep #version first", name)
			}
		}
	}

	_, fs, _ := shader.Load(shaders.FS, "mesh")
	for _, uniform := range []string{"uShadowMaps", "uPointShadow", "uDirectionalShadow", "uModelType"} {
		if !strings.Contains(fs, uniform) {
			t.Errorf("mesh.frag is missing %s", uniform)
		}
	}
}

func TestProgramDefines(t *testing.T) {
	d := programDefines()
	if d["MAX_LIGHTS"] != "8" || d["MAX_SHADOWS"] != "4" {
		t.Errorf("unexpected defines %v", d)
	}
}

func TestDisabledSlots(t *testing.T) {
	slots := disabledSlots(3)
	if len(slots) != 3 {
		t.Fatalf("len = %d", len(slots))
	}
	for i, s := range slots {
		if s != -1 {
			t.Errorf("slot %d = %d, want -1", i, s)
		}
	}
}

func TestTexelSize(t *testing.T) {
	if got := texelSize(1024); got != 1.0/1024 {
		t.Errorf("texelSize(1024) = %v", got)
	}
	if got := texelSize(0); got != 1.0/2048 {
		t.Errorf("texelSize(0) = %v, want default resolution", got)
	}
}

func TestConfigFrom(t *testing.T) {
	g := config.Default().Graphics
	cfg := ConfigFrom(g, 2560, 1440)

	if cfg.Width != 2560 || cfg.Height != 1440 {
		t.Errorf("size = %dx%d", cfg.Width, cfg.Height)
	}
	if !cfg.Antialias {
		t.Error("antialiasing should follow msaa_samples")
	}
	if !cfg.Shadow.Enabled || cfg.Shadow.Type != shadow.PCFSoft {
		t.Errorf("shadow settings %+v, want soft PCF enabled", cfg.Shadow)
	}
	if cfg.Shadow.Resolution != int32(g.ShadowResolution) {
		t.Errorf("resolution = %d, want %d", cfg.Shadow.Resolution, g.ShadowResolution)
	}

	g.MSAASamples = 0
	g.ShadowResolution = 0
	cfg = ConfigFrom(g, 100, 100)
	if cfg.Antialias || cfg.Shadow.Resolution != shadow.DefaultResolution {
		t.Errorf("fallbacks not applied: %+v", cfg)
	}
}

func TestShadowMapEnabled(t *testing.T) {
	r := &Renderer{config: ConfigFrom(config.Default().Graphics, 1, 1)}
	if r.ShadowMapEnabled() {
		t.Error("no maps allocated yet")
	}
	r.shadowMaps = []*shadow.Map{{}}
	if !r.ShadowMapEnabled() {
		t.Error("shadow maps should be enabled")
	}
	r.config.Shadow.Enabled = false
	if r.ShadowMapEnabled() {
		t.Error("disabled settings must win")
	}
}
