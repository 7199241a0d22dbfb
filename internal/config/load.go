package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	fileName = "config.yaml"
	appDir   = "torus-demo"
)

// Load builds the configuration from defaults, then the config file, then
// the overrides. A nil o applies no overrides. When o names no file the
// first existing entry of SearchPaths is used, and having none is not an
// error.
func Load(o *Overrides) (*Config, error) {
	if o == nil {
		o = &Overrides{}
	}
	cfg := Default()

	path := o.Path
	if path == "" {
		path = firstExisting(SearchPaths())
	}
	if path != "" {
		if err := decodeFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg.Source = path
	}

	o.apply(cfg)

	if err := cfg.Scene.Validate(); err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	return cfg, nil
}

// SearchPaths lists where Load looks for a config file, in order.
func SearchPaths() []string {
	return []string{
		fileName,
		filepath.Join(ConfigDir(), fileName),
	}
}

// ConfigDir returns the demo's directory under the OS user config dir
// ($XDG_CONFIG_HOME or ~/.config, ~/Library/Application Support, %AppData%).
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base, _ = filepath.Abs(".")
	}
	return filepath.Join(base, appDir)
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// decodeFile merges a YAML file over the values already in cfg. Keys that
// match no setting are an error. An empty file changes nothing.
func decodeFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
