package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads a scene file. An empty path or a missing file yields Default.
// Sections left out of the file are taken from Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open scene %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("load scene %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML from r, fills absent sections from Default and
// validates the result. Unknown keys are an error.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	cfg.fillDefaults(Default())
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes c as TOML to path.
func Save(path string, c Config) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene %s: %w", path, err)
	}
	return nil
}

// Encode serializes c.
func Encode(c Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode scene: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Config) fillDefaults(d Config) {
	if c.Camera == (CameraConfig{}) {
		c.Camera = d.Camera
	}
	if c.Camera.Speed == 0 {
		c.Camera.Speed = d.Camera.Speed
	}
	if c.Collision.Radius == 0 && c.Collision.Bound == (BoundConfig{}) && len(c.Collision.Boxes) == 0 {
		c.Collision = d.Collision
	}
	if c.Lighting == (LightingConfig{}) {
		c.Lighting = d.Lighting
	}
	if c.Fog == (FogConfig{}) {
		c.Fog = d.Fog
	}
	if c.Shadow == (ShadowConfig{}) {
		c.Shadow = d.Shadow
	}
	if c.Sky == (SkyConfig{}) {
		c.Sky = d.Sky
	}
	if c.Particles.Count == 0 && len(c.Particles.Emitters) == 0 {
		c.Particles = d.Particles
	}
	if len(c.Tour.Points) == 0 {
		c.Tour.Points = d.Tour.Points
	}
	if c.Tour.Speed == 0 {
		c.Tour.Speed = d.Tour.Speed
	}
	if len(c.Objects) == 0 {
		c.Objects = d.Objects
	}
}
