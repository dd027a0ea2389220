package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/engine"
	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/pad"
	"github.com/san-kum/gridpad/internal/physics"
	"github.com/san-kum/gridpad/internal/readout"
)

const (
	DefaultSize       = 11
	DefaultInitialCol = 3
	DefaultInitialRow = 3
	DefaultPixelRatio = 2.0
	DefaultTheme      = "minimal"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

type Config struct {
	Grid     GridConfig           `yaml:"grid"`
	Layout   LayoutConfig         `yaml:"layout"`
	Spring   physics.SpringParams `yaml:"spring"`
	Animator AnimatorConfig       `yaml:"animator"`
	Input    InputConfig          `yaml:"input"`
	Theme    string               `yaml:"theme"`
	Readouts []readout.Range      `yaml:"readouts"`
}

type GridConfig struct {
	Size       int  `yaml:"size"`
	InitialCol int  `yaml:"initial_col"`
	InitialRow int  `yaml:"initial_row"`
	FlipX      bool `yaml:"flip_x"`
	FlipY      bool `yaml:"flip_y"`
}

type LayoutConfig struct {
	Platform   string  `yaml:"platform"`
	PixelRatio float64 `yaml:"pixel_ratio"`
}

type AnimatorConfig struct {
	Method string `yaml:"method"`
	FPS    int    `yaml:"fps"`
}

type InputConfig struct {
	Platform string `yaml:"platform"`
}

func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Size:       DefaultSize,
			InitialCol: DefaultInitialCol,
			InitialRow: DefaultInitialRow,
			FlipX:      true,
		},
		Layout: LayoutConfig{
			Platform:   geom.PlatformWeb,
			PixelRatio: DefaultPixelRatio,
		},
		Spring: physics.DefaultSpringParams(),
		Animator: AnimatorConfig{
			Method: anim.MethodAnalytic,
			FPS:    anim.DefaultFPS,
		},
		Input:    InputConfig{Platform: pad.Pointer.String()},
		Theme:    DefaultTheme,
		Readouts: readout.Defaults(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the parts of the config that cannot be normalized. Grid
// size and initial cell are always coerced, never rejected.
func (c *Config) Validate() error {
	if err := c.Spring.Validate(); err != nil {
		return fmt.Errorf("spring: %w", err)
	}
	if _, err := anim.NewStepper(c.Animator.Method, c.Spring, c.Animator.FPS); err != nil {
		return err
	}
	if _, err := c.Platform(); err != nil {
		return err
	}
	for _, r := range c.Readouts {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) Density() geom.Density {
	return geom.NewDensity(c.Layout.Platform, c.Layout.PixelRatio)
}

func (c *Config) Spec() geom.GridSpec {
	return c.Density().Spec(c.Grid.Size, c.Grid.FlipX, c.Grid.FlipY)
}

func (c *Config) Initial() geom.Cell {
	return geom.Cell{Col: c.Grid.InitialCol, Row: c.Grid.InitialRow}
}

func (c *Config) Platform() (pad.Platform, error) {
	return pad.ParsePlatform(c.Input.Platform)
}

func (c *Config) AnimConfig() anim.Config {
	return anim.Config{
		Method: c.Animator.Method,
		FPS:    c.Animator.FPS,
		Spring: c.Spring,
	}
}

func (c *Config) EngineConfig() (engine.Config, error) {
	if err := c.Validate(); err != nil {
		return engine.Config{}, err
	}
	platform, _ := c.Platform()
	return engine.Config{
		Spec:     c.Spec(),
		Initial:  c.Initial(),
		Platform: platform,
		Anim:     c.AnimConfig(),
	}, nil
}
