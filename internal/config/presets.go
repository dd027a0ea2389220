package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/pad"
)

var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"small": func(c *Config) {
		c.Grid.Size = 5
		c.Grid.InitialCol, c.Grid.InitialRow = 2, 2
	},
	"fine": func(c *Config) {
		c.Grid.Size = 21
		c.Grid.InitialCol, c.Grid.InitialRow = 6, 6
		c.Animator.Method = anim.MethodRK4
	},
	"touch": func(c *Config) {
		c.Input.Platform = pad.Touch.String()
		c.Layout.Platform = geom.PlatformNative
		c.Layout.PixelRatio = 3
	},
	"bouncy": func(c *Config) {
		c.Spring.Damping = 6
		c.Spring.Stiffness = 300
	},
}

// GetPreset returns a fresh config with the named preset applied on top of
// the defaults.
func GetPreset(name string) (*Config, error) {
	apply, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
