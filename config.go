package quill

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds window and runtime settings consumed by render.Run.
type Config struct {
	Title         string  `yaml:"title"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	TPS           int     `yaml:"tps"`
	ClearColor    Color   `yaml:"clear_color"`
	Debug         bool    `yaml:"debug"`
	ScreenshotDir string  `yaml:"screenshot_dir"`
	Scale         float64 `yaml:"scale"`
}

// DefaultConfig returns the settings used for any field a config file
// leaves out.
func DefaultConfig() Config {
	return Config{
		Title:         "quill",
		Width:         1280,
		Height:        720,
		TPS:           60,
		ClearColor:    Color{0.4, 0.4, 0.4, 1},
		ScreenshotDir: "screenshots",
		Scale:         1,
	}
}

// LoadConfig parses YAML settings on top of DefaultConfig.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot open a window.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: tps %d must be positive", c.TPS)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale %v must be positive", c.Scale)
	}
	return nil
}

// UnmarshalYAML accepts colors either as a mapping ({r, g, b, a}) or as a
// sequence of three or four components. Alpha defaults to 1.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var comps []float64
		if err := node.Decode(&comps); err != nil {
			return fmt.Errorf("color: %w", err)
		}
		if len(comps) != 3 && len(comps) != 4 {
			return fmt.Errorf("color: want 3 or 4 components, got %d", len(comps))
		}
		*c = Color{comps[0], comps[1], comps[2], 1}
		if len(comps) == 4 {
			c.A = comps[3]
		}
		return nil
	case yaml.MappingNode:
		raw := struct {
			R, G, B float64
			A       *float64
		}{}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("color: %w", err)
		}
		*c = Color{raw.R, raw.G, raw.B, 1}
		if raw.A != nil {
			c.A = *raw.A
		}
		return nil
	default:
		return fmt.Errorf("color: line %d: expected sequence or mapping", node.Line)
	}
}
