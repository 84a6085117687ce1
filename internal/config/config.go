// Package config loads the demo's YAML configuration.
//
// The embedded default.yaml holds every setting. A skyworld.yaml file, when
// present, is decoded on top of it, so it only needs the keys it overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultPath is the optional override file looked up in the working directory.
const DefaultPath = "skyworld.yaml"

// Config is the full demo configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Sky    SkyConfig    `yaml:"sky"`
	Label  LabelConfig  `yaml:"label"`
	Assets AssetsConfig `yaml:"assets"`
}

// WindowConfig sizes and titles the window.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	TPS     int    `yaml:"tps"`
	ShowFPS bool   `yaml:"showFPS"`
	Debug   bool   `yaml:"debug"`
}

// SkyConfig holds the day/night timing and colors. Times are in seconds,
// positions in screen pixels with Y growing downward.
type SkyConfig struct {
	DayLength          float64  `yaml:"dayLength"`
	CloudMin           int      `yaml:"cloudMin"`
	CloudMax           int      `yaml:"cloudMax"`
	CloudCheckInterval float64  `yaml:"cloudCheckInterval"`
	OrbitY             float64  `yaml:"orbitY"`
	SunElevation       float64  `yaml:"sunElevation"`
	NudgeDuration      float64  `yaml:"nudgeDuration"`
	DayColor           HexColor `yaml:"dayColor"`
	NightColor         HexColor `yaml:"nightColor"`
}

// LabelConfig places and styles the day counter.
type LabelConfig struct {
	FontSize float64  `yaml:"fontSize"`
	Color    HexColor `yaml:"color"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
}

// AssetsConfig names the image files, relative to Dir.
type AssetsConfig struct {
	Dir    string   `yaml:"dir"`
	Clouds []string `yaml:"clouds"`
	Sun    string   `yaml:"sun"`
	Moon   string   `yaml:"moon"`
	Planet string   `yaml:"planet"`
}

// HexColor is an 8-bit RGB color written as "#rrggbb" in YAML.
type HexColor struct {
	R, G, B uint8
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fmt.Errorf("line %d: invalid color %q: %w", value.Line, s, err)
	}
	h.R, h.G, h.B = c.RGB255()
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h HexColor) MarshalYAML() (any, error) {
	return h.String(), nil
}

// String returns the "#rrggbb" form.
func (h HexColor) String() string {
	return colorful.Color{
		R: float64(h.R) / 255,
		G: float64(h.G) / 255,
		B: float64(h.B) / 255,
	}.Hex()
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}
	return &cfg, nil
}

// Parse decodes data on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault loads path if it exists and falls back to the embedded
// defaults otherwise. The bool reports whether the file was used.
func LoadOrDefault(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, true, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}
	cfg, err = Default()
	if err != nil {
		return nil, false, err
	}
	return cfg, false, cfg.Validate()
}

// Validate checks ranges that would otherwise break the scene at runtime.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS < 0 {
		errs = append(errs, fmt.Errorf("window.tps %d must not be negative", c.Window.TPS))
	}
	if c.Sky.DayLength <= 0 {
		errs = append(errs, fmt.Errorf("sky.dayLength %v must be positive", c.Sky.DayLength))
	}
	if c.Sky.CloudMin <= 0 || c.Sky.CloudMax < c.Sky.CloudMin {
		errs = append(errs, fmt.Errorf("sky.cloudMin %d / cloudMax %d must satisfy 0 < min <= max", c.Sky.CloudMin, c.Sky.CloudMax))
	}
	if c.Sky.CloudCheckInterval < 0 {
		errs = append(errs, fmt.Errorf("sky.cloudCheckInterval %v must not be negative", c.Sky.CloudCheckInterval))
	}
	if c.Sky.NudgeDuration < 0 {
		errs = append(errs, fmt.Errorf("sky.nudgeDuration %v must not be negative", c.Sky.NudgeDuration))
	}
	if c.Label.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("label.fontSize %v must be positive", c.Label.FontSize))
	}
	if len(c.Assets.Clouds) == 0 {
		errs = append(errs, errors.New("assets.clouds must name at least one image"))
	}
	if c.Assets.Sun == "" || c.Assets.Moon == "" || c.Assets.Planet == "" {
		errs = append(errs, errors.New("assets.sun, assets.moon and assets.planet are required"))
	}
	return errors.Join(errs...)
}
