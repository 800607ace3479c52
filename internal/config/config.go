// Package config loads the pathedit command configuration from YAML or
// TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/pathedit"
	"github.com/gogpu/pathedit/export"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete command configuration.
type Config struct {
	Canvas        Canvas   `yaml:"canvas" toml:"canvas"`
	DragThreshold float64  `yaml:"drag_threshold" toml:"drag_threshold"`
	Style         Style    `yaml:"style" toml:"style"`
	Outputs       []Output `yaml:"outputs" toml:"outputs"`
	// Debounce delays a rebuild in watch mode until the files are quiet.
	Debounce Duration `yaml:"debounce" toml:"debounce"`
}

// Canvas is the export canvas size in units.
type Canvas struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Style overrides parts of export.DefaultStyle. Zero fields keep the default.
type Style struct {
	PathWidth  float64 `yaml:"path_width" toml:"path_width"`
	PathColor  Color   `yaml:"path_color" toml:"path_color"`
	Background Color   `yaml:"background" toml:"background"`
	Selected   Color   `yaml:"selected" toml:"selected"`
	ShowCode   bool    `yaml:"show_code" toml:"show_code"`
	CodeSize   float64 `yaml:"code_size" toml:"code_size"`
}

// Output names one export target.
type Output struct {
	// Backend is a registered export backend. When empty it is the backend
	// registered for the extension of Path.
	Backend string `yaml:"backend" toml:"backend"`
	Path    string `yaml:"path" toml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Canvas:        Canvas{Width: 800, Height: 600},
		DragThreshold: pathedit.DefaultDragThreshold,
		Debounce:      Duration(200 * time.Millisecond),
	}
}

// Load reads the file at path on top of Default and validates the result.
// Files ending in .toml are decoded as TOML, everything else as YAML.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = decodeTOML(data, &cfg)
	} else {
		err = decodeYAML(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

// Validate checks the configuration for values no backend can work with.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if c.DragThreshold < 0 {
		return fmt.Errorf("%w: negative drag_threshold %v", ErrInvalid, c.DragThreshold)
	}
	if c.Style.PathWidth < 0 || c.Style.CodeSize < 0 {
		return fmt.Errorf("%w: negative style size", ErrInvalid)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: negative debounce", ErrInvalid)
	}
	for i, out := range c.Outputs {
		if out.Path == "" {
			return fmt.Errorf("%w: output %d has no path", ErrInvalid, i)
		}
		if out.BackendName() == "" {
			return fmt.Errorf("%w: output %d: cannot derive backend from %q", ErrInvalid, i, out.Path)
		}
	}
	return nil
}

// BackendName returns the explicit backend or the registered backend that
// owns the file extension of Path. It is empty when neither applies.
func (o Output) BackendName() string {
	if o.Backend != "" {
		return o.Backend
	}
	name, _ := export.BackendForPath(o.Path)
	return name
}

// Options returns the editor options described by the configuration.
func (c Config) Options() []pathedit.Option {
	return []pathedit.Option{pathedit.WithDragThreshold(c.DragThreshold)}
}

// ExportStyle returns export.DefaultStyle with the configured overrides.
func (c Config) ExportStyle() export.Style {
	st := export.DefaultStyle()
	if c.Style.PathWidth > 0 {
		st.Path.Width = c.Style.PathWidth
	}
	if c.Style.PathColor.set {
		st.Path.Color = c.Style.PathColor.RGBA
	}
	if c.Style.Background.set {
		st.Background = c.Style.Background.RGBA
	}
	if c.Style.Selected.set {
		st.Selected.Color = c.Style.Selected.RGBA
	}
	if c.Style.CodeSize > 0 {
		st.CodeSize = c.Style.CodeSize
	}
	st.ShowCode = c.Style.ShowCode
	return st
}

// Color is an opaque color written as "#rrggbb".
type Color struct {
	color.RGBA
	set bool
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	cf, err := colorful.Hex(string(text))
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", text, err)
	}
	r, g, b := cf.RGB255()
	c.RGBA = color.RGBA{R: r, G: g, B: b, A: 255}
	c.set = true
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Color. In YAML the value
// must be quoted, since an unquoted # starts a comment.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// Duration wraps time.Duration for YAML and TOML unmarshaling.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return nil
	}
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Duration returns the time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
