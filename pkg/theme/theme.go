// Package theme holds the visual and timing constants of the stock widgets,
// loadable from a YAML file so applications can restyle without code.
package theme

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-lucid/lucid/pkg/errors"
)

// Color is an RGBA color that unmarshals from "#RRGGBB" or "#RRGGBBAA".
type Color struct {
	color.RGBA
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{color.RGBA{R: r, G: g, B: b, A: 255}}
}

// ParseColor parses a hex color string.
func ParseColor(s string) (Color, error) {
	var r, g, b, a uint8
	a = 255
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("malformed color %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Color{}, fmt.Errorf("malformed color %q: %w", s, err)
		}
	default:
		return Color{}, fmt.Errorf("malformed color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	return Color{color.RGBA{R: r, G: g, B: b, A: a}}, nil
}

// UnmarshalYAML parses a hex color string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML emits the hex color string.
func (c Color) MarshalYAML() (any, error) {
	if c.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

// Duration wraps time.Duration with Go duration-string YAML syntax ("500ms").
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("malformed duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML emits the duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Theme bundles the colors and timings the stock widgets draw from.
type Theme struct {
	Text        Color `yaml:"text"`
	Placeholder Color `yaml:"placeholder"`
	Selection   Color `yaml:"selection"`
	Border      Color `yaml:"border"`
	FocusBorder Color `yaml:"focus_border"`
	Background  Color `yaml:"background"`

	DoubleClickWindow Duration `yaml:"double_click_window"`
	BlinkInterval     Duration `yaml:"blink_interval"`

	Padding float64 `yaml:"padding"`
}

// Default returns the stock theme.
func Default() *Theme {
	return &Theme{
		Text:        RGB(0, 0, 0),
		Placeholder: RGB(145, 145, 145),
		Selection:   RGB(51, 153, 255),
		Border:      RGB(10, 10, 16),
		FocusBorder: RGB(86, 157, 229),
		Background:  Color{color.RGBA{}},

		DoubleClickWindow: Duration(500 * time.Millisecond),
		BlinkInterval:     Duration(500 * time.Millisecond),

		Padding: 4,
	}
}

// Load reads a theme file. Keys absent from the file keep their default
// values.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.LucidError{
			Op:   "theme.Load",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, &errors.LucidError{
			Op:   "theme.Load",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	return t, nil
}

// LoadOptional reads a theme file if it exists, falling back to the default
// theme when it does not. Parse failures still fail.
func LoadOptional(path string) (*Theme, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
