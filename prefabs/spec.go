package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SizeSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PlayerSpec struct {
	Name          string     `yaml:"name"`
	Small         SizeSpec   `yaml:"small"`
	Big           SizeSpec   `yaml:"big"`
	WalkSpeed     float64    `yaml:"walk_speed"`
	RunSpeed      float64    `yaml:"run_speed"`
	Acceleration  float64    `yaml:"acceleration"`
	Deceleration  float64    `yaml:"deceleration"`
	AirControl    float64    `yaml:"air_control"`
	JumpSpeed     float64    `yaml:"jump_speed"`
	JumpHoldTime  float64    `yaml:"jump_hold_time"`
	JumpHoldScale float64    `yaml:"jump_hold_gravity_scale"`
	StompBounce   float64    `yaml:"stomp_bounce"`
	DeathHop      float64    `yaml:"death_hop"`
	Color         *YAMLColor `yaml:"color"`
	BigColor      *YAMLColor `yaml:"big_color"`
}

// WalkerSpec covers anything that walks until it hits a wall: enemies and
// power-ups.
type WalkerSpec struct {
	Name   string     `yaml:"name"`
	Size   SizeSpec   `yaml:"size"`
	Speed  float64    `yaml:"speed"`
	Points int        `yaml:"points"`
	Color  *YAMLColor `yaml:"color"`
	// SquashTime is how long a stomped walker stays on screen.
	SquashTime float64 `yaml:"squash_time"`
}

type FireBarSpec struct {
	Name             string     `yaml:"name"`
	Links            int        `yaml:"links"`
	LinkSize         int        `yaml:"link_size"`
	RadiansPerSecond float64    `yaml:"radians_per_second"`
	Color            *YAMLColor `yaml:"color"`
}

type BlockSpec struct {
	Name       string     `yaml:"name"`
	BumpHeight float64    `yaml:"bump_height"`
	BumpTime   float64    `yaml:"bump_time"`
	CoinPoints int        `yaml:"coin_points"`
	Color      *YAMLColor `yaml:"color"`
	UsedColor  *YAMLColor `yaml:"used_color"`
}

type YAMLColor struct {
	color.Color
}

// Or returns the parsed color, or fallback when the key was left out.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
