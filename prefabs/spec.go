package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/polarities/movement"
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

// LoadStats decodes a stats file over movement.DefaultStats, so omitted
// fields keep their stock values.
func LoadStats(filename string) (movement.Stats, error) {
	stats := movement.DefaultStats()
	data, err := Load(filename)
	if err != nil {
		return stats, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &stats); err != nil {
		return stats, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return stats, nil
}

// CharacterSpec is a character prefab. Components are applied by the entity
// builder in a fixed order.
type CharacterSpec struct {
	Name       string            `yaml:"name"`
	Polarity   movement.Polarity `yaml:"polarity"`
	Color      *YAMLColor        `yaml:"color"`
	Components map[string]any    `yaml:"components"`
}

func LoadCharacterSpec(filename string) (CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](filename)
	if err != nil {
		return spec, err
	}
	if !spec.Polarity.Valid() {
		return spec, fmt.Errorf("prefabs: %s: %w", filename, movement.ErrInvalidPolarity)
	}
	return spec, nil
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PhysicsBodyComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type CharacterComponentSpec struct {
	Rig           movement.Rig `yaml:"rig"`
	SnapDirection *VectorSpec  `yaml:"snap_direction"`
	// Stats overrides fields of the shared stats file for this character.
	Stats map[string]any `yaml:"stats"`
}

type TransformComponentSpec struct {
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type YAMLColor struct {
	color.Color
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
