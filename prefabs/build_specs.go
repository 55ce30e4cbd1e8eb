package prefabs

import (
	"fmt"

	"github.com/milk9111/polarities/movement"
	"gopkg.in/yaml.v3"
)

const (
	StatsFile = "stats.yaml"
	BlueFile  = "blue.yaml"
	RedFile   = "red.yaml"
)

// DecodeComponentSpec decodes one entry of a prefab's components map.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var out T
	err := DecodeComponentSpecInto(raw, &out)
	return out, err
}

// DecodeComponentSpecInto decodes raw over the current value of out.
func DecodeComponentSpecInto[T any](raw any, out *T) error {
	if raw == nil {
		return nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Set is the loaded prefab bundle for a level: the shared stats and both
// character prefabs.
type Set struct {
	Stats movement.Stats
	Blue  CharacterSpec
	Red   CharacterSpec
}

// LoadSet reads the stats file and both character prefabs.
func LoadSet() (*Set, error) {
	stats, err := LoadStats(StatsFile)
	if err != nil {
		return nil, err
	}
	blue, err := LoadCharacterSpec(BlueFile)
	if err != nil {
		return nil, err
	}
	red, err := LoadCharacterSpec(RedFile)
	if err != nil {
		return nil, err
	}
	if blue.Polarity != movement.Blue || red.Polarity != movement.Red {
		return nil, fmt.Errorf("prefabs: %w: %s is %s and %s is %s",
			movement.ErrInvalidPolarity, BlueFile, blue.Polarity, RedFile, red.Polarity)
	}
	return &Set{Stats: stats, Blue: blue, Red: red}, nil
}

// Character returns the prefab for p.
func (s *Set) Character(p movement.Polarity) CharacterSpec {
	if p == movement.Red {
		return s.Red
	}
	return s.Blue
}
