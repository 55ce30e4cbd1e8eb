package movement

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Category is the closed set of collider kinds the controller reacts to.
// It is assigned when a collider is registered with the world.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryGround
	CategoryIce
	CategoryOneWayUp
	CategoryOneWayDown
	CategoryLadder
	CategoryHazard
	CategoryHurtboxBlue
	CategoryHurtboxRed
	CategoryCheckpointBlue
	CategoryCheckpointRed
)

var categoryNames = map[Category]string{
	CategoryNone:           "none",
	CategoryGround:         "ground",
	CategoryIce:            "ice",
	CategoryOneWayUp:       "one_way_up",
	CategoryOneWayDown:     "one_way_down",
	CategoryLadder:         "ladder",
	CategoryHazard:         "hazard",
	CategoryHurtboxBlue:    "hurtbox_blue",
	CategoryHurtboxRed:     "hurtbox_red",
	CategoryCheckpointBlue: "checkpoint_blue",
	CategoryCheckpointRed:  "checkpoint_red",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// ParseCategory resolves a category name as written in level files.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("movement: unknown collider category %q", name)
}

// Solid reports whether the category is ground the character stands on and
// collides with from every side.
func (c Category) Solid() bool {
	return c == CategoryGround || c == CategoryIce
}

func (c Category) OneWay() bool {
	return c == CategoryOneWayUp || c == CategoryOneWayDown
}

// Layer is a query bitmask.
type Layer uint32

const (
	LayerGround Layer = 1 << iota
	LayerLadder
	LayerHazard
	LayerHurtboxBlue
	LayerHurtboxRed
	LayerCheckpoint

	LayerAll Layer = ^Layer(0)
)

// Layer returns the query layer a category lives on. Ice and one-way
// platforms share the ground layer and are told apart by category.
func (c Category) Layer() Layer {
	switch c {
	case CategoryGround, CategoryIce, CategoryOneWayUp, CategoryOneWayDown:
		return LayerGround
	case CategoryLadder:
		return LayerLadder
	case CategoryHazard:
		return LayerHazard
	case CategoryHurtboxBlue:
		return LayerHurtboxBlue
	case CategoryHurtboxRed:
		return LayerHurtboxRed
	case CategoryCheckpointBlue, CategoryCheckpointRed:
		return LayerCheckpoint
	}
	return 0
}

// ColliderID identifies a collider for the lifetime of a level. Zero is never
// a valid id.
type ColliderID uint64

// Collider is a tagged collider returned by world queries.
type Collider struct {
	ID       ColliderID
	Category Category
	Bounds   cp.BB
}

// Hit is a raycast result.
type Hit struct {
	Collider Collider
	Point    cp.Vector
	Distance float64
}

type CapsuleDirection uint8

const (
	CapsuleVertical CapsuleDirection = iota
	CapsuleHorizontal
)

func (d CapsuleDirection) MarshalText() ([]byte, error) {
	if d == CapsuleHorizontal {
		return []byte("horizontal"), nil
	}
	return []byte("vertical"), nil
}

func (d *CapsuleDirection) UnmarshalText(text []byte) error {
	switch string(text) {
	case "vertical", "":
		*d = CapsuleVertical
	case "horizontal":
		*d = CapsuleHorizontal
	default:
		return fmt.Errorf("movement: unknown capsule direction %q", string(text))
	}
	return nil
}
