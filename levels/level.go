package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/movement"
)

//go:embed *.json
var LevelsFS embed.FS

var (
	ErrNotFound  = errors.New("levels: not found")
	ErrMalformed = errors.New("levels: malformed")
)

// Level is a decoded level file. Tiles are written top row first; every row
// must have the same width.
type Level struct {
	Name      string     `json:"name"`
	Next      string     `json:"next,omitempty"`
	Tiles     []string   `json:"tiles"`
	Platforms []Platform `json:"platforms,omitempty"`

	Index int  `json:"-"`
	Grid  Grid `json:"-"`
}

// Platform is a moving platform. X and Y are the tile coordinates of its
// bottom-left corner with y growing upward.
type Platform struct {
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Direction      string  `json:"direction"`
	TargetDistance float64 `json:"target_distance,omitempty"`
	MaxSpeed       float64 `json:"max_speed,omitempty"`
	Acceleration   float64 `json:"acceleration,omitempty"`
	Pause          float64 `json:"pause,omitempty"`
}

// Platform defaults applied to fields left at zero.
const (
	DefaultTargetDistance = 3.5
	DefaultMaxSpeed       = 50
	DefaultAcceleration   = 30
	DefaultPause          = 0.2
)

// Cell addresses a tile with y growing upward from the bottom row.
type Cell struct {
	X, Y int
}

// Center is the world position of the middle of the cell.
func (c Cell) Center() cp.Vector {
	return cp.Vector{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// Bounds is the world box covered by the cell.
func (c Cell) Bounds() cp.BB {
	return cp.BB{L: float64(c.X), B: float64(c.Y), R: float64(c.X + 1), T: float64(c.Y + 1)}
}

// Grid is the parsed tile layer.
type Grid struct {
	Width       int
	Height      int
	Tiles       []movement.Category
	Spawns      map[movement.Polarity]Cell
	Checkpoints map[movement.Polarity]Cell
}

// At returns the category at x, y. Cells outside the grid are empty.
func (g Grid) At(x, y int) movement.Category {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return movement.CategoryNone
	}
	return g.Tiles[y*g.Width+x]
}

var tileCategories = map[rune]movement.Category{
	'#': movement.CategoryGround,
	'~': movement.CategoryIce,
	'^': movement.CategoryOneWayUp,
	'v': movement.CategoryOneWayDown,
	'H': movement.CategoryLadder,
	'x': movement.CategoryHazard,
}

// Parse decodes and validates a level file.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	grid, err := parseGrid(lvl.Tiles)
	if err != nil {
		return nil, err
	}
	lvl.Grid = grid
	for i := range lvl.Platforms {
		if err := lvl.Platforms[i].normalize(); err != nil {
			return nil, err
		}
	}
	return &lvl, nil
}

func parseGrid(rows []string) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, fmt.Errorf("%w: no tiles", ErrMalformed)
	}
	width := len([]rune(rows[0]))
	height := len(rows)
	g := Grid{
		Width:       width,
		Height:      height,
		Tiles:       make([]movement.Category, width*height),
		Spawns:      make(map[movement.Polarity]Cell),
		Checkpoints: make(map[movement.Polarity]Cell),
	}
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return Grid{}, fmt.Errorf("%w: row %d is %d wide, want %d", ErrMalformed, row, len(runes), width)
		}
		y := height - 1 - row
		for x, r := range runes {
			cell := Cell{X: x, Y: y}
			switch r {
			case '.', ' ':
			case 'B':
				g.Spawns[movement.Blue] = cell
			case 'R':
				g.Spawns[movement.Red] = cell
			case 'b':
				g.Checkpoints[movement.Blue] = cell
			case 'r':
				g.Checkpoints[movement.Red] = cell
			default:
				cat, ok := tileCategories[r]
				if !ok {
					return Grid{}, fmt.Errorf("%w: unknown tile %q at row %d col %d", ErrMalformed, r, row, x)
				}
				g.Tiles[y*width+x] = cat
			}
		}
	}
	for _, p := range []movement.Polarity{movement.Blue, movement.Red} {
		if _, ok := g.Spawns[p]; !ok {
			return Grid{}, fmt.Errorf("%w: no %s spawn", ErrMalformed, p)
		}
	}
	return g, nil
}

// Axis returns the unit vector of the platform's direction.
func (p *Platform) Axis() cp.Vector {
	switch p.Direction {
	case "up":
		return cp.Vector{Y: 1}
	case "down":
		return cp.Vector{Y: -1}
	case "left":
		return cp.Vector{X: -1}
	}
	return cp.Vector{X: 1}
}

func (p *Platform) normalize() error {
	switch p.Direction {
	case "":
		p.Direction = "right"
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("%w: platform direction %q", ErrMalformed, p.Direction)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: platform size %gx%g", ErrMalformed, p.Width, p.Height)
	}
	if p.TargetDistance == 0 {
		p.TargetDistance = DefaultTargetDistance
	}
	if p.MaxSpeed == 0 {
		p.MaxSpeed = DefaultMaxSpeed
	}
	if p.Acceleration == 0 {
		p.Acceleration = DefaultAcceleration
	}
	if p.Pause == 0 {
		p.Pause = DefaultPause
	}
	return nil
}

// Names lists the embedded levels in play order.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Load reads an embedded level by name. Index is its one-based position in
// Names.
func Load(name string) (*Level, error) {
	name = strings.TrimSuffix(path.Base(name), ".json")
	data, err := fs.ReadFile(LevelsFS, name+".json")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = name
	}
	for i, n := range Names() {
		if n == name {
			lvl.Index = i + 1
		}
	}
	return lvl, nil
}

// First returns the name of the first level.
func First() string {
	names := Names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// ByIndex returns the name of the level at a one-based index.
func ByIndex(i int) (string, bool) {
	names := Names()
	if i < 1 || i > len(names) {
		return "", false
	}
	return names[i-1], true
}
