package component

// LevelInfo describes the loaded level. Exactly one entity carries it.
type LevelInfo struct {
	Name   string
	Index  int
	Next   string
	Width  float64
	Height float64
}

var LevelInfoComponent = NewComponent[LevelInfo]()
