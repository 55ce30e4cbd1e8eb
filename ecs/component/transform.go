package component

// Transform is an entity's position in world units with y growing upward.
// ScaleX is -1 when a sprite should be drawn mirrored.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
