package component

import "github.com/milk9111/polarities/movement"

// CollisionLayer records the query layer an entity's collider lives on and
// the layers it collides with.
type CollisionLayer struct {
	Layer movement.Layer
	Mask  movement.Layer
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
