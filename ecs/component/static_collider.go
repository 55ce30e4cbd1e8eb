package component

import "github.com/milk9111/polarities/movement"

// StaticCollider mirrors a level collider registered with the physics world.
type StaticCollider struct {
	Collider movement.Collider
}

var StaticColliderComponent = NewComponent[StaticCollider]()
