package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/movement"
)

// Character ties a polarity to the controller that moves it.
type Character struct {
	Polarity   movement.Polarity
	Controller *movement.Controller
	Spawn      cp.Vector
}

var CharacterComponent = NewComponent[Character]()
