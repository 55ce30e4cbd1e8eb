package component

import "github.com/milk9111/polarities/movement"

// RestartRequest is a short-lived marker asking the level system to rebuild
// the current level. It is created when an attempt ends.
type RestartRequest struct {
	Polarity movement.Polarity
	Cause    movement.RestartCause
}

var RestartRequestComponent = NewComponent[RestartRequest]()
