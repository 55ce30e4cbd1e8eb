package component

// LevelChangeRequest is a one-shot request to load TargetLevel. Completed is
// the index of the level just finished, or zero when nothing was completed.
type LevelChangeRequest struct {
	TargetLevel string
	Completed   int
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
