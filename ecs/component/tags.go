package component

// PlayerTag marks an entity driven by the shared input stream.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
