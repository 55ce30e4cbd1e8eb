package component

// Persistent entities survive level rebuilds. Everything else is destroyed
// when a level is reloaded or changed.
type Persistent struct {
	ID                string
	KeepOnLevelChange bool
	KeepOnReload      bool
}

var PersistentComponent = NewComponent[Persistent]()
