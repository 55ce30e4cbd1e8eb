package ecs

import (
	"sort"

	"github.com/milk9111/polarities/ecs/component"
)

// Query returns the live entities holding every listed kind, in id order.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID())
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	base := smallest(stores...)
	out := make([]Entity, 0, base.len())
outer:
	for _, e := range base.entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		for _, s := range stores {
			if !s.has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest-id live entity holding every listed kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
