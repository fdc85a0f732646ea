package ecs

import "github.com/younwookim/tilequest/internal/domain/entity"

// TickActors advances every actor by dt in scene order
func TickActors(w *World, dt float64) {
	for _, id := range w.scene {
		if a := w.Get(id); a != nil {
			a.Tick(dt)
		}
	}
}

// DrawActors submits every actor to r in scene order
func DrawActors(w *World, r entity.Renderer) {
	for _, id := range w.scene {
		if a := w.Get(id); a != nil {
			a.Draw(r)
		}
	}
}

// Overlapping returns the entities of category cat that subject overlaps,
// in category order. With resolve, subject is pushed out of each one as it
// is tested, so later tests see the corrected position.
func Overlapping(w *World, subject *entity.Actor, cat Category, resolve bool) []EntityID {
	if subject == nil {
		return nil
	}
	var hits []EntityID
	for _, id := range w.IDs(cat) {
		other := w.Get(id)
		if other == nil || other == subject {
			continue
		}
		if subject.Overlaps(other, resolve) {
			hits = append(hits, id)
		}
	}
	return hits
}
