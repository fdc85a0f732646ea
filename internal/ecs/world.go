// Package ecs is the actor arena: stable entity IDs, per-category ordered
// lists, the scene draw list and the deferred-removal queue.
package ecs

import (
	"slices"

	"github.com/younwookim/tilequest/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World owns every live actor.
// Entities are never removed while a frame iterates them; QueueRemoval marks
// them and Flush detaches them once per frame.
type World struct {
	nextID EntityID

	records map[EntityID]record
	lists   map[Category][]EntityID
	scene   []EntityID

	// Components
	PickupData map[EntityID]Pickup

	pending []EntityID
	queued  map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		records:    make(map[EntityID]record),
		lists:      make(map[Category][]EntityID),
		PickupData: make(map[EntityID]Pickup),
		queued:     make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Spawn adds an actor to the arena, its category list and the end of the
// scene draw list. Spawning a player replaces PlayerID.
func (w *World) Spawn(cat Category, a *entity.Actor) EntityID {
	id := w.NewEntity()
	w.records[id] = record{actor: a, category: cat}
	w.lists[cat] = append(w.lists[cat], id)
	w.scene = append(w.scene, id)
	if cat == CategoryPlayer {
		w.PlayerID = id
	}
	return id
}

// Get returns the actor for id, or nil
func (w *World) Get(id EntityID) *entity.Actor {
	return w.records[id].actor
}

// CategoryOf returns the category of id (CategoryNone if unknown)
func (w *World) CategoryOf(id EntityID) Category {
	return w.records[id].category
}

// Exists checks if an entity is live
func (w *World) Exists(id EntityID) bool {
	_, ok := w.records[id]
	return ok
}

// IDs returns a snapshot of the category list in spawn order
func (w *World) IDs(cat Category) []EntityID {
	return slices.Clone(w.lists[cat])
}

// Actors returns the actors of a category in spawn order
func (w *World) Actors(cat Category) []*entity.Actor {
	ids := w.lists[cat]
	out := make([]*entity.Actor, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.records[id].actor)
	}
	return out
}

// Scene returns a snapshot of the draw list
func (w *World) Scene() []EntityID {
	return slices.Clone(w.scene)
}

// Count returns the number of live entities in a category
func (w *World) Count(cat Category) int {
	return len(w.lists[cat])
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.records)
}

// Player returns the player actor, or nil
func (w *World) Player() *entity.Actor {
	return w.Get(w.PlayerID)
}

// QueueRemoval marks id for removal at the next Flush.
// Unknown and already queued IDs are ignored.
func (w *World) QueueRemoval(id EntityID) bool {
	if !w.Exists(id) {
		return false
	}
	if _, dup := w.queued[id]; dup {
		return false
	}
	w.queued[id] = struct{}{}
	w.pending = append(w.pending, id)
	return true
}

// PendingRemovals returns a snapshot of the removal queue
func (w *World) PendingRemovals() []EntityID {
	return slices.Clone(w.pending)
}

// Flush drains the removal queue and returns how many entities were removed
func (w *World) Flush() int {
	n := 0
	for _, id := range w.pending {
		if w.DestroyEntity(id) {
			n++
		}
	}
	w.pending = w.pending[:0]
	clear(w.queued)
	return n
}

// DestroyEntity detaches an entity immediately: first from the scene draw
// list, then from its category list, then from the arena.
func (w *World) DestroyEntity(id EntityID) bool {
	rec, ok := w.records[id]
	if !ok {
		return false
	}
	w.scene = remove(w.scene, id)
	w.lists[rec.category] = remove(w.lists[rec.category], id)
	delete(w.records, id)
	delete(w.PickupData, id)
	if id == w.PlayerID {
		w.PlayerID = 0
	}
	return true
}

// Clear destroys every entity and drops pending removals.
// IDs keep increasing across a clear.
func (w *World) Clear() {
	for _, id := range w.Scene() {
		w.DestroyEntity(id)
	}
	w.pending = w.pending[:0]
	clear(w.queued)
}

func remove(ids []EntityID, id EntityID) []EntityID {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}
