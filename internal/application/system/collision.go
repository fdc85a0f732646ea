package system

import (
	"github.com/younwookim/tilequest/internal/ecs"
)

// CollisionSystem resolves the player against walls and detects pickups
type CollisionSystem struct {
	// OnPickup is called for each coin the player touches, before it is
	// queued for removal
	OnPickup func(id ecs.EntityID, value int)
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// ResolveWalls pushes the player out of every wall it overlaps, in wall
// order. Walls never move. Returns the number of walls hit.
func (s *CollisionSystem) ResolveWalls(w *ecs.World) int {
	return len(ecs.Overlapping(w, w.Player(), ecs.CategoryWall, true))
}

// CollectPickups queues every coin touching the player for removal and
// returns the queued IDs. Nothing is removed until the world is flushed.
func (s *CollisionSystem) CollectPickups(w *ecs.World) []ecs.EntityID {
	var collected []ecs.EntityID
	for _, id := range ecs.Overlapping(w, w.Player(), ecs.CategoryCoin, false) {
		if !w.QueueRemoval(id) {
			continue
		}
		if s.OnPickup != nil {
			s.OnPickup(id, w.PickupData[id].Value)
		}
		collected = append(collected, id)
	}
	return collected
}
