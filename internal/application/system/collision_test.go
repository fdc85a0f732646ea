package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/ecs"
)

func box(x, y, w, h float64) *entity.Actor {
	a := entity.New()
	a.SetPosition(x, y)
	a.SetSize(w, h)
	a.SetRectangleBoundary()
	return a
}

func TestCollisionSystem_ResolveWalls(t *testing.T) {
	t.Run("pushes the player out along x", func(t *testing.T) {
		w := ecs.NewWorld()
		wall := w.Spawn(ecs.CategoryWall, box(40, 0, 32, 32))
		w.Spawn(ecs.CategoryPlayer, box(0, 0, 48, 48))

		hits := NewCollisionSystem().ResolveWalls(w)

		assert.Equal(t, 1, hits)
		assert.InDelta(t, -8.0, w.Player().Position.X, 1e-9)
		assert.InDelta(t, 0.0, w.Player().Position.Y, 1e-9)
		assert.Equal(t, 40.0, w.Get(wall).Position.X, "walls never move")
	})

	t.Run("corner between two walls", func(t *testing.T) {
		w := ecs.NewWorld()
		w.Spawn(ecs.CategoryWall, box(0, 0, 200, 32))  // ceiling
		w.Spawn(ecs.CategoryWall, box(0, 0, 32, 200))  // left wall
		w.Spawn(ecs.CategoryPlayer, box(28, 30, 48, 48))

		NewCollisionSystem().ResolveWalls(w)

		p := w.Player().Position
		assert.GreaterOrEqual(t, p.X, 32.0-0.5)
		assert.GreaterOrEqual(t, p.Y, 32.0-0.5)
	})

	t.Run("no player", func(t *testing.T) {
		w := ecs.NewWorld()
		w.Spawn(ecs.CategoryWall, box(0, 0, 10, 10))

		assert.Equal(t, 0, NewCollisionSystem().ResolveWalls(w))
	})
}

func TestCollisionSystem_CollectPickups(t *testing.T) {
	w := ecs.NewWorld()
	touching := w.Spawn(ecs.CategoryCoin, box(8, 8, 32, 32))
	far := w.Spawn(ecs.CategoryCoin, box(500, 500, 32, 32))
	w.PickupData[touching] = ecs.Pickup{Value: 5}
	w.Spawn(ecs.CategoryPlayer, box(0, 0, 48, 48))

	var picked []int
	s := NewCollisionSystem()
	s.OnPickup = func(id ecs.EntityID, value int) {
		assert.Equal(t, touching, id)
		picked = append(picked, value)
	}

	got := s.CollectPickups(w)

	assert.Equal(t, []ecs.EntityID{touching}, got)
	assert.Equal(t, []int{5}, picked)
	assert.True(t, w.Exists(touching), "removal is deferred")
	assert.Equal(t, []ecs.EntityID{touching}, w.PendingRemovals())
	assert.Equal(t, 0.0, w.Player().Position.X, "pickups never push")

	again := s.CollectPickups(w)
	assert.Empty(t, again, "already queued coins are not reported twice")
	assert.Equal(t, []int{5}, picked)

	require.Equal(t, 1, w.Flush())
	assert.False(t, w.Exists(touching))
	assert.True(t, w.Exists(far))
	assert.Empty(t, s.CollectPickups(w))
}
