// Package level runs the per-frame simulation of one stage: movement,
// actor ticks, wall resolution, pickups, deferred removal and the camera.
package level

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/younwookim/tilequest/internal/application/system"
	"github.com/younwookim/tilequest/internal/domain/diag"
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/ecs"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

// Options configures a Level
type Options struct {
	Settings   *config.SettingsConfig
	Stage      *config.StageConfig
	Prototypes system.Prototypes
	Diag       diag.Channel
	// OnPickup is called once per collected coin
	OnPickup func(value int)
}

// Level is one playable stage
type Level struct {
	opts Options
	diag diag.Channel

	world     *ecs.World
	info      system.StageInfo
	movement  *system.MovementSystem
	collision *system.CollisionSystem
	camera    *system.Camera

	collected int
	score     int
	frame     uint64
}

// New builds a level and populates its world from the stage
func New(opts Options) (*Level, error) {
	if opts.Settings == nil || opts.Stage == nil {
		return nil, fmt.Errorf("level needs settings and a stage")
	}
	l := &Level{
		opts:     opts,
		diag:     diag.Or(opts.Diag),
		movement: system.NewMovementSystem(opts.Settings.Player),
		camera: system.NewCamera(
			float64(opts.Settings.Display.ScreenWidth),
			float64(opts.Settings.Display.ScreenHeight),
		),
	}
	l.collision = system.NewCollisionSystem()
	l.collision.OnPickup = l.pickup

	if err := l.Reset(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reset rebuilds the level from its stage config. Entity IDs keep
// increasing across resets.
func (l *Level) Reset() error {
	if l.world == nil {
		l.world = ecs.NewWorld()
	} else {
		l.world.Clear()
	}
	info, err := system.LoadStage(l.opts.Stage, l.opts.Prototypes, l.world, l.diag)
	if err != nil {
		return fmt.Errorf("failed to load stage: %w", err)
	}
	l.info = info
	l.collected = 0
	l.score = 0
	l.frame = 0
	l.camera.Follow(l.world.Player(), info.Width, info.Height)
	return nil
}

func (l *Level) pickup(_ ecs.EntityID, value int) {
	l.collected++
	l.score += value
	if l.opts.OnPickup != nil {
		l.opts.OnPickup(value)
	}
}

// Tick advances the simulation by dt seconds:
//  1. reset player velocity, apply held directions, rest pose
//  2. tick every actor in scene order
//  3. push the player out of walls
//  4. queue touched coins for removal
//  5. drain the removal queue
//  6. clamp the camera to the map
//
// A panic inside the frame is recovered and reported as a diagnostic.
func (l *Level) Tick(dt float64, in system.InputState) {
	defer func() {
		if r := recover(); r != nil {
			diag.Error(l.diag, diag.KindRuntime, "frame recovered from panic",
				diag.F("frame", l.frame), diag.F("panic", fmt.Sprint(r)))
		}
	}()

	l.frame++
	w := l.world
	player := w.Player()

	l.movement.Apply(player, in)

	ecs.TickActors(w, dt)

	l.collision.ResolveWalls(w)
	l.collision.CollectPickups(w)
	w.Flush()

	l.camera.Follow(player, l.info.Width, l.info.Height)
}

// Draw submits every visible actor to r in scene order
func (l *Level) Draw(r entity.Renderer) {
	ecs.DrawActors(l.world, r)
}

// World returns the actor arena
func (l *Level) World() *ecs.World { return l.world }

// Camera returns the camera
func (l *Level) Camera() *system.Camera { return l.camera }

// Info returns the loaded stage description
func (l *Level) Info() system.StageInfo { return l.info }

// Frame returns the number of ticks since the last reset
func (l *Level) Frame() uint64 { return l.frame }

// Collected returns how many coins were picked up
func (l *Level) Collected() int { return l.collected }

// Score returns the summed value of the collected coins
func (l *Level) Score() int { return l.score }

// Remaining returns how many coins are left
func (l *Level) Remaining() int { return l.world.Count(ecs.CategoryCoin) }

// Complete reports whether every coin has been collected
func (l *Level) Complete() bool {
	return l.info.Coins > 0 && l.Remaining() == 0
}

// Checksum hashes the simulation state: frame, player transform and
// velocity, and the live coin IDs. Two runs fed the same inputs produce the
// same checksum.
func (l *Level) Checksum() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putF := func(f float64) { put(math.Float64bits(f)) }

	put(l.frame)
	put(uint64(l.collected))
	if p := l.world.Player(); p != nil {
		putF(p.Position.X)
		putF(p.Position.Y)
		putF(p.Rotation)
		if p.Motion != nil {
			putF(p.Motion.Velocity.X)
			putF(p.Motion.Velocity.Y)
		}
		_, _ = d.WriteString(p.ActiveClipName())
	}
	for _, id := range l.world.IDs(ecs.CategoryCoin) {
		put(uint64(id))
	}
	return d.Sum64()
}
