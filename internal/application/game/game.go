// Package game provides the ebiten.Game that drives the current Scene.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/tilequest/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  uint64
	logger  *zap.Logger
	closed  bool
}

// New creates a Game running initialScene at framerate ticks per second.
// The initial scene's OnEnter is called immediately. A nil logger discards.
func New(initialScene scene.Scene, screenW, screenH, framerate int, logger *zap.Logger) *Game {
	if framerate <= 0 {
		framerate = 60
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(framerate),
		logger:  logger,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// ebiten.Termination from a scene ends the run without being logged.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	g.frames++
	if err != nil {
		if !errors.Is(err, ebiten.Termination) {
			g.logger.Error("scene update failed", zap.Uint64("frame", g.frames), zap.Error(err))
		}
		return err
	}

	if next != nil {
		g.logger.Debug("scene transition", zap.Uint64("frame", g.frames))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene once. Call it after ebiten.RunGame returns.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// Frames returns the number of Update calls so far
func (g *Game) Frames() uint64 {
	return g.frames
}

// DT returns the fixed step passed to scenes
func (g *Game) DT() float64 {
	return g.dt
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
