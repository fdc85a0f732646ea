// Package scene defines the Scene interface for game screens.
//
// The playing screen is the only scene today; a title or stage-select
// screen would implement the same interface.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is a game screen driven by game.Game.
//
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error (ebiten.Termination for a clean quit) to end the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, and once more at shutdown.
	// Use this for saving state such as recordings.
	OnExit()
}
