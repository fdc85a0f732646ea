package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the current-frame input: four held directions and two
// one-shot commands
type InputState struct {
	Left        bool
	Right       bool
	Up          bool
	Down        bool
	TogglePause bool
	Reset       bool
}

// Held reports whether direction d is held
func (in InputState) Held(d Direction) bool {
	switch d {
	case DirLeft:
		return in.Left
	case DirRight:
		return in.Right
	case DirUp:
		return in.Up
	case DirDown:
		return in.Down
	default:
		return false
	}
}

// InputSource produces one InputState per frame
type InputSource interface {
	GetInput() InputState
}

// KeyboardInput reads the arrow keys (or WASD) and P / R from ebiten
type KeyboardInput struct{}

// NewKeyboardInput creates a keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// GetInput reads the current input state
func (k *KeyboardInput) GetInput() InputState {
	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:          ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:        ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Reset:       inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}
