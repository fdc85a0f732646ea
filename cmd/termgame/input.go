package main

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/tilequest/internal/application/system"
)

// termInput turns tcell key events into an InputSource. Terminals report
// presses and auto-repeats but no releases, so a direction stays held for
// holdFrames frames after its last event.
type termInput struct {
	mu         sync.Mutex
	frame      int
	holdFrames int
	lastSeen   map[system.Direction]int
	pause      bool
	reset      bool
	quit       bool
}

func newTermInput(holdFrames int) *termInput {
	return &termInput{
		holdFrames: holdFrames,
		lastSeen:   make(map[system.Direction]int),
	}
}

// HandleKey records one key event. It is called from the event goroutine.
func (t *termInput) HandleKey(ev *tcell.EventKey) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyLeft:
		t.press(system.DirLeft)
	case tcell.KeyRight:
		t.press(system.DirRight)
	case tcell.KeyUp:
		t.press(system.DirUp)
	case tcell.KeyDown:
		t.press(system.DirDown)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			t.press(system.DirLeft)
		case 'd', 'D':
			t.press(system.DirRight)
		case 'w', 'W':
			t.press(system.DirUp)
		case 's', 'S':
			t.press(system.DirDown)
		case 'p', 'P':
			t.pause = true
		case 'r', 'R':
			t.reset = true
		case 'q', 'Q':
			t.quit = true
		}
	}
}

func (t *termInput) press(d system.Direction) {
	t.lastSeen[d] = t.frame + 1
}

// GetInput returns this frame's input and advances the frame
func (t *termInput) GetInput() system.InputState {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.frame++
	held := func(d system.Direction) bool {
		seen, ok := t.lastSeen[d]
		return ok && t.frame-seen < t.holdFrames
	}
	in := system.InputState{
		Left:        held(system.DirLeft),
		Right:       held(system.DirRight),
		Up:          held(system.DirUp),
		Down:        held(system.DirDown),
		TogglePause: t.pause,
		Reset:       t.reset,
	}
	t.pause, t.reset = false, false
	return in
}

// Quit reports whether a quit key was pressed
func (t *termInput) Quit() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.quit
}
