package entity

import (
	"fmt"
	"strings"
)

// LoopMode controls how a clip is sampled past its last frame
type LoopMode int

const (
	PlayNormal LoopMode = iota
	PlayReversed
	PlayLoop
	PlayLoopReversed
	PlayLoopPingPong
)

// String returns the config name of the mode
func (m LoopMode) String() string {
	switch m {
	case PlayNormal:
		return "normal"
	case PlayReversed:
		return "reversed"
	case PlayLoop:
		return "loop"
	case PlayLoopReversed:
		return "loop_reversed"
	case PlayLoopPingPong:
		return "loop_pingpong"
	default:
		return "unknown"
	}
}

// ParseLoopMode converts a config name into a LoopMode
func ParseLoopMode(s string) (LoopMode, error) {
	switch strings.ToLower(s) {
	case "", "normal":
		return PlayNormal, nil
	case "reversed":
		return PlayReversed, nil
	case "loop":
		return PlayLoop, nil
	case "loop_reversed":
		return PlayLoopReversed, nil
	case "loop_pingpong", "pingpong":
		return PlayLoopPingPong, nil
	default:
		return PlayNormal, fmt.Errorf("unknown loop mode %q", s)
	}
}

// SingleFrameDuration is the frame duration of clips built from one image
const SingleFrameDuration = 1.0

// Clip is an ordered sequence of frames with a fixed per-frame duration.
// Clips are immutable once built and may be shared between actors.
type Clip struct {
	Frames        []Region
	FrameDuration float64 // seconds
	Mode          LoopMode
}

// NewClip builds a clip
func NewClip(frameDuration float64, mode LoopMode, frames ...Region) *Clip {
	return &Clip{Frames: frames, FrameDuration: frameDuration, Mode: mode}
}

// Duration returns the length of one pass over the frames
func (c *Clip) Duration() float64 {
	return float64(len(c.Frames)) * c.FrameDuration
}

// KeyFrameIndex returns the frame index shown at time t (seconds)
func (c *Clip) KeyFrameIndex(t float64) int {
	n := len(c.Frames)
	if n <= 1 || c.FrameDuration <= 0 {
		return 0
	}
	if t < 0 {
		t = 0
	}
	frame := int(t / c.FrameDuration)

	switch c.Mode {
	case PlayReversed:
		idx := n - frame - 1
		if idx < 0 {
			idx = 0
		}
		return idx
	case PlayLoop:
		return frame % n
	case PlayLoopReversed:
		return n - frame%n - 1
	case PlayLoopPingPong:
		frame %= n*2 - 2
		if frame >= n {
			frame = n - 2 - (frame - n)
		}
		return frame
	default:
		if frame >= n {
			return n - 1
		}
		return frame
	}
}

// KeyFrame returns the frame shown at time t
func (c *Clip) KeyFrame(t float64) Region {
	if len(c.Frames) == 0 {
		return Region{}
	}
	return c.Frames[c.KeyFrameIndex(t)]
}

// Animator is the animation-state behaviour of an actor: a named clip table,
// the active clip and playback time.
// Invariant: active, when non-empty, is a key of clips.
type Animator struct {
	clips   map[string]*Clip
	active  string
	elapsed float64
	paused  bool
}

// NewAnimator creates an empty animator
func NewAnimator() *Animator {
	return &Animator{clips: make(map[string]*Clip)}
}

// Clip returns the clip stored under name
func (an *Animator) Clip(name string) (*Clip, bool) {
	c, ok := an.clips[name]
	return c, ok
}

// Len returns the number of stored clips
func (an *Animator) Len() int { return len(an.clips) }

// Active returns the active clip name ("" if none)
func (an *Animator) Active() string { return an.active }

// ActiveClip returns the active clip or nil
func (an *Animator) ActiveClip() *Clip { return an.clips[an.active] }

// Elapsed returns the playback time of the active clip
func (an *Animator) Elapsed() float64 { return an.elapsed }

// Paused reports whether playback time is frozen
func (an *Animator) Paused() bool { return an.paused }

// Pause freezes playback time
func (an *Animator) Pause() { an.paused = true }

// Resume lets playback time advance again
func (an *Animator) Resume() { an.paused = false }

// Advance moves playback time forward unless paused
func (an *Animator) Advance(dt float64) {
	if !an.paused {
		an.elapsed += dt
	}
}

// SeekFrame sets playback time to the start of frame n of the active clip
func (an *Animator) SeekFrame(n int) {
	c := an.ActiveClip()
	if c == nil {
		return
	}
	an.elapsed = float64(n) * c.FrameDuration
}

// KeyFrame samples the active clip at the current playback time
func (an *Animator) KeyFrame() (Region, bool) {
	c := an.ActiveClip()
	if c == nil {
		return Region{}, false
	}
	return c.KeyFrame(an.elapsed), true
}

// clone copies the clip table into a fresh map. Clips themselves are
// immutable and stay shared.
func (an *Animator) clone() *Animator {
	clips := make(map[string]*Clip, len(an.clips))
	for k, v := range an.clips {
		clips[k] = v
	}
	return &Animator{
		clips:  clips,
		active: an.active,
		paused: an.paused,
	}
}
