package entity

import "github.com/younwookim/tilequest/internal/domain/diag"

func (a *Actor) animator() *Animator {
	if a.Anim == nil {
		a.Anim = NewAnimator()
	}
	return a.Anim
}

// StoreClip registers (or replaces) a named clip.
// The first clip stored becomes the active one.
func (a *Actor) StoreClip(name string, clip *Clip) {
	an := a.animator()
	an.clips[name] = clip
	if an.active == "" {
		a.SetActiveClip(name)
	}
}

// StoreSingleFrameClip wraps a static image as a one-frame clip
func (a *Actor) StoreSingleFrameClip(name string, img Image) {
	a.StoreClip(name, NewClip(SingleFrameDuration, PlayNormal, NewRegion(img)))
}

// SetActiveClip switches playback to the named clip.
// Switching to the active clip keeps the playback position; an unknown
// name is reported and ignored. A new clip restarts at 0 and, while the
// actor has no size yet, lends it the size of its first frame.
func (a *Actor) SetActiveClip(name string) {
	an := a.animator()
	clip, ok := an.clips[name]
	if !ok {
		diag.Warn(a.Diag, diag.KindMissingClip, "no animation clip",
			diag.F("actor", a.Name), diag.F("clip", name))
		return
	}
	if name == an.active {
		return
	}
	an.active = name
	an.elapsed = 0

	if (a.Width == 0 || a.Height == 0) && len(clip.Frames) > 0 {
		a.Width, a.Height = clip.Frames[0].Size()
	}
}

// ActiveClipName returns the active clip name ("" without animation)
func (a *Actor) ActiveClipName() string {
	if a.Anim == nil {
		return ""
	}
	return a.Anim.active
}

// PauseAnimation freezes playback time
func (a *Actor) PauseAnimation() { a.animator().Pause() }

// ResumeAnimation lets playback time advance
func (a *Actor) ResumeAnimation() { a.animator().Resume() }

// SetFrameIndex seeks playback to frame n of the active clip
func (a *Actor) SetFrameIndex(n int) {
	an := a.animator()
	if an.ActiveClip() == nil {
		diag.Warn(a.Diag, diag.KindMissingClip, "frame seek without active clip",
			diag.F("actor", a.Name), diag.F("frame", n))
		return
	}
	an.SeekFrame(n)
}

// AccelerateForward accelerates along the actor's current rotation
func (a *Actor) AccelerateForward(accel float64) {
	if a.Motion == nil {
		a.Motion = NewMotion()
	}
	a.Motion.SetAccelerationAngle(a.Rotation, accel)
}
