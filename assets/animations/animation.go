package animations

import "math"

// PlayHead is a snapshot of an animation's playback position.
type PlayHead struct {
	Frame   int
	Elapsed float64 // seconds spent on the current frame
	Running bool
}

// Animation advances through frames with per-frame delays in seconds.
type Animation struct {
	delays           []float64
	cycle            float64 // sum of delays
	frame            int
	elapsed          float64
	Running          bool
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// NewAnimation creates a running animation. Non-positive delays are treated as
// DefaultFrameDelay.
func NewAnimation(delays []float64) *Animation {
	d := make([]float64, len(delays))
	cycle := 0.0
	for i, v := range delays {
		if !(v > 0) || math.IsInf(v, 0) {
			v = DefaultFrameDelay
		}
		d[i] = v
		cycle += v
	}
	return &Animation{
		delays:  d,
		cycle:   cycle,
		Running: len(d) > 1,
	}
}

// NewUniformAnimation creates a running animation of n frames at fps.
func NewUniformAnimation(n int, fps float64) *Animation {
	delay := DefaultFrameDelay
	if fps > 0 {
		delay = 1 / fps
	}
	delays := make([]float64, n)
	for i := range delays {
		delays[i] = delay
	}
	return NewAnimation(delays)
}

// DefaultFrameDelay is used for frames that carry no usable timing.
const DefaultFrameDelay = 0.1

// Update advances the play-head by dt seconds. Non-positive and non-finite
// steps are ignored. Whole cycles are skipped without stepping through frames.
func (a *Animation) Update(dt float64) {
	if !a.Running || len(a.delays) < 2 || !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	a.elapsed += dt
	if a.elapsed >= a.cycle {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = len(a.delays) - 1
			a.elapsed = 0
			a.Running = false
			return
		}
		a.elapsed = math.Mod(a.elapsed, a.cycle)
	}
	for a.elapsed >= a.delays[a.frame] {
		a.elapsed -= a.delays[a.frame]
		a.frame++
		if a.frame >= len(a.delays) {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = len(a.delays) - 1
				a.elapsed = 0
				a.Running = false
				return
			}
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.delays)
}

func (a *Animation) Restart() {
	a.frame = 0
	a.elapsed = 0
	a.Looped = false
}

// Seek moves to frame, clamped to the valid range.
func (a *Animation) Seek(frame int) {
	if len(a.delays) == 0 {
		a.frame = 0
		return
	}
	if frame < 0 {
		frame = 0
	}
	if frame >= len(a.delays) {
		frame = len(a.delays) - 1
	}
	a.frame = frame
	a.elapsed = 0
}

func (a *Animation) PlayHead() PlayHead {
	return PlayHead{Frame: a.frame, Elapsed: a.elapsed, Running: a.Running}
}

// Restore applies a snapshot taken from another animation. The frame is
// clamped to this animation's length; elapsed time is kept only when it fits
// the target frame's delay.
func (a *Animation) Restore(p PlayHead) {
	a.Seek(p.Frame)
	if len(a.delays) > 0 && p.Elapsed > 0 && p.Elapsed < a.delays[a.frame] {
		a.elapsed = p.Elapsed
	}
	a.Running = p.Running && len(a.delays) > 1
}
