package gamemath

import "math"

// HistoryCapacity is the number of pointer samples kept for velocity estimation.
const HistoryCapacity = 10

// MotionHistory is a fixed-size, time-ordered buffer of pointer samples.
// Once full, recording a new sample drops the oldest and shifts the rest left,
// so the newest sample is always at index Len()-1.
//
// It is owned by the input path and is not safe for concurrent use.
type MotionHistory struct {
	positions  [HistoryCapacity]Vec2
	timestamps [HistoryCapacity]float64
	count      int
}

func NewMotionHistory() *MotionHistory {
	return &MotionHistory{}
}

// Record appends a sample. Samples older than the newest one, or with a
// non-finite timestamp, are ignored and Record returns false.
func (h *MotionHistory) Record(pos Vec2, t float64) bool {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return false
	}
	if h.count > 0 && t < h.timestamps[h.count-1] {
		return false
	}

	if h.count == HistoryCapacity {
		copy(h.positions[:], h.positions[1:])
		copy(h.timestamps[:], h.timestamps[1:])
		h.count--
	}
	h.positions[h.count] = pos
	h.timestamps[h.count] = t
	h.count++
	return true
}

// Reset empties the buffer.
func (h *MotionHistory) Reset() {
	h.count = 0
}

func (h *MotionHistory) Len() int {
	return h.count
}

// Positions returns the live recorded positions, oldest first.
func (h *MotionHistory) Positions() []Vec2 {
	return h.positions[:h.count]
}

// Timestamps returns the live recorded timestamps, oldest first.
func (h *MotionHistory) Timestamps() []float64 {
	return h.timestamps[:h.count]
}

// Newest returns the most recent sample.
func (h *MotionHistory) Newest() (Vec2, float64, bool) {
	if h.count == 0 {
		return Vec2{}, 0, false
	}
	return h.positions[h.count-1], h.timestamps[h.count-1], true
}

// Velocity estimates the release velocity from the recorded samples.
func (h *MotionHistory) Velocity() (vx, vy float64) {
	return CalculateVelocityFromHistory(h.Positions(), h.Timestamps(), h.count)
}

// IsThrow reports whether the recorded motion is fast enough to count as a throw.
func (h *MotionHistory) IsThrow(speedThreshold float64) bool {
	return IsThrowFromHistory(h.Positions(), h.Timestamps(), h.count, speedThreshold)
}
