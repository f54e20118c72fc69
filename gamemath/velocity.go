package gamemath

import "math"

// CalculateVelocityFromHistory estimates a release velocity from the first
// count samples. MotionHistory passes its live window, oldest first, so those
// are the most recent samples recorded. Each consecutive pair yields a segment
// velocity; segments are combined with weights that grow linearly with recency
// so the newest motion dominates. Segments with a non-positive time step are skipped. Invalid input
// yields (0, 0).
func CalculateVelocityFromHistory(positions []Vec2, timestamps []float64, count int) (vx, vy float64) {
	if !validHistory(positions, timestamps, count) {
		return 0, 0
	}

	var sumX, sumY, sumW float64
	for i := 1; i < count; i++ {
		dt := timestamps[i] - timestamps[i-1]
		if !(dt > 0) || math.IsInf(dt, 0) {
			continue
		}
		segX := (positions[i].X - positions[i-1].X) / dt
		segY := (positions[i].Y - positions[i-1].Y) / dt
		if !isFinite(segX) || !isFinite(segY) {
			continue
		}
		w := float64(i)
		sumX += segX * w
		sumY += segY * w
		sumW += w
	}

	if sumW == 0 {
		return 0, 0
	}
	return finiteOrZero(sumX / sumW), finiteOrZero(sumY / sumW)
}

// IsThrowFromHistory reports whether the estimated velocity magnitude exceeds speedThreshold.
func IsThrowFromHistory(positions []Vec2, timestamps []float64, count int, speedThreshold float64) bool {
	if !validHistory(positions, timestamps, count) {
		return false
	}
	vx, vy := CalculateVelocityFromHistory(positions, timestamps, count)
	return math.Hypot(vx, vy) > speedThreshold
}

func validHistory(positions []Vec2, timestamps []float64, count int) bool {
	if positions == nil || timestamps == nil || count < 2 {
		return false
	}
	return len(positions) >= count && len(timestamps) >= count
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
