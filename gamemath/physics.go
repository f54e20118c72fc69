package gamemath

import "math"

// Physics holds the engine constants used by Update.
type Physics struct {
	// FrictionCoefficient is the fraction of velocity lost per second.
	FrictionCoefficient float64
	// StopThreshold is the per-axis speed below which the ball is snapped to rest.
	StopThreshold float64
	// Restitution is the fraction of the normal velocity kept after a wall bounce.
	Restitution float64
}

// PhysicsUpdateResult reports the outcome of a single Update call.
type PhysicsUpdateResult struct {
	IsMoving  bool
	HitLeft   bool
	HitRight  bool
	HitTop    bool
	HitBottom bool
}

// AnyHit reports whether any boundary was hit during the update.
func (r PhysicsUpdateResult) AnyHit() bool {
	return r.HitLeft || r.HitRight || r.HitTop || r.HitBottom
}

func DefaultPhysics() Physics {
	return Physics{
		FrictionCoefficient: 0.75,
		StopThreshold:       0.5,
		Restitution:         0.8,
	}
}

var defaultPhysics = DefaultPhysics()

// Update advances the ball by dt seconds using the default engine constants.
func Update(b *Ball, dt, left, top, right, bottom float64) PhysicsUpdateResult {
	return defaultPhysics.Update(b, dt, left, top, right, bottom)
}

// Update advances the ball by dt seconds inside the given bounds.
// A non-positive or non-finite dt leaves the ball untouched.
func (p Physics) Update(b *Ball, dt, left, top, right, bottom float64) PhysicsUpdateResult {
	if b == nil {
		return PhysicsUpdateResult{}
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return PhysicsUpdateResult{IsMoving: b.Moving()}
	}

	// Friction first, then position from the new velocity (semi-implicit Euler).
	retain := math.Pow(1-clamp01(p.FrictionCoefficient), dt)
	b.VX = finiteOrZero(b.VX * retain)
	b.VY = finiteOrZero(b.VY * retain)

	b.X += b.VX * dt
	b.Y += b.VY * dt

	var res PhysicsUpdateResult
	restitution := clamp01(p.Restitution)
	res.HitLeft, res.HitRight = resolveAxis(&b.X, &b.VX, b.radius, left, right, restitution)
	res.HitTop, res.HitBottom = resolveAxis(&b.Y, &b.VY, b.radius, top, bottom, restitution)

	if math.Abs(b.VX) < p.StopThreshold && math.Abs(b.VY) < p.StopThreshold {
		b.Stop()
		return res
	}
	res.IsMoving = true
	return res
}

// resolveAxis clamps one axis of a circle into [lo, hi] and reflects the
// velocity away from the wall that was crossed.
func resolveAxis(pos, vel *float64, radius, lo, hi, restitution float64) (hitLo, hitHi bool) {
	hitLo = *pos-radius < lo
	hitHi = *pos+radius > hi

	if hi-lo < 2*radius {
		if hitLo || hitHi {
			*pos = lo + (hi-lo)/2
			*vel = 0
		}
		return hitLo, hitHi
	}

	switch {
	case hitLo:
		*pos = lo + radius
		*vel = math.Abs(*vel) * restitution
	case hitHi:
		*pos = hi - radius
		*vel = -math.Abs(*vel) * restitution
	}
	return hitLo, hitHi
}

// ClampSpeed scales the vector down so its magnitude does not exceed limit.
func ClampSpeed(vx, vy, limit float64) (float64, float64) {
	speed := math.Hypot(vx, vy)
	if limit <= 0 || speed <= limit {
		return vx, vy
	}
	scale := limit / speed
	return vx * scale, vy * scale
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
