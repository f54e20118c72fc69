package simulation

import (
	"math"

	"github.com/automoto/fling/gamemath"
	"github.com/automoto/fling/interaction"
)

// Bounds is the rectangle the ball is kept inside.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Accepted simulation tick rates, in ticks per second.
const (
	MinTickRate = 1
	MaxTickRate = 1000
)

// ValidTickRate reports whether r is a usable tick rate.
func ValidTickRate(r float64) bool {
	return r >= MinTickRate && r <= MaxTickRate
}

// Settings tunes the throw behaviour.
type Settings struct {
	Physics gamemath.Physics
	// ThrowThreshold is the release speed above which the estimate is used;
	// slower releases drop the ball in place.
	ThrowThreshold float64
	// MaxThrowSpeed caps the seeded release speed. Zero disables the cap.
	MaxThrowSpeed float64
}

func DefaultSettings() Settings {
	return Settings{
		Physics:        gamemath.DefaultPhysics(),
		ThrowThreshold: 50,
		MaxThrowSpeed:  4000,
	}
}

// Controller drives one ball from pointer events and simulation ticks.
// All methods must be called from the simulation thread.
type Controller struct {
	ball     *gamemath.Ball
	history  *gamemath.MotionHistory
	machine  *interaction.Machine
	settings Settings
	bounds   Bounds

	grabOffset gamemath.Vec2
	frozen     bool
	lastThrow  gamemath.Vec2
}

func NewController(ball *gamemath.Ball, bounds Bounds, settings Settings) *Controller {
	return &Controller{
		ball:     ball,
		history:  gamemath.NewMotionHistory(),
		machine:  interaction.NewMachine(),
		settings: settings,
		bounds:   bounds,
	}
}

func (c *Controller) Ball() *gamemath.Ball {
	return c.ball
}

func (c *Controller) Machine() *interaction.Machine {
	return c.machine
}

func (c *Controller) History() *gamemath.MotionHistory {
	return c.history
}

func (c *Controller) Bounds() Bounds {
	return c.bounds
}

func (c *Controller) SetBounds(b Bounds) {
	c.bounds = b
}

func (c *Controller) Settings() Settings {
	return c.settings
}

func (c *Controller) SetSettings(s Settings) {
	c.settings = s
}

// Dragging reports whether the ball is currently held.
func (c *Controller) Dragging() bool {
	return c.machine.State() == interaction.Held
}

// LastThrow returns the velocity seeded by the most recent release.
func (c *Controller) LastThrow() gamemath.Vec2 {
	return c.lastThrow
}

// PointerDown grabs the ball when (x, y) is inside it. t is the sample
// timestamp in seconds.
func (c *Controller) PointerDown(x, y, t float64) bool {
	if !c.ball.Contains(x, y) || !c.machine.CanFire(interaction.MouseDown) {
		return false
	}
	tr, ok := c.machine.Fire(interaction.MouseDown)
	if !ok {
		return false
	}
	c.apply(tr.Effect)

	c.grabOffset = gamemath.Vec2{X: x - c.ball.X, Y: y - c.ball.Y}
	c.history.Reset()
	c.history.Record(c.ball.Position(), t)
	return true
}

// PointerMove drags the ball while it is held.
func (c *Controller) PointerMove(x, y, t float64) {
	if !c.Dragging() {
		return
	}
	c.follow(x, y)
	c.history.Record(c.ball.Position(), t)
}

// PointerUp releases a held ball with a velocity estimated from recent motion.
func (c *Controller) PointerUp(x, y, t float64) bool {
	if !c.Dragging() {
		return false
	}
	c.follow(x, y)
	c.history.Record(c.ball.Position(), t)

	tr, ok := c.machine.Fire(interaction.Release)
	if !ok {
		return false
	}
	c.apply(tr.Effect)
	c.history.Reset()
	return true
}

// Tick advances the simulation by dt seconds. A held ball is not integrated.
func (c *Controller) Tick(dt float64) gamemath.PhysicsUpdateResult {
	if c.frozen {
		return gamemath.PhysicsUpdateResult{}
	}

	res := c.settings.Physics.Update(c.ball, dt, c.bounds.Left, c.bounds.Top, c.bounds.Right, c.bounds.Bottom)
	if !res.IsMoving && c.machine.CanFire(interaction.VelocityBelowThreshold) {
		if tr, ok := c.machine.Fire(interaction.VelocityBelowThreshold); ok {
			c.apply(tr.Effect)
		}
	}
	return res
}

// Respawn places the ball at (x, y) at rest. A held ball is released first.
func (c *Controller) Respawn(x, y float64) {
	if c.Dragging() {
		c.machine.Fire(interaction.Release)
		c.history.Reset()
	}
	c.ball.SetPosition(x, y)
	c.ball.Stop()
	c.frozen = false
	c.clampIntoBounds()
}

func (c *Controller) apply(effect interaction.Effect) {
	switch effect {
	case interaction.EffectFreezePhysics:
		c.frozen = true
		c.ball.Stop()
	case interaction.EffectSeedVelocity:
		c.frozen = false
		vx, vy := 0.0, 0.0
		if c.history.IsThrow(c.settings.ThrowThreshold) {
			vx, vy = c.history.Velocity()
			vx, vy = gamemath.ClampSpeed(vx, vy, c.settings.MaxThrowSpeed)
		}
		c.ball.SetVelocity(vx, vy)
		c.lastThrow = c.ball.Velocity()
	case interaction.EffectSettle:
		c.ball.Stop()
	}
}

// follow moves the ball under the pointer, keeping it inside the bounds.
func (c *Controller) follow(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	c.ball.SetPosition(x-c.grabOffset.X, y-c.grabOffset.Y)
	c.clampIntoBounds()
}

func (c *Controller) clampIntoBounds() {
	r := c.ball.Radius()
	c.ball.X = clampAxis(c.ball.X, c.bounds.Left+r, c.bounds.Right-r)
	c.ball.Y = clampAxis(c.ball.Y, c.bounds.Top+r, c.bounds.Bottom-r)
}

func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return lo + (hi-lo)/2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
