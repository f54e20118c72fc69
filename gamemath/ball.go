package gamemath

import (
	"errors"
	"math"
)

// ErrInvalidRadius is returned by NewBall for a radius that is not a positive finite number.
var ErrInvalidRadius = errors.New("ball radius must be positive and finite")

// Vec2 is a point or velocity in arena units.
type Vec2 struct {
	X, Y float64
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Ball holds the state of the simulated ball. The radius is fixed at construction.
type Ball struct {
	X, Y   float64
	VX, VY float64
	radius float64
}

func NewBall(x, y, radius float64) (*Ball, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, ErrInvalidRadius
	}
	return &Ball{X: x, Y: y, radius: radius}, nil
}

func (b *Ball) Radius() float64 {
	return b.radius
}

func (b *Ball) Position() Vec2 {
	return Vec2{X: b.X, Y: b.Y}
}

func (b *Ball) SetPosition(x, y float64) {
	b.X, b.Y = x, y
}

func (b *Ball) Velocity() Vec2 {
	return Vec2{X: b.VX, Y: b.VY}
}

// SetVelocity stores the velocity, replacing non-finite components with zero.
func (b *Ball) SetVelocity(vx, vy float64) {
	b.VX = finiteOrZero(vx)
	b.VY = finiteOrZero(vy)
}

func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

func (b *Ball) Stop() {
	b.VX, b.VY = 0, 0
}

// Moving reports whether either velocity component is non-zero.
func (b *Ball) Moving() bool {
	return b.VX != 0 || b.VY != 0
}

// Contains reports whether the point lies inside the ball's circle.
func (b *Ball) Contains(x, y float64) bool {
	dx, dy := x-b.X, y-b.Y
	return dx*dx+dy*dy <= b.radius*b.radius
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
