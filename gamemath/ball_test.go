package gamemath

import (
	"errors"
	"math"
	"testing"
)

func TestNewBall_InvalidRadius(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{"zero", 0},
		{"negative", -5},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBall(10, 10, tt.radius)
			if !errors.Is(err, ErrInvalidRadius) {
				t.Errorf("expected ErrInvalidRadius, got %v", err)
			}
			if b != nil {
				t.Errorf("expected nil ball, got %+v", b)
			}
		})
	}
}

func TestBall_SetVelocityRejectsNonFinite(t *testing.T) {
	b, err := NewBall(0, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.SetVelocity(math.NaN(), math.Inf(-1))

	if b.VX != 0 || b.VY != 0 {
		t.Errorf("expected velocity (0,0), got (%f,%f)", b.VX, b.VY)
	}
	if b.Moving() {
		t.Error("expected ball at rest")
	}
}

func TestBall_Contains(t *testing.T) {
	b, _ := NewBall(100, 100, 25)

	if !b.Contains(100, 100) {
		t.Error("expected center to be inside")
	}
	if !b.Contains(125, 100) {
		t.Error("expected edge point to be inside")
	}
	if b.Contains(120, 120) {
		t.Error("expected (120,120) to be outside radius 25")
	}
}

func TestBall_RadiusIsFixed(t *testing.T) {
	b, _ := NewBall(0, 0, 12.5)
	b.SetPosition(50, 60)
	b.SetVelocity(10, 20)
	b.Stop()

	if b.Radius() != 12.5 {
		t.Errorf("expected radius 12.5, got %f", b.Radius())
	}
	if p := b.Position(); p.X != 50 || p.Y != 60 {
		t.Errorf("expected position (50,60), got (%f,%f)", p.X, p.Y)
	}
}
