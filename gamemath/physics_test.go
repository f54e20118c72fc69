package gamemath

import (
	"math"
	"testing"
)

const (
	arenaW = 800.0
	arenaH = 600.0
)

func mustBall(t *testing.T, x, y, radius float64) *Ball {
	t.Helper()
	b, err := NewBall(x, y, radius)
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}
	return b
}

func frictionless() Physics {
	return Physics{FrictionCoefficient: 0, StopThreshold: 0.5, Restitution: 1}
}

func TestUpdate_PositionProportionalToDt(t *testing.T) {
	p := frictionless()

	one := mustBall(t, 400, 300, 25)
	one.SetVelocity(60, 30)
	p.Update(one, 0.1, 0, 0, arenaW, arenaH)

	many := mustBall(t, 400, 300, 25)
	many.SetVelocity(60, 30)
	for i := 0; i < 10; i++ {
		p.Update(many, 0.01, 0, 0, arenaW, arenaH)
	}

	if math.Abs(one.X-406) > 1e-9 || math.Abs(one.Y-303) > 1e-9 {
		t.Errorf("expected (406,303), got (%f,%f)", one.X, one.Y)
	}
	if math.Abs(one.X-many.X) > 1e-9 || math.Abs(one.Y-many.Y) > 1e-9 {
		t.Errorf("expected same position, got (%f,%f) vs (%f,%f)", one.X, one.Y, many.X, many.Y)
	}
}

func TestUpdate_FrictionIsFrameRateIndependent(t *testing.T) {
	coarse := mustBall(t, 400, 300, 25)
	coarse.SetVelocity(100, -50)
	Update(coarse, 1.0/12, 0, 0, arenaW, arenaH)

	fine := mustBall(t, 400, 300, 25)
	fine.SetVelocity(100, -50)
	for i := 0; i < 10; i++ {
		Update(fine, 1.0/120, 0, 0, arenaW, arenaH)
	}

	if math.Abs(coarse.VX-fine.VX) > 1e-9 || math.Abs(coarse.VY-fine.VY) > 1e-9 {
		t.Errorf("expected equal velocity, got (%f,%f) vs (%f,%f)", coarse.VX, coarse.VY, fine.VX, fine.VY)
	}

	dx := fine.X - 400
	if math.Abs(coarse.X-fine.X) > 0.1*math.Abs(dx) {
		t.Errorf("expected positions within integration error, got %f vs %f", coarse.X, fine.X)
	}
}

func TestUpdate_FrictionDecaysToRest(t *testing.T) {
	b := mustBall(t, 0, 0, 10)
	b.SetVelocity(300, 120)
	bound := 1e9

	prev := b.Speed()
	stopped := -1
	for i := 0; i < 2000; i++ {
		res := Update(b, 1.0/60, -bound, -bound, bound, bound)
		if !res.IsMoving {
			stopped = i
			break
		}
		if b.Speed() >= prev {
			t.Fatalf("expected speed to decrease at tick %d, got %f >= %f", i, b.Speed(), prev)
		}
		prev = b.Speed()
	}

	if stopped < 0 {
		t.Fatal("expected the ball to stop within 2000 ticks")
	}
	if b.VX != 0 || b.VY != 0 {
		t.Errorf("expected velocity exactly (0,0), got (%f,%f)", b.VX, b.VY)
	}

	for i := 0; i < 10; i++ {
		if res := Update(b, 1.0/60, -bound, -bound, bound, bound); res.IsMoving {
			t.Fatalf("expected ball to stay at rest, moving at tick %d", i)
		}
	}
}

func TestUpdate_InvalidDtIsNoOp(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"zero", 0},
		{"negative", -0.016},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moving := mustBall(t, 100, 100, 10)
			moving.SetVelocity(40, -20)
			res := Update(moving, tt.dt, 0, 0, arenaW, arenaH)
			if !res.IsMoving {
				t.Error("expected IsMoving to report the previous moving state")
			}
			if moving.X != 100 || moving.Y != 100 || moving.VX != 40 || moving.VY != -20 {
				t.Errorf("expected ball untouched, got %+v", *moving)
			}

			resting := mustBall(t, 100, 100, 10)
			if res := Update(resting, tt.dt, 0, 0, arenaW, arenaH); res.IsMoving {
				t.Error("expected resting ball to report not moving")
			}
		})
	}
}

func TestUpdate_BouncesOffRightWall(t *testing.T) {
	b := mustBall(t, 770, 300, 25)
	b.SetVelocity(50, 0)

	hit := false
	for i := 0; i < 10; i++ {
		res := Update(b, 1.0/60, 0, 0, arenaW, arenaH)
		if res.HitRight {
			hit = true
			break
		}
	}

	if !hit {
		t.Fatal("expected HitRight within 10 ticks")
	}
	if b.X != 775 {
		t.Errorf("expected X clamped to 775, got %f", b.X)
	}
	if b.VX >= 0 {
		t.Errorf("expected VX < 0 after bounce, got %f", b.VX)
	}
}

func TestUpdate_WallCollisions(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantX, wantY   float64
		left, right    bool
		top, bottom    bool
		wantVXPositive bool
		wantVYPositive bool
	}{
		{"left", 30, 300, -200, 0, 25, -1, true, false, false, false, true, false},
		{"right", 770, 300, 200, 0, 775, -1, false, true, false, false, false, false},
		{"top", 400, 30, 0, -200, -1, 25, false, false, true, false, false, true},
		{"bottom", 400, 570, 0, 200, -1, 575, false, false, false, true, false, false},
		{"top-left corner", 30, 30, -200, -200, 25, 25, true, false, true, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBall(t, tt.x, tt.y, 25)
			b.SetVelocity(tt.vx, tt.vy)

			res := Update(b, 0.1, 0, 0, arenaW, arenaH)

			if res.HitLeft != tt.left || res.HitRight != tt.right || res.HitTop != tt.top || res.HitBottom != tt.bottom {
				t.Errorf("unexpected hit flags: %+v", res)
			}
			if tt.wantX >= 0 && b.X != tt.wantX {
				t.Errorf("expected X=%f, got %f", tt.wantX, b.X)
			}
			if tt.wantY >= 0 && b.Y != tt.wantY {
				t.Errorf("expected Y=%f, got %f", tt.wantY, b.Y)
			}
			if tt.vx != 0 && (b.VX > 0) != tt.wantVXPositive {
				t.Errorf("unexpected VX sign: %f", b.VX)
			}
			if tt.vy != 0 && (b.VY > 0) != tt.wantVYPositive {
				t.Errorf("unexpected VY sign: %f", b.VY)
			}
		})
	}
}

func TestUpdate_HitFlagsOnlyForCurrentCall(t *testing.T) {
	b := mustBall(t, 30, 300, 25)
	b.SetVelocity(-200, 0)

	if res := Update(b, 0.1, 0, 0, arenaW, arenaH); !res.HitLeft {
		t.Fatal("expected HitLeft on the first update")
	}
	if res := Update(b, 0.1, 0, 0, arenaW, arenaH); res.AnyHit() {
		t.Errorf("expected no hits on the second update, got %+v", res)
	}
}

func TestUpdate_ElasticBounceKeepsSpeed(t *testing.T) {
	b := mustBall(t, 770, 300, 25)
	b.SetVelocity(200, 0)

	res := frictionless().Update(b, 0.1, 0, 0, arenaW, arenaH)

	if !res.HitRight {
		t.Fatal("expected HitRight")
	}
	if b.VX != -200 {
		t.Errorf("expected VX=-200, got %f", b.VX)
	}
}

func TestUpdate_AreaNarrowerThanBall(t *testing.T) {
	b := mustBall(t, 10, 300, 25)
	b.SetVelocity(100, 0)

	Update(b, 0.1, 0, 0, 40, arenaH)

	if b.X != 20 {
		t.Errorf("expected ball centered at X=20, got %f", b.X)
	}
	if b.VX != 0 {
		t.Errorf("expected VX=0, got %f", b.VX)
	}
}

func TestUpdate_Deterministic(t *testing.T) {
	a := mustBall(t, 123, 456, 20)
	b := mustBall(t, 123, 456, 20)
	a.SetVelocity(-321, 654)
	b.SetVelocity(-321, 654)

	for i := 0; i < 120; i++ {
		ra := Update(a, 1.0/60, 0, 0, arenaW, arenaH)
		rb := Update(b, 1.0/60, 0, 0, arenaW, arenaH)
		if ra != rb || *a != *b {
			t.Fatalf("expected identical results at tick %d", i)
		}
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		name          string
		vx, vy, limit float64
		wantX, wantY  float64
	}{
		{"scaled to limit", 300, 400, 100, 60, 80},
		{"under limit unchanged", 3, 4, 100, 3, 4},
		{"exactly at limit", 60, 80, 100, 60, 80},
		{"zero limit disables", 300, 400, 0, 300, 400},
		{"negative limit disables", 300, 400, -1, 300, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vx, vy := ClampSpeed(tt.vx, tt.vy, tt.limit)
			if math.Abs(vx-tt.wantX) > 1e-9 || math.Abs(vy-tt.wantY) > 1e-9 {
				t.Errorf("expected (%v,%v), got (%f,%f)", tt.wantX, tt.wantY, vx, vy)
			}
		})
	}
}
