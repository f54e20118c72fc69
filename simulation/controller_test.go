package simulation

import (
	"math"
	"testing"

	"github.com/automoto/fling/gamemath"
	"github.com/automoto/fling/interaction"
)

func newTestController(t *testing.T, bounds Bounds) *Controller {
	t.Helper()
	ball, err := gamemath.NewBall(400, 300, 25)
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}
	return NewController(ball, bounds, DefaultSettings())
}

var arena = Bounds{Left: 0, Top: 0, Right: 800, Bottom: 600}

func drag(c *Controller, fromX, y, step float64, steps int) (x, t float64) {
	x = fromX
	for i := 1; i <= steps; i++ {
		x += step
		t = float64(i) / 60
		c.PointerMove(x, y, t)
	}
	return x, t
}

func TestController_PointerDownOutsideBall(t *testing.T) {
	c := newTestController(t, arena)

	if c.PointerDown(10, 10, 0) {
		t.Error("expected a miss outside the ball")
	}
	if c.Machine().State() != interaction.Idle {
		t.Errorf("expected Idle, got %s", c.Machine().State())
	}
}

func TestController_ThrowFlow(t *testing.T) {
	c := newTestController(t, arena)

	if !c.PointerDown(400, 300, 0) {
		t.Fatal("expected to grab the ball")
	}
	if !c.Dragging() || c.Machine().State() != interaction.Held {
		t.Fatalf("expected Held, got %s", c.Machine().State())
	}

	x, ts := drag(c, 400, 300, 10, 6)
	if c.Ball().X != 460 {
		t.Errorf("expected ball to follow the pointer to 460, got %f", c.Ball().X)
	}

	if !c.PointerUp(x+10, 300, ts+1.0/60) {
		t.Fatal("expected release to be accepted")
	}
	if c.Machine().State() != interaction.Thrown {
		t.Fatalf("expected Thrown, got %s", c.Machine().State())
	}
	if c.History().Len() != 0 {
		t.Errorf("expected history to be reset, got %d samples", c.History().Len())
	}

	v := c.Ball().Velocity()
	if math.Abs(v.X-600) > 1 || math.Abs(v.Y) > 1 {
		t.Errorf("expected release velocity ≈(600,0), got (%f,%f)", v.X, v.Y)
	}
	if c.LastThrow() != v {
		t.Errorf("expected LastThrow %v, got %v", v, c.LastThrow())
	}
}

func TestController_HeldBallIsNotIntegrated(t *testing.T) {
	c := newTestController(t, arena)
	c.Ball().SetVelocity(300, 0)
	c.PointerDown(400, 300, 0)

	if v := c.Ball().Velocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("expected grab to freeze velocity, got %v", v)
	}

	for i := 0; i < 10; i++ {
		c.Tick(1.0 / 60)
	}

	if c.Ball().X != 400 || c.Ball().Y != 300 {
		t.Errorf("expected ball to stay at (400,300), got (%f,%f)", c.Ball().X, c.Ball().Y)
	}
	if c.Machine().State() != interaction.Held {
		t.Errorf("expected Held, got %s", c.Machine().State())
	}
}

func TestController_SlowReleaseDropsInPlace(t *testing.T) {
	c := newTestController(t, arena)
	c.PointerDown(400, 300, 0)
	x, ts := drag(c, 400, 300, 0.1, 5)
	c.PointerUp(x, 300, ts+1.0/60)

	if c.Ball().Moving() {
		t.Errorf("expected zero release velocity, got %v", c.Ball().Velocity())
	}

	c.Tick(1.0 / 60)
	if c.Machine().State() != interaction.Idle {
		t.Errorf("expected Idle after the first tick, got %s", c.Machine().State())
	}
}

func TestController_ThrownBallSettlesToIdle(t *testing.T) {
	c := newTestController(t, arena)
	c.PointerDown(400, 300, 0)
	x, ts := drag(c, 400, 300, 12, 5)
	c.PointerUp(x+12, 300, ts+1.0/60)

	hits := 0
	for i := 0; i < 60*30; i++ {
		res := c.Tick(1.0 / 60)
		if res.AnyHit() {
			hits++
		}
		if c.Machine().State() == interaction.Idle {
			break
		}
	}

	if c.Machine().State() != interaction.Idle {
		t.Fatalf("expected the ball to settle within 30s, still %s", c.Machine().State())
	}
	if c.Ball().Moving() {
		t.Errorf("expected velocity (0,0), got %v", c.Ball().Velocity())
	}
	if hits == 0 {
		t.Error("expected at least one wall hit")
	}
	b := c.Ball()
	if b.X < 25 || b.X > 775 || b.Y < 25 || b.Y > 575 {
		t.Errorf("expected ball inside the arena, got (%f,%f)", b.X, b.Y)
	}
}

func TestController_DragClampsIntoBounds(t *testing.T) {
	c := newTestController(t, arena)
	c.PointerDown(400, 300, 0)

	c.PointerMove(-100, -100, 0.1)

	if c.Ball().X != 25 || c.Ball().Y != 25 {
		t.Errorf("expected ball clamped to (25,25), got (%f,%f)", c.Ball().X, c.Ball().Y)
	}
}

func TestController_GrabOffset(t *testing.T) {
	c := newTestController(t, arena)
	c.PointerDown(410, 305, 0)

	c.PointerMove(500, 305, 0.1)

	if c.Ball().X != 490 || c.Ball().Y != 300 {
		t.Errorf("expected ball at (490,300), got (%f,%f)", c.Ball().X, c.Ball().Y)
	}
}

func TestController_MaxThrowSpeed(t *testing.T) {
	c := newTestController(t, Bounds{Left: 0, Top: 0, Right: 100000, Bottom: 600})
	c.PointerDown(400, 300, 0)
	x, ts := drag(c, 400, 300, 100, 5)
	c.PointerUp(x+100, 300, ts+1.0/60)

	speed := c.Ball().Speed()
	if math.Abs(speed-DefaultSettings().MaxThrowSpeed) > 1e-6 {
		t.Errorf("expected speed capped at %f, got %f", DefaultSettings().MaxThrowSpeed, speed)
	}
}

func TestController_IgnoresPointerWhenNotHeld(t *testing.T) {
	c := newTestController(t, arena)

	c.PointerMove(600, 300, 0.1)
	if c.PointerUp(600, 300, 0.2) {
		t.Error("expected release without a grab to be ignored")
	}
	if c.Ball().X != 400 {
		t.Errorf("expected ball untouched, got X=%f", c.Ball().X)
	}
}

func TestController_FeedbackFollowsState(t *testing.T) {
	c := newTestController(t, arena)

	var changes int
	c.Machine().Subscribe(func(interaction.Property, interaction.Feedback) { changes++ })

	c.PointerDown(400, 300, 0)
	if c.Machine().Feedback() != interaction.FeedbackFor(interaction.Held) {
		t.Errorf("expected Held feedback, got %+v", c.Machine().Feedback())
	}
	if changes != 6 {
		t.Errorf("expected 6 property notifications, got %d", changes)
	}
}

func TestController_Respawn(t *testing.T) {
	c := newTestController(t, arena)
	c.PointerDown(400, 300, 0)

	c.Respawn(100, 100)
	c.Tick(1.0 / 60)

	if c.Dragging() {
		t.Error("expected the ball to be released")
	}
	if c.Ball().X != 100 || c.Ball().Y != 100 || c.Ball().Moving() {
		t.Errorf("expected ball at rest at (100,100), got %+v", *c.Ball())
	}
	if c.Machine().State() != interaction.Idle {
		t.Errorf("expected Idle, got %s", c.Machine().State())
	}
}

func TestValidTickRate(t *testing.T) {
	tests := []struct {
		rate float64
		want bool
	}{
		{60, true},
		{MinTickRate, true},
		{MaxTickRate, true},
		{0, false},
		{-60, false},
		{0.5, false},
		{MaxTickRate + 1, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}

	for _, tt := range tests {
		if got := ValidTickRate(tt.rate); got != tt.want {
			t.Errorf("ValidTickRate(%v): expected %v, got %v", tt.rate, tt.want, got)
		}
	}
}
