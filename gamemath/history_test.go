package gamemath

import (
	"math"
	"testing"
)

func TestMotionHistory_RecordBelowCapacity(t *testing.T) {
	h := NewMotionHistory()
	for i := 0; i < 4; i++ {
		h.Record(Vec2{X: float64(i)}, float64(i))
	}

	if h.Len() != 4 {
		t.Fatalf("expected 4 samples, got %d", h.Len())
	}
	newest, ts, ok := h.Newest()
	if !ok || newest.X != 3 || ts != 3 {
		t.Errorf("expected newest sample (3, t=3), got (%f, t=%f)", newest.X, ts)
	}
}

func TestMotionHistory_OverflowShiftsOldestOut(t *testing.T) {
	h := NewMotionHistory()
	for i := 0; i < HistoryCapacity+2; i++ {
		h.Record(Vec2{X: float64(i), Y: float64(i * 2)}, float64(i)*0.01)
	}

	if h.Len() != HistoryCapacity {
		t.Fatalf("expected %d samples, got %d", HistoryCapacity, h.Len())
	}

	positions := h.Positions()
	if positions[0].X != 2 {
		t.Errorf("expected oldest kept sample X=2, got %f", positions[0].X)
	}
	if positions[HistoryCapacity-1].X != float64(HistoryCapacity+1) {
		t.Errorf("expected newest sample at the last index, got %f", positions[HistoryCapacity-1].X)
	}

	ts := h.Timestamps()
	for i := 1; i < len(ts); i++ {
		if ts[i] < ts[i-1] {
			t.Fatalf("expected ascending timestamps, got %v", ts)
		}
	}
}

func TestMotionHistory_RejectsOutOfOrderSamples(t *testing.T) {
	h := NewMotionHistory()
	h.Record(Vec2{}, 1.0)

	if h.Record(Vec2{X: 5}, 0.5) {
		t.Error("expected an older sample to be rejected")
	}
	if h.Record(Vec2{X: 5}, math.NaN()) {
		t.Error("expected a NaN timestamp to be rejected")
	}
	if !h.Record(Vec2{X: 5}, 1.0) {
		t.Error("expected an equal timestamp to be accepted")
	}
	if h.Len() != 2 {
		t.Errorf("expected 2 samples, got %d", h.Len())
	}
}

func TestMotionHistory_Reset(t *testing.T) {
	h := NewMotionHistory()
	h.Record(Vec2{}, 0)
	h.Record(Vec2{X: 10}, 0.1)

	h.Reset()

	if h.Len() != 0 || len(h.Positions()) != 0 || len(h.Timestamps()) != 0 {
		t.Errorf("expected empty history, got %d samples", h.Len())
	}
	if _, _, ok := h.Newest(); ok {
		t.Error("expected no newest sample after reset")
	}
	if vx, vy := h.Velocity(); vx != 0 || vy != 0 {
		t.Errorf("expected zero velocity, got (%f,%f)", vx, vy)
	}
}

func TestMotionHistory_Velocity(t *testing.T) {
	h := NewMotionHistory()
	for i := 0; i < 15; i++ {
		h.Record(Vec2{X: 100 + float64(i)*8, Y: 300 - float64(i)*4}, float64(i)/60)
	}

	vx, vy := h.Velocity()

	if math.Abs(vx-480) > 1.0 || math.Abs(vy+240) > 1.0 {
		t.Errorf("expected (480,-240), got (%f,%f)", vx, vy)
	}
	if !h.IsThrow(300) {
		t.Error("expected a throw above 300 units/s")
	}
}

func TestMotionHistory_VelocityUsesNewestWindow(t *testing.T) {
	h := NewMotionHistory()
	x := 0.0
	for i := 0; i < HistoryCapacity+5; i++ {
		step := 100.0 / 60
		if i < 5 {
			step = 5000.0 / 60
		}
		x += step
		h.Record(Vec2{X: x}, float64(i)/60)
	}

	vx, vy := CalculateVelocityFromHistory(h.Positions(), h.Timestamps(), h.Len())
	if math.Abs(vx-100) > 1e-6 || vy != 0 {
		t.Errorf("expected (100,0) from the newest samples, got (%f,%f)", vx, vy)
	}
	if hx, _ := h.Velocity(); hx != vx {
		t.Errorf("expected Velocity to match the live window, got %f and %f", hx, vx)
	}
}
