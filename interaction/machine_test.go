package interaction

import (
	"testing"
	"time"
)

func TestNewMachine_StartsIdle(t *testing.T) {
	m := NewMachine()

	if m.State() != Idle {
		t.Errorf("expected Idle, got %s", m.State())
	}
	if m.Feedback() != FeedbackFor(Idle) {
		t.Errorf("expected Idle feedback, got %+v", m.Feedback())
	}
}

func TestMachine_FullCycle(t *testing.T) {
	m := NewMachine()

	steps := []struct {
		trigger Trigger
		want    State
		effect  Effect
	}{
		{MouseDown, Held, EffectFreezePhysics},
		{Release, Thrown, EffectSeedVelocity},
		{VelocityBelowThreshold, Idle, EffectSettle},
		{MouseDown, Held, EffectFreezePhysics},
	}

	for _, step := range steps {
		tr, ok := m.Fire(step.trigger)
		if !ok {
			t.Fatalf("expected %s to be accepted", step.trigger)
		}
		if m.State() != step.want {
			t.Errorf("after %s expected %s, got %s", step.trigger, step.want, m.State())
		}
		if tr.Effect != step.effect {
			t.Errorf("after %s expected effect %s, got %s", step.trigger, step.effect, tr.Effect)
		}
		if m.Feedback() != FeedbackFor(step.want) {
			t.Errorf("expected feedback for %s, got %+v", step.want, m.Feedback())
		}
	}
}

func TestMachine_HeldFeedbackTuple(t *testing.T) {
	m := NewMachine()
	m.Fire(MouseDown)

	fb := m.Feedback()
	if fb.Opacity != 0.8 || fb.Scale != 1.1 || fb.GlowRadius != 8.0 || fb.BorderThickness != 2.0 {
		t.Errorf("unexpected Held numbers: %+v", fb)
	}
	if fb.GlowColor != LightBlue {
		t.Errorf("expected light-blue glow, got %v", fb.GlowColor)
	}
	if fb.BorderColor != Blue {
		t.Errorf("expected blue border, got %v", fb.BorderColor)
	}
}

func TestFeedbackTable(t *testing.T) {
	tests := []struct {
		state State
		want  Feedback
	}{
		{Idle, Feedback{1.0, 1.0, 0.0, Transparent, 0.0, Transparent}},
		{Held, Feedback{0.8, 1.1, 8.0, LightBlue, 2.0, Blue}},
		{Thrown, Feedback{1.0, 1.0, 4.0, Orange, 1.0, Red}},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := FeedbackFor(tt.state); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestMachine_InvalidTriggerIsNoOp(t *testing.T) {
	tests := []struct {
		name    string
		setup   []Trigger
		trigger Trigger
	}{
		{"release while idle", nil, Release},
		{"stop while idle", nil, VelocityBelowThreshold},
		{"mouse down while held", []Trigger{MouseDown}, MouseDown},
		{"stop while held", []Trigger{MouseDown}, VelocityBelowThreshold},
		{"mouse down while thrown", []Trigger{MouseDown, Release}, MouseDown},
		{"release while thrown", []Trigger{MouseDown, Release}, Release},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for _, trig := range tt.setup {
				m.Fire(trig)
			}
			before, beforeFb := m.State(), m.Feedback()

			notified := 0
			m.Subscribe(func(Property, Feedback) { notified++ })

			if m.CanFire(tt.trigger) {
				t.Errorf("expected CanFire(%s) to be false in %s", tt.trigger, before)
			}
			if _, ok := m.Fire(tt.trigger); ok {
				t.Errorf("expected %s to be rejected in %s", tt.trigger, before)
			}
			if m.State() != before || m.Feedback() != beforeFb {
				t.Errorf("expected state and feedback unchanged, got %s %+v", m.State(), m.Feedback())
			}
			if notified != 0 {
				t.Errorf("expected no notifications, got %d", notified)
			}
		})
	}
}

func TestMachine_OneNotificationPerChangedProperty(t *testing.T) {
	m := NewMachine()

	var got []Property
	m.Subscribe(func(p Property, fb Feedback) {
		if fb != m.Feedback() {
			t.Errorf("expected observer to see the final record, got %+v", fb)
		}
		got = append(got, p)
	})

	m.Fire(MouseDown)
	if len(got) != 6 {
		t.Fatalf("Idle->Held: expected 6 notifications, got %d (%v)", len(got), got)
	}

	// Held -> Thrown changes everything.
	got = nil
	m.Fire(Release)
	if len(got) != 6 {
		t.Errorf("Held->Thrown: expected 6 notifications, got %d (%v)", len(got), got)
	}

	// Thrown -> Idle keeps opacity and scale at 1.0.
	got = nil
	m.Fire(VelocityBelowThreshold)
	want := []Property{PropertyGlowRadius, PropertyGlowColor, PropertyBorderThickness, PropertyBorderColor}
	if len(got) != len(want) {
		t.Fatalf("Thrown->Idle: expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Thrown->Idle: expected %v, got %v", want, got)
			break
		}
	}
}

func TestMachine_Unsubscribe(t *testing.T) {
	m := NewMachine()

	calls := 0
	cancel := m.Subscribe(func(Property, Feedback) { calls++ })
	cancel()
	cancel()

	m.Fire(MouseDown)
	if calls != 0 {
		t.Errorf("expected no calls after cancel, got %d", calls)
	}
}

func TestMachine_TransitionLatency(t *testing.T) {
	m := NewMachine()
	m.Subscribe(func(Property, Feedback) {})

	start := time.Now()
	m.Fire(MouseDown)
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("expected transition under 100ms, took %v", elapsed)
	}
}

func TestTransitions_Table(t *testing.T) {
	rows := Transitions()
	if len(rows) != 3 {
		t.Fatalf("expected 3 transitions, got %d", len(rows))
	}
	for _, tr := range rows {
		if tr.From == tr.To {
			t.Errorf("unexpected self transition %+v", tr)
		}
	}
}
