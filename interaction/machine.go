package interaction

// State is the interaction state of the ball.
type State int

const (
	Idle State = iota
	Held
	Thrown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Held:
		return "Held"
	case Thrown:
		return "Thrown"
	default:
		return "Unknown"
	}
}

// Trigger is an interaction event fed to the machine.
type Trigger int

const (
	MouseDown Trigger = iota
	Release
	VelocityBelowThreshold
)

func (t Trigger) String() string {
	switch t {
	case MouseDown:
		return "MouseDown"
	case Release:
		return "Release"
	case VelocityBelowThreshold:
		return "VelocityBelowThreshold"
	default:
		return "Unknown"
	}
}

// Effect is the side effect the caller must apply for a transition.
type Effect int

const (
	EffectNone Effect = iota
	// EffectFreezePhysics stops integration while the ball is held.
	EffectFreezePhysics
	// EffectSeedVelocity seeds the release velocity and resumes integration.
	EffectSeedVelocity
	// EffectSettle marks the ball at rest; velocity is already zero.
	EffectSettle
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectFreezePhysics:
		return "FreezePhysics"
	case EffectSeedVelocity:
		return "SeedVelocity"
	case EffectSettle:
		return "Settle"
	default:
		return "Unknown"
	}
}

// Transition is one row of the transition table.
type Transition struct {
	From    State
	Trigger Trigger
	To      State
	Effect  Effect
}

type transitionKey struct {
	from    State
	trigger Trigger
}

var transitions = map[transitionKey]Transition{
	{Idle, MouseDown}:                {From: Idle, Trigger: MouseDown, To: Held, Effect: EffectFreezePhysics},
	{Held, Release}:                  {From: Held, Trigger: Release, To: Thrown, Effect: EffectSeedVelocity},
	{Thrown, VelocityBelowThreshold}: {From: Thrown, Trigger: VelocityBelowThreshold, To: Idle, Effect: EffectSettle},
}

// Transitions returns a copy of the transition table.
func Transitions() []Transition {
	out := make([]Transition, 0, len(transitions))
	for _, from := range []State{Idle, Held, Thrown} {
		for _, trig := range []Trigger{MouseDown, Release, VelocityBelowThreshold} {
			if tr, ok := transitions[transitionKey{from, trig}]; ok {
				out = append(out, tr)
			}
		}
	}
	return out
}

// Observer receives one call per changed feedback property. fb is the full
// record after the transition.
type Observer func(prop Property, fb Feedback)

// Machine is the Idle/Held/Thrown state machine. It is driven from the
// simulation thread and is not safe for concurrent use.
type Machine struct {
	state     State
	feedback  Feedback
	observers map[int]Observer
	order     []int
	nextID    int
}

func NewMachine() *Machine {
	return &Machine{
		state:     Idle,
		feedback:  FeedbackFor(Idle),
		observers: make(map[int]Observer),
	}
}

func (m *Machine) State() State {
	return m.state
}

// Feedback returns a snapshot of the current visual feedback.
func (m *Machine) Feedback() Feedback {
	return m.feedback
}

// CanFire reports whether trigger has a transition from the current state.
func (m *Machine) CanFire(trigger Trigger) bool {
	_, ok := transitions[transitionKey{m.state, trigger}]
	return ok
}

// Fire applies trigger to the current state. It returns false, and changes
// nothing, when the table has no row for the pair.
func (m *Machine) Fire(trigger Trigger) (Transition, bool) {
	tr, ok := transitions[transitionKey{m.state, trigger}]
	if !ok {
		return Transition{From: m.state, Trigger: trigger, To: m.state}, false
	}

	prev := m.feedback
	m.state = tr.To
	m.feedback = FeedbackFor(tr.To)

	ids := append([]int(nil), m.order...)
	for _, prop := range prev.Changed(m.feedback) {
		for _, id := range ids {
			if fn, ok := m.observers[id]; ok {
				fn(prop, m.feedback)
			}
		}
	}
	return tr, true
}

// Subscribe registers fn for feedback change notifications and returns a
// function that removes it.
func (m *Machine) Subscribe(fn Observer) (cancel func()) {
	id := m.nextID
	m.nextID++
	m.observers[id] = fn
	m.order = append(m.order, id)

	return func() {
		if _, ok := m.observers[id]; !ok {
			return
		}
		delete(m.observers, id)
		for i, o := range m.order {
			if o == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
}
