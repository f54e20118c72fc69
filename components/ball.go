package components

import (
	"github.com/automoto/fling/gamemath"
	"github.com/automoto/fling/interaction"
	"github.com/automoto/fling/simulation"
	"github.com/yohamta/donburi"
)

// TrailLength is the number of recent ball centres kept for the debug overlay.
const TrailLength = 48

// BallData wraps the simulation controller that owns the ball, its motion
// history and its interaction state.
type BallData struct {
	Sim    *simulation.Controller
	SpawnX float64
	SpawnY float64

	// Trail is a ring of recent centres, Head points at the next slot.
	Trail [TrailLength]gamemath.Vec2
	Head  int
	Count int

	// Last physics step, kept for the HUD and effects.
	LastStep gamemath.PhysicsUpdateResult
}

var Ball = donburi.NewComponentType[BallData]()

// PushTrail records a centre point.
func (b *BallData) PushTrail(p gamemath.Vec2) {
	b.Trail[b.Head] = p
	b.Head = (b.Head + 1) % TrailLength
	if b.Count < TrailLength {
		b.Count++
	}
}

// EachTrail visits trail points from oldest to newest.
func (b *BallData) EachTrail(fn func(i int, p gamemath.Vec2)) {
	start := (b.Head - b.Count + TrailLength) % TrailLength
	for i := 0; i < b.Count; i++ {
		fn(i, b.Trail[(start+i)%TrailLength])
	}
}

// FeedbackData mirrors the visual feedback of the interaction machine. It is
// updated from the machine's change notifications, one property at a time.
type FeedbackData struct {
	Style         interaction.Feedback
	Notifications int
	LastChanged   interaction.Property
}

var Feedback = donburi.NewComponentType[FeedbackData]()
