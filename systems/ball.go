package systems

import (
	"math"

	"github.com/automoto/fling/components"
	cfg "github.com/automoto/fling/config"
	"github.com/automoto/fling/gamemath"
	"github.com/automoto/fling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// grabPulse is the uniform scale the ball springs back from when picked up.
const grabPulse = 0.9

// tickDuration returns the fixed simulation step in seconds.
func tickDuration() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// UpdateClock advances the arena clock by one tick. Pointer samples are
// stamped with the clock so drag velocities are measured in simulation time.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Elapsed += tickDuration()
	clock.Ticks++
}

func now(ecs *ecs.ECS) float64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Elapsed
}

// UpdateBall feeds pointer input into the ball's simulation and steps its physics.
func UpdateBall(ecs *ecs.ECS) {
	pointer := GetOrCreatePointer(ecs)
	t := now(ecs)
	dt := tickDuration()

	var grabbed *donburi.Entry
	if pointer.JustPressed {
		grabbed = pickBall(ecs, pointer.X, pointer.Y)
	}

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Ball.Get(e)
		sim := data.Sim

		switch {
		case grabbed == e:
			if sim.PointerDown(pointer.X, pointer.Y, t) {
				TriggerSquashStretch(e, grabPulse, grabPulse)
				PlaySFX(ecs, cfg.SoundGrab, 1)
			}
		case pointer.JustReleased:
			if sim.PointerUp(pointer.X, pointer.Y, t) && sim.LastThrow().Len() > 0 {
				PlaySFX(ecs, cfg.SoundRelease, 1)
			}
		case pointer.Down:
			sim.PointerMove(pointer.X, pointer.Y, t)
		}

		before := sim.Ball().Velocity()
		res := sim.Tick(dt)
		data.LastStep = res
		if res.AnyHit() {
			onBounce(ecs, e, before, res)
		}
		data.PushTrail(sim.Ball().Position())
	})
}

// pickBall returns the ball under (x, y), or nil. The collision space
// narrows the candidates to nearby bounding boxes and the circle test
// makes the final call.
func pickBall(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	cursor := resolv.NewObject(x, y, 1, 1, tags.ResolvCursor)
	space.Add(cursor)
	defer space.Remove(cursor)

	check := cursor.Check(0, 0, tags.ResolvBall)
	if check == nil {
		return nil
	}
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if components.Ball.Get(entry).Sim.Ball().Contains(x, y) {
			return entry
		}
	}
	return nil
}

// onBounce squashes the ball along the axis it hit, flashes its border and
// plays a click scaled by the impact speed.
func onBounce(ecs *ecs.ECS, e *donburi.Entry, before gamemath.Vec2, res gamemath.PhysicsUpdateResult) {
	var impactX, impactY float64
	if res.HitLeft || res.HitRight {
		impactX = math.Abs(before.X)
	}
	if res.HitTop || res.HitBottom {
		impactY = math.Abs(before.Y)
	}
	impact := math.Max(impactX, impactY)
	if impact < cfg.SquashStretch.MinImpactSpeed {
		return
	}

	amount := impactAmount(impact)
	squash := 1 - (1-cfg.SquashStretch.MaxSquash)*amount
	stretch := 2 - squash
	if impactX >= impactY {
		TriggerSquashStretch(e, squash, stretch)
	} else {
		TriggerSquashStretch(e, stretch, squash)
	}
	TriggerFlash(e, 8)

	volume := math.Min(impact/cfg.Audio.FullVolumeImpact, 1)
	PlaySFX(ecs, cfg.SoundBounce, volume)
}

func impactAmount(impact float64) float64 {
	span := cfg.SquashStretch.FullImpact - cfg.SquashStretch.MinImpactSpeed
	if span <= 0 {
		return 1
	}
	return math.Min((impact-cfg.SquashStretch.MinImpactSpeed)/span, 1)
}

// RespawnBall returns every ball to its spawn point at rest.
func RespawnBall(ecs *ecs.ECS) {
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Ball.Get(e)
		data.Sim.Respawn(data.SpawnX, data.SpawnY)
		data.Count = 0
		if e.HasComponent(components.SquashStretch) {
			e.RemoveComponent(components.SquashStretch)
		}
	})
}
