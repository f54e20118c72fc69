package factory

import (
	"github.com/automoto/fling/archetypes"
	"github.com/automoto/fling/assets"
	"github.com/automoto/fling/components"
	cfg "github.com/automoto/fling/config"
	"github.com/automoto/fling/content"
	"github.com/automoto/fling/gamemath"
	"github.com/automoto/fling/interaction"
	"github.com/automoto/fling/simulation"
	"github.com/automoto/fling/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BallContent describes where the ball's visual content comes from.
type BallContent struct {
	Controller *content.Controller
	Catalogue  []assets.ContentEntry
}

// CreateBall spawns the ball at the arena's spawn point.
func CreateBall(ecs *ecs.ECS, arena *assets.Arena, bc BallContent) (*donburi.Entry, error) {
	ball, err := gamemath.NewBall(arena.SpawnX, arena.SpawnY, arena.BallRadius)
	if err != nil {
		return nil, err
	}

	b := arena.Bounds
	sim := simulation.NewController(ball, simulation.Bounds{
		Left:   b.X,
		Top:    b.Y,
		Right:  b.Right(),
		Bottom: b.Bottom(),
	}, cfg.SimulationSettings())

	entry := archetypes.Ball.Spawn(ecs)
	components.Ball.SetValue(entry, components.BallData{
		Sim:    sim,
		SpawnX: arena.SpawnX,
		SpawnY: arena.SpawnY,
	})

	// Bounding box only; picking narrows to the circle.
	r := ball.Radius()
	obj := resolv.NewObject(ball.X-r, ball.Y-r, 2*r, 2*r, tags.ResolvBall)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Content.SetValue(entry, components.ContentData{
		Controller:       bc.Controller,
		Catalogue:        bc.Catalogue,
		Selected:         -1,
		PreservePlayback: cfg.Content.PreservePlayback,
	})

	machine := sim.Machine()
	components.Feedback.SetValue(entry, components.FeedbackData{Style: machine.Feedback()})
	machine.Subscribe(func(prop interaction.Property, fb interaction.Feedback) {
		f := components.Feedback.Get(entry)
		f.Style = fb
		f.LastChanged = prop
		f.Notifications++
	})

	return entry, nil
}
