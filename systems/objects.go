package systems

import (
	"github.com/automoto/fling/components"
	"github.com/automoto/fling/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each ball's collision box onto the ball and refreshes
// every object's cell membership.
func UpdateObjects(ecs *ecs.ECS) {
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ball := components.Ball.Get(e).Sim.Ball()
		obj := components.Object.Get(e)
		r := ball.Radius()
		obj.X = ball.X - r
		obj.Y = ball.Y - r
	})

	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
