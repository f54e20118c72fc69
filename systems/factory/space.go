package factory

import (
	"github.com/automoto/fling/archetypes"
	"github.com/automoto/fling/assets"
	"github.com/automoto/fling/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCellSize matches the arena's tile size so a wall strip spans whole cells.
const spaceCellSize = 32

// CreateSpace creates the collision space covering the whole arena map.
func CreateSpace(ecs *ecs.ECS, arena *assets.Arena) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(arena.Width, arena.Height, spaceCellSize, spaceCellSize))
	return space
}
