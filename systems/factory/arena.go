package factory

import (
	"github.com/automoto/fling/archetypes"
	"github.com/automoto/fling/assets"
	"github.com/automoto/fling/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena spawns the arena entity that carries the map and the simulation clock.
func CreateArena(ecs *ecs.ECS, arena *assets.Arena) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{Arena: arena})
	components.Clock.SetValue(entry, components.ClockData{})
	return entry
}
