package factory

import (
	"github.com/automoto/fling/archetypes"
	"github.com/automoto/fling/assets"
	"github.com/automoto/fling/components"
	"github.com/automoto/fling/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// wallThickness is the depth of the solid strips placed outside the arena bounds.
const wallThickness = 16.0

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateBoundaryWalls surrounds the arena bounds with four solid strips.
func CreateBoundaryWalls(ecs *ecs.ECS, b assets.Rect) []*donburi.Entry {
	t := wallThickness
	return []*donburi.Entry{
		CreateWall(ecs, b.X-t, b.Y-t, b.Width+2*t, t),      // top
		CreateWall(ecs, b.X-t, b.Bottom(), b.Width+2*t, t), // bottom
		CreateWall(ecs, b.X-t, b.Y, t, b.Height),           // left
		CreateWall(ecs, b.Right(), b.Y, t, b.Height),       // right
	}
}
