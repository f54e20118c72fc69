package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:arenas
	arenaFS embed.FS

	//go:embed all:content
	contentFS embed.FS
)

// ErrNoArena is returned when a map defines no arena bounds and has no size.
var ErrNoArena = errors.New("arena bounds not defined")

// DefaultArena is the embedded arena loaded at startup.
const DefaultArena = "arenas/default.tmx"

// DefaultBallRadius is used when the map's ball spawn has no radius property.
const DefaultBallRadius = 25.0

// ContentFS returns the embedded sample content.
func ContentFS() fs.FS {
	sub, err := fs.Sub(contentFS, "content")
	if err != nil {
		panic(fmt.Sprintf("Failed to open embedded content: %v", err))
	}
	return sub
}

// Rect is an axis-aligned rectangle in arena coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// ContentEntry is a selectable item in the content catalogue.
type ContentEntry struct {
	Label string
	Path  string
}

type Arena struct {
	Name       string
	Width      int
	Height     int
	Bounds     Rect
	SpawnX     float64
	SpawnY     float64
	BallRadius float64
	Catalogue  []ContentEntry
}

// MustLoadArena loads an embedded arena and panics on failure.
func MustLoadArena(name string) *Arena {
	arena, err := LoadArena(arenaFS, name)
	if err != nil {
		panic(err)
	}
	return arena
}

// LoadArena reads a Tiled map and extracts the arena bounds, the ball spawn
// and the content catalogue from its object groups.
func LoadArena(fsys fs.FS, name string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load arena %s: %w", name, err)
	}

	arena := &Arena{
		Name:       filepath.Base(name),
		Width:      arenaMap.Width * arenaMap.TileWidth,
		Height:     arenaMap.Height * arenaMap.TileHeight,
		BallRadius: DefaultBallRadius,
	}
	arena.Bounds = Rect{Width: float64(arena.Width), Height: float64(arena.Height)}

	spawnSet := false
	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case "Arena":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.Bounds = Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
			}
		case "Ball":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.SpawnX, arena.SpawnY = o.X, o.Y
				spawnSet = true
				if r := o.Properties.GetFloat("radius"); r > 0 {
					arena.BallRadius = r
				}
			}
		case "Content":
			for _, o := range og.Objects {
				p := o.Properties.GetString("path")
				if p == "" {
					continue
				}
				label := o.Name
				if label == "" {
					label = path.Base(p)
				}
				arena.Catalogue = append(arena.Catalogue, ContentEntry{Label: label, Path: p})
			}
		}
	}

	if arena.Bounds.Width <= 0 || arena.Bounds.Height <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoArena, name)
	}
	if !spawnSet {
		arena.SpawnX = arena.Bounds.X + arena.Bounds.Width/2
		arena.SpawnY = arena.Bounds.Y + arena.Bounds.Height/2
	}
	return arena, nil
}
