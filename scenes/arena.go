package scenes

import (
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/automoto/fling/assets"
	cfg "github.com/automoto/fling/config"
	"github.com/automoto/fling/content"
	"github.com/automoto/fling/systems"
	"github.com/automoto/fling/systems/factory"
	"github.com/automoto/fling/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the single interactive scene: one ball in a walled arena.
type ArenaScene struct {
	ecs     *ecs.ECS
	toolbar *ui.Toolbar
	once    sync.Once
}

func NewArenaScene() *ArenaScene {
	return &ArenaScene{}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
	as.toolbar.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
	as.toolbar.UI.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateBall)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateContent)
	ecs.AddSystem(systems.UpdateEffects)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawBall)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	as.ecs = ecs

	arena := assets.MustLoadArena(cfg.Arena.Map)
	factory.CreateArena(ecs, arena)
	factory.CreateSpace(ecs, arena)
	factory.CreateBoundaryWalls(ecs, arena.Bounds)

	ctrl := content.NewController(contentFS(), assets.DecodeOptions{MaxFrameSize: cfg.Content.MaxFrameSize})
	if _, err := factory.CreateBall(ecs, arena, factory.BallContent{
		Controller: ctrl,
		Catalogue:  arena.Catalogue,
	}); err != nil {
		panic("failed to create ball: " + err.Error())
	}

	initial := cfg.Content.Initial
	saved, _ := systems.LoadSettings()
	if last := systems.ApplySavedSettings(ecs, saved); last != "" {
		initial = last
	}
	systems.LoadContentPath(ecs, initial)

	as.toolbar = ui.NewToolbar(ecs)
}

// contentFS returns the directory named by the config, or the embedded samples.
func contentFS() fs.FS {
	if dir := cfg.Content.Dir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir)
		}
		log.Printf("Warning: Content directory %q not usable, using embedded content", dir)
	}
	return assets.ContentFS()
}
