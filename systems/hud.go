package systems

import (
	"fmt"

	"github.com/automoto/fling/components"
	cfg "github.com/automoto/fling/config"
	"github.com/automoto/fling/fonts"
	"github.com/automoto/fling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the ball state and content status in the arena's top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	sim := components.Ball.Get(entry).Sim
	c := components.Content.Get(entry)

	lines := []string{
		fmt.Sprintf("%s  %.0f px/s", sim.Machine().State(), sim.Ball().Speed()),
		contentLine(c),
	}

	face := fonts.Regular.Get()
	x := cfg.HUD.Margin + 16
	y := cfg.HUD.Margin + 16 + cfg.HUD.LineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, x, y, cfg.HUD.TextColor)
		y += cfg.HUD.LineHeight
	}

	hint := "drag to throw  1-9 content  space play/pause  P preserve  R respawn  F1 debug"
	text.Draw(screen, hint, fonts.Small.Get(), x, cfg.C.Height-cfg.ToolbarHeight-cfg.HUD.Margin-16, cfg.HUD.DimColor)
}

func contentLine(c *components.ContentData) string {
	ctrl := c.Controller
	path := ctrl.Path()
	if path == "" {
		return "no content"
	}

	preserve := "off"
	if c.PreservePlayback {
		preserve = "on"
	}
	if !ctrl.IsAnimated() {
		return fmt.Sprintf("%s (%s)  preserve %s", path, ctrl.ContentType(), preserve)
	}

	head := ctrl.PlayHead()
	state := "playing"
	if !head.Running {
		state = "paused"
	}
	frames := 0
	if cur := ctrl.Current(); cur != nil {
		frames = cur.Visual.FrameCount()
	}
	return fmt.Sprintf("%s (%s) frame %d/%d %s  preserve %s",
		path, ctrl.ContentType(), head.Frame+1, frames, state, preserve)
}
