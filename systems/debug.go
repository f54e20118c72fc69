package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/fling/components"
	cfg "github.com/automoto/fling/config"
	"github.com/automoto/fling/fonts"
	"github.com/automoto/fling/gamemath"
	"github.com/automoto/fling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	// Draw all collision objects in the space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Debug.ObjectColor
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	entry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	data := components.Ball.Get(entry)
	sim := data.Sim
	ball := sim.Ball()

	data.EachTrail(func(i int, p gamemath.Vec2) {
		a := uint8(40 + 200*i/components.TrailLength)
		c := cfg.Debug.TrailColor
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, color.RGBA{c.R / 2, c.G / 2, c.B / 2, a}, true)
	})

	// Drag samples currently in the motion history
	h := sim.History()
	for _, p := range h.Positions() {
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), 4, 1, cfg.Yellow, true)
	}

	v := ball.Velocity()
	if sim.Dragging() {
		vx, vy := h.Velocity()
		v = gamemath.Vec2{X: vx, Y: vy}
	}
	s := cfg.Debug.VelocityScale
	vector.StrokeLine(screen,
		float32(ball.X), float32(ball.Y),
		float32(ball.X+v.X*s), float32(ball.Y+v.Y*s),
		2, cfg.Debug.VectorColor, true)

	fb := components.Feedback.Get(entry)
	throw := sim.LastThrow()
	lines := []string{
		fmt.Sprintf("pos %.1f, %.1f  vel %.1f, %.1f", ball.X, ball.Y, v.X, v.Y),
		fmt.Sprintf("history %d/%d  last throw %.0f, %.0f", h.Len(), gamemath.HistoryCapacity, throw.X, throw.Y),
		fmt.Sprintf("feedback notifications %d  last %s", fb.Notifications, fb.LastChanged),
		fmt.Sprintf("content generation %d  tps %.0f", components.Content.Get(entry).Generation, ebiten.ActualTPS()),
	}
	face := fonts.Small.Get()
	x := cfg.C.Width - 300
	y := cfg.HUD.Margin + 16 + cfg.HUD.LineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, x, y, cfg.Debug.ObjectColor)
		y += cfg.HUD.LineHeight
	}
}
