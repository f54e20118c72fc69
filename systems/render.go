package systems

import (
	"image/color"
	"math"

	"github.com/automoto/fling/components"
	cfg "github.com/automoto/fling/config"
	"github.com/automoto/fling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// glowSteps is the number of rings used to fake a soft glow.
const glowSteps = 6

var (
	ballCanvas *ebiten.Image
	ballMask   *ebiten.Image
	maskRadius int
	ballDrawOp = &ebiten.DrawImageOptions{}
)

// DrawArena renders the background, floor grid and boundary walls.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.BackgroundColor)

	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	b := components.Arena.Get(entry).Arena.Bounds

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), cfg.Arena.FloorColor, false)

	if step := cfg.Arena.GridSpacing; step > 0 {
		for x := b.X + float64(step); x < b.Right(); x += float64(step) {
			vector.StrokeLine(screen, float32(x), float32(b.Y), float32(x), float32(b.Bottom()), 1, cfg.Arena.GridColor, false)
		}
		for y := b.Y + float64(step); y < b.Bottom(); y += float64(step) {
			vector.StrokeLine(screen, float32(b.X), float32(y), float32(b.Right()), float32(y), 1, cfg.Arena.GridColor, false)
		}
	}

	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), cfg.Arena.WallThickness, cfg.Arena.WallColor, false)
}

// DrawBall renders each ball with its content clipped to a circle, then
// layers the interaction feedback: glow below, border on top, opacity and
// scale applied to the whole ball.
func DrawBall(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ball := components.Ball.Get(e).Sim.Ball()
		fb := components.Feedback.Get(e).Style
		sx, sy := SquashScale(e)

		cx, cy := float32(ball.X), float32(ball.Y)
		r := ball.Radius() * fb.Scale

		if fb.GlowRadius > 0 {
			drawGlow(screen, cx, cy, float32(r), float32(fb.GlowRadius), fb.GlowColor, fb.Opacity)
		}

		canvas := renderBallCanvas(ball.Radius(), CurrentFrame(components.Content.Get(e)))

		size := float64(canvas.Bounds().Dx())
		ballDrawOp.GeoM.Reset()
		ballDrawOp.GeoM.Translate(-size/2, -size/2)
		ballDrawOp.GeoM.Scale(fb.Scale*sx, fb.Scale*sy)
		ballDrawOp.GeoM.Translate(ball.X, ball.Y)
		ballDrawOp.ColorScale.Reset()
		ballDrawOp.ColorScale.ScaleAlpha(float32(fb.Opacity))
		ballDrawOp.Filter = ebiten.FilterLinear
		screen.DrawImage(canvas, ballDrawOp)

		border := fb.BorderThickness
		borderColor := color.Color(fb.BorderColor)
		if flash := components.Flash.Get(e); flash.Duration > 0 {
			border = math.Max(border, 2)
			borderColor = color.RGBA{
				R: uint8(255 * flash.R),
				G: uint8(255 * flash.G),
				B: uint8(255 * flash.B),
				A: 255,
			}
		}
		if border > 0 {
			vector.StrokeCircle(screen, cx, cy, float32(r*math.Max(sx, sy)), float32(border), borderColor, true)
		}
	})
}

// renderBallCanvas draws the content frame into a square canvas and masks it to a circle.
func renderBallCanvas(radius float64, frame *ebiten.Image) *ebiten.Image {
	d := int(math.Ceil(radius * 2))
	if d < 1 {
		d = 1
	}
	if ballCanvas == nil || ballCanvas.Bounds().Dx() != d {
		if ballCanvas != nil {
			ballCanvas.Deallocate()
		}
		ballCanvas = ebiten.NewImage(d, d)
	}
	if ballMask == nil || maskRadius != d {
		if ballMask != nil {
			ballMask.Deallocate()
		}
		ballMask = ebiten.NewImage(d, d)
		half := float32(d) / 2
		vector.DrawFilledCircle(ballMask, half, half, half, color.White, true)
		maskRadius = d
	}

	ballCanvas.Clear()
	if frame == nil {
		ballCanvas.Fill(cfg.LightBlue)
	} else {
		w, h := frame.Bounds().Dx(), frame.Bounds().Dy()
		// Cover the circle, cropping the longer side.
		scale := float64(d) / math.Min(float64(w), float64(h))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(d)/2, float64(d)/2)
		op.Filter = ebiten.FilterLinear
		ballCanvas.DrawImage(frame, op)
	}

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendDestinationIn
	ballCanvas.DrawImage(ballMask, op)
	return ballCanvas
}

// drawGlow approximates a blurred halo with translucent rings.
func drawGlow(screen *ebiten.Image, cx, cy, r, glow float32, c color.RGBA, opacity float64) {
	for i := glowSteps; i >= 1; i-- {
		t := float32(i) / glowSteps
		alpha := (1 - t) * 0.6 * float32(opacity)
		ring := color.RGBA{
			R: uint8(float32(c.R) * alpha),
			G: uint8(float32(c.G) * alpha),
			B: uint8(float32(c.B) * alpha),
			A: uint8(255 * alpha),
		}
		vector.DrawFilledCircle(screen, cx, cy, r+glow*t, ring, true)
	}
}
