package ui

import (
	"bytes"
	"fmt"

	"github.com/automoto/fling/components"
	cfg "github.com/automoto/fling/config"
	"github.com/automoto/fling/systems"
	"github.com/automoto/fling/tags"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// Toolbar is the strip of buttons below the arena for picking ball content
// and toggling playback.
type Toolbar struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	contentButtons []*widget.Button
	playbackButton *widget.Button
	preserveButton *widget.Button
	face           text.Face
	labels         []string
}

// NewToolbar builds the toolbar for the ball in e. The ball must already exist.
func NewToolbar(e *ecs.ECS) *Toolbar {
	tb := &Toolbar{ecs: e}
	tb.loadFonts()
	tb.buildUI()
	return tb
}

func (tb *Toolbar) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	tb.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Toolbar.FontSize,
	}
}

func (tb *Toolbar) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(cfg.Toolbar.Padding)
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Toolbar.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(cfg.Toolbar.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, cfg.Toolbar.Height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	if entry, ok := tags.Ball.First(tb.ecs.World); ok {
		for i, item := range components.Content.Get(entry).Catalogue {
			if i >= 9 {
				break
			}
			idx := i // Capture for closure
			label := fmt.Sprintf("%d %s", i+1, item.Label)
			tb.labels = append(tb.labels, label)
			btn := tb.newButton(label, 70, func() {
				systems.SelectContent(tb.ecs, idx)
			})
			tb.contentButtons = append(tb.contentButtons, btn)
			bar.AddChild(btn)
		}
	}

	tb.playbackButton = tb.newButton("Pause", 70, func() {
		systems.TogglePlayback(tb.ecs)
	})
	bar.AddChild(tb.playbackButton)

	tb.preserveButton = tb.newButton("Preserve: off", 100, func() {
		systems.TogglePreservePlayback(tb.ecs)
	})
	bar.AddChild(tb.preserveButton)

	bar.AddChild(tb.newButton("Respawn", 70, func() {
		systems.RespawnBall(tb.ecs)
	}))

	rootContainer.AddChild(bar)

	tb.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tb *Toolbar) newButton(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, cfg.Toolbar.Height-2*cfg.Toolbar.Padding),
		),
		widget.ButtonOpts.Image(tb.buttonImage()),
		widget.ButtonOpts.Text(label, &tb.face, &widget.ButtonTextColor{
			Idle:     cfg.Toolbar.TextColor,
			Hover:    cfg.Toolbar.TextColor,
			Pressed:  cfg.Toolbar.TextColor,
			Disabled: cfg.Grey,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (tb *Toolbar) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Toolbar.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Toolbar.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Toolbar.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Grey),
	}
}

// refresh mirrors the ball's content state into button labels.
func (tb *Toolbar) refresh() {
	entry, ok := tags.Ball.First(tb.ecs.World)
	if !ok {
		return
	}
	c := components.Content.Get(entry)

	for i, btn := range tb.contentButtons {
		if textWidget := btn.Text(); textWidget != nil {
			label := tb.labels[i]
			if i == c.Selected {
				label = "> " + label
			}
			textWidget.Label = label
		}
	}

	animated := c.Controller.IsAnimated()
	if textWidget := tb.playbackButton.Text(); textWidget != nil {
		if animated && !c.Controller.PlayHead().Running {
			textWidget.Label = "Play"
		} else {
			textWidget.Label = "Pause"
		}
	}
	tb.playbackButton.GetWidget().Disabled = !animated

	if textWidget := tb.preserveButton.Text(); textWidget != nil {
		if c.PreservePlayback {
			textWidget.Label = "Preserve: on"
		} else {
			textWidget.Label = "Preserve: off"
		}
	}
}

func (tb *Toolbar) Update() {
	tb.UI.Update()
	tb.refresh()
}
