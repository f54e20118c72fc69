package components

import (
	"github.com/automoto/fling/assets"
	"github.com/automoto/fling/content"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ContentData holds the ball's visual content and the GPU images uploaded
// for the currently installed generation.
type ContentData struct {
	Controller *content.Controller
	Catalogue  []assets.ContentEntry
	// Selected is the catalogue index of the most recent request, -1 for none.
	Selected         int
	PreservePlayback bool

	Frames     []*ebiten.Image
	Generation uint64
	// Shown is the index of the frame drawn last.
	Shown int
}

var Content = donburi.NewComponentType[ContentData]()
