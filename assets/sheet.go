package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io/fs"

	xdraw "golang.org/x/image/draw"
)

// SheetSuffix is appended to an image path to find its sprite sheet metadata.
const SheetSuffix = ".sheet.json"

// SheetSpec describes how a still image is cut into animation frames.
// Cells are read left to right, top to bottom.
type SheetSpec struct {
	FrameWidth  int     `json:"frameWidth"`
	FrameHeight int     `json:"frameHeight"`
	Frames      int     `json:"frames"` // 0 = every full cell
	FPS         float64 `json:"fps"`
}

// loadSheetSpec returns nil without error when name has no sidecar.
func loadSheetSpec(fsys fs.FS, name string) (*SheetSpec, error) {
	data, err := fs.ReadFile(fsys, name+SheetSuffix)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet metadata for %s: %w", name, err)
	}

	var spec SheetSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSheet, name, err)
	}
	return &spec, nil
}

func (v *Visual) sliceSheet(spec SheetSpec) error {
	if spec.FrameWidth <= 0 || spec.FrameHeight <= 0 {
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidSheet, spec.FrameWidth, spec.FrameHeight)
	}

	sheet := v.Frames[0]
	b := sheet.Bounds()
	cols := b.Dx() / spec.FrameWidth
	rows := b.Dy() / spec.FrameHeight
	cells := cols * rows

	n := spec.Frames
	if n <= 0 || n > cells {
		n = cells
	}
	if n < 1 {
		return fmt.Errorf("%w: %dx%d frames do not fit a %dx%d sheet",
			ErrInvalidSheet, spec.FrameWidth, spec.FrameHeight, b.Dx(), b.Dy())
	}

	frames := make([]image.Image, n)
	for i := 0; i < n; i++ {
		x := b.Min.X + (i%cols)*spec.FrameWidth
		y := b.Min.Y + (i/cols)*spec.FrameHeight
		frame := image.NewRGBA(image.Rect(0, 0, spec.FrameWidth, spec.FrameHeight))
		xdraw.Copy(frame, image.Point{}, sheet, image.Rect(x, y, x+spec.FrameWidth, y+spec.FrameHeight), xdraw.Src, nil)
		frames[i] = frame
	}

	delay := 0.0
	if spec.FPS > 0 {
		delay = 1 / spec.FPS
	}
	delays := make([]float64, n)
	for i := range delays {
		delays[i] = delay
	}

	v.Frames = frames
	v.Delays = delays
	v.Width, v.Height = spec.FrameWidth, spec.FrameHeight
	v.Type = SpriteAnimation
	return nil
}
