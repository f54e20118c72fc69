package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/fling/assets/animations"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultMaxPixels bounds the decoded canvas when DecodeOptions.MaxPixels is zero.
const DefaultMaxPixels = 64 << 20

// DecodeOptions controls how content is prepared for display.
type DecodeOptions struct {
	// MaxFrameSize downscales frames whose width or height exceeds it. Zero disables scaling.
	MaxFrameSize int
	// MaxPixels rejects images whose header declares a larger canvas.
	// Zero means DefaultMaxPixels.
	MaxPixels int
}

func (o DecodeOptions) maxPixels() int {
	if o.MaxPixels > 0 {
		return o.MaxPixels
	}
	return DefaultMaxPixels
}

// DecodeVisual reads and decodes the content at name from fsys and classifies it.
// Multi-frame GIFs become FrameAnimation, still images with a sprite sheet
// sidecar become SpriteAnimation, and everything else is a StaticImage.
func DecodeVisual(ctx context.Context, fsys fs.FS, name string, opts DecodeOptions) (*Visual, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPath
	}
	name = strings.TrimPrefix(path.Clean(name), "/")
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, name)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read content %s: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, name, err)
	}
	if limit := opts.maxPixels(); cfg.Width <= 0 || cfg.Height <= 0 ||
		cfg.Width > limit/cfg.Height {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrTooLarge, name, cfg.Width, cfg.Height)
	}

	var v *Visual
	if format == "gif" {
		v, err = decodeGIF(ctx, data)
	} else {
		v, err = decodeStill(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s %s: %w", format, name, err)
	}
	v.Path = name
	v.Format = format

	if v.Type == StaticImage {
		spec, err := loadSheetSpec(fsys, name)
		if err != nil {
			return nil, err
		}
		if spec != nil {
			if err := v.sliceSheet(*spec); err != nil {
				return nil, fmt.Errorf("failed to slice sprite sheet %s: %w", name, err)
			}
		}
	}

	if err := v.fit(ctx, opts.MaxFrameSize); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeStill(data []byte) (*Visual, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Visual{
		Type:   StaticImage,
		Frames: []image.Image{img},
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

func decodeGIF(ctx context.Context, data []byte) (*Visual, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, errors.New("gif has no frames")
	}

	w, h := g.Config.Width, g.Config.Height
	if w <= 0 || h <= 0 {
		var r image.Rectangle
		for _, p := range g.Image {
			r = r.Union(p.Bounds())
		}
		w, h = r.Max.X, r.Max.Y
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	frames := make([]image.Image, 0, len(g.Image))
	delays := make([]float64, 0, len(g.Image))

	for i, p := range g.Image {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		xdraw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, xdraw.Over)
		frames = append(frames, cloneRGBA(canvas))

		delay := 0.0
		if i < len(g.Delay) {
			delay = float64(g.Delay[i]) / 100
		}
		// Browsers play delays of 10ms and below at the default rate.
		if delay <= 0.01 {
			delay = animations.DefaultFrameDelay
		}
		delays = append(delays, delay)

		switch disposal {
		case gif.DisposalBackground:
			xdraw.Draw(canvas, p.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	v := &Visual{
		Type:   StaticImage,
		Frames: frames,
		Width:  w,
		Height: h,
	}
	if len(frames) > 1 {
		v.Type = FrameAnimation
		v.Delays = delays
	}
	return v, nil
}

// fit downscales every frame so neither side exceeds max, keeping the aspect ratio.
func (v *Visual) fit(ctx context.Context, max int) error {
	if max <= 0 || (v.Width <= max && v.Height <= max) {
		return nil
	}

	scale := float64(max) / float64(v.Width)
	if s := float64(max) / float64(v.Height); s < scale {
		scale = s
	}
	w := int(float64(v.Width)*scale + 0.5)
	h := int(float64(v.Height)*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	for i, src := range v.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
		v.Frames[i] = dst
	}
	v.Width, v.Height = w, h
	return nil
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
