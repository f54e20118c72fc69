package assets

import (
	"errors"
	"image"
)

var (
	ErrEmptyPath         = errors.New("content path is empty")
	ErrInvalidPath       = errors.New("content path is not a valid relative path")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidSheet      = errors.New("invalid sprite sheet metadata")
	ErrTooLarge          = errors.New("image dimensions exceed the decode limit")
)

// ContentType classifies decoded visual content.
type ContentType int

const (
	ContentNone ContentType = iota
	StaticImage
	FrameAnimation
	SpriteAnimation
)

func (c ContentType) String() string {
	switch c {
	case ContentNone:
		return "None"
	case StaticImage:
		return "StaticImage"
	case FrameAnimation:
		return "FrameAnimation"
	case SpriteAnimation:
		return "SpriteAnimation"
	default:
		return "Unknown"
	}
}

// Animated reports whether the type carries a play-head.
func (c ContentType) Animated() bool {
	return c == FrameAnimation || c == SpriteAnimation
}

// Visual is a fully decoded piece of ball content. It is immutable once returned.
type Visual struct {
	Path   string
	Format string
	Type   ContentType
	Frames []image.Image
	// Delays holds the display time of each frame in seconds. Empty for static images.
	Delays []float64
	Width  int
	Height int
}

func (v *Visual) FrameCount() int {
	return len(v.Frames)
}

// Frame returns frame i, clamped to the valid range.
func (v *Visual) Frame(i int) image.Image {
	if len(v.Frames) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(v.Frames) {
		i = len(v.Frames) - 1
	}
	return v.Frames[i]
}
