package interaction

import "image/color"

var (
	Transparent = color.RGBA{}
	LightBlue   = color.RGBA{R: 0xAD, G: 0xD8, B: 0xE6, A: 0xFF}
	Blue        = color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
	Orange      = color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
	Red         = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
)

// Feedback is the visual treatment applied to the ball for a state.
type Feedback struct {
	Opacity         float64
	Scale           float64
	GlowRadius      float64
	GlowColor       color.RGBA
	BorderThickness float64
	BorderColor     color.RGBA
}

// Property identifies a single field of Feedback in change notifications.
type Property int

const (
	PropertyOpacity Property = iota
	PropertyScale
	PropertyGlowRadius
	PropertyGlowColor
	PropertyBorderThickness
	PropertyBorderColor
)

func (p Property) String() string {
	switch p {
	case PropertyOpacity:
		return "Opacity"
	case PropertyScale:
		return "Scale"
	case PropertyGlowRadius:
		return "GlowRadius"
	case PropertyGlowColor:
		return "GlowColor"
	case PropertyBorderThickness:
		return "BorderThickness"
	case PropertyBorderColor:
		return "BorderColor"
	default:
		return "Unknown"
	}
}

var feedbackTable = map[State]Feedback{
	Idle: {
		Opacity:         1.0,
		Scale:           1.0,
		GlowRadius:      0.0,
		GlowColor:       Transparent,
		BorderThickness: 0.0,
		BorderColor:     Transparent,
	},
	Held: {
		Opacity:         0.8,
		Scale:           1.1,
		GlowRadius:      8.0,
		GlowColor:       LightBlue,
		BorderThickness: 2.0,
		BorderColor:     Blue,
	},
	Thrown: {
		Opacity:         1.0,
		Scale:           1.0,
		GlowRadius:      4.0,
		GlowColor:       Orange,
		BorderThickness: 1.0,
		BorderColor:     Red,
	},
}

// FeedbackFor returns the fixed feedback record for a state.
func FeedbackFor(s State) Feedback {
	return feedbackTable[s]
}

// Changed lists the properties that differ between two records, in declaration order.
func (f Feedback) Changed(to Feedback) []Property {
	var props []Property
	if f.Opacity != to.Opacity {
		props = append(props, PropertyOpacity)
	}
	if f.Scale != to.Scale {
		props = append(props, PropertyScale)
	}
	if f.GlowRadius != to.GlowRadius {
		props = append(props, PropertyGlowRadius)
	}
	if f.GlowColor != to.GlowColor {
		props = append(props, PropertyGlowColor)
	}
	if f.BorderThickness != to.BorderThickness {
		props = append(props, PropertyBorderThickness)
	}
	if f.BorderColor != to.BorderColor {
		props = append(props, PropertyBorderColor)
	}
	return props
}
