package config

import "image/color"

// ToolbarConfig contains the content toolbar layout
type ToolbarConfig struct {
	Height          int
	Padding         int
	Spacing         int
	FontSize        float64
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonActive    color.RGBA
	TextColor       color.RGBA
	BackgroundColor color.RGBA
}

var Toolbar ToolbarConfig

func init() {
	Toolbar = ToolbarConfig{
		Height:          ToolbarHeight,
		Padding:         4,
		Spacing:         6,
		FontSize:        12,
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   BrightOrange,
		ButtonActive:    Orange,
		TextColor:       White,
		BackgroundColor: BlackOverlay,
	}
}
