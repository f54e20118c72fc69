package config

import (
	"image/color"

	"github.com/automoto/fling/assets"
	"github.com/automoto/fling/gamemath"
	"github.com/automoto/fling/simulation"
)

type Config struct {
	Width  int
	Height int
	Title  string
}

var C *Config

// ToolbarHeight is the strip below the arena reserved for the content toolbar.
const ToolbarHeight = 32

// PhysicsConfig mirrors the engine constants so they can be tuned from the environment.
type PhysicsConfig struct {
	FrictionCoefficient float64 // fraction of velocity lost per second
	StopThreshold       float64 // per-axis speed below which the ball rests
	Restitution         float64 // velocity kept after a wall bounce
	TickRate            float64 // simulation ticks per second
}

// ThrowConfig contains release tuning
type ThrowConfig struct {
	SpeedThreshold float64 // minimum release speed that counts as a throw
	MaxSpeed       float64 // cap on the seeded release speed
}

// ContentConfig contains ball content settings
type ContentConfig struct {
	Dir              string // directory to load content from; empty uses the embedded samples
	Initial          string // content loaded at startup
	MaxFrameSize     int    // decoded frames are downscaled to fit
	PreservePlayback bool   // carry the play-head across switches by default
}

// ArenaConfig contains arena rendering settings
type ArenaConfig struct {
	Map             string
	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	WallColor       color.RGBA
	WallThickness   float32
	GridColor       color.RGBA
	GridSpacing     int
}

// SquashStretchConfig controls the bounce deformation tween
type SquashStretchConfig struct {
	MinImpactSpeed float64 // slower hits do not squash
	MaxSquash      float64 // scale on the hit axis at full impact
	FullImpact     float64 // impact speed that produces MaxSquash
	Duration       float32 // seconds to relax back to 1.0
}

// HUDConfig contains on-screen text settings
type HUDConfig struct {
	TextColor  color.RGBA
	DimColor   color.RGBA
	Margin     int
	LineHeight int
}

// DebugConfig contains the debug overlay settings
type DebugConfig struct {
	Enabled       bool
	VelocityScale float64 // pixels drawn per unit/s of velocity
	TrailColor    color.RGBA
	VectorColor   color.RGBA
	ObjectColor   color.RGBA
}

var (
	Physics       PhysicsConfig
	Throw         ThrowConfig
	Content       ContentConfig
	Arena         ArenaConfig
	SquashStretch SquashStretchConfig
	HUD           HUDConfig
	Debug         DebugConfig
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Grey         = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 608 + ToolbarHeight,
		Title:  "Fling",
	}

	def := gamemath.DefaultPhysics()
	Physics = PhysicsConfig{
		FrictionCoefficient: def.FrictionCoefficient,
		StopThreshold:       def.StopThreshold,
		Restitution:         def.Restitution,
		TickRate:            60,
	}

	Throw = ThrowConfig{
		SpeedThreshold: 50,
		MaxSpeed:       4000,
	}

	Content = ContentConfig{
		Initial:      "ball.png",
		MaxFrameSize: 256,
	}

	Arena = ArenaConfig{
		Map:             assets.DefaultArena,
		BackgroundColor: color.RGBA{R: 10, G: 14, B: 28, A: 255},
		FloorColor:      color.RGBA{R: 18, G: 26, B: 48, A: 255},
		WallColor:       DarkBlue,
		WallThickness:   3,
		GridColor:       color.RGBA{R: 30, G: 40, B: 70, A: 255},
		GridSpacing:     32,
	}

	SquashStretch = SquashStretchConfig{
		MinImpactSpeed: 80,
		MaxSquash:      0.7,
		FullImpact:     1500,
		Duration:       0.25,
	}

	HUD = HUDConfig{
		TextColor:  White,
		DimColor:   Grey,
		Margin:     8,
		LineHeight: 14,
	}

	Debug = DebugConfig{
		VelocityScale: 0.1,
		TrailColor:    LightGreen,
		VectorColor:   Yellow,
		ObjectColor:   color.RGBA{R: 0, G: 255, B: 255, A: 255},
	}
}

// SimulationSettings builds the simulation tuning from the current config.
func SimulationSettings() simulation.Settings {
	return simulation.Settings{
		Physics: gamemath.Physics{
			FrictionCoefficient: Physics.FrictionCoefficient,
			StopThreshold:       Physics.StopThreshold,
			Restitution:         Physics.Restitution,
		},
		ThrowThreshold: Throw.SpeedThreshold,
		MaxThrowSpeed:  Throw.MaxSpeed,
	}
}
