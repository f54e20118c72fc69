package systems

import (
	"github.com/automoto/fling/components"
	cfg "github.com/automoto/fling/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the global audio state and the debug config on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			SFXVolume:  GetSFXVolume(),
			Muted:      IsMuted(),
			Fullscreen: ebiten.IsFullscreen(),
			Debug:      cfg.Debug.Enabled,
		})
	}
	return components.Settings.Get(entry)
}

func ToggleDebug(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.Debug = !s.Debug
	SaveCurrentSettings(e)
}

func ToggleFullscreen(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
	SaveCurrentSettings(e)
}

func ToggleMute(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.Muted = !s.Muted
	SetMuted(s.Muted)
	SaveCurrentSettings(e)
}
