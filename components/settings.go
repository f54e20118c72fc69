package components

import "github.com/yohamta/donburi"

// SettingsData stores user-facing toggles (singleton component)
type SettingsData struct {
	SFXVolume  float64
	Muted      bool
	Fullscreen bool
	Debug      bool
}

var Settings = donburi.NewComponentType[SettingsData]()
