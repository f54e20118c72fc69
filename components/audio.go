package components

import (
	cfg "github.com/automoto/fling/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// PendingSound is a queued sound effect with its playback volume.
type PendingSound struct {
	ID     cfg.SoundID
	Volume float64 // 0.0 - 1.0, multiplied by the SFX volume
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []PendingSound
}

var Audio = donburi.NewComponentType[AudioData]()
