package systems

import (
	"sync"
	"time"

	"github.com/automoto/fling/assets"
	"github.com/automoto/fling/components"
	cfg "github.com/automoto/fling/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFX          map[cfg.SoundID][]byte
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and synthesizes every tone (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSFX = make(map[cfg.SoundID][]byte, len(cfg.Audio.Tones))
		for id, tone := range cfg.Audio.Tones {
			d := time.Duration(tone.DurationMs) * time.Millisecond
			globalSFX[id] = assets.BounceClick(cfg.Audio.SampleRate, tone.Frequency, d)
		}
	})
}

// UpdateAudio plays the sound effects queued this frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, s := range audioData.PendingSFX {
		playSFX(s)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(s components.PendingSound) {
	if globalMuted || globalSFXVolume <= 0 || s.Volume <= 0 {
		return
	}

	pcm, ok := globalSFX[s.ID]
	if !ok {
		return
	}

	volume := globalSFXVolume * s.Volume
	if tone, ok := cfg.Audio.Tones[s.ID]; ok {
		volume *= tone.Volume
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect at the given relative volume
func PlaySFX(e *ecs.ECS, sound cfg.SoundID, volume float64) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.PendingSound{ID: sound, Volume: volume})
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	GetOrCreateAudio(e).SFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// SetMuted silences or restores all sound effects
func SetMuted(muted bool) {
	globalMuted = muted
}

func IsMuted() bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]components.PendingSound, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
