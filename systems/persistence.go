package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/fling/components"
	"github.com/automoto/fling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume        float64 `json:"sfxVolume"`
	Muted            bool    `json:"muted"`
	Fullscreen       bool    `json:"fullscreen"`
	LastContent      string  `json:"lastContent"`
	PreservePlayback bool    `json:"preservePlayback"`
	ShowDebug        bool    `json:"showDebug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "fling",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the settings component and the ball's content choice
func SaveCurrentSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	saved := &SavedSettings{
		SFXVolume:  s.SFXVolume,
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
		ShowDebug:  s.Debug,
	}
	if entry, ok := tags.Ball.First(e.World); ok {
		c := components.Content.Get(entry)
		saved.PreservePlayback = c.PreservePlayback
		if c.Selected >= 0 && c.Selected < len(c.Catalogue) {
			saved.LastContent = c.Catalogue[c.Selected].Path
		}
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings applies loaded settings to a freshly configured scene.
// It returns the content path to restore, empty when none was saved.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) string {
	if saved == nil {
		return ""
	}

	SetSFXVolume(e, saved.SFXVolume)
	SetMuted(saved.Muted)

	s := GetOrCreateSettings(e)
	s.SFXVolume = saved.SFXVolume
	s.Muted = saved.Muted
	s.Fullscreen = saved.Fullscreen
	s.Debug = saved.ShowDebug

	if entry, ok := tags.Ball.First(e.World); ok {
		components.Content.Get(entry).PreservePlayback = saved.PreservePlayback
	}
	return saved.LastContent
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during initial startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted

	ebiten.SetFullscreen(saved.Fullscreen)
}
