package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBounce
	SoundGrab
	SoundRelease
)

// ToneConfig describes a synthesized sound effect.
type ToneConfig struct {
	Frequency  float64
	DurationMs int
	Volume     float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	// Bounce volume scales with impact speed up to this value.
	FullVolumeImpact float64
	Tones            map[SoundID]ToneConfig
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:       44100,
		DefaultSFXVol:    0.8,
		FullVolumeImpact: 1200,
		Tones: map[SoundID]ToneConfig{
			SoundBounce:  {Frequency: 220, DurationMs: 70, Volume: 1.0},
			SoundGrab:    {Frequency: 660, DurationMs: 40, Volume: 0.5},
			SoundRelease: {Frequency: 440, DurationMs: 50, Volume: 0.5},
		},
	}
}
