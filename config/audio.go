package config

import "time"

// Waveform selects the oscillator a tone is synthesized with
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveNoise
)

// ToneConfig describes one synthesized sound effect. The pitch sweeps
// linearly from StartHz to EndHz and the amplitude decays to zero.
type ToneConfig struct {
	Wave     Waveform
	StartHz  float64
	EndHz    float64
	Duration time.Duration
	Gain     float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	MaxVoices     int // players kept alive at once; extra requests are dropped
}

// SoundConfig maps the simulation's sound names to tones
type SoundConfig struct {
	Tones map[string]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
		MaxVoices:     12,
	}

	Sound = SoundConfig{
		Tones: map[string]ToneConfig{
			"shoot":          {Wave: WaveSquare, StartHz: 880, EndHz: 440, Duration: 60 * time.Millisecond, Gain: 0.25},
			"explosion":      {Wave: WaveNoise, Duration: 300 * time.Millisecond, Gain: 0.6},
			"damage":         {Wave: WaveSquare, StartHz: 220, EndHz: 110, Duration: 180 * time.Millisecond, Gain: 0.5},
			"gameOver":       {Wave: WaveSine, StartHz: 440, EndHz: 110, Duration: 900 * time.Millisecond, Gain: 0.7},
			"powerup":        {Wave: WaveSine, StartHz: 523, EndHz: 1046, Duration: 200 * time.Millisecond, Gain: 0.5},
			"teleport":       {Wave: WaveSine, StartHz: 200, EndHz: 1200, Duration: 250 * time.Millisecond, Gain: 0.5},
			"asteroidBreak":  {Wave: WaveNoise, Duration: 180 * time.Millisecond, Gain: 0.4},
			"countdown":      {Wave: WaveSquare, StartHz: 660, EndHz: 660, Duration: 120 * time.Millisecond, Gain: 0.4},
			"dimensionShift": {Wave: WaveSine, StartHz: 1200, EndHz: 150, Duration: 700 * time.Millisecond, Gain: 0.6},
			"upgrade":        {Wave: WaveSine, StartHz: 660, EndHz: 1320, Duration: 350 * time.Millisecond, Gain: 0.5},
		},
	}
}
