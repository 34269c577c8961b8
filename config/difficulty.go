package config

import (
	"strings"
	"time"
)

// DifficultyPreset is the bundle a session's Difficulty Controller runs against.
type DifficultyPreset struct {
	Name              string
	Level             float64
	Min               float64
	Max               float64
	SpeedModifier     float64
	HealthModifier    float64
	SpawnRateModifier float64
	LowFPSThreshold   float64
}

// DifficultyConfig holds the presets and controller tuning.
type DifficultyConfig struct {
	Presets            map[string]DifficultyPreset
	Fallback           string
	AdaptationRate     float64
	AssessmentInterval time.Duration
	KillRateCap        float64 // kills per second that count as a perfect kill rate
	SurvivalCap        time.Duration
	MultiplierSpan     float64

	KillWeight       float64
	SurvivalWeight   float64
	MultiplierWeight float64

	DisplayTween time.Duration
}

var Difficulty DifficultyConfig

func init() {
	Difficulty = DifficultyConfig{
		Presets: map[string]DifficultyPreset{
			"easy": {
				Name: "easy", Level: 0.15, Min: 0.05, Max: 0.4,
				SpeedModifier: 0.8, HealthModifier: 0.7, SpawnRateModifier: 0.7,
				LowFPSThreshold: 40,
			},
			"medium": {
				Name: "medium", Level: 0.3, Min: 0.15, Max: 0.65,
				SpeedModifier: 1.0, HealthModifier: 1.0, SpawnRateModifier: 1.0,
				LowFPSThreshold: 40,
			},
			"hard": {
				Name: "hard", Level: 0.5, Min: 0.3, Max: 0.9,
				SpeedModifier: 1.2, HealthModifier: 1.3, SpawnRateModifier: 1.4,
				LowFPSThreshold: 40,
			},
		},
		Fallback:           "medium",
		AdaptationRate:     0.05,
		AssessmentInterval: 10 * time.Second,
		KillRateCap:        2,
		SurvivalCap:        120 * time.Second,
		MultiplierSpan:     3,
		KillWeight:         0.4,
		SurvivalWeight:     0.3,
		MultiplierWeight:   0.3,
		DisplayTween:       time.Second,
	}
}

// ResolvePreset returns the named preset, falling back to medium when the
// name is unknown or the preset is malformed.
func ResolvePreset(name string) DifficultyPreset {
	p, ok := Difficulty.Presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok || !p.valid() {
		return Difficulty.Presets[Difficulty.Fallback]
	}
	return p
}

func (p DifficultyPreset) valid() bool {
	return p.Min <= p.Max && p.Level >= p.Min && p.Level <= p.Max &&
		p.SpeedModifier > 0 && p.HealthModifier > 0 && p.SpawnRateModifier > 0
}

// DifficultyLabel names a difficulty level for display.
func DifficultyLabel(level float64) string {
	switch {
	case level < 0.2:
		return "Easy"
	case level < 0.4:
		return "Medium"
	case level < 0.6:
		return "Hard"
	case level < 0.8:
		return "Expert"
	default:
		return "Insane"
	}
}
