package components

import (
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/tanema/gween"
)

// DifficultyData is owned by the Difficulty Controller.
type DifficultyData struct {
	Preset   cfg.DifficultyPreset
	Level    float64
	Min      float64
	Max      float64
	Adaptive bool

	SpeedModifier     float64
	HealthModifier    float64
	SpawnRateModifier float64

	LastAssessment time.Duration
	KillsInWindow  int
	LastSkill      float64

	// Derived each assessment
	EnemySpeed     float64
	EnemyHealth    float64
	EnemySpawnRate float64
	DurableChance  float64

	// Display eases toward Level
	DisplayLevel float64
	Display      *gween.Tween
}

// Clamp keeps Level inside [Min, Max].
func (d *DifficultyData) Clamp() {
	if d.Level < d.Min {
		d.Level = d.Min
	}
	if d.Level > d.Max {
		d.Level = d.Max
	}
}

// Label is the HUD text for the displayed level.
func (d *DifficultyData) Label() string {
	l := cfg.DifficultyLabel(d.DisplayLevel)
	if d.Adaptive {
		return l + " (Adaptive)"
	}
	return l
}
