package systems

import (
	"math"
	"time"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SkillInputs are the observations one assessment is based on.
type SkillInputs struct {
	Kills      int
	Window     time.Duration
	Survival   time.Duration
	Multiplier float64
}

func newDifficulty(settings cfg.Settings) components.DifficultyData {
	p := cfg.ResolvePreset(settings.Difficulty)
	d := components.DifficultyData{
		Preset:            p,
		Level:             p.Level,
		Min:               p.Min,
		Max:               p.Max,
		Adaptive:          settings.Adaptive,
		SpeedModifier:     p.SpeedModifier,
		HealthModifier:    p.HealthModifier,
		SpawnRateModifier: p.SpawnRateModifier,
	}
	d.Clamp()
	d.DisplayLevel = d.Level
	deriveDifficulty(&d)
	return d
}

// SkillEstimate folds kill rate, survival time and score multiplier into [0, 1].
func SkillEstimate(in SkillInputs) float64 {
	killRate := 0.0
	if secs := in.Window.Seconds(); secs > 0 {
		killRate = math.Min(float64(in.Kills)/secs/cfg.Difficulty.KillRateCap, 1)
	}
	survival := math.Min(in.Survival.Seconds()/cfg.Difficulty.SurvivalCap.Seconds(), 1)
	mult := math.Min((in.Multiplier-1)/cfg.Difficulty.MultiplierSpan, 1)
	if mult < 0 {
		mult = 0
	}
	return cfg.Difficulty.KillWeight*killRate +
		cfg.Difficulty.SurvivalWeight*survival +
		cfg.Difficulty.MultiplierWeight*mult
}

// AssessDifficulty nudges the level toward the skill-derived target. With
// adaptive difficulty off the level bundle is left untouched.
func AssessDifficulty(d *components.DifficultyData, in SkillInputs) float64 {
	if !d.Adaptive {
		return d.LastSkill
	}
	skill := SkillEstimate(in)
	target := d.Min + skill*(d.Max-d.Min)
	d.Level += (target - d.Level) * cfg.Difficulty.AdaptationRate
	d.Clamp()
	d.LastSkill = skill
	deriveDifficulty(d)
	return skill
}

func deriveDifficulty(d *components.DifficultyData) {
	d.EnemySpeed = d.Level * d.SpeedModifier
	d.EnemyHealth = d.Level * d.HealthModifier
	d.EnemySpawnRate = d.Level * d.SpawnRateModifier
	d.DurableChance = d.Level * cfg.Enemy.DurableFromLvl
}

// UpdateDifficulty runs the assessment on its cadence and eases the display.
func UpdateDifficulty(s *State) {
	d := &s.Difficulty

	if d.Adaptive && s.Now-d.LastAssessment >= cfg.Difficulty.AssessmentInterval {
		before := d.Level
		AssessDifficulty(d, SkillInputs{
			Kills:      d.KillsInWindow,
			Window:     s.Now - d.LastAssessment,
			Survival:   s.Now,
			Multiplier: s.Score.Multiplier,
		})
		d.KillsInWindow = 0
		d.LastAssessment = s.Now
		if d.Level != before {
			d.Display = gween.New(float32(d.DisplayLevel), float32(d.Level),
				float32(cfg.Difficulty.DisplayTween.Seconds()), ease.OutQuad)
		}
	}

	if d.Display != nil {
		v, done := d.Display.Update(float32(s.DT.Seconds()))
		d.DisplayLevel = float64(v)
		if done {
			d.Display = nil
			d.DisplayLevel = d.Level
		}
	}
}
