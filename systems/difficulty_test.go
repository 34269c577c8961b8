package systems

import (
	"testing"
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
)

var strongPlay = SkillInputs{Kills: 100, Window: 10 * time.Second, Survival: 10 * time.Minute, Multiplier: 4}

func TestNonAdaptiveLevelNeverMoves(t *testing.T) {
	d := newDifficulty(cfg.Settings{Difficulty: "hard", Adaptive: false})
	want := cfg.Difficulty.Presets["hard"].Level

	for i := 0; i < 500; i++ {
		AssessDifficulty(&d, strongPlay)
		AssessDifficulty(&d, SkillInputs{})
	}
	if d.Level != want {
		t.Fatalf("level = %f, want %f", d.Level, want)
	}
}

func TestAdaptiveLevelStaysInsidePresetBounds(t *testing.T) {
	for name, p := range cfg.Difficulty.Presets {
		d := newDifficulty(cfg.Settings{Difficulty: name, Adaptive: true})

		for i := 0; i < 1000; i++ {
			AssessDifficulty(&d, strongPlay)
			if d.Level < p.Min || d.Level > p.Max {
				t.Fatalf("%s: level %f left [%f, %f]", name, d.Level, p.Min, p.Max)
			}
		}
		if d.Level < p.Max-0.01 {
			t.Fatalf("%s: strong play should push level toward max, got %f", name, d.Level)
		}

		for i := 0; i < 1000; i++ {
			AssessDifficulty(&d, SkillInputs{Multiplier: 1})
			if d.Level < p.Min || d.Level > p.Max {
				t.Fatalf("%s: level %f left [%f, %f]", name, d.Level, p.Min, p.Max)
			}
		}
		if d.Level > p.Min+0.01 {
			t.Fatalf("%s: idle play should pull level toward min, got %f", name, d.Level)
		}
	}
}

func TestSkillEstimateIsNormalized(t *testing.T) {
	if got := SkillEstimate(SkillInputs{Multiplier: 1}); got != 0 {
		t.Fatalf("skill with no input = %f, want 0", got)
	}
	if got := SkillEstimate(strongPlay); got < 0.999 || got > 1.0001 {
		t.Fatalf("skill with capped input = %f, want 1", got)
	}
}

func TestUnknownPresetFallsBack(t *testing.T) {
	d := newDifficulty(cfg.Settings{Difficulty: "nightmare"})
	if d.Preset.Name != cfg.Difficulty.Fallback {
		t.Fatalf("preset = %q, want %q", d.Preset.Name, cfg.Difficulty.Fallback)
	}
}

func TestUpdateDifficultyRunsOnCadence(t *testing.T) {
	s, _ := newTestState(t)
	s.Difficulty.KillsInWindow = 50
	s.Score.Multiplier = 4

	s.Now = cfg.Difficulty.AssessmentInterval - frame
	UpdateDifficulty(s)
	if s.Difficulty.KillsInWindow != 50 {
		t.Fatalf("assessment ran before its interval")
	}

	before := s.Difficulty.Level
	s.Now = cfg.Difficulty.AssessmentInterval
	UpdateDifficulty(s)
	if s.Difficulty.KillsInWindow != 0 || s.Difficulty.LastAssessment != s.Now {
		t.Fatalf("assessment did not reset its window")
	}
	if s.Difficulty.Level <= before {
		t.Fatalf("level did not rise: %f -> %f", before, s.Difficulty.Level)
	}
	if s.Difficulty.Display == nil {
		t.Fatalf("level change should start the display tween")
	}

	for i := 0; i < 120; i++ {
		UpdateDifficulty(s)
	}
	if s.Difficulty.DisplayLevel != s.Difficulty.Level {
		t.Fatalf("display %f did not settle on level %f", s.Difficulty.DisplayLevel, s.Difficulty.Level)
	}
}
