package config

import "testing"

func TestResolvePresetFallsBack(t *testing.T) {
	cases := map[string]string{
		"hard":     "hard",
		" Easy ":   "easy",
		"":         Difficulty.Fallback,
		"ultra":    Difficulty.Fallback,
		"MEDIUM\n": "medium",
	}
	for in, want := range cases {
		if got := ResolvePreset(in).Name; got != want {
			t.Errorf("ResolvePreset(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMalformedPresetFallsBack(t *testing.T) {
	Difficulty.Presets["broken"] = DifficultyPreset{Name: "broken", Level: 2, Min: 0, Max: 1, SpeedModifier: 1, HealthModifier: 1, SpawnRateModifier: 1}
	defer delete(Difficulty.Presets, "broken")

	if got := ResolvePreset("broken").Name; got != Difficulty.Fallback {
		t.Fatalf("malformed preset resolved to %q", got)
	}
}

func TestPresetsAreWellFormed(t *testing.T) {
	for name, p := range Difficulty.Presets {
		if !p.valid() {
			t.Errorf("preset %s is malformed: %+v", name, p)
		}
	}
}

func TestDifficultyLabel(t *testing.T) {
	cases := []struct {
		level float64
		want  string
	}{
		{0.1, "Easy"},
		{0.3, "Medium"},
		{0.5, "Hard"},
		{0.7, "Expert"},
		{0.95, "Insane"},
	}
	for _, c := range cases {
		if got := DifficultyLabel(c.level); got != c.want {
			t.Errorf("DifficultyLabel(%v) = %q, want %q", c.level, got, c.want)
		}
	}
}

func TestSettingsNormalize(t *testing.T) {
	s := Settings{Difficulty: " Hard ", PerformanceTier: 9}
	s.Normalize()
	if s.Difficulty != "hard" || s.PerformanceTier != 2 || s.PlayerName == "" {
		t.Fatalf("normalized settings = %+v", s)
	}

	s = Settings{Difficulty: "bogus", PerformanceTier: -1}
	s.Normalize()
	if s.Difficulty != Difficulty.Fallback || s.PerformanceTier != 0 {
		t.Fatalf("normalized settings = %+v", s)
	}
}

func TestQualityTier(t *testing.T) {
	if got := (Settings{}).QualityTier(); got != QualityFull {
		t.Fatalf("performance mode off = %s, want full", got)
	}
	want := []RenderQualityTier{QualityReduced, QualityMinimal, QualityDisabled}
	for tier, w := range want {
		if got := (Settings{PerformanceMode: true, PerformanceTier: tier}).QualityTier(); got != w {
			t.Errorf("tier %d = %s, want %s", tier, got, w)
		}
	}
}

func TestQualityAllows(t *testing.T) {
	if !QualityReduced.Allows(EffectDecorative) {
		t.Errorf("reduced tier should allow decoration")
	}
	if QualityMinimal.Allows(EffectDecorative) || !QualityMinimal.Allows(EffectEssential) {
		t.Errorf("minimal tier should allow only essential effects")
	}
	if QualityDisabled.Allows(EffectEssential) {
		t.Errorf("disabled tier should allow nothing")
	}
	if QualityDisabled.Preset().AllowEnvironment {
		t.Errorf("disabled tier should not spawn environment")
	}
}

func TestUpgradePaths(t *testing.T) {
	if !CanUpgrade(ShipDefault, ShipSniper) || CanUpgrade(ShipSniper, ShipHeavy) {
		t.Fatalf("unexpected upgrade tree")
	}
	for from, targets := range UpgradePaths {
		for _, to := range targets {
			if _, ok := Ships[to]; !ok {
				t.Errorf("%s upgrades into unknown ship %s", from, to)
			}
		}
	}
}
