package config

// RenderQualityTier is decided once per session and gates every effect
// emission site.
type RenderQualityTier int

const (
	QualityFull     RenderQualityTier = iota // performance mode off
	QualityReduced                           // tier 0
	QualityMinimal                           // tier 1
	QualityDisabled                          // tier 2: no decorative visuals, no environment
)

// EffectClass separates gameplay-relevant feedback from decoration.
type EffectClass int

const (
	EffectEssential EffectClass = iota
	EffectDecorative
)

func (t RenderQualityTier) String() string {
	switch t {
	case QualityReduced:
		return "reduced"
	case QualityMinimal:
		return "minimal"
	case QualityDisabled:
		return "disabled"
	default:
		return "full"
	}
}

// Allows reports whether an effect of the given class should be emitted.
func (t RenderQualityTier) Allows(class EffectClass) bool {
	switch t {
	case QualityFull, QualityReduced:
		return true
	case QualityMinimal:
		return class == EffectEssential
	default:
		return false
	}
}

// Preset returns the governor preset for the tier.
func (t RenderQualityTier) Preset() TierPreset {
	if p, ok := Perf.TierPresets[t]; ok {
		return p
	}
	return Perf.TierPresets[QualityFull]
}

// ParticleBudget is the number of background particles the renderer may keep.
func (t RenderQualityTier) ParticleBudget() int {
	return Perf.ParticleBudgetByTier[t]
}

// PerformanceMode reports whether the tier derates spawning.
func (t RenderQualityTier) PerformanceMode() bool {
	return t != QualityFull
}
