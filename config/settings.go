package config

import "strings"

// Settings are the session options read once at startup.
type Settings struct {
	Difficulty      string `json:"difficulty"`
	Adaptive        bool   `json:"adaptive"`
	PerformanceMode bool   `json:"performanceMode"`
	PerformanceTier int    `json:"performanceTier"`
	PlayerName      string `json:"playerName"`
	ServerAddress   string `json:"serverAddress,omitempty"`
}

// DefaultSettings returns the settings used when nothing is stored.
func DefaultSettings() Settings {
	return Settings{
		Difficulty: Difficulty.Fallback,
		Adaptive:   true,
		PlayerName: "Pilot",
	}
}

// Normalize repairs out-of-range values in place.
func (s *Settings) Normalize() {
	s.Difficulty = strings.ToLower(strings.TrimSpace(s.Difficulty))
	if _, ok := Difficulty.Presets[s.Difficulty]; !ok {
		s.Difficulty = Difficulty.Fallback
	}
	if s.PerformanceTier < 0 {
		s.PerformanceTier = 0
	}
	if s.PerformanceTier > 2 {
		s.PerformanceTier = 2
	}
	if s.PlayerName == "" {
		s.PlayerName = "Pilot"
	}
}

// QualityTier maps the performance options onto a RenderQualityTier.
func (s Settings) QualityTier() RenderQualityTier {
	if !s.PerformanceMode {
		return QualityFull
	}
	switch s.PerformanceTier {
	case 0:
		return QualityReduced
	case 1:
		return QualityMinimal
	default:
		return QualityDisabled
	}
}
