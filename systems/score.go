package systems

import (
	"math"
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
)

// ScoreMultiplier combines survival time and kill streak, clamped to the
// configured range.
func ScoreMultiplier(survival time.Duration, streak int) float64 {
	timeMult := math.Floor(float64(survival)/float64(cfg.Score.SurvivalStep))*cfg.Score.MultiplierPerStep + 1
	streakMult := math.Min(float64(streak)*cfg.Score.StreakBonus, cfg.Score.MaxStreakBonus)
	return clamp(timeMult+streakMult, cfg.Score.MinMultiplier, cfg.Score.MaxMultiplier)
}

// UpdateScore expires the kill streak and refreshes the multiplier.
func UpdateScore(s *State) {
	sc := &s.Score
	if sc.KillStreak > 0 && s.Now-sc.LastKill > cfg.Score.StreakTimeout {
		sc.KillStreak = 0
	}
	sc.Multiplier = ScoreMultiplier(s.Now, sc.KillStreak)
}

// awardKill credits a projectile kill and returns the points granted.
func awardKill(s *State, durable bool) int {
	sc := &s.Score
	sc.KillStreak++
	sc.LastKill = s.Now
	sc.Kills++
	s.Difficulty.KillsInWindow++
	sc.Multiplier = ScoreMultiplier(s.Now, sc.KillStreak)

	points := int(math.Floor(float64(cfg.Score.BasePoints) * sc.Multiplier))
	if durable {
		points *= cfg.Score.DurableMultiplier
	}
	awardPoints(s, points)
	return points
}

func awardPoints(s *State, points int) {
	if points <= 0 {
		return
	}
	s.Score.Score += points
	if s.Score.Score > s.Score.HighScore {
		s.Score.HighScore = s.Score.Score
	}
	s.Hooks.ScoreAdded(points)
}
