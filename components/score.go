package components

import "time"

// ScoreData tracks score, multiplier and kill streak.
type ScoreData struct {
	Score      int
	HighScore  int
	Multiplier float64
	KillStreak int
	LastKill   time.Duration
	Kills      int
	Hits       int
	Misses     int
}

// SpawnTimersData holds when each periodic spawner is next due.
type SpawnTimersData struct {
	NextAsteroid time.Duration
	NextWell     time.Duration
	NextWormhole time.Duration
	NextPowerUp  time.Duration
}
