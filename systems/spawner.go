package systems

import (
	"math"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/systems/factory"
)

// performanceModifier is the combined derating from the governor and the
// session's performance mode.
func performanceModifier(s *State) float64 {
	mod := 1.0
	if s.Perf.Reduction > 0 {
		mod = 1 / s.Perf.Reduction
	}
	if s.Quality.PerformanceMode() {
		mod *= cfg.Enemy.PerformanceDerating
	}
	return mod
}

// EnemySpawnChance is the per-frame probability of an enemy spawn at the
// nominal tick rate.
func EnemySpawnChance(s *State) float64 {
	d := &s.Difficulty
	base := (cfg.Enemy.BaseSpawnRate + d.Level*cfg.Enemy.SpawnRatePerLevel) * d.SpawnRateModifier
	return base * s.Events.SpawnModifier * performanceModifier(s)
}

// DurableChance is the probability that a spawned enemy is durable.
func DurableChance(s *State) float64 {
	return math.Min(s.Difficulty.DurableChance*performanceModifier(s), 1)
}

// perTick converts a per-nominal-frame probability to the current tick length.
func perTick(s *State, p float64) float64 {
	frames := s.DT.Seconds() * float64(cfg.C.TPS)
	if frames <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return 1 - math.Pow(1-p, frames)
}

// EnemyDimension picks the dimension tag for a new enemy.
func EnemyDimension(ev *components.EventChainData) cfg.Dimension {
	switch {
	case ev.Secondary.Phase == components.EventActive:
		return cfg.DimensionLunar
	case ev.Primary.Phase == components.EventActive:
		return cfg.DimensionRadiant
	default:
		return ev.Dimension
	}
}

// EnemyStats freezes an enemy's size, speed and health at spawn.
func EnemyStats(d *components.DifficultyData, ev *components.EventChainData, durable bool, dim cfg.Dimension) factory.EnemySpec {
	dc := cfg.Enemy.Dimensions[dim]

	radius, health := cfg.Enemy.Radius, cfg.Enemy.BaseHealth
	if durable {
		radius, health = cfg.Enemy.DurableRadius, cfg.Enemy.DurableHealth
	}
	radius *= dc.SizeMultiplier

	speedMult := cfg.Enemy.SpeedFloor + d.EnemySpeed*cfg.Enemy.SpeedScale*d.SpeedModifier
	healthMult := dc.HealthMultiplier * (1 + d.EnemyHealth*d.HealthModifier) * ev.EnemyMultiplier

	return factory.EnemySpec{
		Radius:           radius,
		Speed:            cfg.Enemy.BaseSpeed * dc.SpeedMultiplier * speedMult,
		Health:           math.Ceil(health * healthMult),
		Durable:          durable,
		Dimension:        dim,
		HealthMultiplier: healthMult,
		SpeedMultiplier:  speedMult,
	}
}

// edgePosition picks a point just outside a random playfield edge.
func edgePosition(s *State, offset float64) components.Vector {
	switch s.Rand.IntN(4) {
	case 0:
		return components.Vector{X: s.Rand.Float64() * s.Width, Y: -offset}
	case 1:
		return components.Vector{X: s.Width + offset, Y: s.Rand.Float64() * s.Height}
	case 2:
		return components.Vector{X: s.Rand.Float64() * s.Width, Y: s.Height + offset}
	default:
		return components.Vector{X: -offset, Y: s.Rand.Float64() * s.Height}
	}
}

func interiorPosition(s *State, padding float64) components.Vector {
	return components.Vector{
		X: s.randRange(padding, s.Width-padding),
		Y: s.randRange(padding, s.Height-padding),
	}
}

func spawnEnemy(s *State) {
	durable := s.Rand.Float64() < DurableChance(s)
	spec := EnemyStats(&s.Difficulty, &s.Events, durable, EnemyDimension(&s.Events))
	spec.Position = edgePosition(s, spec.Radius+cfg.Enemy.SpawnOffset)
	s.Store.Enemies.Add(factory.CreateEnemy(s.World, s.Space, spec))
}

func rollSpawnTimers(s *State) components.SpawnTimersData {
	env := cfg.Environment
	return components.SpawnTimersData{
		NextAsteroid: s.Now + s.randDuration(env.AsteroidMinInterval, env.AsteroidMaxInterval),
		NextWell:     s.Now + s.randDuration(env.WellMinInterval, env.WellMaxInterval),
		NextWormhole: s.Now + s.randDuration(env.WormholeMinInterval, env.WormholeMaxInterval),
		NextPowerUp:  s.Now + s.randDuration(cfg.PowerUp.MinInterval, cfg.PowerUp.MaxInterval),
	}
}

// PeriodicSpawnsSuppressed reports whether the timed spawners are paused.
func PeriodicSpawnsSuppressed(s *State) bool {
	return s.Events.AnyActive() || s.Perf.Lagging
}

// UpdateSpawner rolls for an enemy and fires any due periodic spawner.
func UpdateSpawner(s *State) {
	if s.Rand.Float64() < perTick(s, EnemySpawnChance(s)) {
		spawnEnemy(s)
	}

	if PeriodicSpawnsSuppressed(s) {
		return
	}

	env := cfg.Environment
	t := &s.Timers
	if s.Now >= t.NextPowerUp {
		spawnPowerUp(s, randomPowerUpKind(s, false), interiorPosition(s, env.SpawnPadding))
		t.NextPowerUp = s.Now + s.randDuration(cfg.PowerUp.MinInterval, cfg.PowerUp.MaxInterval)
	}

	if !s.Quality.Preset().AllowEnvironment {
		return
	}
	if s.Now >= t.NextAsteroid {
		spawnAsteroid(s)
		t.NextAsteroid = s.Now + s.randDuration(env.AsteroidMinInterval, env.AsteroidMaxInterval)
	}
	if s.Now >= t.NextWell {
		spawnGravityWell(s)
		t.NextWell = s.Now + s.randDuration(env.WellMinInterval, env.WellMaxInterval)
	}
	if s.Now >= t.NextWormhole {
		spawnWormhole(s)
		t.NextWormhole = s.Now + s.randDuration(env.WormholeMinInterval, env.WormholeMaxInterval)
	}
}
