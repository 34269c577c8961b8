package systems

import (
	"math"
	"testing"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
)

func TestEnemySpawnChanceFormula(t *testing.T) {
	s, _ := newTestState(t)
	d := s.Difficulty
	want := (cfg.Enemy.BaseSpawnRate + d.Level*cfg.Enemy.SpawnRatePerLevel) * d.SpawnRateModifier
	if got := EnemySpawnChance(s); math.Abs(got-want) > 1e-12 {
		t.Fatalf("chance = %f, want %f", got, want)
	}

	s.Perf.Reduction = 2
	if got := EnemySpawnChance(s); math.Abs(got-want/2) > 1e-12 {
		t.Fatalf("chance under reduction = %f, want %f", got, want/2)
	}

	s.Events.SpawnModifier = cfg.Events.SecondarySpawnModifier
	if got := EnemySpawnChance(s); math.Abs(got-want/2*cfg.Events.SecondarySpawnModifier) > 1e-12 {
		t.Fatalf("chance with event modifier = %f", got)
	}
}

func TestPerTickMatchesNominalFrame(t *testing.T) {
	s, _ := newTestState(t)
	s.DT = frame
	if got := perTick(s, 0.05); math.Abs(got-0.05) > 1e-6 {
		t.Fatalf("per-tick chance at nominal rate = %f, want 0.05", got)
	}
	s.DT = 2 * frame
	if got := perTick(s, 0.05); math.Abs(got-(1-0.95*0.95)) > 1e-6 {
		t.Fatalf("per-tick chance over two frames = %f", got)
	}
	s.DT = 0
	if perTick(s, 0.5) != 0 {
		t.Fatalf("zero dt should never spawn")
	}
}

func TestDurableChanceCapped(t *testing.T) {
	s, _ := newTestState(t)
	s.Difficulty.DurableChance = 5
	if DurableChance(s) != 1 {
		t.Fatalf("durable chance should cap at 1")
	}
}

func TestPeriodicSpawnsSuppressed(t *testing.T) {
	s, _ := newTestState(t)
	if PeriodicSpawnsSuppressed(s) {
		t.Fatalf("fresh session should allow periodic spawns")
	}
	s.Events.Secondary.Phase = components.EventActive
	if !PeriodicSpawnsSuppressed(s) {
		t.Fatalf("active event should suppress periodic spawns")
	}
	s.Events.Secondary.Phase = components.EventEnded
	s.Perf.Lagging = true
	if !PeriodicSpawnsSuppressed(s) {
		t.Fatalf("lagging should suppress periodic spawns")
	}
}

func TestSuppressedSpawnerLeavesTimersAlone(t *testing.T) {
	s, _ := newTestState(t)
	s.Events.Primary.Phase = components.EventActive
	s.Now = s.Timers.NextPowerUp
	before := s.Timers

	UpdateSpawner(s)

	if s.Timers != before || s.Store.PowerUps.Len() != 0 {
		t.Fatalf("periodic spawners ran during an event")
	}
}

func TestDuePowerUpSpawns(t *testing.T) {
	s, _ := newTestState(t)
	s.Now = s.Timers.NextPowerUp

	UpdateSpawner(s)

	if s.Store.PowerUps.Len() != 1 {
		t.Fatalf("power-ups = %d, want 1", s.Store.PowerUps.Len())
	}
	if s.Timers.NextPowerUp < s.Now+cfg.PowerUp.MinInterval {
		t.Fatalf("power-up timer was not rescheduled")
	}
}

func TestEnemyStatsFreezeEventMultiplier(t *testing.T) {
	s, _ := newTestState(t)
	normal := EnemyStats(&s.Difficulty, &s.Events, true, cfg.DimensionNormal)

	s.Events.EnemyMultiplier = cfg.Events.SecondaryMultiplier
	lunar := EnemyStats(&s.Difficulty, &s.Events, true, cfg.DimensionNormal)

	if lunar.Health <= normal.Health {
		t.Fatalf("event multiplier should raise health: %f vs %f", lunar.Health, normal.Health)
	}
	if !normal.Durable || normal.Radius != cfg.Enemy.DurableRadius*cfg.Enemy.Dimensions[cfg.DimensionNormal].SizeMultiplier {
		t.Fatalf("durable enemy spec = %+v", normal)
	}

	void := EnemyStats(&s.Difficulty, &s.Events, false, cfg.DimensionVoid)
	plain := EnemyStats(&s.Difficulty, &s.Events, false, cfg.DimensionNormal)
	if void.HealthMultiplier != plain.HealthMultiplier*cfg.Enemy.Dimensions[cfg.DimensionVoid].HealthMultiplier {
		t.Fatalf("void health multiplier = %f", void.HealthMultiplier)
	}
}
