package components

import (
	"testing"
	"time"
)

func TestHealthClampsAtZero(t *testing.T) {
	h := HealthData{Current: 1, Max: 3}
	if !h.Damage(5) || h.Current != 0 {
		t.Fatalf("health = %f, want 0 and dead", h.Current)
	}
}

func TestTakeDamage(t *testing.T) {
	p := PlayerData{Health: HealthData{Current: 2, Max: 3}}

	if got := p.TakeDamage(0, 1); got != DamageTaken || p.Health.Current != 1 {
		t.Fatalf("first hit = %s, health %f", got, p.Health.Current)
	}

	p.Shield = TimedEffect{Active: true, EndTime: 10 * time.Second}
	if got := p.TakeDamage(5*time.Second, 1); got != DamageAbsorbed || p.Health.Current != 1 {
		t.Fatalf("shielded hit = %s, health %f", got, p.Health.Current)
	}

	if got := p.TakeDamage(10*time.Second, 1); got != DamageFatal || !p.GameOver {
		t.Fatalf("final hit = %s, game over %v", got, p.GameOver)
	}
}

func TestEffectsExpire(t *testing.T) {
	p := PlayerData{
		SpeedUp:   TimedEffect{Active: true, EndTime: time.Second, Multiplier: 1.5},
		RapidFire: TimedEffect{Active: true, EndTime: 3 * time.Second, Multiplier: 0.5},
	}
	if p.SpeedMultiplier(0) != 1.5 || p.ShootDelayMultiplier(0) != 0.5 {
		t.Fatalf("live effects not applied")
	}

	p.ExpireEffects(2 * time.Second)
	if p.SpeedUp.Active || !p.RapidFire.Active {
		t.Fatalf("only the elapsed effect should expire")
	}
	if p.SpeedMultiplier(2*time.Second) != 1 || p.DamageMultiplier(2*time.Second) != 1 {
		t.Fatalf("expired effects still apply")
	}
}

func TestOverlapsIsStrict(t *testing.T) {
	a := MotionData{Position: Vector{X: 0, Y: 0}, Radius: 5}
	b := MotionData{Position: Vector{X: 10, Y: 0}, Radius: 5}
	if a.Overlaps(&b) {
		t.Fatalf("touching circles should not overlap")
	}
	b.Position.X = 9.9
	if !a.Overlaps(&b) {
		t.Fatalf("intersecting circles should overlap")
	}
}

func TestEventChainQueries(t *testing.T) {
	var ev EventChainData
	if ev.AnyRunning() {
		t.Fatalf("idle chain should not be running")
	}
	ev.Machine(EventSecondary).Phase = EventCountdown
	if !ev.AnyRunning() || ev.AnyActive() {
		t.Fatalf("countdown is running but not active")
	}
}

func TestDifficultyLabelMarksAdaptive(t *testing.T) {
	d := DifficultyData{DisplayLevel: 0.5, Adaptive: true}
	if got := d.Label(); got != "Hard (Adaptive)" {
		t.Fatalf("label = %q", got)
	}
}
