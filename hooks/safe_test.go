package hooks

import "testing"

type panickyStats struct{ calls int }

func (p *panickyStats) OnKill(bool)      { p.calls++; panic("boom") }
func (p *panickyStats) OnHit()           { p.calls++; panic("boom") }
func (p *panickyStats) OnMiss()          { p.calls++ }
func (p *panickyStats) OnScoreAdded(int) { p.calls++ }
func (p *panickyStats) OnPortalUse()     { p.calls++ }
func (p *panickyStats) OnShipUpgrade()   { p.calls++ }

type panickyEffects struct{}

func (panickyEffects) SpawnVisualEffect(EffectKind, float64, float64, EffectOptions) {
	panic("no canvas")
}
func (panickyEffects) PlaySound(string, float64) { panic("no audio") }

func TestSetSwallowsHookPanics(t *testing.T) {
	stats := &panickyStats{}
	s := Set{Stats: stats, Effects: panickyEffects{}}

	s.Kill(true)
	s.Hit()
	s.Miss()
	s.Effect(EffectExplosion, 1, 2, EffectOptions{})
	s.Sound("explosion", 1)

	if stats.calls != 3 {
		t.Fatalf("expected 3 stat calls, got %d", stats.calls)
	}
}

func TestNilMembersAreSkipped(t *testing.T) {
	var s Set
	s.Kill(false)
	s.ScoreAdded(100)
	s.EventStart("radiant")
	s.Ship(ShipState{})
}

func TestEffectClasses(t *testing.T) {
	if EffectExplosion.Class() == EffectHit.Class() {
		t.Fatalf("explosion and hit sparks should differ in class")
	}
}

type countingNotifier struct{ starts int }

func (c *countingNotifier) OnCountdownTick(string, int) {}
func (c *countingNotifier) OnEventStart(string)         { c.starts++ }
func (c *countingNotifier) OnEventEnd(string)           {}

type panickyNotifier struct{ Nop }

func (panickyNotifier) OnEventStart(string) { panic("banner") }

func TestNotifiersContinuePastPanic(t *testing.T) {
	after := &countingNotifier{}
	n := Notifiers{panickyNotifier{}, after}
	n.OnEventStart("radiant")
	if after.starts != 1 {
		t.Fatalf("receiver after a panic got %d starts, want 1", after.starts)
	}
}
