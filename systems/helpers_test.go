package systems

import (
	"testing"
	"time"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
	"github.com/automoto/cosmic-survivor/systems/factory"
	"github.com/yohamta/donburi"
)

const frame = time.Second / 60

type recorder struct {
	kills, durableKills int
	hits, misses        int
	points              []int
	portals, upgrades   int
	ticks               []int
	started, ended      []string
	ships               []hooks.ShipState
	effects             []hooks.EffectKind
}

func (r *recorder) OnKill(durable bool) {
	r.kills++
	if durable {
		r.durableKills++
	}
}
func (r *recorder) OnHit()                { r.hits++ }
func (r *recorder) OnMiss()               { r.misses++ }
func (r *recorder) OnScoreAdded(p int)    { r.points = append(r.points, p) }
func (r *recorder) OnPortalUse()          { r.portals++ }
func (r *recorder) OnShipUpgrade()        { r.upgrades++ }
func (r *recorder) OnEventStart(n string) { r.started = append(r.started, n) }
func (r *recorder) OnEventEnd(n string)   { r.ended = append(r.ended, n) }
func (r *recorder) OnCountdownTick(_ string, remaining int) {
	r.ticks = append(r.ticks, remaining)
}
func (r *recorder) PublishShip(st hooks.ShipState) { r.ships = append(r.ships, st) }
func (r *recorder) SpawnVisualEffect(kind hooks.EffectKind, _, _ float64, _ hooks.EffectOptions) {
	r.effects = append(r.effects, kind)
}
func (r *recorder) PlaySound(string, float64) {}

func (r *recorder) set() hooks.Set {
	return hooks.Set{Stats: r, Effects: r, Notify: r, Publish: r}
}

func newTestState(t *testing.T) (*State, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := NewState(cfg.DefaultSettings(), rec.set(), 1)
	s.DT = frame
	return s, rec
}

func placeEnemy(s *State, x, y, health float64, durable bool) *donburi.Entry {
	e := factory.CreateEnemy(s.World, s.Space, factory.EnemySpec{
		Position: components.Vector{X: x, Y: y},
		Radius:   cfg.Enemy.Radius,
		Speed:    cfg.Enemy.BaseSpeed,
		Health:   health,
		Durable:  durable,
	})
	s.Store.Enemies.Add(e)
	return e
}

func placeProjectile(s *State, x, y, damage float64) *donburi.Entry {
	ship := cfg.Ships[cfg.ShipDefault]
	e := factory.CreateProjectile(s.World, s.Space, components.Vector{X: x, Y: y}, 0, ship, cfg.ShipDefault, damage, false, s.Now)
	s.Store.Projectiles.Add(e)
	return e
}

// advance steps the clock in 100ms increments, running the scheduler and
// the event trigger poll the way a tick does.
func advance(s *State, d time.Duration) {
	end := s.Now + d
	for s.Now < end {
		s.Now += 100 * time.Millisecond
		s.Sched.RunDue(s, s.Now)
		UpdateEvents(s)
	}
}
