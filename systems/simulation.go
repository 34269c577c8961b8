package systems

import (
	"fmt"
	"log"
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
)

type system struct {
	name   string
	update func(*State)
}

// Simulation drives the ordered systems once per tick.
type Simulation struct {
	State   *State
	systems []system
	Faults  int
}

// NewSimulation builds a session and registers the systems in tick order.
func NewSimulation(settings cfg.Settings, h hooks.Set, seed uint64) *Simulation {
	sim := &Simulation{State: NewState(settings, h, seed)}

	sim.AddSystem("player", UpdatePlayer)
	sim.AddSystem("events", UpdateEvents)
	sim.AddSystem("difficulty", UpdateDifficulty)
	sim.AddSystem("performance", UpdatePerformance)
	sim.AddSystem("enemies", UpdateEnemies)
	sim.AddSystem("projectiles", UpdateProjectiles)
	sim.AddSystem("powerups", UpdatePowerUps)
	sim.AddSystem("environment", UpdateEnvironment)
	sim.AddSystem("spawner", UpdateSpawner)
	sim.AddSystem("collision", ResolveCollisions)
	sim.AddSystem("score", UpdateScore)
	sim.AddSystem("compact", compactStore)
	sim.AddSystem("publish", PublishShip)

	return sim
}

// AddSystem appends a system to the end of the tick.
func (sim *Simulation) AddSystem(name string, update func(*State)) {
	sim.systems = append(sim.systems, system{name: name, update: update})
}

// Tick advances the simulation by dt. A fault anywhere in the tick resets
// the playfield and is returned; the next tick runs normally.
func (sim *Simulation) Tick(dt time.Duration, in FrameInput) (err error) {
	s := sim.State
	current := "clock"
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tick %d in %s: %v", s.Tick, current, r)
			log.Printf("[sim] %v; resetting playfield", err)
			sim.Faults++
			s.Reset()
		}
	}()

	if dt <= 0 {
		return nil
	}
	if dt > cfg.C.MaxFrameDT {
		dt = cfg.C.MaxFrameDT
	}
	s.Input = in
	s.DT = dt
	s.Now += dt
	s.Tick++

	if s.GameOver() {
		return nil
	}

	current = "scheduler"
	s.Sched.RunDue(s, s.Now)

	for _, sys := range sim.systems {
		current = sys.name
		sys.update(s)
		if s.GameOver() {
			break
		}
	}
	return nil
}

func compactStore(s *State) {
	s.Store.Compact(s.World, s.Space)
}

// PublishShip hands the local ship to the network publisher every few ticks.
func PublishShip(s *State) {
	if s.Hooks.Publish == nil || cfg.Network.PublishEvery <= 0 || s.Tick%uint64(cfg.Network.PublishEvery) != 0 {
		return
	}
	s.Hooks.Ship(LocalShip(s))
}

// LocalShip is the outbound view of the player for network sync.
func LocalShip(s *State) hooks.ShipState {
	p := s.Player()
	m := s.PlayerMotion()
	return hooks.ShipState{
		X:         m.Position.X,
		Y:         m.Position.Y,
		Rotation:  m.Rotation,
		Health:    p.Health.Current,
		MaxHealth: p.Health.Max,
		ShipType:  p.ShipType,
		Score:     s.Score.Score,
	}
}

// SetRemotePeers replaces the remote ships drawn alongside the local one.
func SetRemotePeers(s *State, peers []RemotePeer) {
	s.Peers = append(s.Peers[:0], peers...)
}
