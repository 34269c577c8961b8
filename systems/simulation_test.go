package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/yohamta/donburi"
)

func newTestSimulation(t *testing.T) (*Simulation, *recorder) {
	t.Helper()
	rec := &recorder{}
	return NewSimulation(cfg.DefaultSettings(), rec.set(), 7), rec
}

func TestTickAdvancesClock(t *testing.T) {
	sim, _ := newTestSimulation(t)

	for i := 0; i < 10; i++ {
		if err := sim.Tick(frame, FrameInput{}); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if sim.State.Tick != 10 || sim.State.Now != 10*frame {
		t.Fatalf("tick=%d now=%s", sim.State.Tick, sim.State.Now)
	}
}

func TestTickClampsLongFrames(t *testing.T) {
	sim, _ := newTestSimulation(t)
	if err := sim.Tick(10*time.Second, FrameInput{}); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if sim.State.DT != cfg.C.MaxFrameDT {
		t.Fatalf("dt = %s, want %s", sim.State.DT, cfg.C.MaxFrameDT)
	}
}

func TestTickFaultResetsPlayfield(t *testing.T) {
	sim, _ := newTestSimulation(t)
	s := sim.State
	s.Score.Score = 4200
	s.Score.HighScore = 4200
	s.Difficulty.Level = 0.5
	placeEnemy(s, 100, 100, 1, false)
	placeProjectile(s, 200, 200, 1)

	sim.AddSystem("faulty", func(*State) { panic("boom") })
	if err := sim.Tick(frame, FrameInput{}); err == nil {
		t.Fatalf("expected the fault to be returned")
	}

	if sim.Faults != 1 {
		t.Fatalf("faults = %d, want 1", sim.Faults)
	}
	if s.Store.Enemies.Len() != 0 || s.Store.Projectiles.Len() != 0 {
		t.Fatalf("playfield should be cleared")
	}
	if s.Score.Score != 4200 || s.Difficulty.Level != 0.5 {
		t.Fatalf("reset lost progress: score=%d level=%f", s.Score.Score, s.Difficulty.Level)
	}
	if s.GameOver() {
		t.Fatalf("reset should leave the player alive")
	}
}

func TestFaultyEntityIsDropped(t *testing.T) {
	s, _ := newTestState(t)
	bad := placeEnemy(s, 100, 100, 1, false)
	good := placeEnemy(s, 100, 500, 1, false)
	components.Motion.Get(bad).Position.X = math.NaN()
	start := components.Motion.Get(good).Position

	UpdateEnemies(s)

	if !s.Store.Enemies.Removed(0) || !components.Enemy.Get(bad).Dead {
		t.Fatalf("faulty enemy should be dropped")
	}
	if s.Store.Enemies.Removed(1) || components.Motion.Get(good).Position == start {
		t.Fatalf("healthy enemy should keep updating")
	}
}

func TestPanickingEntityIsDropped(t *testing.T) {
	s, _ := newTestState(t)
	placeEnemy(s, 100, 100, 1, false)
	placeEnemy(s, 200, 100, 1, false)

	visited := 0
	updateEach(s, s.Store.Enemies, func(i int, _ *donburi.Entry) error {
		visited++
		if i == 0 {
			panic("bad entity")
		}
		return nil
	})
	if visited != 2 || !s.Store.Enemies.Removed(0) || s.Store.Enemies.Removed(1) {
		t.Fatalf("panic should drop only the faulty entity")
	}
}

func TestShipPublishedOnCadence(t *testing.T) {
	sim, rec := newTestSimulation(t)
	for i := 0; i < cfg.Network.PublishEvery*3; i++ {
		if err := sim.Tick(frame, FrameInput{}); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	if len(rec.ships) != 3 {
		t.Fatalf("published %d times, want 3", len(rec.ships))
	}
	if rec.ships[0].ShipType != cfg.ShipDefault || rec.ships[0].MaxHealth != cfg.Player.MaxHealth {
		t.Fatalf("ship state = %+v", rec.ships[0])
	}
}

func TestGameOverFreezesGameplay(t *testing.T) {
	sim, _ := newTestSimulation(t)
	s := sim.State
	s.Player().GameOver = true
	e := placeEnemy(s, 100, 100, 1, false)
	start := components.Motion.Get(e).Position

	if err := sim.Tick(frame, FrameInput{}); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if components.Motion.Get(e).Position != start {
		t.Fatalf("enemies moved after game over")
	}
}

func TestSnapshotCopiesState(t *testing.T) {
	s, _ := newTestState(t)
	placeEnemy(s, 100, 100, 3, true)
	placeProjectile(s, 200, 200, 1)
	SetRemotePeers(s, []RemotePeer{{ID: "p2", Name: "Wing"}})

	snap := TakeSnapshot(s)

	if len(snap.Enemies) != 1 || !snap.Enemies[0].Durable || snap.Enemies[0].MaxHealth != 3 {
		t.Fatalf("enemies = %+v", snap.Enemies)
	}
	if len(snap.Projectiles) != 1 || len(snap.Peers) != 1 {
		t.Fatalf("snapshot missing entities")
	}
	if snap.Player.MaxHealth != cfg.Player.MaxHealth || snap.Quality != cfg.QualityFull {
		t.Fatalf("player view = %+v", snap.Player)
	}

	s.Peers[0].Name = "changed"
	if snap.Peers[0].Name != "Wing" {
		t.Fatalf("snapshot shares peer storage with state")
	}
}
