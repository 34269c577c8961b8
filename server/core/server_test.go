package core

import (
	"testing"
	"time"

	"github.com/automoto/cosmic-survivor/shared/netcomponents"
	"github.com/leap-fish/necs/router"
)

func TestCommandsRunInOrderOnProcess(t *testing.T) {
	s := NewServer(20, "test", "")

	var order []int
	for i := 0; i < 3; i++ {
		s.enqueue(func() { order = append(order, i) })
	}
	if len(order) != 0 {
		t.Fatalf("commands ran before processing")
	}

	s.ProcessCommands()
	if len(order) != 3 || order[0] != 0 || order[2] != 2 {
		t.Fatalf("order = %v", order)
	}
	if s.PlayerCount() != 0 {
		t.Fatalf("no ships should be joined")
	}
}

func TestLoopDefaultsTickRate(t *testing.T) {
	if g := NewGameLoop(nil, 0); g.tickRate != 20 {
		t.Fatalf("tick rate = %d, want 20", g.tickRate)
	}
}

func TestEvictIdleRemovesSilentShips(t *testing.T) {
	s := NewServer(20, "test", "")
	clock := time.Unix(1000, 0)
	s.now = func() time.Time { return clock }

	quiet := s.world.Create(netcomponents.NetShip)
	chatty := s.world.Create(netcomponents.NetShip)
	s.clientEntities[&router.NetworkClient{}] = quiet
	s.clientEntities[&router.NetworkClient{}] = chatty
	s.lastSeen[quiet] = clock.Add(-11 * time.Second)
	s.lastSeen[chatty] = clock.Add(-time.Second)

	if n := s.EvictIdle(10 * time.Second); n != 1 {
		t.Fatalf("evicted %d ships, want 1", n)
	}
	if s.world.Valid(quiet) {
		t.Errorf("idle ship still in the world")
	}
	if !s.world.Valid(chatty) {
		t.Errorf("active ship was evicted")
	}
	if s.PlayerCount() != 1 {
		t.Errorf("PlayerCount = %d, want 1", s.PlayerCount())
	}
}
