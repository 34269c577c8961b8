package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

const (
	// statusEvery is how many ticks pass between player count log lines.
	statusEvery = 600
	idleTimeout = 10 * time.Second
)

type GameLoop struct {
	server   *Server
	tickRate int
	ticks    uint64
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 20
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Relay loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Relay loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.server.ProcessCommands()

	if err := srvsync.DoSync(); err != nil {
		log.Printf("Sync error: %v", err)
	}

	g.ticks++
	if g.ticks%uint64(g.tickRate) == 0 {
		g.server.EvictIdle(idleTimeout)
	}
	if g.ticks%statusEvery == 0 {
		log.Printf("%s: %d ships connected", g.server.name, g.server.PlayerCount())
	}
}
