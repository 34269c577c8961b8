package core

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/cosmic-survivor/shared/messages"
	"github.com/automoto/cosmic-survivor/shared/netcomponents"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server relays every player's ship to every other player. It runs no
// gameplay: each client simulates its own session.
type Server struct {
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport
	name      string
	version   string

	// Track which network client owns which entity
	clientEntities map[*router.NetworkClient]donburi.Entity
	lastSeen       map[donburi.Entity]time.Time
	mu             sync.RWMutex
	now            func() time.Time

	// Router callbacks queue world changes here; the loop applies them.
	commands chan func()
}

// NewServer creates a new relay server
func NewServer(tickRate int, name, version string) *Server {
	world := donburi.NewWorld()

	s := &Server{
		world:          world,
		name:           name,
		version:        version,
		clientEntities: make(map[*router.NetworkClient]donburi.Entity),
		lastSeen:       make(map[donburi.Entity]time.Time),
		commands:       make(chan func(), 256),
		now:            time.Now,
	}
	s.loop = NewGameLoop(s, tickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	// Register router callbacks
	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("Client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.enqueue(func() { s.onDisconnect(client, err) })
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.enqueue(func() { s.onJoin(client, req) })
	})

	router.On(func(client *router.NetworkClient, update messages.ShipUpdate) {
		s.enqueue(func() { s.onShipUpdate(client, update) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) enqueue(cmd func()) {
	select {
	case s.commands <- cmd:
	default:
		log.Printf("Command queue full, dropping update")
	}
}

// ProcessCommands applies queued router events on the loop goroutine.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.commands:
			cmd()
		default:
			return
		}
	}
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	if s.version != "" && req.Version != s.version {
		log.Printf("Rejecting %s: version %q, want %q", client.Id(), req.Version, s.version)
		if err := client.SendMessage(messages.JoinRejected{Reason: "version mismatch"}); err != nil {
			log.Printf("Failed to send rejection: %v", err)
		}
		return
	}

	s.mu.RLock()
	_, joined := s.clientEntities[client]
	s.mu.RUnlock()
	if joined {
		return
	}

	entity := s.world.Create(netcomponents.NetShip)
	entry := s.world.Entry(entity)
	netcomponents.NetShip.SetValue(entry, netcomponents.NetShipData{
		PeerID: req.PeerID,
		Name:   req.PlayerName,
	})

	// Mark entity for network sync with interpolation for the ship body
	if err := srvsync.NetworkSync(s.world, &entity, srvsync.WithInterp(netcomponents.NetShip)); err != nil {
		log.Printf("Failed to setup network sync for ship: %v", err)
		s.world.Remove(entity)
		return
	}

	s.mu.Lock()
	s.clientEntities[client] = entity
	s.lastSeen[entity] = s.now()
	s.mu.Unlock()

	log.Printf("Ship joined for client %s (%s)", client.Id(), req.PlayerName)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	s.mu.Lock()
	entity, exists := s.clientEntities[client]
	if exists {
		delete(s.clientEntities, client)
		delete(s.lastSeen, entity)
	}
	s.mu.Unlock()

	if exists && s.world.Valid(entity) {
		s.world.Remove(entity)
		log.Printf("Ship removed for client %s", client.Id())
	}
}

func (s *Server) onShipUpdate(client *router.NetworkClient, update messages.ShipUpdate) {
	s.mu.RLock()
	entity, exists := s.clientEntities[client]
	s.mu.RUnlock()

	if !exists || !s.world.Valid(entity) {
		return
	}

	s.mu.Lock()
	s.lastSeen[entity] = s.now()
	s.mu.Unlock()

	ship := netcomponents.NetShip.Get(s.world.Entry(entity))
	ship.X = update.X
	ship.Y = update.Y
	ship.Rotation = update.Rotation
	ship.Health = update.Health
	ship.MaxHealth = update.MaxHealth
	ship.ShipType = update.ShipType
	ship.Score = update.Score
}

// EvictIdle removes ships that have not sent an update within timeout. The
// owning client stays connected and must rejoin to be relayed again.
func (s *Server) EvictIdle(timeout time.Duration) int {
	now := s.now()

	s.mu.Lock()
	var idle []donburi.Entity
	for client, entity := range s.clientEntities {
		if now.Sub(s.lastSeen[entity]) < timeout {
			continue
		}
		delete(s.clientEntities, client)
		delete(s.lastSeen, entity)
		idle = append(idle, entity)
	}
	s.mu.Unlock()

	for _, entity := range idle {
		if s.world.Valid(entity) {
			s.world.Remove(entity)
		}
	}
	if len(idle) > 0 {
		log.Printf("Evicted %d idle ships", len(idle))
	}
	return len(idle)
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of joined players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clientEntities)
}
