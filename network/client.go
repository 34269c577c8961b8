package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
	"github.com/automoto/cosmic-survivor/shared/messages"
	"github.com/automoto/cosmic-survivor/shared/netcomponents"
	"github.com/automoto/cosmic-survivor/systems"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

var ErrNotConnected = errors.New("not connected")

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateJoined
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateJoined:
		return "joined"
	case StateError:
		return "error"
	default:
		return "disconnected"
	}
}

// Client relays the local ship to a peer-sync server and collects the
// other ships. All shared fields are protected by mu (router callbacks run
// on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	peerID    string
	conn      *websocket.Conn

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins
	outCh      chan messages.ShipUpdate // size-1 buffered; latest wins
	stop       chan struct{}

	peers   []systems.RemotePeer
	peersAt time.Time
	now     func() time.Time
}

var _ hooks.Publisher = (*Client)(nil)

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		peerID:     uuid.NewString(),
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		outCh:      make(chan messages.ShipUpdate, 1),
		now:        time.Now,
	}
}

// PeerID is the id this client announces itself with.
func (c *Client) PeerID() string {
	return c.peerID
}

// Connect dials the server in a background goroutine and announces the
// local ship once connected.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.stop = make(chan struct{})
	stop := c.stop
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			PeerID:     c.peerID,
			PlayerName: playerName,
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
			return
		}
		c.mu.Lock()
		c.state = StateJoined
		c.mu.Unlock()
		go c.writeLoop(stop)
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		c.offerSnapshot(snapshot)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// PublishShip queues the local ship for sending. It never blocks; an
// unsent update is replaced by the newer one.
func (c *Client) PublishShip(st hooks.ShipState) {
	msg := messages.ShipUpdate{
		X:         st.X,
		Y:         st.Y,
		Rotation:  st.Rotation,
		Health:    st.Health,
		MaxHealth: st.MaxHealth,
		ShipType:  st.ShipType,
		Score:     st.Score,
	}
	select { // drain stale, push latest
	case <-c.outCh:
	default:
	}
	select {
	case c.outCh <- msg:
	default:
	}
}

func (c *Client) writeLoop(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case msg := <-c.outCh:
			if err := c.SendMessage(msg); err != nil && !errors.Is(err, ErrNotConnected) {
				log.Printf("[client] ship update dropped: %v", err)
			}
		}
	}
}

// offerSnapshot queues snapshot for the game loop without ever blocking the
// router. When two callbacks race, one of them is dropped.
func (c *Client) offerSnapshot(snapshot esync.WorldSnapshot) {
	select { // drain stale, push latest
	case <-c.snapshotCh:
	default:
	}
	select {
	case c.snapshotCh <- snapshot:
	default:
	}
}

// LatestPeers returns the remote ships from the newest snapshot. Peers go
// stale when no snapshot has arrived for a while.
func (c *Client) LatestPeers() []systems.RemotePeer {
	select {
	case snap := <-c.snapshotCh:
		c.setPeers(decodePeers(snap, c.peerID))
	default:
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.peers == nil || c.now().Sub(c.peersAt) > cfg.Network.PeerStale {
		return nil
	}
	return append([]systems.RemotePeer(nil), c.peers...)
}

func (c *Client) setPeers(peers []systems.RemotePeer) {
	c.mu.Lock()
	c.peers = peers
	c.peersAt = c.now()
	c.mu.Unlock()
}

func decodePeers(snapshot esync.WorldSnapshot, self string) []systems.RemotePeer {
	peers := []systems.RemotePeer{}
	for _, ent := range snapshot {
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			if ship, ok := instance.(netcomponents.NetShipData); ok && ship.PeerID != self {
				peers = append(peers, peerFromShip(ship))
			}
		}
	}
	sort.Slice(peers, func(i, j int) bool { return peers[i].ID < peers[j].ID })
	return peers
}

func peerFromShip(ship netcomponents.NetShipData) systems.RemotePeer {
	return systems.RemotePeer{
		ID:        ship.PeerID,
		Name:      ship.Name,
		X:         ship.X,
		Y:         ship.Y,
		Rotation:  ship.Rotation,
		Health:    ship.Health,
		MaxHealth: ship.MaxHealth,
		ShipType:  ship.ShipType,
		Score:     ship.Score,
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
