package netcomponents

import "github.com/yohamta/donburi"

// NetShipData is one player's ship as relayed to every peer.
type NetShipData struct {
	PeerID    string
	Name      string
	X, Y      float64
	Rotation  float64
	Health    float64
	MaxHealth float64
	ShipType  string
	Score     int
}

var NetShip = donburi.NewComponentType[NetShipData]()

// LerpNetShip interpolates position and facing. Discrete fields take the
// newer value.
func LerpNetShip(from, to NetShipData, t float64) *NetShipData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	out.Rotation = from.Rotation + (to.Rotation-from.Rotation)*t
	return &out
}
