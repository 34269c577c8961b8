package protocol

import (
	"github.com/automoto/cosmic-survivor/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetShip uint = 10
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetShip uint8 = 10
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	return esync.RegisterComponent(
		SyncIDNetShip,
		netcomponents.NetShipData{},
		netcomponents.NetShip,
		esync.WithInterpFn(InterpIDNetShip, netcomponents.LerpNetShip),
	)
}
