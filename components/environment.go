package components

import (
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/yohamta/donburi"
)

// AsteroidData holds the asteroid variant fields.
type AsteroidData struct {
	Size     float64
	Fragment bool
	Spin     float64
}

// GravityWellData holds the gravity well variant fields.
type GravityWellData struct {
	Strength     float64
	DamageRadius float64
}

// WormholeData holds the wormhole variant fields.
type WormholeData struct {
	LastTeleport time.Duration
	Used         bool
}

// EnvironmentData is a tagged variant: Kind selects which of the
// variant structs is meaningful.
type EnvironmentData struct {
	Kind         cfg.EnvKind
	Destructible bool
	Health       float64
	ExpiresAt    time.Duration // zero means no expiry
	Dead         bool

	Asteroid AsteroidData
	Well     GravityWellData
	Wormhole WormholeData
}

var Environment = donburi.NewComponentType[EnvironmentData]()
