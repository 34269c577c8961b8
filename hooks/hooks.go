// Package hooks declares the side-effect collaborators the simulation
// notifies: stats, visual/sound effects, event notifications and network
// publication. None of them can influence simulation state.
package hooks

import (
	"image/color"

	cfg "github.com/automoto/cosmic-survivor/config"
)

// EffectKind names a visual effect.
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectHit
	EffectMuzzleFlash
	EffectPickup
	EffectTeleport
	EffectAsteroidBreak
	EffectShieldBlock
	EffectDimensionShift
)

// Class reports whether the effect carries gameplay information.
func (k EffectKind) Class() cfg.EffectClass {
	switch k {
	case EffectExplosion, EffectPickup, EffectTeleport, EffectShieldBlock:
		return cfg.EffectEssential
	default:
		return cfg.EffectDecorative
	}
}

// EffectOptions tune a visual effect.
type EffectOptions struct {
	Color color.RGBA
	Size  float64
	Count int
}

// StatSink receives gameplay statistics.
type StatSink interface {
	OnKill(durable bool)
	OnHit()
	OnMiss()
	OnScoreAdded(points int)
	OnPortalUse()
	OnShipUpgrade()
}

// Effects spawns visual effects and plays sounds.
type Effects interface {
	SpawnVisualEffect(kind EffectKind, x, y float64, opts EffectOptions)
	PlaySound(name string, volume float64)
}

// Notifier receives special event phase transitions.
type Notifier interface {
	OnCountdownTick(event string, remaining int)
	OnEventStart(event string)
	OnEventEnd(event string)
}

// ShipState is the local ship as published to peers.
type ShipState struct {
	X, Y      float64
	Rotation  float64
	Health    float64
	MaxHealth float64
	ShipType  string
	Score     int
}

// Publisher forwards the local ship to a transport. It must not block.
type Publisher interface {
	PublishShip(ShipState)
}

// Set bundles the collaborators. Nil members are skipped.
type Set struct {
	Stats   StatSink
	Effects Effects
	Notify  Notifier
	Publish Publisher
}
