package systems

import (
	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
	"github.com/automoto/cosmic-survivor/systems/factory"
	"github.com/yohamta/donburi"
)

func spawnPowerUp(s *State, kind cfg.PowerUpKind, at components.Vector) {
	s.Store.PowerUps.Add(factory.CreatePowerUp(s.World, s.Space, kind, at, s.Now))
}

// randomPowerUpKind picks a kind uniformly, or by drop weight when weighted.
func randomPowerUpKind(s *State, weighted bool) cfg.PowerUpKind {
	if !weighted {
		return cfg.PowerUpKind(s.Rand.IntN(int(cfg.PowerUpKindCount)))
	}
	total := 0.0
	for k := cfg.PowerUpKind(0); k < cfg.PowerUpKindCount; k++ {
		total += cfg.PowerUp.Types[k].DropWeight
	}
	roll := s.Rand.Float64() * total
	for k := cfg.PowerUpKind(0); k < cfg.PowerUpKindCount; k++ {
		roll -= cfg.PowerUp.Types[k].DropWeight
		if roll < 0 {
			return k
		}
	}
	return cfg.PowerUpPoints
}

// maybeDropPowerUp rolls for a power-up where an enemy died.
func maybeDropPowerUp(s *State, at components.Vector) {
	if s.Rand.Float64() >= cfg.PowerUp.DropChance {
		return
	}
	spawnPowerUp(s, randomPowerUpKind(s, true), at)
}

// UpdatePowerUps expires uncollected power-ups.
func UpdatePowerUps(s *State) {
	updateEach(s, s.Store.PowerUps, func(i int, e *donburi.Entry) error {
		if s.Now >= components.PowerUp.Get(e).ExpiresAt {
			s.Store.PowerUps.RemoveAt(i)
		}
		return nil
	})
}

// CollectPowerUp applies a power-up to the player. While an event is active
// every pickup is converted to bonus points instead.
func CollectPowerUp(s *State, pu *components.PowerUpData, at components.Vector) {
	if pu.Collected {
		return
	}
	pu.Collected = true

	tc := cfg.PowerUp.Types[pu.Kind]
	emitEffect(s, hooks.EffectPickup, at, hooks.EffectOptions{Color: tc.Color})
	playSound(s, "powerup", 0.5)

	if s.Events.AnyActive() {
		awardPoints(s, cfg.Events.EventPickupBonusPoints)
		return
	}

	p := s.Player()
	effect := components.TimedEffect{Active: true, EndTime: s.Now + pu.Duration, Multiplier: tc.Multiplier}
	switch pu.Kind {
	case cfg.PowerUpShield:
		p.Shield = effect
	case cfg.PowerUpDamage:
		p.Damage = effect
	case cfg.PowerUpSpeedBoost:
		p.SpeedUp = effect
	case cfg.PowerUpRapidFire:
		p.RapidFire = effect
	case cfg.PowerUpPoints:
		lo, hi := cfg.PowerUp.MinPointsReward, cfg.PowerUp.MaxPointsReward
		awardPoints(s, lo+s.Rand.IntN(hi-lo+1))
	}
}
