package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TimedEffect is a power-up effect that lasts until EndTime.
type TimedEffect struct {
	Active     bool
	EndTime    time.Duration
	Multiplier float64
}

// Live reports whether the effect is active at now.
func (e TimedEffect) Live(now time.Duration) bool {
	return e.Active && now < e.EndTime
}

// DamageResult is the outcome of PlayerData.TakeDamage.
type DamageResult int

const (
	DamageTaken DamageResult = iota
	DamageAbsorbed
	DamageFatal
)

func (r DamageResult) String() string {
	switch r {
	case DamageAbsorbed:
		return "absorbed"
	case DamageFatal:
		return "fatal"
	default:
		return "taken"
	}
}

type PlayerData struct {
	Health    HealthData
	Speed     float64
	ShipType  string
	Upgrades  int
	LastShot  time.Duration
	HasShot   bool
	Aim       Vector
	GameOver  bool
	Shield    TimedEffect
	Damage    TimedEffect
	SpeedUp   TimedEffect
	RapidFire TimedEffect
}

var Player = donburi.NewComponentType[PlayerData]()

// TakeDamage applies damage unless the shield is up.
func (p *PlayerData) TakeDamage(now time.Duration, amount float64) DamageResult {
	if p.Shield.Live(now) {
		return DamageAbsorbed
	}
	if p.Health.Damage(amount) {
		p.GameOver = true
		return DamageFatal
	}
	return DamageTaken
}

// DamageMultiplier is the projectile damage factor in effect at now.
func (p *PlayerData) DamageMultiplier(now time.Duration) float64 {
	if p.Damage.Live(now) {
		return p.Damage.Multiplier
	}
	return 1
}

// SpeedMultiplier is the movement factor in effect at now.
func (p *PlayerData) SpeedMultiplier(now time.Duration) float64 {
	if p.SpeedUp.Live(now) {
		return p.SpeedUp.Multiplier
	}
	return 1
}

// ShootDelayMultiplier is the fire-rate factor in effect at now.
func (p *PlayerData) ShootDelayMultiplier(now time.Duration) float64 {
	if p.RapidFire.Live(now) {
		return p.RapidFire.Multiplier
	}
	return 1
}

// ExpireEffects clears effects whose end time has passed.
func (p *PlayerData) ExpireEffects(now time.Duration) {
	for _, e := range []*TimedEffect{&p.Shield, &p.Damage, &p.SpeedUp, &p.RapidFire} {
		if e.Active && now >= e.EndTime {
			*e = TimedEffect{}
		}
	}
}
