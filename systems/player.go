package systems

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
	"github.com/automoto/cosmic-survivor/systems/factory"
)

var (
	ErrUnknownShip        = errors.New("unknown ship type")
	ErrUpgradeUnavailable = errors.New("ship upgrade unavailable")
)

// UpdatePlayer applies movement, aim and shooting input.
func UpdatePlayer(s *State) {
	p := s.Player()
	m := s.PlayerMotion()
	p.ExpireEffects(s.Now)

	dir := s.Input.Move
	if l := dir.Len(); l > 1 {
		dir = components.Vector{X: dir.X / l, Y: dir.Y / l}
	}
	speed := p.Speed * p.SpeedMultiplier(s.Now)
	m.Velocity = components.Vector{X: dir.X * speed, Y: dir.Y * speed}

	dt := s.DT.Seconds()
	slop := cfg.Player.BoundsSlop
	m.Position.X = clamp(m.Position.X+m.Velocity.X*dt, -slop, s.Width+slop)
	m.Position.Y = clamp(m.Position.Y+m.Velocity.Y*dt, -slop, s.Height+slop)

	if s.Input.HasAim {
		dx, dy := s.Input.Aim.X-m.Position.X, s.Input.Aim.Y-m.Position.Y
		if dx != 0 || dy != 0 {
			m.Rotation = math.Atan2(dy, dx)
			p.Aim = components.Vector{X: math.Cos(m.Rotation), Y: math.Sin(m.Rotation)}
		}
	}
	syncObject(s.Store.Player, m)

	if s.Input.Shoot {
		Shoot(s)
	}
}

// Shoot fires one projectile if the ship's delay has elapsed. The damage
// boost in effect right now is baked into the projectile.
func Shoot(s *State) bool {
	p := s.Player()
	m := s.PlayerMotion()
	ship, ok := cfg.Ships[p.ShipType]
	if !ok {
		ship = cfg.Ships[cfg.Player.DefaultShip]
	}

	delay := time.Duration(float64(ship.ShootDelay) * p.ShootDelayMultiplier(s.Now))
	if p.HasShot && s.Now-p.LastShot < delay {
		return false
	}

	mult := p.DamageMultiplier(s.Now)
	nose := components.Vector{
		X: m.Position.X + math.Cos(m.Rotation)*m.Radius,
		Y: m.Position.Y + math.Sin(m.Rotation)*m.Radius,
	}
	proj := factory.CreateProjectile(s.World, s.Space, nose, m.Rotation, ship, p.ShipType, ship.Damage*mult, mult > 1, s.Now)
	s.Store.Projectiles.Add(proj)

	p.LastShot = s.Now
	p.HasShot = true
	emitEffect(s, hooks.EffectMuzzleFlash, nose, hooks.EffectOptions{Size: ship.ProjectileSize})
	playSound(s, "shoot", 0.3)
	return true
}

// UpgradesAvailable is how many ship upgrades the current score has earned
// but not yet spent.
func UpgradesAvailable(s *State) int {
	if s.Score.Score >= cfg.Score.MaxUpgradeScore {
		return 0
	}
	n := s.Score.Score/cfg.Score.TierScore - s.Player().Upgrades
	if n < 0 {
		return 0
	}
	return n
}

// UpgradeShip switches the ship to target along the upgrade tree.
func UpgradeShip(s *State, target string) error {
	if _, ok := cfg.Ships[target]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShip, target)
	}
	p := s.Player()
	if !cfg.CanUpgrade(p.ShipType, target) {
		return fmt.Errorf("%w: %s cannot become %s", ErrUpgradeUnavailable, p.ShipType, target)
	}
	if UpgradesAvailable(s) == 0 {
		return fmt.Errorf("%w: score %d", ErrUpgradeUnavailable, s.Score.Score)
	}

	p.ShipType = target
	p.Upgrades++
	p.HasShot = false
	s.Hooks.ShipUpgrade()
	playSound(s, "upgrade", 0.8)
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
