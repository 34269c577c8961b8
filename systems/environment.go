package systems

import (
	"math"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
	"github.com/automoto/cosmic-survivor/systems/factory"
	"github.com/yohamta/donburi"
)

// envBehavior is one row of the environment dispatch table.
type envBehavior struct {
	update      func(s *State, e *donburi.Entry, env *components.EnvironmentData, m *components.MotionData) error
	onPlayer    func(s *State, e *donburi.Entry, env *components.EnvironmentData, m *components.MotionData)
	onDestroyed func(s *State, env *components.EnvironmentData, m *components.MotionData)
}

var envBehaviors [cfg.EnvKindCount]envBehavior

func init() {
	envBehaviors = [cfg.EnvKindCount]envBehavior{
		cfg.EnvAsteroid: {
			update:      updateAsteroid,
			onPlayer:    asteroidHitsPlayer,
			onDestroyed: shatterAsteroid,
		},
		cfg.EnvGravityWell: {
			update:   updateGravityWell,
			onPlayer: gravityWellPullsPlayer,
		},
		cfg.EnvWormhole: {
			onPlayer: wormholeTeleportsPlayer,
		},
	}
}

func behaviorFor(kind cfg.EnvKind) envBehavior {
	if kind < 0 || kind >= cfg.EnvKindCount {
		return envBehavior{}
	}
	return envBehaviors[kind]
}

// UpdateEnvironment expires and updates every environment element.
func UpdateEnvironment(s *State) {
	updateEach(s, s.Store.Environment, func(i int, e *donburi.Entry) error {
		env := components.Environment.Get(e)
		if env.Dead {
			return nil
		}
		if env.ExpiresAt > 0 && s.Now >= env.ExpiresAt {
			env.Dead = true
			s.Store.Environment.RemoveAt(i)
			return nil
		}
		m := components.Motion.Get(e)
		if b := behaviorFor(env.Kind); b.update != nil {
			if err := b.update(s, e, env, m); err != nil {
				return err
			}
		}
		if env.Dead {
			s.Store.Environment.RemoveAt(i)
			return nil
		}
		syncObject(e, m)
		return nil
	})
}

// damageEnvironment hurts a destructible element and destroys it at zero.
func damageEnvironment(s *State, i int, e *donburi.Entry, amount float64) {
	env := components.Environment.Get(e)
	if !env.Destructible || env.Dead {
		return
	}
	env.Health -= amount
	if env.Health <= 0 {
		destroyEnvironment(s, i, e)
	}
}

func destroyEnvironment(s *State, i int, e *donburi.Entry) {
	env := components.Environment.Get(e)
	if env.Dead {
		return
	}
	env.Dead = true
	s.Store.Environment.RemoveAt(i)
	if b := behaviorFor(env.Kind); b.onDestroyed != nil {
		b.onDestroyed(s, env, components.Motion.Get(e))
	}
}

func updateAsteroid(s *State, _ *donburi.Entry, env *components.EnvironmentData, m *components.MotionData) error {
	dt := s.DT.Seconds()
	m.Position.X += m.Velocity.X * dt
	m.Position.Y += m.Velocity.Y * dt
	m.Rotation += env.Asteroid.Spin * dt

	margin := cfg.Environment.ExitMargin + m.Radius
	if m.Position.X < -margin || m.Position.X > s.Width+margin ||
		m.Position.Y < -margin || m.Position.Y > s.Height+margin {
		env.Dead = true
	}
	return nil
}

func asteroidHitsPlayer(s *State, e *donburi.Entry, env *components.EnvironmentData, m *components.MotionData) {
	switch s.Player().TakeDamage(s.Now, cfg.Environment.AsteroidDamage) {
	case components.DamageAbsorbed:
		emitEffect(s, hooks.EffectShieldBlock, s.PlayerMotion().Position, hooks.EffectOptions{})
	case components.DamageFatal:
		playSound(s, "gameOver", 1)
		return
	default:
		playSound(s, "damage", 0.7)
	}
	env.Dead = true
	shatterAsteroid(s, env, m)
}

// shatterAsteroid splits a large asteroid into fragments that do not split again.
func shatterAsteroid(s *State, env *components.EnvironmentData, m *components.MotionData) {
	emitEffect(s, hooks.EffectAsteroidBreak, m.Position, hooks.EffectOptions{Color: cfg.Gray, Size: env.Asteroid.Size})
	playSound(s, "asteroidBreak", 0.5)

	fragSize := env.Asteroid.Size / 2
	if env.Asteroid.Fragment || env.Asteroid.Size <= cfg.Environment.AsteroidMinSize || fragSize < cfg.Environment.FragmentMinSize {
		return
	}
	n := cfg.Environment.AsteroidFragmentMin + s.Rand.IntN(cfg.Environment.AsteroidFragmentMax-cfg.Environment.AsteroidFragmentMin+1)
	for k := 0; k < n; k++ {
		angle := 2*math.Pi*float64(k)/float64(n) + s.randRange(-0.3, 0.3)
		speed := s.randRange(cfg.Environment.AsteroidMinSpeed, cfg.Environment.AsteroidMaxSpeed)
		vel := components.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		spin := s.randRange(-cfg.Environment.AsteroidMaxSpin, cfg.Environment.AsteroidMaxSpin)
		s.Store.Environment.Add(factory.CreateAsteroid(s.World, s.Space, m.Position, vel, fragSize, spin, true))
	}
}

// wellPull is the pull speed at pos toward a well, zero outside its radius.
func wellPull(env *components.EnvironmentData, well *components.MotionData, pos components.Vector) components.Vector {
	dx, dy := well.Position.X-pos.X, well.Position.Y-pos.Y
	d := math.Hypot(dx, dy)
	if d == 0 || d >= well.Radius {
		return components.Vector{}
	}
	mag := env.Well.Strength * cfg.Environment.WellPullScale * (1 - d/well.Radius)
	return components.Vector{X: dx / d * mag, Y: dy / d * mag}
}

// updateGravityWell bends projectiles passing through the well.
func updateGravityWell(s *State, _ *donburi.Entry, env *components.EnvironmentData, m *components.MotionData) error {
	dt := s.DT.Seconds()
	s.Store.Projectiles.ForEach(func(_ int, pe *donburi.Entry) {
		pm := components.Motion.Get(pe)
		pull := wellPull(env, m, pm.Position)
		pm.Velocity.X += pull.X * cfg.Environment.WellProjectilePull * dt
		pm.Velocity.Y += pull.Y * cfg.Environment.WellProjectilePull * dt
	})
	return nil
}

func gravityWellPullsPlayer(s *State, _ *donburi.Entry, env *components.EnvironmentData, m *components.MotionData) {
	pm := s.PlayerMotion()
	dt := s.DT.Seconds()
	pull := wellPull(env, m, pm.Position)
	pm.Position.X += pull.X * dt
	pm.Position.Y += pull.Y * dt
	syncObject(s.Store.Player, pm)

	if pm.Position.Dist(m.Position) < env.Well.DamageRadius {
		if s.Player().TakeDamage(s.Now, cfg.Environment.WellDamagePerSec*dt) == components.DamageFatal {
			playSound(s, "gameOver", 1)
		}
	}
}

func wormholeTeleportsPlayer(s *State, _ *donburi.Entry, env *components.EnvironmentData, m *components.MotionData) {
	w := &env.Wormhole
	if w.Used && s.Now-w.LastTeleport < cfg.Environment.WormholeCooldown {
		return
	}
	w.Used = true
	w.LastTeleport = s.Now

	pm := s.PlayerMotion()
	from := pm.Position
	pm.Position = interiorPosition(s, cfg.Environment.TeleportPadding)
	syncObject(s.Store.Player, pm)

	s.Hooks.PortalUse()
	emitEffect(s, hooks.EffectTeleport, from, hooks.EffectOptions{Color: cfg.Magenta, Size: m.Radius})
	emitEffect(s, hooks.EffectTeleport, pm.Position, hooks.EffectOptions{Color: cfg.Magenta, Size: m.Radius})
	playSound(s, "teleport", 0.7)
}

func spawnAsteroid(s *State) {
	env := cfg.Environment
	size := s.randRange(env.AsteroidMinSize, env.AsteroidMaxSize)
	pos := edgePosition(s, size/2)
	target := interiorPosition(s, env.SpawnPadding)
	dx, dy := target.X-pos.X, target.Y-pos.Y
	d := math.Hypot(dx, dy)
	speed := s.randRange(env.AsteroidMinSpeed, env.AsteroidMaxSpeed)
	vel := components.Vector{}
	if d > 0 {
		vel = components.Vector{X: dx / d * speed, Y: dy / d * speed}
	}
	spin := s.randRange(-env.AsteroidMaxSpin, env.AsteroidMaxSpin)
	s.Store.Environment.Add(factory.CreateAsteroid(s.World, s.Space, pos, vel, size, spin, false))
}

func spawnGravityWell(s *State) {
	env := cfg.Environment
	radius := s.randRange(env.WellMinRadius, env.WellMaxRadius)
	strength := s.randRange(env.WellMinStrength, env.WellMaxStrength)
	expires := s.Now + s.randDuration(env.WellMinLifespan, env.WellMaxLifespan)
	s.Store.Environment.Add(factory.CreateGravityWell(s.World, s.Space, interiorPosition(s, env.SpawnPadding), radius, strength, expires))
}

func spawnWormhole(s *State) {
	env := cfg.Environment
	radius := s.randRange(env.WormholeMinRadius, env.WormholeMaxRadius)
	expires := s.Now + s.randDuration(env.WormholeMinLifespan, env.WormholeMaxLifespan)
	s.Store.Environment.Add(factory.CreateWormhole(s.World, s.Space, interiorPosition(s, env.SpawnPadding), radius, expires))
}
