package systems

import (
	"log"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
	"github.com/automoto/cosmic-survivor/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ResolveCollisions runs every overlap pass for the tick. Removals only mark
// slots; the store is compacted afterwards.
func ResolveCollisions(s *State) {
	resolveProjectiles(s)
	if s.GameOver() {
		return
	}
	resolvePlayerEnemies(s)
	if s.GameOver() {
		return
	}
	resolvePlayerPowerUps(s)
	resolvePlayerEnvironment(s)
}

// candidates gathers the entries a broadphase object touches under tag.
func candidates(obj *resolv.Object, tag string) map[*donburi.Entry]struct{} {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	found := make(map[*donburi.Entry]struct{}, len(check.Objects))
	for _, o := range check.ObjectsByTags(tag) {
		if e, ok := o.Data.(*donburi.Entry); ok && e != nil {
			found[e] = struct{}{}
		}
	}
	return found
}

// firstOverlap returns the first slot in c, in store order, whose body
// overlaps m and passes keep.
func firstOverlap(c *Collection, near map[*donburi.Entry]struct{}, m *components.MotionData, keep func(*donburi.Entry) bool) int {
	if len(near) == 0 {
		return -1
	}
	for i := 0; i < c.Len(); i++ {
		if c.Removed(i) {
			continue
		}
		e := c.At(i)
		if _, ok := near[e]; !ok {
			continue
		}
		if keep != nil && !keep(e) {
			continue
		}
		if m.Overlaps(components.Motion.Get(e)) {
			return i
		}
	}
	return -1
}

func liveEnemy(e *donburi.Entry) bool {
	return !components.Enemy.Get(e).Dead
}

func liveEnvironment(e *donburi.Entry) bool {
	return !components.Environment.Get(e).Dead
}

func resolveProjectiles(s *State) {
	updateEach(s, s.Store.Projectiles, func(i int, pe *donburi.Entry) error {
		proj := components.Projectile.Get(pe)
		if proj.Spent {
			return nil
		}
		m := components.Motion.Get(pe)
		obj := components.Object.Get(pe).Object

		// A shot on or past an edge is a miss even if something waits there.
		if s.OutOfBounds(m.Position) {
			proj.Spent = true
			s.Store.Projectiles.RemoveAt(i)
			s.Score.Misses++
			s.Hooks.Miss()
			return nil
		}

		if j := firstOverlap(s.Store.Enemies, candidates(obj, tags.ResolvEnemy), m, liveEnemy); j >= 0 {
			proj.Spent = true
			s.Store.Projectiles.RemoveAt(i)
			hitEnemy(s, j, proj)
			return nil
		}

		if j := firstOverlap(s.Store.Environment, candidates(obj, tags.ResolvDestructible), m, liveEnvironment); j >= 0 {
			proj.Spent = true
			s.Store.Projectiles.RemoveAt(i)
			damageEnvironment(s, j, s.Store.Environment.At(j), proj.Damage)
		}
		return nil
	})
}

func hitEnemy(s *State, j int, proj *components.ProjectileData) {
	e := s.Store.Enemies.At(j)
	enemy := components.Enemy.Get(e)
	m := components.Motion.Get(e)

	s.Score.Hits++
	s.Hooks.Hit()
	emitEffect(s, hooks.EffectHit, m.Position, hooks.EffectOptions{Size: m.Radius / 2})

	if components.Health.Get(e).Damage(proj.Damage) {
		killEnemy(s, j, e, enemy, true)
	}
}

// killEnemy removes an enemy exactly once. Only projectile kills score.
func killEnemy(s *State, j int, e *donburi.Entry, enemy *components.EnemyData, scored bool) {
	if enemy.Dead {
		return
	}
	enemy.Dead = true
	s.Store.Enemies.RemoveAt(j)

	m := components.Motion.Get(e)
	s.Hooks.Kill(enemy.Durable)
	if scored {
		awardKill(s, enemy.Durable)
		maybeDropPowerUp(s, m.Position)
	}
	emitEffect(s, hooks.EffectExplosion, m.Position, hooks.EffectOptions{
		Color: cfg.Enemy.Dimensions[enemy.Dimension].Color,
		Size:  m.Radius,
	})
	playSound(s, "explosion", 0.5)
}

func resolvePlayerEnemies(s *State) {
	pm := s.PlayerMotion()
	near := candidates(components.Object.Get(s.Store.Player).Object, tags.ResolvEnemy)
	if len(near) == 0 {
		return
	}

	var hits []int
	s.Store.Enemies.ForEach(func(j int, e *donburi.Entry) {
		if _, ok := near[e]; !ok || !liveEnemy(e) {
			return
		}
		if pm.Overlaps(components.Motion.Get(e)) {
			hits = append(hits, j)
		}
	})
	if len(hits) == 0 {
		return
	}

	switch s.Player().TakeDamage(s.Now, cfg.Player.RamDamage) {
	case components.DamageFatal:
		log.Printf("[sim] player destroyed at score %d", s.Score.Score)
		playSound(s, "gameOver", 1)
		return
	case components.DamageAbsorbed:
		emitEffect(s, hooks.EffectShieldBlock, pm.Position, hooks.EffectOptions{Color: cfg.LightBlue})
	default:
		playSound(s, "damage", 0.7)
	}

	for _, j := range hits {
		e := s.Store.Enemies.At(j)
		killEnemy(s, j, e, components.Enemy.Get(e), false)
	}
}

func resolvePlayerPowerUps(s *State) {
	pm := s.PlayerMotion()
	near := candidates(components.Object.Get(s.Store.Player).Object, tags.ResolvPowerUp)
	if len(near) == 0 {
		return
	}
	updateEach(s, s.Store.PowerUps, func(i int, e *donburi.Entry) error {
		if _, ok := near[e]; !ok {
			return nil
		}
		m := components.Motion.Get(e)
		if !pm.Overlaps(m) {
			return nil
		}
		CollectPowerUp(s, components.PowerUp.Get(e), m.Position)
		s.Store.PowerUps.RemoveAt(i)
		return nil
	})
}

func resolvePlayerEnvironment(s *State) {
	pm := s.PlayerMotion()
	near := candidates(components.Object.Get(s.Store.Player).Object, tags.ResolvEnvironment)
	if len(near) == 0 {
		return
	}
	updateEach(s, s.Store.Environment, func(i int, e *donburi.Entry) error {
		if s.GameOver() {
			return nil
		}
		if _, ok := near[e]; !ok || !liveEnvironment(e) {
			return nil
		}
		env := components.Environment.Get(e)
		m := components.Motion.Get(e)
		if !pm.Overlaps(m) {
			return nil
		}
		if b := behaviorFor(env.Kind); b.onPlayer != nil {
			b.onPlayer(s, e, env, m)
		}
		if env.Dead {
			s.Store.Environment.RemoveAt(i)
		}
		return nil
	})
}
