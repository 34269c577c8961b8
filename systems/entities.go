package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/systems/factory"
	"github.com/yohamta/donburi"
)

// updateEach runs fn for every live entity in c. A failing entity is logged
// and marked dead; the rest of the collection still updates.
func updateEach(s *State, c *Collection, fn func(i int, e *donburi.Entry) error) {
	c.ForEach(func(i int, e *donburi.Entry) {
		if err := guardEntity(func() error { return fn(i, e) }); err != nil {
			log.Printf("[sim] %s[%d] dropped: %v", c.name, i, err)
			markDead(c, i, e)
		}
	})
}

func guardEntity(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func markDead(c *Collection, i int, e *donburi.Entry) {
	c.RemoveAt(i)
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Enemy) {
		components.Enemy.Get(e).Dead = true
	}
	if e.HasComponent(components.Environment) {
		components.Environment.Get(e).Dead = true
	}
}

func syncObject(e *donburi.Entry, m *components.MotionData) {
	factory.PlaceObject(components.Object.Get(e).Object, m.Position, m.Radius)
}

// UpdateEnemies steers every enemy straight at the player.
func UpdateEnemies(s *State) {
	target := s.PlayerMotion().Position
	dt := s.DT.Seconds()

	updateEach(s, s.Store.Enemies, func(i int, e *donburi.Entry) error {
		enemy := components.Enemy.Get(e)
		if enemy.Dead {
			return nil
		}
		m := components.Motion.Get(e)
		dx, dy := target.X-m.Position.X, target.Y-m.Position.Y
		if d := math.Hypot(dx, dy); d > 0 {
			m.Velocity = components.Vector{X: dx / d * enemy.Speed, Y: dy / d * enemy.Speed}
			m.Rotation = math.Atan2(dy, dx)
		}
		m.Position.X += m.Velocity.X * dt
		m.Position.Y += m.Velocity.Y * dt
		if math.IsNaN(m.Position.X) || math.IsNaN(m.Position.Y) {
			return fmt.Errorf("enemy position is NaN")
		}
		syncObject(e, m)
		return nil
	})
}

// UpdateProjectiles advances shots and retires ones that have flown too long.
func UpdateProjectiles(s *State) {
	dt := s.DT.Seconds()

	updateEach(s, s.Store.Projectiles, func(i int, e *donburi.Entry) error {
		p := components.Projectile.Get(e)
		if s.Now-p.BornAt > cfg.Projectile.MaxAge {
			s.Store.Projectiles.RemoveAt(i)
			return nil
		}
		m := components.Motion.Get(e)
		m.Position.X += m.Velocity.X * dt
		m.Position.Y += m.Velocity.Y * dt
		syncObject(e, m)
		return nil
	})
}
