package factory

import (
	"github.com/automoto/cosmic-survivor/archetypes"
	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// EnemySpec carries the stats an enemy is frozen with at spawn time.
type EnemySpec struct {
	Position         components.Vector
	Radius           float64
	Speed            float64
	Health           float64
	Durable          bool
	Dimension        cfg.Dimension
	HealthMultiplier float64
	SpeedMultiplier  float64
}

func CreateEnemy(w donburi.World, space *resolv.Space, spec EnemySpec) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	obj := newBody(spec.Position, spec.Radius, tags.ResolvEnemy)
	obj.Data = enemy
	space.Add(obj)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Motion.SetValue(enemy, components.MotionData{
		Position: spec.Position,
		Radius:   spec.Radius,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: spec.Health,
		Max:     spec.Health,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Durable:          spec.Durable,
		Dimension:        spec.Dimension,
		Speed:            spec.Speed,
		InitialHealth:    spec.Health,
		HealthMultiplier: spec.HealthMultiplier,
		SpeedMultiplier:  spec.SpeedMultiplier,
	})

	return enemy
}
