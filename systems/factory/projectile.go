package factory

import (
	"math"
	"time"

	"github.com/automoto/cosmic-survivor/archetypes"
	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateProjectile fires a shot from pos along angle. Damage is final: any
// boost has already been applied by the caller.
func CreateProjectile(w donburi.World, space *resolv.Space, pos components.Vector, angle float64, ship cfg.ShipTypeConfig, shipID string, damage float64, boosted bool, now time.Duration) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(w)

	obj := newBody(pos, ship.ProjectileSize, tags.ResolvProjectile)
	obj.Data = projectile
	space.Add(obj)
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})

	speed := ship.ProjectileSpeed * cfg.Projectile.SpeedScale
	components.Motion.SetValue(projectile, components.MotionData{
		Position: pos,
		Velocity: components.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		Radius:   ship.ProjectileSize,
		Rotation: angle,
	})
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Damage:   damage,
		ShipType: shipID,
		Boosted:  boosted,
		Angle:    angle,
		Speed:    speed,
		BornAt:   now,
	})

	return projectile
}
