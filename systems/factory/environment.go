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

func createEnvironment(w donburi.World, space *resolv.Space, pos, vel components.Vector, radius float64, data components.EnvironmentData) *donburi.Entry {
	env := archetypes.Environment.Spawn(w)

	objTags := []string{tags.ResolvEnvironment}
	if data.Destructible {
		objTags = append(objTags, tags.ResolvDestructible)
	}
	obj := newBody(pos, radius, objTags...)
	obj.Data = env
	space.Add(obj)
	components.Object.SetValue(env, components.ObjectData{Object: obj})

	components.Motion.SetValue(env, components.MotionData{
		Position: pos,
		Velocity: vel,
		Radius:   radius,
	})
	components.Environment.SetValue(env, data)

	return env
}

// CreateAsteroid spawns an asteroid of the given diameter.
func CreateAsteroid(w donburi.World, space *resolv.Space, pos, vel components.Vector, size, spin float64, fragment bool) *donburi.Entry {
	return createEnvironment(w, space, pos, vel, size/2, components.EnvironmentData{
		Kind:         cfg.EnvAsteroid,
		Destructible: true,
		Health:       math.Ceil(size / cfg.Environment.AsteroidHealthStep),
		Asteroid: components.AsteroidData{
			Size:     size,
			Fragment: fragment,
			Spin:     spin,
		},
	})
}

func CreateGravityWell(w donburi.World, space *resolv.Space, pos components.Vector, radius, strength float64, expiresAt time.Duration) *donburi.Entry {
	return createEnvironment(w, space, pos, components.Vector{}, radius, components.EnvironmentData{
		Kind:      cfg.EnvGravityWell,
		ExpiresAt: expiresAt,
		Well: components.GravityWellData{
			Strength:     strength,
			DamageRadius: radius * cfg.Environment.WellDamageRatio,
		},
	})
}

func CreateWormhole(w donburi.World, space *resolv.Space, pos components.Vector, radius float64, expiresAt time.Duration) *donburi.Entry {
	return createEnvironment(w, space, pos, components.Vector{}, radius, components.EnvironmentData{
		Kind:      cfg.EnvWormhole,
		ExpiresAt: expiresAt,
	})
}
