package factory

import (
	"time"

	"github.com/automoto/cosmic-survivor/archetypes"
	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePowerUp(w donburi.World, space *resolv.Space, kind cfg.PowerUpKind, pos components.Vector, now time.Duration) *donburi.Entry {
	powerUp := archetypes.PowerUp.Spawn(w)

	obj := newBody(pos, cfg.PowerUp.Radius, tags.ResolvPowerUp)
	obj.Data = powerUp
	space.Add(obj)
	components.Object.SetValue(powerUp, components.ObjectData{Object: obj})

	components.Motion.SetValue(powerUp, components.MotionData{
		Position: pos,
		Radius:   cfg.PowerUp.Radius,
	})
	components.PowerUp.SetValue(powerUp, components.PowerUpData{
		Kind:      kind,
		ExpiresAt: now + cfg.PowerUp.Lifetime,
		Duration:  cfg.PowerUp.Types[kind].Duration,
	})

	return powerUp
}
