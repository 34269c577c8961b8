package factory

import (
	"github.com/automoto/cosmic-survivor/archetypes"
	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, space *resolv.Space, x, y float64, ship string) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	if _, ok := cfg.Ships[ship]; !ok {
		ship = cfg.Player.DefaultShip
	}

	pos := components.Vector{X: x, Y: y}
	obj := newBody(pos, cfg.Player.Radius, tags.ResolvPlayer)
	obj.Data = player
	space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Motion.SetValue(player, components.MotionData{
		Position: pos,
		Radius:   cfg.Player.Radius,
		Rotation: cfg.Player.StartRotation,
	})
	components.Player.SetValue(player, components.PlayerData{
		Health: components.HealthData{
			Current: cfg.Player.MaxHealth,
			Max:     cfg.Player.MaxHealth,
		},
		Speed:    cfg.Player.Speed,
		ShipType: ship,
		Aim:      components.Vector{X: 1, Y: 0},
	})

	return player
}
