package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Damage   float64
	ShipType string
	Boosted  bool
	Angle    float64
	Speed    float64
	BornAt   time.Duration
	Spent    bool // hit something this tick
}

var Projectile = donburi.NewComponentType[ProjectileData]()
