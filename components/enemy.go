package components

import (
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Durable       bool
	Dimension     cfg.Dimension
	Speed         float64
	InitialHealth float64

	// Strength multipliers frozen at spawn time
	HealthMultiplier float64
	SpeedMultiplier  float64

	// Dead is set once when health reaches zero or the entity faults.
	Dead bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
