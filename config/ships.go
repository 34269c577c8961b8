package config

import "time"

const (
	ShipDefault         = "default"
	ShipDefaultAdvanced = "default-advanced"
	ShipDefaultElite    = "default-elite"
	ShipSniper          = "sniper"
	ShipQuasar          = "quasar"
	ShipHeavy           = "heavy"
)

// ShipTypeConfig contains the weapon stats for one ship type
type ShipTypeConfig struct {
	Name            string
	ShootDelay      time.Duration
	ProjectileSpeed float64 // pixels per 60Hz frame
	ProjectileSize  float64
	Damage          float64
}

// Ships holds every ship type by id.
var Ships map[string]ShipTypeConfig

// UpgradePaths lists which ship types each ship may upgrade into.
var UpgradePaths map[string][]string

func init() {
	Ships = map[string]ShipTypeConfig{
		ShipDefault:         {Name: "Scout", ShootDelay: 200 * time.Millisecond, ProjectileSpeed: 10, ProjectileSize: 3, Damage: 1},
		ShipDefaultAdvanced: {Name: "Advanced Scout", ShootDelay: 180 * time.Millisecond, ProjectileSpeed: 12, ProjectileSize: 4, Damage: 1.5},
		ShipDefaultElite:    {Name: "Elite Scout", ShootDelay: 160 * time.Millisecond, ProjectileSpeed: 14, ProjectileSize: 5, Damage: 2},
		ShipSniper:          {Name: "Sniper", ShootDelay: 800 * time.Millisecond, ProjectileSpeed: 15, ProjectileSize: 2, Damage: 3},
		ShipQuasar:          {Name: "Quasar", ShootDelay: 150 * time.Millisecond, ProjectileSpeed: 8, ProjectileSize: 3, Damage: 0.5},
		ShipHeavy:           {Name: "Heavy", ShootDelay: 1200 * time.Millisecond, ProjectileSpeed: 6, ProjectileSize: 8, Damage: 4},
	}

	UpgradePaths = map[string][]string{
		ShipDefault:         {ShipDefaultAdvanced, ShipSniper, ShipQuasar, ShipHeavy},
		ShipDefaultAdvanced: {ShipDefaultElite},
	}
}

// CanUpgrade reports whether from may be upgraded into to.
func CanUpgrade(from, to string) bool {
	for _, next := range UpgradePaths[from] {
		if next == to {
			return true
		}
	}
	return false
}
