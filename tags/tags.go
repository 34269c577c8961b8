package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Projectile  = donburi.NewTag().SetName("Projectile")
	PowerUp     = donburi.NewTag().SetName("PowerUp")
	Environment = donburi.NewTag().SetName("Environment")
)

// Resolv tags for broadphase collision
const (
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvProjectile   = "Projectile"
	ResolvPowerUp      = "PowerUp"
	ResolvEnvironment  = "Environment"
	ResolvDestructible = "destructible"
)
