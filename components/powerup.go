package components

import (
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/yohamta/donburi"
)

type PowerUpData struct {
	Kind      cfg.PowerUpKind
	ExpiresAt time.Duration
	Duration  time.Duration
	Collected bool
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
