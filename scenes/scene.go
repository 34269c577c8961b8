package scenes

import (
	"time"

	"github.com/automoto/cosmic-survivor/achievements"
	"github.com/automoto/cosmic-survivor/assets"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/network"
	"github.com/automoto/cosmic-survivor/persistence"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// Session is what outlives a single run: saved data, audio and the
// optional network client.
type Session struct {
	Settings cfg.Settings
	Store    *persistence.Store
	Sounds   *assets.SoundBank
	Tracker  *achievements.Tracker
	Client   *network.Client // nil when playing offline
}

// newSeed picks the rng seed for a new run.
func newSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
