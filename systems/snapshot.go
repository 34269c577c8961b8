package systems

import (
	"time"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/yohamta/donburi"
)

// Body is one drawable entity.
type Body struct {
	X, Y     float64
	Radius   float64
	Rotation float64
}

type EnemyView struct {
	Body
	Durable   bool
	Dimension cfg.Dimension
	Health    float64
	MaxHealth float64
}

type ProjectileView struct {
	Body
	Boosted bool
}

type PowerUpView struct {
	Body
	Kind      cfg.PowerUpKind
	Remaining time.Duration
}

type EnvironmentView struct {
	Body
	Kind cfg.EnvKind
}

type EventView struct {
	Name      string
	Phase     components.EventPhase
	Countdown int
	Remaining time.Duration
}

// PlayerView is the player plus the effects the HUD shows.
type PlayerView struct {
	Body
	Health    float64
	MaxHealth float64
	ShipType  string
	Upgrades  int
	Shield    bool
	Damage    bool
	SpeedUp   bool
	RapidFire bool
}

// Snapshot is a read-only copy of what the renderer needs for one frame.
type Snapshot struct {
	Now         time.Duration
	Player      PlayerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	PowerUps    []PowerUpView
	Environment []EnvironmentView
	Peers       []RemotePeer

	Score      int
	HighScore  int
	Multiplier float64
	KillStreak int

	DifficultyLabel string
	DifficultyLevel float64
	Primary         EventView
	Secondary       EventView
	Dimension       cfg.Dimension

	Perf     components.PerfClass
	MeanFPS  float64
	Quality  cfg.RenderQualityTier
	GameOver bool
}

func bodyOf(e *donburi.Entry) Body {
	m := components.Motion.Get(e)
	return Body{X: m.Position.X, Y: m.Position.Y, Radius: m.Radius, Rotation: m.Rotation}
}

func eventView(m components.EventMachine, now time.Duration) EventView {
	v := EventView{Name: m.Name, Phase: m.Phase, Countdown: m.Countdown}
	if m.Phase == components.EventActive && m.EndsAt > now {
		v.Remaining = m.EndsAt - now
	}
	return v
}

// TakeSnapshot copies the drawable state out of s.
func TakeSnapshot(s *State) Snapshot {
	p := s.Player()
	snap := Snapshot{
		Now: s.Now,
		Player: PlayerView{
			Body:      bodyOf(s.Store.Player),
			Health:    p.Health.Current,
			MaxHealth: p.Health.Max,
			ShipType:  p.ShipType,
			Upgrades:  p.Upgrades,
			Shield:    p.Shield.Live(s.Now),
			Damage:    p.Damage.Live(s.Now),
			SpeedUp:   p.SpeedUp.Live(s.Now),
			RapidFire: p.RapidFire.Live(s.Now),
		},
		Peers:           append([]RemotePeer(nil), s.Peers...),
		Score:           s.Score.Score,
		HighScore:       s.Score.HighScore,
		Multiplier:      s.Score.Multiplier,
		KillStreak:      s.Score.KillStreak,
		DifficultyLabel: s.Difficulty.Label(),
		DifficultyLevel: s.Difficulty.DisplayLevel,
		Primary:         eventView(s.Events.Primary, s.Now),
		Secondary:       eventView(s.Events.Secondary, s.Now),
		Dimension:       s.Events.Dimension,
		Perf:            s.Perf.Class(),
		MeanFPS:         s.Perf.MeanFPS,
		Quality:         s.Quality,
		GameOver:        p.GameOver,
	}

	s.Store.Enemies.ForEach(func(_ int, e *donburi.Entry) {
		en := components.Enemy.Get(e)
		h := components.Health.Get(e)
		snap.Enemies = append(snap.Enemies, EnemyView{
			Body: bodyOf(e), Durable: en.Durable, Dimension: en.Dimension,
			Health: h.Current, MaxHealth: h.Max,
		})
	})
	s.Store.Projectiles.ForEach(func(_ int, e *donburi.Entry) {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Body: bodyOf(e), Boosted: components.Projectile.Get(e).Boosted,
		})
	})
	s.Store.PowerUps.ForEach(func(_ int, e *donburi.Entry) {
		pu := components.PowerUp.Get(e)
		v := PowerUpView{Body: bodyOf(e), Kind: pu.Kind}
		if pu.ExpiresAt > s.Now {
			v.Remaining = pu.ExpiresAt - s.Now
		}
		snap.PowerUps = append(snap.PowerUps, v)
	})
	s.Store.Environment.ForEach(func(_ int, e *donburi.Entry) {
		snap.Environment = append(snap.Environment, EnvironmentView{
			Body: bodyOf(e), Kind: components.Environment.Get(e).Kind,
		})
	})
	return snap
}
