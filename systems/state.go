package systems

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
	"github.com/automoto/cosmic-survivor/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// FrameInput is what the shell feeds the simulation each tick.
type FrameInput struct {
	Move   components.Vector // each axis in [-1, 1]
	Aim    components.Vector // playfield point the ship faces
	HasAim bool
	Shoot  bool
	FPS    float64 // measured frame rate, zero when unknown
}

// RemotePeer is another player's ship, drawn but never collided with.
type RemotePeer struct {
	ID        string
	Name      string
	X, Y      float64
	Rotation  float64
	Health    float64
	MaxHealth float64
	ShipType  string
	Score     int
}

// State is all simulation state. Every system receives it explicitly.
type State struct {
	World donburi.World
	Space *resolv.Space
	Store *Store
	Sched *Scheduler
	Rand  *rand.Rand

	Now  time.Duration
	DT   time.Duration
	Tick uint64

	Settings cfg.Settings
	Quality  cfg.RenderQualityTier
	Hooks    hooks.Set
	Input    FrameInput

	Difficulty components.DifficultyData
	Events     components.EventChainData
	Perf       components.PerformanceData
	Score      components.ScoreData
	Timers     components.SpawnTimersData

	Peers []RemotePeer

	Width  float64
	Height float64
}

// NewState builds a fresh session. seed makes every random roll reproducible.
func NewState(settings cfg.Settings, h hooks.Set, seed uint64) *State {
	settings.Normalize()

	s := &State{
		World:    donburi.NewWorld(),
		Space:    factory.NewSpace(),
		Store:    NewStore(),
		Sched:    NewScheduler(),
		Rand:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Settings: settings,
		Quality:  settings.QualityTier(),
		Hooks:    h,
		Width:    float64(cfg.C.Width),
		Height:   float64(cfg.C.Height),
	}

	s.Store.Player = factory.CreatePlayer(s.World, s.Space, s.Width/2, s.Height/2, cfg.Player.DefaultShip)
	s.Difficulty = newDifficulty(settings)
	s.Events = newEventChain()
	s.Perf = newPerformance(settings, s.Quality)
	s.Score = components.ScoreData{Multiplier: cfg.Score.MinMultiplier}
	s.Timers = rollSpawnTimers(s)

	return s
}

// Player returns the player component.
func (s *State) Player() *components.PlayerData {
	return components.Player.Get(s.Store.Player)
}

// PlayerMotion returns the player body.
func (s *State) PlayerMotion() *components.MotionData {
	return components.Motion.Get(s.Store.Player)
}

// GameOver reports whether the player has died.
func (s *State) GameOver() bool {
	return s.Player().GameOver
}

// Reset clears the playfield after a tick fault. Score, difficulty level and
// the session clock survive.
func (s *State) Reset() {
	s.Sched.Cancel()
	s.Store.Clear(s.World, s.Space)

	if s.Store.Player == nil || !s.Store.Player.Valid() {
		s.Store.Player = factory.CreatePlayer(s.World, s.Space, s.Width/2, s.Height/2, cfg.Player.DefaultShip)
	} else {
		m := s.PlayerMotion()
		m.Position = components.Vector{X: s.Width / 2, Y: s.Height / 2}
		m.Velocity = components.Vector{}
		factory.PlaceObject(components.Object.Get(s.Store.Player).Object, m.Position, m.Radius)
	}

	resetEvents(s)
	s.Difficulty.LastAssessment = s.Now
	s.Difficulty.KillsInWindow = 0
	s.Score.KillStreak = 0
	s.Timers = rollSpawnTimers(s)
}

// randRange returns a uniform value in [lo, hi).
func (s *State) randRange(lo, hi float64) float64 {
	return lo + s.Rand.Float64()*(hi-lo)
}

// randDuration returns a uniform duration in [lo, hi).
func (s *State) randDuration(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.Rand.Int64N(int64(hi-lo)))
}

// OutOfBounds is the single playfield edge rule: on or past an edge is out.
func (s *State) OutOfBounds(p components.Vector) bool {
	return p.X <= 0 || p.X >= s.Width || p.Y <= 0 || p.Y >= s.Height
}
