package scenes

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/automoto/cosmic-survivor/achievements"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
	"github.com/automoto/cosmic-survivor/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const toastDuration = 3 * time.Second

// WorldScene drives one run of the simulation and draws it.
type WorldScene struct {
	ecs          *ecs.ECS
	sim          *systems.Simulation
	session      *Session
	sceneChanger SceneChanger
	once         sync.Once

	input  Input
	fx     *effectLayer
	render *renderer
	snap   systems.Snapshot

	last         time.Time
	upgradeIdx   int
	toast        string
	toastUntil   time.Duration
	pendingToast []string
}

// NewWorldScene creates a fresh run for the session.
func NewWorldScene(sc SceneChanger, session *Session) *WorldScene {
	return &WorldScene{sceneChanger: sc, session: session}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.sim.State.GameOver() {
		ws.finish()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		return
	}
	ws.snap = systems.TakeSnapshot(ws.sim.State)
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	seed := newSeed()
	ws.fx = newEffectLayer(ws.session.Sounds, seed)

	h := hooks.Set{Effects: ws.fx}
	notify := hooks.Notifiers{ws.fx}
	if t := ws.session.Tracker; t != nil {
		t.ResetSession()
		h.Stats = t
		notify = append(notify, t)
	}
	h.Notify = notify
	if ws.session.Client != nil {
		h.Publish = ws.session.Client
	}

	ws.sim = systems.NewSimulation(ws.session.Settings, h, seed)
	if ws.session.Store != nil {
		ws.sim.State.Score.HighScore = ws.session.Store.LoadHighScore()
	}
	ws.render = newRenderer(ws.sim.State.Quality, seed)

	// The scene ECS runs over the simulation's world.
	ws.ecs = ecs.NewECS(ws.sim.State.World)
	ws.ecs.AddSystem(ws.step)
	ws.ecs.AddRenderer(layerWorld, ws.drawWorld)
	ws.ecs.AddRenderer(layerHUD, ws.drawHUD)

	ws.last = time.Now()
}

// step feeds one frame of input to the simulation.
func (ws *WorldScene) step(_ *ecs.ECS) {
	now := time.Now()
	dt := now.Sub(ws.last)
	ws.last = now

	ws.input.Poll()
	s := ws.sim.State

	if c := ws.session.Client; c != nil {
		systems.SetRemotePeers(s, c.LatestPeers())
	}

	ws.handleUpgrade()

	frame := ws.input.Frame(s.PlayerMotion().Position, ebiten.ActualTPS())
	if err := ws.sim.Tick(dt, frame); err != nil {
		log.Printf("[world] %v", err)
	}

	if t := ws.session.Tracker; t != nil {
		t.Update(s.Now, s.Score.Score)
		ws.pendingToast = append(ws.pendingToast, t.TakeUnlocked()...)
	}
	if s.Now >= ws.toastUntil {
		ws.toast = ""
		if len(ws.pendingToast) > 0 {
			if d, ok := achievements.Lookup(ws.pendingToast[0]); ok {
				ws.toast = d.Name
			}
			ws.pendingToast = ws.pendingToast[1:]
			ws.toastUntil = s.Now + toastDuration
		}
	}

	secs := dt.Seconds()
	ws.fx.update(secs)
	ws.render.update(secs)
}

// upgradeTargets lists the ships the current ship may become.
func (ws *WorldScene) upgradeTargets() []string {
	return cfg.UpgradePaths[ws.sim.State.Player().ShipType]
}

func (ws *WorldScene) handleUpgrade() {
	targets := ws.upgradeTargets()
	if len(targets) == 0 {
		return
	}
	if ws.input.JustPressed(ActionCycleUpgrade) {
		ws.upgradeIdx = (ws.upgradeIdx + 1) % len(targets)
	}
	if !ws.input.JustPressed(ActionUpgrade) {
		return
	}

	err := systems.UpgradeShip(ws.sim.State, targets[ws.upgradeIdx%len(targets)])
	switch {
	case err == nil:
		ws.upgradeIdx = 0
	case errors.Is(err, systems.ErrUpgradeUnavailable):
		// not enough score yet
	default:
		log.Printf("[world] upgrade failed: %v", err)
	}
}

func (ws *WorldScene) drawWorld(_ *ecs.ECS, screen *ebiten.Image) {
	ws.render.draw(screen, &ws.snap)
	ws.fx.draw(screen)
}

func (ws *WorldScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	info := hudInfo{
		upgradesAvailable: systems.UpgradesAvailable(ws.sim.State),
		toast:             ws.toast,
		banner:            ws.fx.banner,
		bannerAlpha:       ws.fx.bannerA,
		online:            ws.session.Client != nil,
	}
	if targets := ws.upgradeTargets(); len(targets) > 0 {
		info.upgradeTarget = targets[ws.upgradeIdx%len(targets)]
	}
	drawHUD(screen, &ws.snap, info)
}

// finish saves the run's results and moves to the game over screen.
func (ws *WorldScene) finish() {
	score := ws.sim.State.Score.Score
	best := ws.sim.State.Score.HighScore
	if st := ws.session.Store; st != nil {
		if err := st.SaveHighScore(score); err != nil {
			log.Printf("Warning: Could not save high score: %v", err)
		}
	}
	if t := ws.session.Tracker; t != nil {
		t.Flush()
	}
	ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.session, score, best, ws.sim.State.Now))
}
