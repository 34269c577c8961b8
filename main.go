package main

import (
	"image"
	"log"

	"github.com/automoto/cosmic-survivor/achievements"
	"github.com/automoto/cosmic-survivor/assets"
	"github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/fonts"
	"github.com/automoto/cosmic-survivor/network"
	"github.com/automoto/cosmic-survivor/persistence"
	"github.com/automoto/cosmic-survivor/scenes"
	"github.com/automoto/cosmic-survivor/shared/protocol"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	session *scenes.Session
	quit    bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(session *scenes.Session) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds:  image.Rectangle{},
		session: session,
	}
	g.scene = scenes.NewWorldScene(g, session)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		if c := g.session.Client; c != nil {
			c.Disconnect()
		}
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Cosmic Survivor")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings. A failed open still
	// yields a usable store that never saves.
	store, _ := persistence.Open(config.C.AppName)
	session := &scenes.Session{
		Settings: store.LoadSettings(),
		Store:    store,
		Tracker:  achievements.NewTracker(store),
	}

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile shaders: %v", err)
	}
	session.Sounds = assets.NewSoundBank(audio.NewContext(config.Audio.SampleRate))

	if addr := session.Settings.ServerAddress; addr != "" {
		// Register network components for client-side deserialization
		if err := protocol.RegisterComponents(); err != nil {
			log.Fatalf("Failed to register network components: %v", err)
		}
		session.Client = network.NewClient()
		session.Client.Connect(addr, config.Network.Version, session.Settings.PlayerName)
	}

	if err := ebiten.RunGame(NewGame(session)); err != nil {
		log.Fatal(err)
	}
}
