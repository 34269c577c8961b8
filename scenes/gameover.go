package scenes

import (
	"fmt"
	"image/color"
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// GameOverOption is one entry of the game over menu
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverQuit
)

// GameOverScene displays the run's result and offers a retry
type GameOverScene struct {
	sceneChanger SceneChanger
	session      *Session
	input        Input

	score    int
	best     int
	survived time.Duration
	selected GameOverOption
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, session *Session, score, best int, survived time.Duration) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		session:      session,
		score:        score,
		best:         best,
		survived:     survived,
	}
}

func (gs *GameOverScene) Update() {
	gs.input.Poll()

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := len(cfg.GameOver.MenuOptions)
	if gs.input.JustPressed(ActionMenuUp) {
		gs.selected = GameOverOption((int(gs.selected) - 1 + numOptions) % numOptions)
	}
	if gs.input.JustPressed(ActionMenuDown) {
		gs.selected = GameOverOption((int(gs.selected) + 1) % numOptions)
	}

	if gs.input.JustPressed(ActionMenuSelect) {
		switch gs.selected {
		case GameOverRetry:
			gs.sceneChanger.ChangeScene(NewWorldScene(gs.sceneChanger, gs.session))
		case GameOverQuit:
			gs.sceneChanger.Quit()
		}
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	drawCentered(screen, "SHIP DESTROYED", titleFont, width, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	hud := fonts.HUD.Get()
	y := int(cfg.GameOver.TitleY) + 48
	drawCentered(screen, fmt.Sprintf("SCORE %d", gs.score), hud, width, y, cfg.White)
	y += cfg.UI.HUDLineHeight
	drawCentered(screen, fmt.Sprintf("SURVIVED %s", formatClock(gs.survived)), hud, width, y, cfg.Gray)
	y += cfg.UI.HUDLineHeight
	best := fmt.Sprintf("BEST %d", gs.best)
	if gs.score >= gs.best && gs.score > 0 {
		best = "NEW HIGH SCORE"
	}
	drawCentered(screen, best, hud, width, y, cfg.Yellow)

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*cfg.GameOver.MenuItemHeight

		textColor := cfg.GameOver.TextColorNormal
		if GameOverOption(i) == gs.selected {
			textColor = cfg.GameOver.TextColorSelected
		}
		drawCentered(screen, option, menuFont, width, int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width float64, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int((width-float64(w))/2), y, clr)
}
