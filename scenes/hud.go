package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/fonts"
	"github.com/automoto/cosmic-survivor/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// hudInfo is the shell-side state the HUD shows next to the snapshot.
type hudInfo struct {
	upgradesAvailable int
	upgradeTarget     string
	toast             string
	banner            string
	bannerAlpha       float32
	online            bool
}

// drawHUD renders health, score and event status over the playfield.
func drawHUD(screen *ebiten.Image, snap *systems.Snapshot, info hudInfo) {
	m := cfg.UI.HealthBarMargin
	ratio := 0.0
	if snap.Player.MaxHealth > 0 {
		ratio = snap.Player.Health / snap.Player.MaxHealth
	}
	drawBar(screen, m, m, cfg.UI.HealthBarWidth, cfg.UI.HealthBarHeight, ratio, cfg.UI.HealthBarFgColor)

	face := fonts.HUD.Get()
	line := cfg.UI.HUDLineHeight
	x := int(m)
	y := int(m+cfg.UI.HealthBarHeight) + line + 4

	ship := cfg.Ships[snap.Player.ShipType].Name
	text.Draw(screen, ship, face, x, y, cfg.UI.HUDTextColor)
	y += line
	text.Draw(screen, fmt.Sprintf("SCORE %d  x%.1f", snap.Score, snap.Multiplier), face, x, y, cfg.UI.HUDTextColor)
	y += line
	text.Draw(screen, fmt.Sprintf("BEST  %d", snap.HighScore), face, x, y, cfg.Gray)
	if snap.KillStreak > 1 {
		y += line
		text.Draw(screen, fmt.Sprintf("STREAK %d", snap.KillStreak), face, x, y, cfg.Orange)
	}

	y += line
	for _, fx := range []struct {
		on    bool
		label string
		kind  cfg.PowerUpKind
	}{
		{snap.Player.Shield, "SHIELD", cfg.PowerUpShield},
		{snap.Player.Damage, "DAMAGE", cfg.PowerUpDamage},
		{snap.Player.SpeedUp, "SPEED", cfg.PowerUpSpeedBoost},
		{snap.Player.RapidFire, "RAPID", cfg.PowerUpRapidFire},
	} {
		if !fx.on {
			continue
		}
		y += line
		text.Draw(screen, fx.label, face, x, y, cfg.PowerUp.Types[fx.kind].Color)
	}

	if info.upgradesAvailable > 0 && info.upgradeTarget != "" {
		y += line
		msg := fmt.Sprintf("[U] UPGRADE TO %s  [TAB] NEXT", cfg.Ships[info.upgradeTarget].Name)
		text.Draw(screen, msg, face, x, y, cfg.Yellow)
	}

	drawStatus(screen, snap, face, info)

	if info.banner != "" && info.bannerAlpha > 0 {
		bold := fonts.Bold.Get()
		w := font.MeasureString(bold, info.banner).Ceil()
		clr := fade(cfg.Yellow, float64(info.bannerAlpha))
		text.Draw(screen, info.banner, bold, (cfg.C.Width-w)/2, 120, clr)
	}

	if info.toast != "" {
		small := fonts.Small.Get()
		msg := "ACHIEVEMENT: " + info.toast
		w := font.MeasureString(small, msg).Ceil()
		text.Draw(screen, msg, small, (cfg.C.Width-w)/2, cfg.C.Height-24, cfg.BrightGreen)
	}
}

// drawStatus is the right-hand column: difficulty, events, performance.
func drawStatus(screen *ebiten.Image, snap *systems.Snapshot, face font.Face, info hudInfo) {
	line := cfg.UI.HUDLineHeight
	right := cfg.C.Width - int(cfg.UI.HealthBarMargin)
	y := int(cfg.UI.HealthBarMargin) + line

	drawRight := func(s string, clr color.Color) {
		w := font.MeasureString(face, s).Ceil()
		text.Draw(screen, s, face, right-w, y, clr)
		y += line
	}

	drawRight(fmt.Sprintf("%s  %.2f", snap.DifficultyLabel, snap.DifficultyLevel), cfg.UI.HUDTextColor)
	drawRight(formatClock(snap.Now), cfg.Gray)

	for _, ev := range []systems.EventView{snap.Primary, snap.Secondary} {
		switch ev.Phase {
		case components.EventCountdown:
			drawRight(fmt.Sprintf("%s IN %d", ev.Name, ev.Countdown), cfg.Orange)
		case components.EventActive:
			drawRight(fmt.Sprintf("%s %s", ev.Name, formatClock(ev.Remaining)), cfg.Yellow)
		}
	}
	if snap.Dimension != cfg.DimensionNormal {
		drawRight("DIMENSION "+snap.Dimension.String(), cfg.Enemy.Dimensions[snap.Dimension].Color)
	}

	perfColor := cfg.Gray
	if snap.Perf != components.PerfNormal {
		perfColor = cfg.Orange
	}
	drawRight(fmt.Sprintf("%.0f FPS %s [%s]", snap.MeanFPS, snap.Perf, snap.Quality), perfColor)

	if info.online {
		drawRight(fmt.Sprintf("ONLINE %d PEERS", len(snap.Peers)), cfg.LightBlue)
	}
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
