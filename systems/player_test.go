package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
)

func TestShootRespectsDelay(t *testing.T) {
	s, _ := newTestState(t)
	if !Shoot(s) {
		t.Fatalf("first shot should fire")
	}
	if Shoot(s) {
		t.Fatalf("second shot fired inside the delay")
	}
	s.Now += cfg.Ships[cfg.ShipDefault].ShootDelay
	if !Shoot(s) {
		t.Fatalf("shot after the delay should fire")
	}
	if s.Store.Projectiles.Len() != 2 {
		t.Fatalf("projectiles = %d, want 2", s.Store.Projectiles.Len())
	}
}

func TestDamageBoostIsBakedIn(t *testing.T) {
	s, _ := newTestState(t)
	s.Player().Damage = components.TimedEffect{Active: true, EndTime: time.Second, Multiplier: 1.5}

	Shoot(s)
	proj := components.Projectile.Get(s.Store.Projectiles.At(0))
	if !proj.Boosted || proj.Damage != cfg.Ships[cfg.ShipDefault].Damage*1.5 {
		t.Fatalf("projectile = %+v, want boosted damage", proj)
	}

	s.Now = 2 * time.Second
	s.Player().ExpireEffects(s.Now)
	if proj.Damage != cfg.Ships[cfg.ShipDefault].Damage*1.5 {
		t.Fatalf("in-flight damage changed after the boost expired")
	}
}

func TestMovementIsClampedWithSlop(t *testing.T) {
	s, _ := newTestState(t)
	s.Input.Move = components.Vector{X: -1}
	s.DT = time.Minute

	UpdatePlayer(s)

	if got := s.PlayerMotion().Position.X; got != -cfg.Player.BoundsSlop {
		t.Fatalf("x = %f, want %f", got, -cfg.Player.BoundsSlop)
	}
}

func TestUpgradeShip(t *testing.T) {
	s, rec := newTestState(t)

	if err := UpgradeShip(s, "battleship"); !errors.Is(err, ErrUnknownShip) {
		t.Fatalf("err = %v, want ErrUnknownShip", err)
	}
	if err := UpgradeShip(s, cfg.ShipSniper); !errors.Is(err, ErrUpgradeUnavailable) {
		t.Fatalf("upgrade with no score: err = %v", err)
	}

	s.Score.Score = cfg.Score.TierScore
	if err := UpgradeShip(s, cfg.ShipDefaultElite); !errors.Is(err, ErrUpgradeUnavailable) {
		t.Fatalf("skipping a tier should fail, err = %v", err)
	}
	if err := UpgradeShip(s, cfg.ShipDefaultAdvanced); err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}
	if s.Player().ShipType != cfg.ShipDefaultAdvanced || rec.upgrades != 1 {
		t.Fatalf("ship = %s, upgrades = %d", s.Player().ShipType, rec.upgrades)
	}
	if err := UpgradeShip(s, cfg.ShipDefaultElite); !errors.Is(err, ErrUpgradeUnavailable) {
		t.Fatalf("second upgrade on one tier should fail, err = %v", err)
	}

	s.Score.Score = cfg.Score.MaxUpgradeScore
	if UpgradesAvailable(s) != 0 {
		t.Fatalf("no upgrades past the score cap")
	}
}

func TestUpgradesAvailableByTier(t *testing.T) {
	tier := cfg.Score.TierScore
	cases := []struct {
		score, taken, want int
	}{
		{0, 0, 0},
		{tier - 1, 0, 0},
		{tier, 0, 1},
		{tier, 1, 0},
		{3*tier + 5, 1, 2},
		{2 * tier, 3, 0},
		{cfg.Score.MaxUpgradeScore - 1, 0, (cfg.Score.MaxUpgradeScore - 1) / tier},
		{cfg.Score.MaxUpgradeScore, 0, 0},
	}
	for _, tc := range cases {
		s, _ := newTestState(t)
		s.Score.Score = tc.score
		s.Player().Upgrades = tc.taken
		if got := UpgradesAvailable(s); got != tc.want {
			t.Errorf("score %d with %d taken: available = %d, want %d", tc.score, tc.taken, got, tc.want)
		}
	}
}

func TestScoreMultiplierBounds(t *testing.T) {
	if got := ScoreMultiplier(0, 0); got != cfg.Score.MinMultiplier {
		t.Fatalf("multiplier at start = %f", got)
	}
	if got := ScoreMultiplier(time.Hour, 1000); got != cfg.Score.MaxMultiplier {
		t.Fatalf("multiplier should cap at %f, got %f", cfg.Score.MaxMultiplier, got)
	}
}

func TestStreakExpires(t *testing.T) {
	s, _ := newTestState(t)
	awardKill(s, false)
	awardKill(s, false)
	if s.Score.KillStreak != 2 {
		t.Fatalf("streak = %d, want 2", s.Score.KillStreak)
	}
	s.Now += cfg.Score.StreakTimeout + time.Millisecond
	UpdateScore(s)
	if s.Score.KillStreak != 0 {
		t.Fatalf("streak should expire")
	}
	if s.Score.HighScore != s.Score.Score {
		t.Fatalf("high score should track score")
	}
}
