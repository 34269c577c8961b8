package persistence

import (
	"errors"
	"testing"

	cfg "github.com/automoto/cosmic-survivor/config"
)

type memKV struct {
	items   map[string][]byte
	failing bool
}

func newMemKV() *memKV {
	return &memKV{items: map[string][]byte{}}
}

func (m *memKV) LoadItem(key string) ([]byte, error) {
	if m.failing {
		return nil, errors.New("disk on fire")
	}
	return m.items[key], nil
}

func (m *memKV) SaveItem(key string, data []byte) error {
	if m.failing {
		return errors.New("disk on fire")
	}
	m.items[key] = data
	return nil
}

func TestSettingsRoundTrip(t *testing.T) {
	s := New(newMemKV())
	want := cfg.Settings{Difficulty: "hard", Adaptive: false, PerformanceMode: true, PerformanceTier: 1, PlayerName: "Ace"}
	if err := s.SaveSettings(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := s.LoadSettings(); got != want {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}
}

func TestMissingOrCorruptSettingsUseDefaults(t *testing.T) {
	kv := newMemKV()
	s := New(kv)
	if got := s.LoadSettings(); got != cfg.DefaultSettings() {
		t.Fatalf("empty store gave %+v", got)
	}

	kv.items[keySettings] = []byte("{not json")
	if got := s.LoadSettings(); got != cfg.DefaultSettings() {
		t.Fatalf("corrupt store gave %+v", got)
	}

	kv.failing = true
	if got := s.LoadSettings(); got != cfg.DefaultSettings() {
		t.Fatalf("failing store gave %+v", got)
	}
}

func TestHighScoreOnlyGrows(t *testing.T) {
	s := New(newMemKV())
	if err := s.SaveHighScore(5000); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveHighScore(1200); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := s.LoadHighScore(); got != 5000 {
		t.Fatalf("high score = %d, want 5000", got)
	}
}

func TestAchievementsRoundTrip(t *testing.T) {
	s := New(newMemKV())
	want := map[string]AchievementRecord{"firstKill": {Progress: 1, Unlocked: true}}
	if err := s.SaveAchievements(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := s.LoadAchievements()
	if len(got) != 1 || got["firstKill"] != want["firstKill"] {
		t.Fatalf("loaded %+v", got)
	}
}

func TestNilStoreIsInert(t *testing.T) {
	var s *Store
	if err := s.SaveHighScore(10); err != nil {
		t.Fatalf("save on nil store: %v", err)
	}
	if s.LoadHighScore() != 0 || len(s.LoadAchievements()) != 0 {
		t.Fatalf("nil store should load defaults")
	}
}
