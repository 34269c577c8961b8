package persistence

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/quasilyte/gdata"
)

const (
	keySettings     = "settings"
	keyHighScore    = "highscore"
	keyAchievements = "achievements"
)

// KV is the item store saves go through. *gdata.Manager satisfies it.
type KV interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// AchievementRecord is the stored state of one achievement.
type AchievementRecord struct {
	Progress int  `json:"progress"`
	Unlocked bool `json:"unlocked"`
}

// Store loads and saves session data. A Store without a backing KV loads
// defaults and drops saves.
type Store struct {
	kv KV
}

// Open initializes gdata storage for appName. On failure the returned Store
// still works, it just never persists anything.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return &Store{}, err
	}
	return &Store{kv: m}, nil
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) load(key string, v any) bool {
	if s == nil || s.kv == nil {
		return false
	}
	data, err := s.kv.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func (s *Store) save(key string, v any) error {
	if s == nil || s.kv == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := s.kv.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings returns the stored settings, or defaults when nothing usable
// is stored.
func (s *Store) LoadSettings() cfg.Settings {
	settings := cfg.DefaultSettings()
	if !s.load(keySettings, &settings) {
		settings = cfg.DefaultSettings()
	}
	settings.Normalize()
	return settings
}

func (s *Store) SaveSettings(settings cfg.Settings) error {
	return s.save(keySettings, settings)
}

func (s *Store) LoadHighScore() int {
	var score int
	if !s.load(keyHighScore, &score) || score < 0 {
		return 0
	}
	return score
}

// SaveHighScore stores score if it beats the stored one.
func (s *Store) SaveHighScore(score int) error {
	if score <= s.LoadHighScore() {
		return nil
	}
	return s.save(keyHighScore, score)
}

func (s *Store) LoadAchievements() map[string]AchievementRecord {
	records := map[string]AchievementRecord{}
	if !s.load(keyAchievements, &records) || records == nil {
		return map[string]AchievementRecord{}
	}
	return records
}

func (s *Store) SaveAchievements(records map[string]AchievementRecord) error {
	return s.save(keyAchievements, records)
}
