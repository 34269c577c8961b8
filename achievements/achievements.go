package achievements

import (
	"log"
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
	"github.com/automoto/cosmic-survivor/persistence"
)

const (
	FirstKill         = "firstKill"
	Sharpshooter      = "sharpshooter"
	Destroyer         = "destroyer"
	TankBuster        = "tankBuster"
	Survivor          = "survivor"
	HighScore         = "highScore"
	DimensionTraveler = "dimensionTraveler"
	Upgrader          = "upgrader"
	KillChain         = "killChain"
	RadiantTrigger    = "radiantTrigger"
	HighlyRadiant     = "highlyRadiant"
	LunarSurvivor     = "lunarSurvivor"
	HighlyLunar       = "highlyLunar"
)

// Definition is one achievement and its unlock target.
type Definition struct {
	ID     string
	Name   string
	Target int
}

// Definitions lists every achievement in display order.
var Definitions = []Definition{
	{FirstKill, "First Contact", 1},
	{Sharpshooter, "Sharpshooter", 20},
	{Destroyer, "Destroyer", 50},
	{TankBuster, "Tank Buster", 10},
	{Survivor, "Survivor", 300},
	{HighScore, "High Roller", 10000},
	{DimensionTraveler, "Dimension Traveler", 1},
	{Upgrader, "Ship Engineer", 3},
	{KillChain, "Chain Reaction", 5},
	{RadiantTrigger, "Radiant???", 1},
	{HighlyRadiant, "Highly Radiant", 1},
	{LunarSurvivor, "Lunar Survivor", 1},
	{HighlyLunar, "Highly Lunar", 1},
}

// Lookup returns the definition with the given id.
func Lookup(id string) (Definition, bool) {
	for _, d := range Definitions {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// chainWindow is how close together kills must land to extend a chain.
const chainWindow = 3 * time.Second

// Storage is where achievement progress is kept between sessions.
type Storage interface {
	LoadAchievements() map[string]persistence.AchievementRecord
	SaveAchievements(map[string]persistence.AchievementRecord) error
}

var (
	_ hooks.StatSink = (*Tracker)(nil)
	_ hooks.Notifier = (*Tracker)(nil)
)

// Tracker watches simulation hooks and unlocks achievements.
type Tracker struct {
	storage Storage
	records map[string]persistence.AchievementRecord
	targets map[string]int

	now      time.Duration
	hitRun   int
	chain    int
	lastKill time.Duration
	hasKill  bool
	unlocked []string
	dirty    bool
}

// NewTracker loads stored progress. storage may be nil.
func NewTracker(storage Storage) *Tracker {
	t := &Tracker{
		storage: storage,
		records: map[string]persistence.AchievementRecord{},
		targets: map[string]int{},
	}
	for _, d := range Definitions {
		t.targets[d.ID] = d.Target
	}
	if storage != nil {
		for id, r := range storage.LoadAchievements() {
			if _, ok := t.targets[id]; ok {
				t.records[id] = r
			}
		}
	}
	return t
}

// Update feeds the session clock and score. Call once per tick.
func (t *Tracker) Update(now time.Duration, score int) {
	t.now = now
	t.progress(Survivor, int(now/time.Second))
	t.progress(HighScore, score)
	if t.chain > 0 && now-t.lastKill > chainWindow {
		t.chain = 0
	}
}

// ResetSession clears per-game counters while keeping stored progress.
func (t *Tracker) ResetSession() {
	t.now = 0
	t.hitRun = 0
	t.chain = 0
	t.hasKill = false
}

func (t *Tracker) progress(id string, value int) {
	r := t.records[id]
	if r.Unlocked || value <= r.Progress {
		return
	}
	r.Progress = value
	t.dirty = true
	if value >= t.targets[id] {
		r.Unlocked = true
		t.records[id] = r
		t.unlock(id)
		return
	}
	t.records[id] = r
}

func (t *Tracker) increment(id string) {
	t.progress(id, t.records[id].Progress+1)
}

func (t *Tracker) unlock(id string) {
	log.Printf("Achievement unlocked: %s", id)
	t.unlocked = append(t.unlocked, id)
	t.Flush()
}

// Flush saves progress if anything changed since the last save.
func (t *Tracker) Flush() {
	if !t.dirty || t.storage == nil {
		return
	}
	cp := make(map[string]persistence.AchievementRecord, len(t.records))
	for id, r := range t.records {
		cp[id] = r
	}
	if err := t.storage.SaveAchievements(cp); err == nil {
		t.dirty = false
	}
}

// TakeUnlocked returns achievements unlocked since the last call.
func (t *Tracker) TakeUnlocked() []string {
	out := t.unlocked
	t.unlocked = nil
	return out
}

// Record returns the stored state of one achievement.
func (t *Tracker) Record(id string) persistence.AchievementRecord {
	return t.records[id]
}

// UnlockedCount is the number of unlocked achievements.
func (t *Tracker) UnlockedCount() int {
	n := 0
	for _, r := range t.records {
		if r.Unlocked {
			n++
		}
	}
	return n
}

func (t *Tracker) OnKill(durable bool) {
	t.increment(FirstKill)
	t.increment(Destroyer)
	if durable {
		t.increment(TankBuster)
	}

	if t.hasKill && t.now-t.lastKill <= chainWindow {
		t.chain++
	} else {
		t.chain = 1
	}
	t.hasKill = true
	t.lastKill = t.now
	t.progress(KillChain, t.chain)
}

func (t *Tracker) OnHit() {
	t.hitRun++
	t.progress(Sharpshooter, t.hitRun)
}

func (t *Tracker) OnMiss() {
	t.hitRun = 0
}

func (t *Tracker) OnScoreAdded(int) {}

func (t *Tracker) OnPortalUse() {
	t.increment(DimensionTraveler)
}

func (t *Tracker) OnShipUpgrade() {
	t.increment(Upgrader)
}

func (t *Tracker) OnCountdownTick(string, int) {}

func (t *Tracker) OnEventStart(event string) {
	switch event {
	case cfg.Events.PrimaryName:
		t.progress(RadiantTrigger, 1)
	case cfg.Events.SecondaryName:
		t.progress(LunarSurvivor, 1)
	}
}

func (t *Tracker) OnEventEnd(event string) {
	switch event {
	case cfg.Events.PrimaryName:
		t.progress(HighlyRadiant, 1)
	case cfg.Events.SecondaryName:
		t.progress(HighlyLunar, 1)
	}
}
