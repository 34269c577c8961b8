package achievements

import (
	"testing"
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/persistence"
)

type memStorage struct {
	saved map[string]persistence.AchievementRecord
	saves int
}

func (m *memStorage) LoadAchievements() map[string]persistence.AchievementRecord {
	return m.saved
}

func (m *memStorage) SaveAchievements(r map[string]persistence.AchievementRecord) error {
	m.saved = r
	m.saves++
	return nil
}

func TestFirstKillUnlocksAndSaves(t *testing.T) {
	store := &memStorage{}
	tr := NewTracker(store)

	tr.OnKill(false)

	if !tr.Record(FirstKill).Unlocked {
		t.Fatalf("first kill should unlock")
	}
	if store.saves == 0 || !store.saved[FirstKill].Unlocked {
		t.Fatalf("unlock should be saved")
	}
	if got := tr.TakeUnlocked(); len(got) != 1 || got[0] != FirstKill {
		t.Fatalf("unlocked = %v", got)
	}
	if len(tr.TakeUnlocked()) != 0 {
		t.Fatalf("unlocks should be drained")
	}
}

func TestKillChainNeedsKillsCloseTogether(t *testing.T) {
	tr := NewTracker(nil)

	for i := 0; i < 4; i++ {
		tr.Update(time.Duration(i)*time.Second, 0)
		tr.OnKill(false)
	}
	tr.Update(10*time.Second, 0)
	tr.OnKill(false)
	if tr.Record(KillChain).Unlocked {
		t.Fatalf("a gap longer than the window should break the chain")
	}

	for i := 0; i < 4; i++ {
		tr.Update(10*time.Second+time.Duration(i)*time.Second, 0)
		tr.OnKill(false)
	}
	if !tr.Record(KillChain).Unlocked {
		t.Fatalf("five kills within the window should unlock")
	}
}

func TestMissBreaksHitRun(t *testing.T) {
	tr := NewTracker(nil)
	for i := 0; i < 19; i++ {
		tr.OnHit()
	}
	tr.OnMiss()
	tr.OnHit()
	if tr.Record(Sharpshooter).Unlocked {
		t.Fatalf("a miss should reset the run")
	}
	for i := 0; i < 19; i++ {
		tr.OnHit()
	}
	if !tr.Record(Sharpshooter).Unlocked {
		t.Fatalf("20 hits in a row should unlock")
	}
}

func TestEventAchievements(t *testing.T) {
	tr := NewTracker(nil)
	tr.OnEventStart(cfg.Events.PrimaryName)
	tr.OnEventEnd(cfg.Events.PrimaryName)
	tr.OnEventStart(cfg.Events.SecondaryName)

	if !tr.Record(RadiantTrigger).Unlocked || !tr.Record(HighlyRadiant).Unlocked || !tr.Record(LunarSurvivor).Unlocked {
		t.Fatalf("event achievements did not unlock")
	}
	if tr.Record(HighlyLunar).Unlocked {
		t.Fatalf("lunar was not survived yet")
	}
}

func TestProgressCarriesOverSessions(t *testing.T) {
	store := &memStorage{}
	tr := NewTracker(store)
	for i := 0; i < 10; i++ {
		tr.OnKill(false)
	}
	tr.Update(time.Minute, 2500)
	tr.Flush()

	again := NewTracker(store)
	if got := again.Record(Destroyer).Progress; got != 10 {
		t.Fatalf("destroyer progress = %d, want 10", got)
	}
	if got := again.Record(HighScore).Progress; got != 2500 {
		t.Fatalf("high score progress = %d, want 2500", got)
	}
	if again.UnlockedCount() != 1 {
		t.Fatalf("unlocked = %d, want only firstKill", again.UnlockedCount())
	}
}

func TestUnknownStoredIDsAreIgnored(t *testing.T) {
	store := &memStorage{saved: map[string]persistence.AchievementRecord{"bogus": {Unlocked: true}}}
	if NewTracker(store).UnlockedCount() != 0 {
		t.Fatalf("unknown stored achievement was loaded")
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup(TankBuster)
	if !ok || d.Name != "Tank Buster" || d.Target != 10 {
		t.Fatalf("Lookup(tankBuster) = %+v, %v", d, ok)
	}
	if _, ok := Lookup("nope"); ok {
		t.Errorf("unknown id resolved")
	}
}
