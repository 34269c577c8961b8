package systems

import (
	"github.com/automoto/cosmic-survivor/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Collection is an ordered list of entities of one kind. Entity data lives in
// the donburi world; the collection fixes iteration order for the resolver.
// Indices are only stable until the next Compact.
type Collection struct {
	name    string
	entries []*donburi.Entry
	removed []bool
}

func newCollection(name string) *Collection {
	return &Collection{name: name}
}

// Add appends an entity.
func (c *Collection) Add(e *donburi.Entry) {
	c.entries = append(c.entries, e)
	c.removed = append(c.removed, false)
}

// RemoveAt marks slot i for removal at the next Compact.
func (c *Collection) RemoveAt(i int) {
	if i < 0 || i >= len(c.entries) {
		return
	}
	c.removed[i] = true
}

// Removed reports whether slot i is pending removal.
func (c *Collection) Removed(i int) bool {
	return i < 0 || i >= len(c.entries) || c.removed[i] || !c.entries[i].Valid()
}

// At returns the entry in slot i.
func (c *Collection) At(i int) *donburi.Entry {
	return c.entries[i]
}

// Len is the number of slots, including ones pending removal.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Live counts slots not pending removal.
func (c *Collection) Live() int {
	n := 0
	for i := range c.entries {
		if !c.Removed(i) {
			n++
		}
	}
	return n
}

// ForEach visits live slots in index order. Slots removed during the visit
// are skipped from then on.
func (c *Collection) ForEach(fn func(i int, e *donburi.Entry)) {
	for i := 0; i < len(c.entries); i++ {
		if c.Removed(i) {
			continue
		}
		fn(i, c.entries[i])
	}
}

// Compact drops removed slots, walking in descending index order, deleting
// each entity from the world and the broadphase space exactly once.
func (c *Collection) Compact(w donburi.World, space *resolv.Space) int {
	dropped := 0
	for i := len(c.entries) - 1; i >= 0; i-- {
		if !c.Removed(i) {
			continue
		}
		destroyEntry(w, space, c.entries[i])
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
		c.removed = append(c.removed[:i], c.removed[i+1:]...)
		dropped++
	}
	return dropped
}

// Clear removes every entity in the collection.
func (c *Collection) Clear(w donburi.World, space *resolv.Space) {
	for i := range c.entries {
		c.removed[i] = true
	}
	c.Compact(w, space)
}

func destroyEntry(w donburi.World, space *resolv.Space, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && space != nil {
			space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}

// Store owns every simulated entity.
type Store struct {
	Player      *donburi.Entry
	Enemies     *Collection
	Projectiles *Collection
	PowerUps    *Collection
	Environment *Collection
}

func NewStore() *Store {
	return &Store{
		Enemies:     newCollection("enemies"),
		Projectiles: newCollection("projectiles"),
		PowerUps:    newCollection("powerups"),
		Environment: newCollection("environment"),
	}
}

func (s *Store) collections() []*Collection {
	return []*Collection{s.Enemies, s.Projectiles, s.PowerUps, s.Environment}
}

// Compact compacts every collection.
func (s *Store) Compact(w donburi.World, space *resolv.Space) {
	for _, c := range s.collections() {
		c.Compact(w, space)
	}
}

// Clear removes every entity except the player.
func (s *Store) Clear(w donburi.World, space *resolv.Space) {
	for _, c := range s.collections() {
		c.Clear(w, space)
	}
}
