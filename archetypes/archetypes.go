package archetypes

import (
	"github.com/automoto/cosmic-survivor/components"
	"github.com/automoto/cosmic-survivor/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Motion,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Motion,
		components.Health,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Motion,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Motion,
		components.Object,
	)
	Environment = newArchetype(
		tags.Environment,
		components.Environment,
		components.Motion,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
