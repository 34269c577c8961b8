package systems

import (
	"github.com/automoto/cosmic-survivor/components"
	"github.com/automoto/cosmic-survivor/hooks"
)

// emitEffect is the only place visual effects leave the simulation; the
// session's quality tier decides which kinds get through.
func emitEffect(s *State, kind hooks.EffectKind, at components.Vector, opts hooks.EffectOptions) {
	if !s.Quality.Allows(kind.Class()) {
		return
	}
	if kind == hooks.EffectExplosion {
		opts.Count = s.Quality.Preset().ExplosionCount
	}
	s.Hooks.Effect(kind, at.X, at.Y, opts)
}

func playSound(s *State, name string, volume float64) {
	s.Hooks.Sound(name, volume)
}
