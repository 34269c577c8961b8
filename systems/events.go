package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
	"github.com/yohamta/donburi"
)

var ErrDimensionLocked = errors.New("dimension is locked while an event runs")

func newEventChain() components.EventChainData {
	return components.EventChainData{
		Primary:         components.EventMachine{ID: components.EventPrimary, Name: cfg.Events.PrimaryName},
		Secondary:       components.EventMachine{ID: components.EventSecondary, Name: cfg.Events.SecondaryName},
		EnemyMultiplier: cfg.Events.DefaultMultiplier,
		SpawnModifier:   cfg.Events.DefaultSpawnModifier,
		Dimension:       cfg.DimensionNormal,
	}
}

// UpdateEvents polls the primary trigger. Every later transition is driven
// by the scheduler.
func UpdateEvents(s *State) {
	p := &s.Events.Primary
	if p.Phase == components.EventIdle && !p.Triggered && s.Score.Score >= cfg.Events.ScoreThreshold {
		triggerEvent(s, components.EventPrimary)
	}
}

// triggerEvent moves an idle (or finished) event into its countdown.
func triggerEvent(s *State, id components.EventID) bool {
	m := s.Events.Machine(id)
	if m.Triggered || (m.Phase != components.EventIdle && m.Phase != components.EventEnded) {
		return false
	}
	m.Triggered = true
	m.Phase = components.EventCountdown
	m.Countdown = cfg.Events.CountdownFrom
	log.Printf("[events] %s countdown started", m.Name)
	s.Hooks.CountdownTick(m.Name, m.Countdown)
	playSound(s, "countdown", 0.6)
	s.Sched.At(s.Now+cfg.Events.CountdownStep, m.Name+":countdown", countdownStep(id))
	return true
}

func countdownStep(id components.EventID) func(*State) {
	return func(s *State) {
		m := s.Events.Machine(id)
		if m.Phase != components.EventCountdown {
			return
		}
		m.Countdown--
		if m.Countdown > 0 {
			s.Hooks.CountdownTick(m.Name, m.Countdown)
			playSound(s, "countdown", 0.6)
			s.Sched.At(s.Now+cfg.Events.CountdownStep, m.Name+":countdown", countdownStep(id))
			return
		}
		startEvent(s, id)
	}
}

func startEvent(s *State, id components.EventID) {
	m := s.Events.Machine(id)
	m.Phase = components.EventActive
	m.StartedAt = s.Now
	m.EndsAt = s.Now + cfg.Events.ActiveDuration

	if id == components.EventSecondary {
		s.Events.Dimension = cfg.Events.SecondaryDimension
		emitEffect(s, hooks.EffectDimensionShift, s.PlayerMotion().Position, hooks.EffectOptions{
			Color: cfg.Enemy.Dimensions[cfg.Events.SecondaryDimension].Color,
		})
	}
	applyEventModifiers(s)

	log.Printf("[events] %s active until %s", m.Name, m.EndsAt)
	s.Hooks.EventStart(m.Name)
	playSound(s, m.Name+"Start", 0.8)
	s.Sched.At(m.EndsAt, m.Name+":end", endEvent(id))
}

func endEvent(id components.EventID) func(*State) {
	return func(s *State) {
		m := s.Events.Machine(id)
		if m.Phase != components.EventActive || s.Now < m.EndsAt {
			return
		}
		m.Phase = components.EventEnded
		m.EndedAt = s.Now

		switch id {
		case components.EventPrimary:
			s.Events.SecondaryArmAt = s.Now + cfg.Events.SecondaryDelay
			s.Sched.At(s.Events.SecondaryArmAt, s.Events.Secondary.Name+":arm", armSecondary)
		case components.EventSecondary:
			s.Events.Dimension = cfg.DimensionNormal
			m.Triggered = false
		}
		applyEventModifiers(s)

		log.Printf("[events] %s ended", m.Name)
		s.Hooks.EventEnd(m.Name)
		playSound(s, m.Name+"End", 0.8)
	}
}

// armSecondary starts the follow-on countdown once the primary has finished
// and the delay has passed.
func armSecondary(s *State) {
	ev := &s.Events
	if ev.Primary.Phase != components.EventEnded || ev.SecondaryArmAt == 0 || s.Now < ev.SecondaryArmAt {
		return
	}
	if triggerEvent(s, components.EventSecondary) {
		ev.SecondaryArmAt = 0
	}
}

// applyEventModifiers recomputes the values the spawner reads from the
// current phases.
func applyEventModifiers(s *State) {
	ev := &s.Events
	switch {
	case ev.Secondary.Phase == components.EventActive:
		ev.EnemyMultiplier = cfg.Events.SecondaryMultiplier
		ev.SpawnModifier = cfg.Events.SecondarySpawnModifier
	case ev.Primary.Phase == components.EventActive:
		ev.EnemyMultiplier = cfg.Events.PrimaryMultiplier
		ev.SpawnModifier = cfg.Events.PrimarySpawnModifier
	case ev.Primary.Phase == components.EventEnded:
		ev.EnemyMultiplier = cfg.Events.PostPrimaryMultiplier
		ev.SpawnModifier = cfg.Events.DefaultSpawnModifier
	default:
		ev.EnemyMultiplier = cfg.Events.DefaultMultiplier
		ev.SpawnModifier = cfg.Events.DefaultSpawnModifier
	}
}

// resetEvents rearms the chain after a tick fault. A primary that already
// finished stays finished and an unfinished secondary gets a fresh arming
// delay, so the chain still runs at most once per session.
func resetEvents(s *State) {
	ev := &s.Events
	switch {
	case ev.Primary.Phase == components.EventEnded && ev.Secondary.Phase == components.EventEnded:
	case ev.Primary.Phase == components.EventEnded:
		ev.Secondary = components.EventMachine{ID: components.EventSecondary, Name: cfg.Events.SecondaryName}
		ev.SecondaryArmAt = s.Now + cfg.Events.SecondaryDelay
		s.Sched.At(ev.SecondaryArmAt, ev.Secondary.Name+":arm", armSecondary)
	default:
		ev.Primary = components.EventMachine{ID: components.EventPrimary, Name: cfg.Events.PrimaryName}
		ev.Secondary = components.EventMachine{ID: components.EventSecondary, Name: cfg.Events.SecondaryName}
		ev.SecondaryArmAt = 0
	}
	if ev.Dimension == cfg.Events.SecondaryDimension {
		ev.Dimension = cfg.DimensionNormal
	}
	applyEventModifiers(s)
}

// ChangeDimension shifts the gameplay dimension. Live enemies are cleared
// without kill credit.
func ChangeDimension(s *State, dim cfg.Dimension) error {
	if s.Events.AnyRunning() {
		return fmt.Errorf("shift to %s: %w", dim, ErrDimensionLocked)
	}
	if dim == s.Events.Dimension {
		return nil
	}
	s.Events.Dimension = dim
	if cfg.Events.DimensionShiftClearsAll {
		s.Store.Enemies.ForEach(func(i int, e *donburi.Entry) {
			components.Enemy.Get(e).Dead = true
			s.Store.Enemies.RemoveAt(i)
		})
	}
	s.Hooks.PortalUse()
	emitEffect(s, hooks.EffectDimensionShift, s.PlayerMotion().Position, hooks.EffectOptions{
		Color: cfg.Enemy.Dimensions[dim].Color,
	})
	playSound(s, "dimensionShift", 0.7)
	return nil
}
