package components

import (
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
)

// EventPhase is the phase of one special event.
type EventPhase int

const (
	EventIdle EventPhase = iota
	EventCountdown
	EventActive
	EventEnded
)

func (p EventPhase) String() string {
	switch p {
	case EventCountdown:
		return "countdown"
	case EventActive:
		return "active"
	case EventEnded:
		return "ended"
	default:
		return "idle"
	}
}

// EventID identifies one of the two chained events.
type EventID int

const (
	EventPrimary EventID = iota
	EventSecondary
)

// EventMachine is one timed special event.
type EventMachine struct {
	ID        EventID
	Name      string
	Phase     EventPhase
	Triggered bool // one-shot latch
	Countdown int
	StartedAt time.Duration
	EndsAt    time.Duration
	EndedAt   time.Duration
}

// EventChainData is owned by the Event State Machine.
type EventChainData struct {
	Primary   EventMachine
	Secondary EventMachine

	EnemyMultiplier float64
	SpawnModifier   float64
	Dimension       cfg.Dimension

	// SecondaryArmAt is when the secondary countdown may begin; zero when unarmed.
	SecondaryArmAt time.Duration
}

// Machine returns the event with the given id.
func (e *EventChainData) Machine(id EventID) *EventMachine {
	if id == EventSecondary {
		return &e.Secondary
	}
	return &e.Primary
}

// AnyActive reports whether either event is in its Active phase.
func (e *EventChainData) AnyActive() bool {
	return e.Primary.Phase == EventActive || e.Secondary.Phase == EventActive
}

// AnyRunning reports whether either event is counting down or active.
func (e *EventChainData) AnyRunning() bool {
	return e.AnyActive() || e.Primary.Phase == EventCountdown || e.Secondary.Phase == EventCountdown
}
