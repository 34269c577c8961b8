package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

var Health = donburi.NewComponentType[HealthData]()

// Damage lowers health, never below zero, and reports whether it reached zero.
func (h *HealthData) Damage(amount float64) bool {
	if amount < 0 {
		amount = 0
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current <= 0
}
