package hooks

// Nop implements every collaborator and ignores all calls.
type Nop struct{}

var (
	_ StatSink  = Nop{}
	_ Effects   = Nop{}
	_ Notifier  = Nop{}
	_ Publisher = Nop{}
)

func (Nop) OnKill(bool)                                                   {}
func (Nop) OnHit()                                                        {}
func (Nop) OnMiss()                                                       {}
func (Nop) OnScoreAdded(int)                                              {}
func (Nop) OnPortalUse()                                                  {}
func (Nop) OnShipUpgrade()                                                {}
func (Nop) SpawnVisualEffect(EffectKind, float64, float64, EffectOptions) {}
func (Nop) PlaySound(string, float64)                                     {}
func (Nop) OnCountdownTick(string, int)                                   {}
func (Nop) OnEventStart(string)                                           {}
func (Nop) OnEventEnd(string)                                             {}
func (Nop) PublishShip(ShipState)                                         {}

// Notifiers fans event transitions out to several receivers. A receiver
// that panics does not stop the ones after it.
type Notifiers []Notifier

func (n Notifiers) OnCountdownTick(event string, remaining int) {
	for _, r := range n {
		Set{Notify: r}.CountdownTick(event, remaining)
	}
}

func (n Notifiers) OnEventStart(event string) {
	for _, r := range n {
		Set{Notify: r}.EventStart(event)
	}
}

func (n Notifiers) OnEventEnd(event string) {
	for _, r := range n {
		Set{Notify: r}.EventEnd(event)
	}
}
