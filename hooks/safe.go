package hooks

import "log"

func guard(hook string) {
	if r := recover(); r != nil {
		log.Printf("[hooks] %s failed: %v", hook, r)
	}
}

func (s Set) Kill(durable bool) {
	if s.Stats == nil {
		return
	}
	defer guard("onKill")
	s.Stats.OnKill(durable)
}

func (s Set) Hit() {
	if s.Stats == nil {
		return
	}
	defer guard("onHit")
	s.Stats.OnHit()
}

func (s Set) Miss() {
	if s.Stats == nil {
		return
	}
	defer guard("onMiss")
	s.Stats.OnMiss()
}

func (s Set) ScoreAdded(points int) {
	if s.Stats == nil {
		return
	}
	defer guard("onScoreAdded")
	s.Stats.OnScoreAdded(points)
}

func (s Set) PortalUse() {
	if s.Stats == nil {
		return
	}
	defer guard("onPortalUse")
	s.Stats.OnPortalUse()
}

func (s Set) ShipUpgrade() {
	if s.Stats == nil {
		return
	}
	defer guard("onShipUpgrade")
	s.Stats.OnShipUpgrade()
}

func (s Set) Effect(kind EffectKind, x, y float64, opts EffectOptions) {
	if s.Effects == nil {
		return
	}
	defer guard("spawnVisualEffect")
	s.Effects.SpawnVisualEffect(kind, x, y, opts)
}

func (s Set) Sound(name string, volume float64) {
	if s.Effects == nil {
		return
	}
	defer guard("playSound")
	s.Effects.PlaySound(name, volume)
}

func (s Set) CountdownTick(event string, remaining int) {
	if s.Notify == nil {
		return
	}
	defer guard("onCountdownTick")
	s.Notify.OnCountdownTick(event, remaining)
}

func (s Set) EventStart(event string) {
	if s.Notify == nil {
		return
	}
	defer guard("onEventStart")
	s.Notify.OnEventStart(event)
}

func (s Set) EventEnd(event string) {
	if s.Notify == nil {
		return
	}
	defer guard("onEventEnd")
	s.Notify.OnEventEnd(event)
}

func (s Set) Ship(state ShipState) {
	if s.Publish == nil {
		return
	}
	defer guard("publishShip")
	s.Publish.PublishShip(state)
}
