package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/automoto/cosmic-survivor/assets"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/hooks"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	maxParticles   = 512
	particleLife   = 0.6 // seconds
	bannerDuration = 2.5 // seconds
)

type particle struct {
	x, y   float64
	vx, vy float64
	life   float64
	size   float64
	clr    color.RGBA
}

type ring struct {
	x, y   float64
	radius *gween.Tween
	clr    color.RGBA
}

// effectLayer draws the transient visuals the simulation asks for and plays
// its sounds. It implements hooks.Effects and hooks.Notifier.
type effectLayer struct {
	particles []particle
	rings     []ring
	sounds    *assets.SoundBank
	rand      *rand.Rand

	banner     string
	bannerFade *gween.Tween
	bannerA    float32
}

var (
	_ hooks.Effects  = (*effectLayer)(nil)
	_ hooks.Notifier = (*effectLayer)(nil)
)

func newEffectLayer(sounds *assets.SoundBank, seed uint64) *effectLayer {
	return &effectLayer{
		sounds: sounds,
		rand:   rand.New(rand.NewPCG(seed, seed+1)),
	}
}

func (l *effectLayer) SpawnVisualEffect(kind hooks.EffectKind, x, y float64, opts hooks.EffectOptions) {
	clr := opts.Color
	if clr.A == 0 {
		clr = cfg.White
	}

	switch kind {
	case hooks.EffectTeleport, hooks.EffectShieldBlock, hooks.EffectDimensionShift:
		size := opts.Size
		if size <= 0 {
			size = 40
		}
		l.rings = append(l.rings, ring{
			x: x, y: y, clr: clr,
			radius: gween.New(float32(size*0.2), float32(size), 0.5, ease.OutCubic),
		})
		return
	}

	count := opts.Count
	if count <= 0 {
		count = 4
	}
	count *= 4
	speed := 120.0
	if kind == hooks.EffectHit || kind == hooks.EffectMuzzleFlash {
		speed = 60
	}
	for i := 0; i < count && len(l.particles) < maxParticles; i++ {
		angle := l.rand.Float64() * 2 * math.Pi
		v := speed * (0.4 + l.rand.Float64()*0.6)
		l.particles = append(l.particles, particle{
			x: x, y: y,
			vx: math.Cos(angle) * v, vy: math.Sin(angle) * v,
			life: particleLife,
			size: 1.5 + l.rand.Float64()*2,
			clr:  clr,
		})
	}
}

func (l *effectLayer) PlaySound(name string, volume float64) {
	if l.sounds == nil {
		return
	}
	if err := l.sounds.Play(name, volume); err != nil {
		log.Printf("[audio] %v", err)
	}
}

func (l *effectLayer) OnCountdownTick(event string, remaining int) {
	l.showBanner(fmt.Sprintf("%s IN %d", strings.ToUpper(event), remaining))
}

func (l *effectLayer) OnEventStart(event string) {
	l.showBanner(strings.ToUpper(event) + " EVENT")
}

func (l *effectLayer) OnEventEnd(event string) {
	l.showBanner(strings.ToUpper(event) + " SURVIVED")
}

func (l *effectLayer) showBanner(msg string) {
	l.banner = msg
	l.bannerFade = gween.New(1, 0, bannerDuration, ease.InQuad)
	l.bannerA = 1
}

func (l *effectLayer) update(dt float64) {
	live := l.particles[:0]
	for _, p := range l.particles {
		p.life -= dt
		if p.life <= 0 {
			continue
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
		live = append(live, p)
	}
	l.particles = live

	rings := l.rings[:0]
	for _, r := range l.rings {
		if _, done := r.radius.Update(float32(dt)); !done {
			rings = append(rings, r)
		}
	}
	l.rings = rings

	if l.bannerFade != nil {
		a, done := l.bannerFade.Update(float32(dt))
		l.bannerA = a
		if done {
			l.bannerFade = nil
			l.banner = ""
		}
	}
}

func (l *effectLayer) draw(screen *ebiten.Image) {
	for _, p := range l.particles {
		vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), float32(p.size), fade(p.clr, p.life/particleLife), false)
	}
	for _, r := range l.rings {
		radius, _ := r.radius.Update(0)
		vector.StrokeCircle(screen, float32(r.x), float32(r.y), radius, 2, r.clr, true)
	}
}

// fade scales a straight-alpha colour into premultiplied form at alpha f.
func fade(c color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f)) * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(255 * f),
	}
}
