package scenes

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/cosmic-survivor/assets"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/automoto/cosmic-survivor/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type star struct {
	x, y  float64
	speed float64
	size  float32
}

// renderer draws a Snapshot. Decoration is gated by the session's quality
// tier; gameplay bodies are always drawn.
type renderer struct {
	quality   cfg.RenderQualityTier
	stars     []star
	pulse     *gween.Sequence
	offscreen *ebiten.Image
	shaderOp  *ebiten.DrawRectShaderOptions
}

func newRenderer(quality cfg.RenderQualityTier, seed uint64) *renderer {
	r := &renderer{quality: quality}

	rng := rand.New(rand.NewPCG(seed, seed^0xa5a5))
	budget := quality.ParticleBudget()
	r.stars = make([]star, budget)
	for i := range r.stars {
		r.stars[i] = star{
			x:     rng.Float64() * float64(cfg.C.Width),
			y:     rng.Float64() * float64(cfg.C.Height),
			speed: 10 + rng.Float64()*40,
			size:  float32(0.5 + rng.Float64()*1.5),
		}
	}

	// Wormholes breathe between 85% and 115% of their radius.
	r.pulse = gween.NewSequence()
	r.pulse.Add(
		gween.New(0.85, 1.15, 0.6, ease.InOutSine),
		gween.New(1.15, 0.85, 0.6, ease.InOutSine),
	)
	r.pulse.SetLoop(-1)

	if quality == cfg.QualityFull && assets.DimensionShader != nil {
		r.offscreen = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
		r.shaderOp = &ebiten.DrawRectShaderOptions{}
	}
	return r
}

func (r *renderer) update(dt float64) {
	for i := range r.stars {
		s := &r.stars[i]
		s.y += s.speed * dt
		if s.y > float64(cfg.C.Height) {
			s.y -= float64(cfg.C.Height)
		}
	}
	r.pulse.Update(float32(dt))
}

func (r *renderer) draw(screen *ebiten.Image, snap *systems.Snapshot) {
	target := screen
	if r.offscreen != nil {
		r.offscreen.Clear()
		target = r.offscreen
	}
	target.Fill(cfg.UI.BackgroundColor)

	for _, s := range r.stars {
		vector.DrawFilledRect(target, float32(s.x), float32(s.y), s.size, s.size, cfg.Gray, false)
	}

	r.drawEnvironment(target, snap)

	for _, p := range snap.PowerUps {
		clr := cfg.PowerUp.Types[p.Kind].Color
		vector.StrokeCircle(target, float32(p.X), float32(p.Y), float32(p.Radius), 2, clr, true)
		vector.DrawFilledCircle(target, float32(p.X), float32(p.Y), float32(p.Radius*0.5), clr, true)
	}

	for _, e := range snap.Enemies {
		clr := cfg.Enemy.Dimensions[e.Dimension].Color
		vector.DrawFilledCircle(target, float32(e.X), float32(e.Y), float32(e.Radius), clr, true)
		if e.Durable && e.MaxHealth > 0 {
			drawBar(target, e.X-e.Radius, e.Y-e.Radius-6, e.Radius*2, 3, e.Health/e.MaxHealth, cfg.BrightGreen)
		}
	}

	for _, p := range snap.Projectiles {
		clr := cfg.Yellow
		if p.Boosted {
			clr = cfg.Red
		}
		vector.DrawFilledCircle(target, float32(p.X), float32(p.Y), float32(p.Radius), clr, true)
	}

	for _, peer := range snap.Peers {
		drawShip(target, systems.Body{X: peer.X, Y: peer.Y, Radius: cfg.Player.Radius, Rotation: peer.Rotation}, cfg.DarkBlue)
	}

	if !snap.GameOver {
		drawShip(target, snap.Player.Body, cfg.LightBlue)
		if snap.Player.Shield {
			vector.StrokeCircle(target, float32(snap.Player.X), float32(snap.Player.Y),
				float32(snap.Player.Radius+6), 2, cfg.PowerUp.Types[cfg.PowerUpShield].Color, true)
		}
	}

	if r.offscreen != nil {
		r.applyDimensionTint(screen, snap.Dimension)
	}
}

func (r *renderer) drawEnvironment(dst *ebiten.Image, snap *systems.Snapshot) {
	pulse, _, _ := r.pulse.Update(0)
	for _, e := range snap.Environment {
		switch e.Kind {
		case cfg.EnvAsteroid:
			vector.DrawFilledCircle(dst, float32(e.X), float32(e.Y), float32(e.Radius), cfg.Gray, true)
			dx := math.Cos(e.Rotation) * e.Radius
			dy := math.Sin(e.Rotation) * e.Radius
			vector.StrokeLine(dst, float32(e.X), float32(e.Y), float32(e.X+dx), float32(e.Y+dy), 1, cfg.Silver, true)
		case cfg.EnvGravityWell:
			vector.StrokeCircle(dst, float32(e.X), float32(e.Y), float32(e.Radius), 1, cfg.Purple, true)
			vector.DrawFilledCircle(dst, float32(e.X), float32(e.Y), float32(e.Radius*cfg.Environment.WellDamageRatio), cfg.Magenta, true)
		case cfg.EnvWormhole:
			radius := float32(e.Radius)
			if r.quality.Allows(cfg.EffectDecorative) {
				radius *= pulse
			}
			vector.StrokeCircle(dst, float32(e.X), float32(e.Y), radius, 3, cfg.Blue, true)
		}
	}
}

func (r *renderer) applyDimensionTint(screen *ebiten.Image, dim cfg.Dimension) {
	tint := cfg.Enemy.Dimensions[dim].Color
	strength := float32(0.25)
	if dim == cfg.DimensionNormal {
		strength = 0
	}

	r.shaderOp.Images[0] = r.offscreen
	r.shaderOp.Uniforms = map[string]any{
		"Tint":     []float32{float32(tint.R) / 255, float32(tint.G) / 255, float32(tint.B) / 255, 1},
		"Strength": strength,
		"Center":   []float32{float32(cfg.C.Width) / 2, float32(cfg.C.Height) / 2},
	}
	screen.DrawRectShader(cfg.C.Width, cfg.C.Height, assets.DimensionShader, r.shaderOp)
}

func drawShip(dst *ebiten.Image, b systems.Body, clr color.RGBA) {
	nose := b.Radius
	wing := b.Radius * 0.8
	x0, y0 := float32(b.X+math.Cos(b.Rotation)*nose), float32(b.Y+math.Sin(b.Rotation)*nose)
	x1, y1 := float32(b.X+math.Cos(b.Rotation+2.5)*wing), float32(b.Y+math.Sin(b.Rotation+2.5)*wing)
	x2, y2 := float32(b.X+math.Cos(b.Rotation-2.5)*wing), float32(b.Y+math.Sin(b.Rotation-2.5)*wing)

	vector.StrokeLine(dst, x0, y0, x1, y1, 2, clr, true)
	vector.StrokeLine(dst, x1, y1, x2, y2, 2, clr, true)
	vector.StrokeLine(dst, x2, y2, x0, y0, 2, clr, true)
	vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), float32(b.Radius*0.25), clr, true)
}

func drawBar(dst *ebiten.Image, x, y, w, h, ratio float64, fg color.RGBA) {
	ratio = math.Max(0, math.Min(1, ratio))
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), cfg.UI.HealthBarBgColor, false)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w*ratio), float32(h), fg, false)
}
