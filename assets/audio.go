package assets

import (
	"fmt"
	"math"

	"github.com/automoto/cosmic-survivor/assets/tone"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundBank synthesizes the configured tones once and hands out players for
// them. There are no audio files; every effect is generated PCM.
type SoundBank struct {
	context *audio.Context
	cache   map[string][]byte // decoded 16-bit stereo PCM per sound name
	voices  []*audio.Player
	volume  float64
}

// NewSoundBank creates a bank bound to ctx and pre-renders every tone.
func NewSoundBank(ctx *audio.Context) *SoundBank {
	b := &SoundBank{
		context: ctx,
		cache:   make(map[string][]byte, len(cfg.Sound.Tones)),
		volume:  cfg.Audio.DefaultSFXVol,
	}
	for name, t := range cfg.Sound.Tones {
		b.cache[name] = tone.Synthesize(t, ctx.SampleRate())
	}
	return b
}

// SetVolume sets the master effect volume in [0, 1].
func (b *SoundBank) SetVolume(v float64) {
	b.volume = math.Max(0, math.Min(1, v))
}

// Play starts the named sound. Unknown names are an error; a full voice
// table silently drops the request.
func (b *SoundBank) Play(name string, volume float64) error {
	data, ok := b.cache[name]
	if !ok {
		return fmt.Errorf("unknown sound %q", name)
	}
	if b.volume <= 0 || volume <= 0 {
		return nil
	}

	b.reap()
	if len(b.voices) >= cfg.Audio.MaxVoices {
		return nil
	}

	player := b.context.NewPlayerFromBytes(data)
	player.SetVolume(b.volume * volume)
	player.Play()
	b.voices = append(b.voices, player)
	return nil
}

// reap closes players that have finished.
func (b *SoundBank) reap() {
	live := b.voices[:0]
	for _, p := range b.voices {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	b.voices = live
}
