package tone

import (
	"encoding/binary"
	"testing"
	"time"

	cfg "github.com/automoto/cosmic-survivor/config"
)

func TestSynthesizeLength(t *testing.T) {
	tone := cfg.ToneConfig{Wave: cfg.WaveSine, StartHz: 440, EndHz: 440, Duration: 100 * time.Millisecond, Gain: 1}
	got := Synthesize(tone, 44100)
	if want := 4410 * 4; len(got) != want {
		t.Fatalf("len = %d, want %d", len(got), want)
	}
}

func TestSynthesizeStereoChannelsMatch(t *testing.T) {
	tone := cfg.ToneConfig{Wave: cfg.WaveNoise, Duration: 10 * time.Millisecond, Gain: 0.5}
	pcm := Synthesize(tone, 8000)
	for i := 0; i+4 <= len(pcm); i += 4 {
		l := binary.LittleEndian.Uint16(pcm[i:])
		r := binary.LittleEndian.Uint16(pcm[i+2:])
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
	}
}

func TestSynthesizeDecaysToSilence(t *testing.T) {
	tone := cfg.ToneConfig{Wave: cfg.WaveSquare, StartHz: 100, EndHz: 100, Duration: 50 * time.Millisecond, Gain: 1}
	pcm := Synthesize(tone, 8000)
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if first == 0 {
		t.Fatalf("first sample silent")
	}
	if abs(int(last)) >= abs(int(first)) {
		t.Errorf("last sample %d not quieter than first %d", last, first)
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	if got := Synthesize(cfg.ToneConfig{}, 44100); got != nil {
		t.Errorf("zero duration produced %d bytes", len(got))
	}
}

func TestEveryConfiguredToneRenders(t *testing.T) {
	for name, tone := range cfg.Sound.Tones {
		if len(Synthesize(tone, cfg.Audio.SampleRate)) == 0 {
			t.Errorf("tone %q rendered nothing", name)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
