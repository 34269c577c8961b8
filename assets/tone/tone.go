// Package tone renders synthesized sound effects to raw PCM.
package tone

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	cfg "github.com/automoto/cosmic-survivor/config"
)

// Synthesize renders tone as little-endian 16-bit stereo PCM, the format an
// audio.Context consumes.
func Synthesize(tone cfg.ToneConfig, sampleRate int) []byte {
	n := int(tone.Duration.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}

	out := make([]byte, n*4)
	noise := rand.New(rand.NewPCG(uint64(n), uint64(tone.Wave)))
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		var v float64
		switch tone.Wave {
		case cfg.WaveSquare:
			if math.Sin(phase) >= 0 {
				v = 1
			} else {
				v = -1
			}
		case cfg.WaveNoise:
			v = noise.Float64()*2 - 1
		default:
			v = math.Sin(phase)
		}

		sample := int16(v * tone.Gain * (1 - t) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(sample))
	}
	return out
}
