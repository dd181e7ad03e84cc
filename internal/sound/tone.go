package sound

import (
	"encoding/binary"
	"math"
	"time"
)

// fadeLength ramps the tone in and out so the speaker doesn't click.
const fadeLength = 5 * time.Millisecond

// Tone renders a mono sine wave as signed 16-bit little-endian PCM.
// volume is clamped to [0, 1].
func Tone(freq float64, d time.Duration, sampleRate int, volume float64) []byte {
	if d <= 0 || sampleRate <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))

	n := int(float64(sampleRate) * d.Seconds())
	fade := int(float64(sampleRate) * fadeLength.Seconds())
	if fade*2 > n {
		fade = n / 2
	}

	pcm := make([]byte, n*2)
	for i := 0; i < n; i++ {
		amp := volume
		switch {
		case i < fade:
			amp *= float64(i) / float64(fade)
		case n-1-i < fade:
			amp *= float64(n-1-i) / float64(fade)
		}
		v := amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(v*math.MaxInt16)))
	}
	return pcm
}
