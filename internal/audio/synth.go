package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Pentatonic notes in Hz, C major.
var ambientNotes = []float64{261.63, 293.66, 329.63, 392.00, 440.00, 392.00, 329.63, 293.66}

// ambientGen plays a soft endless arpeggio, one note per beat.
type ambientGen struct {
	sr     beep.SampleRate
	volume float64
	beat   int
	pos    int
}

func newAmbient(sr beep.SampleRate, volume float64) *ambientGen {
	return &ambientGen{sr: sr, volume: volume, beat: sr.N(250 * time.Millisecond)}
}

func (g *ambientGen) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		note := ambientNotes[(g.pos/g.beat)%len(ambientNotes)]
		inBeat := float64(g.pos%g.beat) / float64(g.beat)
		t := float64(g.pos) / float64(g.sr)

		// Plucked envelope: fast attack, exponential decay.
		env := math.Min(inBeat*50, 1) * math.Exp(-4*inBeat)
		v := 0.12 * g.volume * env * (math.Sin(2*math.Pi*note*t) + 0.3*math.Sin(4*math.Pi*note*t))

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ambientGen) Err() error { return nil }

// cueGen is a rising fanfare; the caller bounds its length with beep.Take.
type cueGen struct {
	sr     beep.SampleRate
	volume float64
	pos    int
}

var cueNotes = []float64{523.25, 659.25, 783.99, 1046.50}

func newCue(sr beep.SampleRate, volume float64) *cueGen {
	return &cueGen{sr: sr, volume: volume}
}

func (g *cueGen) Stream(samples [][2]float64) (int, bool) {
	step := g.sr.N(200 * time.Millisecond)
	for i := range samples {
		idx := g.pos / step
		if idx >= len(cueNotes) {
			idx = len(cueNotes) - 1 // hold the last note
		}
		t := float64(g.pos) / float64(g.sr)
		decay := math.Exp(-1.2 * t)
		v := 0.2 * g.volume * decay * math.Sin(2*math.Pi*cueNotes[idx]*t)

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *cueGen) Err() error { return nil }
