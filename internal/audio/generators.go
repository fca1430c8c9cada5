package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// chime is a two-tone arpeggio: the first frequency for the front half,
// the second for the back half, each with a fast decay.
type chime struct {
	sr     beep.SampleRate
	first  float64
	second float64
	pos    int
}

func newChime(sr beep.SampleRate, first, second float64) *chime {
	return &chime{sr: sr, first: first, second: second}
}

func (g *chime) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(90 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := g.first
		local := g.pos
		if g.pos >= half {
			freq = g.second
			local = g.pos - half
		}
		env := math.Exp(-float64(local) / float64(g.sr) * 12)
		sample := 0.2 * env * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chime) Err() error { return nil }

// crackle is filtered noise over a low rumble, for structural failure.
type crackle struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func newCrackle(sr beep.SampleRate) *crackle {
	return &crackle{sr: sr, seed: 0x5eed}
}

func (g *crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 9)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := env * (0.25*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *crackle) Err() error { return nil }

// wash is noise shaped by a slow swell, for water rushing in.
type wash struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func newWash(sr beep.SampleRate) *wash {
	return &wash{sr: sr, seed: 0x7a7e}
}

func (g *wash) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		swell := math.Sin(math.Pi * math.Min(t/0.3, 1))

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := 0.18 * swell * noise
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *wash) Err() error { return nil }

// descent is a falling tone with a long decay, for the loss screen.
type descent struct {
	sr  beep.SampleRate
	pos int
}

func newDescent(sr beep.SampleRate) *descent {
	return &descent{sr: sr}
}

func (g *descent) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := 280 * math.Exp(-t*1.6)
		env := math.Exp(-t * 2.2)

		sample := 0.25 * env * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *descent) Err() error { return nil }
