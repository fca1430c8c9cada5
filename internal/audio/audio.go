// Package audio plays short synthesized cues for ship events. Playback
// is fire-and-forget: the simulation never consults a result, and every
// cue degrades to a no-op when the speaker fails to initialize (headless
// terminals, SSH sessions without local audio).
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cue names understood by Play. Unknown names are ignored.
const (
	CueBuild  = "build"  // construction confirmed
	CueRepair = "repair" // repair completed
	CueCrack  = "crack"  // module broke
	CueSplash = "splash" // hull started flooding
	CueSunk   = "sunk"   // ship lost
)

// Player owns the speaker and a persistent mixer that cue streamers are
// added to. The zero value is unusable; call NewPlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player. Call Init before Play; a
// failed or skipped Init leaves Play a silent no-op.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer. The speaker itself stays open; beep exposes
// no per-player teardown.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// Play queues the named cue. Safe to call from the simulation at any
// rate; the mixer sums overlapping cues.
func (p *Player) Play(cue string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	var s beep.Streamer
	switch cue {
	case CueBuild:
		s = beep.Take(sampleRate.N(time.Millisecond*180), newChime(sampleRate, 440, 660))
	case CueRepair:
		s = beep.Take(sampleRate.N(time.Millisecond*220), newChime(sampleRate, 330, 440))
	case CueCrack:
		s = beep.Take(sampleRate.N(time.Millisecond*250), newCrackle(sampleRate))
	case CueSplash:
		s = beep.Take(sampleRate.N(time.Millisecond*300), newWash(sampleRate))
	case CueSunk:
		s = beep.Take(sampleRate.N(time.Millisecond*900), newDescent(sampleRate))
	default:
		return
	}
	p.mixer.Add(s)
}
