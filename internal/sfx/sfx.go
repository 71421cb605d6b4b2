// Package sfx plays short synthesised sound cues for game events.
package sfx

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies a game event with a sound.
type Cue int

const (
	CueEnemyHit Cue = iota
	CueBossHit
	CueShipHit
	CueWin
	CueLose
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueEnemyHit:
		return "enemy-hit"
	case CueBossHit:
		return "boss-hit"
	case CueShipHit:
		return "ship-hit"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Player plays cues. Implementations must not block the game loop.
type Player interface {
	Play(c Cue)
}

// Silent discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}

const sampleRate = beep.SampleRate(44100)

// note is one tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[Cue][]note{
	CueEnemyHit: {{880, 50 * time.Millisecond}},
	CueBossHit:  {{440, 40 * time.Millisecond}, {660, 40 * time.Millisecond}},
	CueShipHit:  {{220, 120 * time.Millisecond}, {110, 180 * time.Millisecond}},
	CueWin:      {{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 200 * time.Millisecond}},
	CueLose:     {{392, 150 * time.Millisecond}, {311.13, 150 * time.Millisecond}, {196, 300 * time.Millisecond}},
}

// Streamer builds the finite stream for a cue at the given volume (0..1).
// Returns nil for unknown cues.
func Streamer(c Cue, volume float64) beep.Streamer {
	notes, ok := cues[c]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return withVolume(beep.Seq(parts...), volume)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Speaker plays cues on the default audio device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSpeaker creates a speaker. Call Init before playing.
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the audio device.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues a cue on the mixer. Does nothing before Init succeeds.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := Streamer(c, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all pending sounds.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	s.initialized = false
}

// Recorder remembers the cues it was asked to play.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

// Play records c.
func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, x := range r.cues {
		if x == c {
			n++
		}
	}
	return n
}
