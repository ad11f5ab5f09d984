// Package audio plays the session's sound cues through gopxl/beep. Playback
// is best effort: when the speaker cannot be initialized the player stays
// disabled and every Play call is a no-op, so a headless or broken audio
// stack never affects gameplay.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/yuchenlin/typebomb/internal/game"
)

const sampleRate = beep.SampleRate(48000)

// Player maps engine cues to synthesized one-shot sounds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before playing.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init sets up the speaker. A failure is logged and leaves the player
// disabled; it never propagates to the caller.
func (p *Player) Init() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		log.Warn("audio disabled", "error", err)
		return
	}

	speaker.Play(p.mixer)
	p.initialized = true
}

// Play queues the one-shot sound for a cue. Safe to call whether or not
// Init succeeded.
func (p *Player) Play(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	switch cue {
	case game.CueHit:
		// Short high blip.
		p.mixer.Add(beep.Take(sampleRate.N(time.Millisecond*80), newToneGenerator(sampleRate, 880)))
	case game.CueMiss:
		// Low buzz.
		p.mixer.Add(beep.Take(sampleRate.N(time.Millisecond*200), newBuzzGenerator(sampleRate, 110)))
	case game.CueGameOver:
		// Descending sweep.
		p.mixer.Add(beep.Take(sampleRate.N(time.Millisecond*900), newSweepGenerator(sampleRate, 600, 90, time.Millisecond*900)))
	}
}

// Close silences the mixer. The speaker itself has no close; clearing the
// mixer stops all queued streamers.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// toneGenerator produces a pure sine tone with a soft decay envelope.
type toneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newToneGenerator(sr beep.SampleRate, freq float64) *toneGenerator {
	return &toneGenerator{sr: sr, freq: freq}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		amplitude := 0.2 * math.Exp(-t*20)
		sample := amplitude * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

// buzzGenerator produces a harsh square-ish buzz.
type buzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzzGenerator(sr beep.SampleRate, freq float64) *buzzGenerator {
	return &buzzGenerator{sr: sr, freq: freq}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Square wave with a couple of harmonics for grit.
		sample := 0.0
		for h := 1.0; h <= 5; h += 2 {
			sample += math.Sin(2*math.Pi*g.freq*h*t) / h
		}
		sample *= 0.15

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error {
	return nil
}

// sweepGenerator glides linearly from one frequency to another over the
// given duration, fading out as it goes.
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func newSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *sweepGenerator {
	return &sweepGenerator{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.total)
		if progress > 1 {
			progress = 1
		}
		freq := g.from + (g.to-g.from)*progress
		amplitude := 0.25 * (1 - progress)

		// Accumulate phase so the glide stays continuous.
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := amplitude * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}
