package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/yuchenlin/typebomb/internal/config"
	"github.com/yuchenlin/typebomb/internal/core"
)

// Phase is the session lifecycle state. Exactly one phase is active at any
// time; the bomb field is empty whenever the phase is not Playing.
type Phase int

const (
	PhaseSelecting Phase = iota // picking a mode, nothing falls
	PhasePlaying
	PhaseEnded
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Cue is a discrete audio signal emitted by the session. Cues are
// fire-and-forget for collaborators; playback failures never feed back into
// the engine.
type Cue int

const (
	CueHit Cue = iota
	CueMiss
	CueGameOver
)

// Popup is a transient score marker shown at a cleared bomb's last position.
// Popups expire on their own clock, independent of the session phase.
type Popup struct {
	Text        string
	X, Y        float64
	ExpiresAtMs float64
}

const (
	// fallStep is the vertical distance bombs drop per fall-timer firing.
	fallStep = 10.0
	// breachCheckMs is the cadence of the floor-breach sweep.
	breachCheckMs = 100.0
)

// interval is a logical repeating timer fed by elapsed milliseconds. All of
// a session's intervals live on the session object and are stopped together
// when it leaves the Playing phase, so no stale timer can mutate state after
// a session ends or restarts.
type interval struct {
	everyMs float64
	accMs   float64
	active  bool
}

func (iv *interval) arm(everyMs float64) {
	iv.everyMs = everyMs
	iv.accMs = 0
	iv.active = true
}

// retune changes the cadence without dropping time already accumulated.
func (iv *interval) retune(everyMs float64) {
	iv.everyMs = everyMs
	if iv.accMs > everyMs {
		iv.accMs = everyMs
	}
}

func (iv *interval) stop() {
	iv.active = false
	iv.accMs = 0
}

// advance feeds elapsed time and returns how many times the interval fired.
func (iv *interval) advance(elapsedMs float64) int {
	if !iv.active || iv.everyMs <= 0 {
		return 0
	}
	iv.accMs += elapsedMs
	fired := 0
	for iv.accMs >= iv.everyMs {
		iv.accMs -= iv.everyMs
		fired++
	}
	return fired
}

// Session orchestrates one run of the game: it owns lives, score and the
// cleared-bomb count, drives the spawn/fall/breach timers, applies
// keystrokes, detects game over and finalizes a leaderboard entry. All
// mutation happens inside Step, which runs to completion before the next
// input arrives (single-threaded cooperative scheduling).
type Session struct {
	cfg   config.Game
	board Leaderboard
	rng   *rand.Rand

	mode    Mode
	phase   Phase
	paused  bool
	score   int
	lives   int
	cleared int

	track  *Track
	field  *Field
	popups []Popup

	clockMs     float64
	fallTimer   interval
	spawnTimer  interval
	breachTimer interval

	finalized bool
}

// NewSession creates a session in the SelectingMode phase. The config must
// already be validated.
func NewSession(cfg config.Game, board Leaderboard, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return &Session{
		cfg:   cfg,
		board: board,
		rng:   rng,
		phase: PhaseSelecting,
		track: NewTrack(cfg.Tiers),
		field: NewField(cfg.Field.Width, cfg.Field.BombRadius, rng),
	}
}

// Start enters the Playing phase for the given mode. Unknown modes and
// empty catalogs are configuration errors rejected before anything falls.
func (s *Session) Start(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("game: unknown mode %q", mode)
	}
	if len(Chars(mode)) == 0 {
		return fmt.Errorf("game: mode %q has an empty character catalog", mode)
	}

	s.mode = mode
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.cleared = 0
	s.paused = false
	s.finalized = false
	s.track.Reset()
	s.field.Clear()
	s.popups = nil

	s.armTimers()
	s.phase = PhasePlaying
	return nil
}

// armTimers sets all three interval timers to the current tier's cadence.
func (s *Session) armTimers() {
	tier := s.track.Current()
	s.fallTimer.arm(float64(tier.FallIntervalMs) / 10)
	s.spawnTimer.arm(float64(tier.SpawnIntervalMs))
	s.breachTimer.arm(breachCheckMs)
}

// stopTimers deterministically tears down the spawn, fall and breach timers.
// Called on every exit from the Playing phase.
func (s *Session) stopTimers() {
	s.fallTimer.stop()
	s.spawnTimer.stop()
	s.breachTimer.stop()
}

// Step advances the session by elapsedMs of wall time, consuming one input
// frame. It returns the audio cues produced this step. Outside the Playing
// phase only the popup clock keeps running; stopped timers cannot fire.
func (s *Session) Step(in core.InputFrame, elapsedMs float64) []Cue {
	var cues []Cue

	if in.Has(core.ActionPause) && s.phase == PhasePlaying {
		s.paused = !s.paused
	}

	if s.phase != PhasePlaying || s.paused {
		// Popups live on their own clock and keep expiring even after the
		// session has ended.
		if !s.paused {
			s.clockMs += elapsedMs
			s.prunePopups()
		}
		return cues
	}

	s.clockMs += elapsedMs
	s.prunePopups()

	// Keystrokes first: a hit on this frame clears the bomb before it can
	// fall or breach on the same frame.
	for _, key := range in.Keys {
		if cue, ok := s.applyKey(key); ok {
			cues = append(cues, cue...)
		}
		if s.phase != PhasePlaying {
			return cues
		}
	}

	if n := s.fallTimer.advance(elapsedMs); n > 0 {
		s.field.Advance(fallStep * float64(n))
	}

	for range s.spawnTimer.advance(elapsedMs) {
		s.field.Spawn(s.mode, s.track.Current().BombsPerWave)
	}

	for range s.breachTimer.advance(elapsedMs) {
		if cue, fired := s.sweepFloor(); fired {
			cues = append(cues, cue...)
		}
		if s.phase != PhasePlaying {
			break
		}
	}

	return cues
}

// applyKey resolves one pressed key against the field. On a hit it updates
// score and cleared count, emits a score popup at the bomb's last position
// and consults the difficulty track.
func (s *Session) applyKey(key string) ([]Cue, bool) {
	bomb, ok := s.field.ResolveHit(key, s.mode)
	if !ok {
		return nil, false
	}

	s.score++
	s.cleared++
	s.popups = append(s.popups, Popup{
		Text:        "+1",
		X:           bomb.X,
		Y:           bomb.Y,
		ExpiresAtMs: s.clockMs + float64(s.cfg.Gameplay.PopupMs),
	})

	before := s.track.Index()
	after := s.track.AdvanceIfEligible(s.cleared, s.cfg.Gameplay.LevelThreshold)
	if after != before {
		tier := s.track.Current()
		s.fallTimer.retune(float64(tier.FallIntervalMs) / 10)
		s.spawnTimer.retune(float64(tier.SpawnIntervalMs))
	}

	return []Cue{CueHit}, true
}

// sweepFloor collects breached bombs, costs one life per bomb (floored at
// zero) and fires a single miss cue per sweep regardless of how many bombs
// breached. Game over is checked immediately after the lives mutation.
func (s *Session) sweepFloor() ([]Cue, bool) {
	breached := s.field.CollectFloorBreaches(s.cfg.Field.Height)
	if len(breached) == 0 {
		return nil, false
	}

	s.lives = core.Clamp(s.lives-len(breached), 0, config.MaxLives)
	cues := []Cue{CueMiss}
	if s.lives == 0 {
		s.end()
		cues = append(cues, CueGameOver)
	}
	return cues, true
}

// end transitions to the Ended phase exactly once, tearing down timers and
// emptying the field.
func (s *Session) end() {
	s.stopTimers()
	s.field.Clear()
	s.paused = false
	s.phase = PhaseEnded
}

// prunePopups drops popups whose lifetime has elapsed.
func (s *Session) prunePopups() {
	live := s.popups[:0]
	for _, p := range s.popups {
		if p.ExpiresAtMs > s.clockMs {
			live = append(live, p)
		}
	}
	s.popups = live
}

// Finalize records the finished session on the mode's leaderboard under the
// given display name (empty means anonymous). It is valid only in the Ended
// phase and records at most once per session. The returned entries are the
// updated board; a persistence failure is returned for the caller to log
// and never re-enters the engine.
func (s *Session) Finalize(name string) ([]Entry, error) {
	if s.phase != PhaseEnded {
		return nil, fmt.Errorf("game: finalize called in phase %s", s.phase)
	}
	if s.finalized {
		if s.board == nil {
			return nil, nil
		}
		entries, err := s.board.Load(s.mode)
		if err != nil {
			return nil, nil
		}
		return entries, nil
	}
	s.finalized = true

	entry := Entry{
		Name:      name,
		Score:     s.score,
		CreatedAt: time.Now(),
	}
	if s.board == nil {
		// No persistence available; show the run's own entry anyway.
		if strings.TrimSpace(entry.Name) == "" {
			entry.Name = DefaultPlayerName
		}
		return []Entry{entry}, nil
	}

	return SubmitScore(s.board, s.mode, entry)
}

// Restart returns an Ended session to mode selection.
func (s *Session) Restart() {
	s.stopTimers()
	s.field.Clear()
	s.paused = false
	s.phase = PhaseSelecting
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Paused reports whether a Playing session is paused.
func (s *Session) Paused() bool {
	return s.paused
}
