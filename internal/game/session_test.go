package game

import (
	"testing"

	"github.com/yuchenlin/typebomb/internal/config"
	"github.com/yuchenlin/typebomb/internal/core"
)

func testGameConfig() config.Game {
	cfg := config.DefaultGame()
	cfg.Gameplay.LevelThreshold = 2
	return cfg
}

func startedSession(t *testing.T, mode Mode) (*Session, *memBoard) {
	t.Helper()
	board := newMemBoard()
	s := NewSession(testGameConfig(), board, 42)
	if err := s.Start(mode); err != nil {
		t.Fatalf("Start(%s): %v", mode, err)
	}
	return s, board
}

func keyFrame(keys ...string) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.AddKey(k)
	}
	return in
}

func hasCue(cues []Cue, want Cue) bool {
	for _, c := range cues {
		if c == want {
			return true
		}
	}
	return false
}

func TestStartRejectsUnknownMode(t *testing.T) {
	s := NewSession(testGameConfig(), newMemBoard(), 1)
	if err := s.Start(Mode("morse")); err == nil {
		t.Fatal("Start with an unknown mode should fail")
	}
	if s.Phase() != PhaseSelecting {
		t.Errorf("phase = %s after rejected start, want selecting", s.Phase())
	}
}

func TestStartResetsState(t *testing.T) {
	s, _ := startedSession(t, ModeLatin)
	s.score = 17
	s.cleared = 17
	s.lives = 1
	s.field.bombs = []Bomb{{ID: 1, Char: "A", X: 100, Y: 50}}

	if err := s.Start(ModeZhuyin); err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot()
	if snap.Score != 0 || snap.Cleared != 0 {
		t.Errorf("score/cleared = %d/%d after restart, want 0/0", snap.Score, snap.Cleared)
	}
	if snap.Lives != s.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, want %d", snap.Lives, s.cfg.Gameplay.Lives)
	}
	if len(snap.Bombs) != 0 {
		t.Error("field should be empty after Start")
	}
	if snap.Mode != ModeZhuyin || snap.Phase != PhasePlaying {
		t.Errorf("mode/phase = %s/%s", snap.Mode, snap.Phase)
	}
}

func TestStepHitScoresAndPopups(t *testing.T) {
	s, _ := startedSession(t, ModeLatin)
	s.field.bombs = []Bomb{{ID: 1, Char: "A", X: 120, Y: 80}}

	cues := s.Step(keyFrame("a"), 16)

	if !hasCue(cues, CueHit) {
		t.Errorf("cues = %v, want a hit cue", cues)
	}
	snap := s.Snapshot()
	if snap.Score != 1 || snap.Cleared != 1 {
		t.Errorf("score/cleared = %d/%d, want 1/1", snap.Score, snap.Cleared)
	}
	if len(snap.Bombs) != 0 {
		t.Error("hit bomb should be removed")
	}
	if len(snap.Popups) != 1 {
		t.Fatalf("popups = %v, want one score marker", snap.Popups)
	}
	if p := snap.Popups[0]; p.Text != "+1" || p.X != 120 || p.Y != 80 {
		t.Errorf("popup = %+v, want +1 at the bomb's last position", p)
	}
}

func TestStepZhuyinHitNeedsMappedKey(t *testing.T) {
	s, _ := startedSession(t, ModeZhuyin)
	s.field.bombs = []Bomb{{ID: 1, Char: "ㄅ", X: 120, Y: 80}}

	if cues := s.Step(keyFrame("ㄅ"), 16); hasCue(cues, CueHit) {
		t.Error("the glyph rune itself must not clear a zhuyin bomb")
	}
	if cues := s.Step(keyFrame("1"), 16); !hasCue(cues, CueHit) {
		t.Error("the mapped layout key should clear the bomb")
	}
}

func TestStepTierAdvanceRetunesTimers(t *testing.T) {
	s, _ := startedSession(t, ModeLatin) // threshold 2
	s.field.bombs = []Bomb{
		{ID: 1, Char: "A", X: 100, Y: 80},
		{ID: 2, Char: "B", X: 200, Y: 80},
	}

	s.Step(keyFrame("a"), 16)
	if s.track.Index() != 0 {
		t.Fatalf("tier advanced after 1 clear, index %d", s.track.Index())
	}
	s.Step(keyFrame("b"), 16)
	if s.track.Index() != 1 {
		t.Fatalf("tier index = %d after 2 clears with threshold 2, want 1", s.track.Index())
	}

	tier := s.track.Current()
	if s.fallTimer.everyMs != float64(tier.FallIntervalMs)/10 {
		t.Errorf("fall timer at %gms, want %gms", s.fallTimer.everyMs, float64(tier.FallIntervalMs)/10)
	}
	if s.spawnTimer.everyMs != float64(tier.SpawnIntervalMs) {
		t.Errorf("spawn timer at %gms, want %dms", s.spawnTimer.everyMs, tier.SpawnIntervalMs)
	}
}

func TestStepFallMovesBombs(t *testing.T) {
	s, _ := startedSession(t, ModeLatin)
	s.field.bombs = []Bomb{{ID: 1, Char: "A", X: 100, Y: 0}}

	// First tier falls 10 units every FallIntervalMs/10.
	step := float64(s.cfg.Tiers[0].FallIntervalMs) / 10
	s.Step(core.NewInputFrame(), step)

	if got := s.field.bombs[0].Y; got != fallStep {
		t.Errorf("bomb at Y=%g after one fall interval, want %g", got, fallStep)
	}
}

func TestStepBreachCostsLife(t *testing.T) {
	s, _ := startedSession(t, ModeLatin)
	floor := s.cfg.Field.Height
	s.field.bombs = []Bomb{{ID: 1, Char: "A", X: 100, Y: floor - s.cfg.Field.BombRadius}}
	livesBefore := s.lives

	cues := s.Step(core.NewInputFrame(), breachCheckMs)

	if !hasCue(cues, CueMiss) {
		t.Errorf("cues = %v, want a miss cue", cues)
	}
	if s.lives != livesBefore-1 {
		t.Errorf("lives = %d, want %d", s.lives, livesBefore-1)
	}
	if s.field.Len() != 0 {
		t.Error("breached bomb should leave the field")
	}
}

func TestStepMultiBreachSingleMissCue(t *testing.T) {
	s, _ := startedSession(t, ModeLatin)
	floor := s.cfg.Field.Height
	s.field.bombs = []Bomb{
		{ID: 1, Char: "A", X: 100, Y: floor},
		{ID: 2, Char: "B", X: 200, Y: floor},
	}
	livesBefore := s.lives

	cues := s.Step(core.NewInputFrame(), breachCheckMs)

	misses := 0
	for _, c := range cues {
		if c == CueMiss {
			misses++
		}
	}
	if misses != 1 {
		t.Errorf("got %d miss cues for one sweep, want 1", misses)
	}
	if s.lives != livesBefore-2 {
		t.Errorf("lives = %d, want %d", s.lives, livesBefore-2)
	}
}

func TestStepGameOverClampsLives(t *testing.T) {
	s, _ := startedSession(t, ModeLatin)
	s.lives = 1
	floor := s.cfg.Field.Height
	s.field.bombs = []Bomb{
		{ID: 1, Char: "A", X: 100, Y: floor},
		{ID: 2, Char: "B", X: 200, Y: floor},
	}

	cues := s.Step(core.NewInputFrame(), breachCheckMs)

	if s.lives != 0 {
		t.Errorf("lives = %d, want clamp at 0", s.lives)
	}
	if s.Phase() != PhaseEnded {
		t.Errorf("phase = %s, want ended", s.Phase())
	}
	if !hasCue(cues, CueMiss) || !hasCue(cues, CueGameOver) {
		t.Errorf("cues = %v, want miss and game-over", cues)
	}
	if s.field.Len() != 0 {
		t.Error("field should be empty after game over")
	}
}

func TestStepAfterEndedIsInert(t *testing.T) {
	s, _ := startedSession(t, ModeLatin)
	s.lives = 1
	s.field.bombs = []Bomb{{ID: 1, Char: "A", X: 100, Y: s.cfg.Field.Height}}
	s.Step(core.NewInputFrame(), breachCheckMs)
	if s.Phase() != PhaseEnded {
		t.Fatalf("phase = %s, want ended", s.Phase())
	}

	// Long after the end, stopped timers must not spawn or score anything.
	for i := 0; i < 10; i++ {
		if cues := s.Step(keyFrame("a"), 10_000); len(cues) != 0 {
			t.Fatalf("ended session emitted cues %v", cues)
		}
	}
	if s.field.Len() != 0 || s.score != 0 {
		t.Errorf("ended session mutated: %d bombs, score %d", s.field.Len(), s.score)
	}
}

func TestStepPauseFreezesField(t *testing.T) {
	s, _ := startedSession(t, ModeLatin)
	s.field.bombs = []Bomb{{ID: 1, Char: "A", X: 100, Y: 50}}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	s.Step(pause, 16)
	if !s.Paused() {
		t.Fatal("session should be paused")
	}

	s.Step(core.NewInputFrame(), 10_000)
	if got := s.field.bombs[0].Y; got != 50 {
		t.Errorf("bomb moved to Y=%g while paused", got)
	}

	s.Step(pause, 16)
	if s.Paused() {
		t.Error("second pause press should resume")
	}
}

func TestPopupsExpireAfterGameOver(t *testing.T) {
	s, _ := startedSession(t, ModeLatin)
	s.field.bombs = []Bomb{{ID: 1, Char: "A", X: 100, Y: 50}}
	s.Step(keyFrame("a"), 16)
	if len(s.popups) != 1 {
		t.Fatalf("popups = %v, want 1", s.popups)
	}

	s.lives = 1
	s.field.bombs = []Bomb{{ID: 2, Char: "B", X: 200, Y: s.cfg.Field.Height}}
	s.Step(core.NewInputFrame(), breachCheckMs)
	if s.Phase() != PhaseEnded {
		t.Fatal("expected game over")
	}

	// The popup clock keeps running in the Ended phase.
	s.Step(core.NewInputFrame(), float64(s.cfg.Gameplay.PopupMs)+100)
	if len(s.popups) != 0 {
		t.Errorf("popups = %v after their lifetime, want none", s.popups)
	}
}

func TestSpawnDeterminismWithSeed(t *testing.T) {
	run := func() []Bomb {
		s := NewSession(testGameConfig(), newMemBoard(), 42)
		if err := s.Start(ModeLatin); err != nil {
			t.Fatal(err)
		}
		spawnMs := float64(s.cfg.Tiers[0].SpawnIntervalMs)
		for i := 0; i < 3; i++ {
			s.Step(core.NewInputFrame(), spawnMs)
		}
		return s.Snapshot().Bombs
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("runs spawned %d and %d bombs", len(a), len(b))
	}
	for i := range a {
		// Bomb ids come from a process-wide sequence; everything else
		// must match between same-seed runs.
		if a[i].Char != b[i].Char || a[i].X != b[i].X || a[i].Y != b[i].Y {
			t.Errorf("bomb %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestFinalizeOnlyWhenEnded(t *testing.T) {
	s, board := startedSession(t, ModeLatin)
	if _, err := s.Finalize("ada"); err == nil {
		t.Fatal("Finalize during play should fail")
	}
	if board.saves != 0 {
		t.Error("nothing should be persisted before the session ends")
	}
}

func TestFinalizeRecordsOnce(t *testing.T) {
	s, board := startedSession(t, ModeLatin)
	s.score = 12
	s.end()

	entries, err := s.Finalize("ada")
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "ada" || entries[0].Score != 12 {
		t.Errorf("entries = %v, want ada with score 12", entries)
	}

	// A second call returns the board without writing again.
	entries, err = s.Finalize("ada")
	if err != nil {
		t.Fatalf("repeat Finalize: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("repeat Finalize returned %v", entries)
	}
	if board.saves != 1 {
		t.Errorf("saves = %d, want exactly 1", board.saves)
	}
}

func TestRestartReturnsToSelection(t *testing.T) {
	s, _ := startedSession(t, ModeLatin)
	s.end()
	s.Restart()
	if s.Phase() != PhaseSelecting {
		t.Errorf("phase = %s after Restart, want selecting", s.Phase())
	}
	if err := s.Start(ModeLatin); err != nil {
		t.Fatalf("Start after Restart: %v", err)
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %s, want playing", s.Phase())
	}
}
