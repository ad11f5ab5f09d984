package game

// Snapshot is a read-only view of the session for renderers. Rendering
// collaborators consume a snapshot each frame and never mutate engine state.
type Snapshot struct {
	Mode    Mode
	Phase   Phase
	Paused  bool
	Score   int
	Lives   int
	Cleared int

	TierIndex int
	TierName  string
	TierCount int

	FieldWidth  float64
	FieldHeight float64
	BombRadius  float64

	Bombs  []Bomb
	Popups []Popup
}

// Snapshot captures the current state. Bombs and popups are copied so the
// caller can hold the snapshot across engine steps.
func (s *Session) Snapshot() Snapshot {
	popups := make([]Popup, len(s.popups))
	copy(popups, s.popups)

	return Snapshot{
		Mode:        s.mode,
		Phase:       s.phase,
		Paused:      s.paused,
		Score:       s.score,
		Lives:       s.lives,
		Cleared:     s.cleared,
		TierIndex:   s.track.Index(),
		TierName:    s.track.Current().Name,
		TierCount:   len(s.cfg.Tiers),
		FieldWidth:  s.cfg.Field.Width,
		FieldHeight: s.cfg.Field.Height,
		BombRadius:  s.cfg.Field.BombRadius,
		Bombs:       s.field.Bombs(),
		Popups:      popups,
	}
}
