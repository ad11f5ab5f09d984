package game

import "github.com/yuchenlin/typebomb/internal/config"

// Track is the ordered difficulty progression for one session. The tier
// index only moves forward and resets with the session.
type Track struct {
	tiers     []config.Tier
	index     int
	lastFired int // cleared count at which the last advance fired
}

// NewTrack creates a track over the configured tiers. The tier list must be
// non-empty (enforced by config validation).
func NewTrack(tiers []config.Tier) *Track {
	return &Track{tiers: tiers}
}

// Reset returns the track to the first tier for a new session.
func (t *Track) Reset() {
	t.index = 0
	t.lastFired = 0
}

// Index returns the current tier index.
func (t *Track) Index() int {
	return t.index
}

// Current returns the active tier.
func (t *Track) Current() config.Tier {
	return t.tiers[t.index]
}

// AdvanceIfEligible moves to the next tier when cleared first reaches a
// positive multiple of threshold. Each threshold crossing fires at most
// once; the index caps at the last tier and never regresses. Returns the
// (possibly unchanged) tier index.
func (t *Track) AdvanceIfEligible(cleared, threshold int) int {
	if threshold <= 0 || cleared <= 0 {
		return t.index
	}
	if cleared%threshold != 0 || cleared == t.lastFired {
		return t.index
	}
	t.lastFired = cleared
	if t.index < len(t.tiers)-1 {
		t.index++
	}
	return t.index
}
