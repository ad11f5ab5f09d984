package game

import (
	"sort"
	"strings"
	"time"
)

// MaxLeaderboardEntries caps the per-mode leaderboard size.
const MaxLeaderboardEntries = 10

// DefaultPlayerName is used when a finished session submits no name.
const DefaultPlayerName = "anonymous"

// Entry is one leaderboard record, immutable once created.
type Entry struct {
	Name      string
	Score     int
	CreatedAt time.Time
}

// Leaderboard persists per-mode high-score lists. Implementations must treat
// a missing or unreadable stored list as empty rather than failing the
// session.
type Leaderboard interface {
	Load(mode Mode) ([]Entry, error)
	Save(mode Mode, entries []Entry) error
}

// SubmitScore appends an entry to the mode's leaderboard, re-sorts by score
// descending (stable, so earlier submissions win ties), truncates to
// MaxLeaderboardEntries and persists. A load failure degrades to an empty
// board; the returned error is the save error, if any, and the returned
// slice is the board as it should now stand either way.
func SubmitScore(board Leaderboard, mode Mode, entry Entry) ([]Entry, error) {
	if strings.TrimSpace(entry.Name) == "" {
		entry.Name = DefaultPlayerName
	}

	entries, err := board.Load(mode)
	if err != nil {
		entries = nil
	}

	entries = append(entries, entry)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxLeaderboardEntries {
		entries = entries[:MaxLeaderboardEntries]
	}

	return entries, board.Save(mode, entries)
}
