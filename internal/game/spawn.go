package game

import (
	"math/rand"

	"github.com/yuchenlin/typebomb/internal/core"
)

const (
	// spacingFactor times the bomb radius is the minimum center distance
	// between a new bomb and anything already on the field.
	spacingFactor = 2.5
	// maxPlaceAttempts caps the rejection-sampling loop per bomb. When the
	// budget runs out the bomb is dropped from the wave; a short wave is a
	// normal low-probability outcome, not an error.
	maxPlaceAttempts = 50
)

// PlanSpawn picks horizontal positions for up to count new bombs at spawn
// height (y=0). Candidates are drawn uniformly from
// [radius, fieldWidth-radius] and rejected while closer than
// spacingFactor*radius to any existing bomb or an already accepted sibling.
// The result may be shorter than count.
func PlanSpawn(existing []Bomb, count int, fieldWidth, radius float64, rng *rand.Rand) []float64 {
	lo := radius
	hi := fieldWidth - radius
	if hi < lo {
		return nil
	}

	minDist := spacingFactor * radius
	positions := make([]float64, 0, count)

	for i := 0; i < count; i++ {
		for attempt := 0; attempt < maxPlaceAttempts; attempt++ {
			x := lo + rng.Float64()*(hi-lo)
			if spawnFits(x, minDist, existing, positions) {
				positions = append(positions, x)
				break
			}
		}
	}
	return positions
}

// spawnFits checks a candidate at (x, 0) against live bombs and siblings
// accepted earlier in the same wave.
func spawnFits(x, minDist float64, existing []Bomb, siblings []float64) bool {
	for i := range existing {
		if core.Dist(x, 0, existing[i].X, existing[i].Y) < minDist {
			return false
		}
	}
	for _, sx := range siblings {
		if core.Dist(x, 0, sx, 0) < minDist {
			return false
		}
	}
	return true
}
