package game

import (
	"math/rand"
	"strings"
	"sync/atomic"
)

// bombSeq issues process-lifetime unique bomb ids across all fields and
// sessions.
var bombSeq atomic.Int64

// Bomb is one falling target. Owned exclusively by its Field while alive;
// removed on hit or on reaching the floor.
type Bomb struct {
	ID   int64
	Char string
	X, Y float64
}

// Field is the mutable collection of falling bombs, kept in insertion order
// (oldest spawned first).
type Field struct {
	bombs  []Bomb
	width  float64
	radius float64
	rng    *rand.Rand
}

// NewField creates an empty field with the given geometry.
func NewField(width, radius float64, rng *rand.Rand) *Field {
	return &Field{
		width:  width,
		radius: radius,
		rng:    rng,
	}
}

// Len returns the number of live bombs.
func (f *Field) Len() int {
	return len(f.bombs)
}

// Bombs returns a copy of the live bombs for rendering. The copy keeps
// renderers from mutating engine state.
func (f *Field) Bombs() []Bomb {
	out := make([]Bomb, len(f.bombs))
	copy(out, f.bombs)
	return out
}

// Clear removes all bombs.
func (f *Field) Clear() {
	f.bombs = f.bombs[:0]
}

// Advance moves every bomb down by dy. Positional mutation only.
func (f *Field) Advance(dy float64) {
	for i := range f.bombs {
		f.bombs[i].Y += dy
	}
}

// Spawn adds up to count new bombs at y=0, each with a planner-approved
// position and a random glyph from the mode's catalog. Returns the bombs
// actually spawned (the planner may drop some when placement retries
// exhaust).
func (f *Field) Spawn(mode Mode, count int) []Bomb {
	chars := Chars(mode)
	if len(chars) == 0 || count <= 0 {
		return nil
	}

	positions := PlanSpawn(f.bombs, count, f.width, f.radius, f.rng)
	spawned := make([]Bomb, 0, len(positions))
	for _, x := range positions {
		b := Bomb{
			ID:   bombSeq.Add(1),
			Char: chars[f.rng.Intn(len(chars))],
			X:    x,
			Y:    0,
		}
		f.bombs = append(f.bombs, b)
		spawned = append(spawned, b)
	}
	return spawned
}

// ResolveHit finds the oldest bomb whose required key matches the pressed
// key and removes it. At most one bomb is cleared per keystroke; when
// several bombs need the same key the one that has been on screen longest
// wins. The pressed key is compared case-insensitively.
func (f *Field) ResolveHit(pressedKey string, mode Mode) (Bomb, bool) {
	pressed := strings.ToUpper(pressedKey)
	for i := range f.bombs {
		key, ok := KeyFor(mode, f.bombs[i].Char)
		if !ok {
			// Glyph without a mapping is unmatchable; skip it.
			continue
		}
		if key == pressed {
			hit := f.bombs[i]
			f.bombs = append(f.bombs[:i], f.bombs[i+1:]...)
			return hit, true
		}
	}
	return Bomb{}, false
}

// CollectFloorBreaches removes and returns every bomb that has reached the
// floor. A bomb breaches when its center is within one radius of floorY.
func (f *Field) CollectFloorBreaches(floorY float64) []Bomb {
	var breached []Bomb
	remaining := f.bombs[:0]
	for _, b := range f.bombs {
		if b.Y >= floorY-f.radius {
			breached = append(breached, b)
		} else {
			remaining = append(remaining, b)
		}
	}
	f.bombs = remaining
	return breached
}
