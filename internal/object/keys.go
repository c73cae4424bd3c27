package object

import (
	"slices"

	"github.com/jimkro/TYPE-100/internal/rng"
)

// Direction is one of the four movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in binding order.
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// KeyPool is the set movement keys are drawn from.
var KeyPool = []rune{'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';'}

// MoveKeys binds one key per direction. Bound keys are pairwise distinct.
type MoveKeys [4]rune

// NewMoveKeys draws four distinct keys from the pool.
func NewMoveKeys(src rng.Source) MoveKeys {
	pool := slices.Clone(KeyPool)
	rng.Shuffle(src, len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	var k MoveKeys
	copy(k[:], pool[:4])
	return k
}

// Match returns the direction whose key equals input.
func (k MoveKeys) Match(input string) (Direction, bool) {
	r := []rune(input)
	if len(r) != 1 {
		return 0, false
	}
	for _, d := range Directions {
		if k[d] == r[0] {
			return d, true
		}
	}
	return 0, false
}

// Reroll replaces the key bound to dir with a pool key not currently bound
// to any direction.
func (k *MoveKeys) Reroll(src rng.Source, dir Direction) {
	available := make([]rune, 0, len(KeyPool))
	for _, r := range KeyPool {
		if !slices.Contains(k[:], r) {
			available = append(available, r)
		}
	}
	if len(available) == 0 {
		return
	}
	k[dir] = available[src.Intn(len(available))]
}
