package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimkro/TYPE-100/internal/object"
	"github.com/jimkro/TYPE-100/internal/weapon"
	"github.com/jimkro/TYPE-100/internal/words"
)

// fixedSource always rolls the same values. With f above SpawnChance no
// ordinary enemy ever spawns, so tests control the whole population.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Intn(int) int     { return 0 }

func newQuietWorld(t *testing.T, stage words.StageID) *World {
	t.Helper()
	w := New(Options{Source: fixedSource{f: 0.99}})
	require.NoError(t, w.Reset(stage))
	w.DrainEvents()
	return w
}

// addEnemy places a still, non-shooting enemy relative to the player.
func addEnemy(w *World, dx, dy float64, word string) *object.Enemy {
	e := &object.Enemy{
		ID:    w.newID(),
		X:     w.player.X + dx,
		Y:     w.player.Y + dy,
		Size:  object.EnemySize,
		Color: object.ColorEnemy,
		Word:  word,
	}
	w.enemies = append(w.enemies, e)
	return e
}

func equip(w *World, id weapon.ID, level int) {
	w.player.Inventory = []weapon.Slot{{ID: id, Level: level}}
	w.player.WeaponIndex = 0
}

func stepN(w *World, n int) {
	for range n {
		w.Step()
	}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func hasEffect(w *World, text string) bool {
	for _, e := range w.effects {
		if e.Text == text {
			return true
		}
	}
	return false
}
