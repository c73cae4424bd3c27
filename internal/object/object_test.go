package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimkro/TYPE-100/internal/rng"
	"github.com/jimkro/TYPE-100/internal/weapon"
)

func distinct(t *testing.T, k MoveKeys) {
	t.Helper()
	seen := map[rune]bool{}
	for _, r := range k {
		require.False(t, seen[r], "duplicate key %q in %q", r, string(k[:]))
		require.Contains(t, KeyPool, r)
		seen[r] = true
	}
}

func TestNewMoveKeysDistinct(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		distinct(t, NewMoveKeys(rng.New(seed)))
	}
}

func TestRerollStaysDisjoint(t *testing.T) {
	src := rng.New(11)
	keys := NewMoveKeys(src)
	for i := 0; i < 500; i++ {
		dir := Directions[i%4]
		before := keys
		keys.Reroll(src, dir)

		for _, d := range Directions {
			if d != dir {
				assert.Equal(t, before[d], keys[d], "only %s may change", dir)
			}
		}
		assert.NotEqual(t, before[dir], keys[dir], "rerolled key must not be one already bound")
		distinct(t, keys)
	}
}

func TestMoveKeysMatch(t *testing.T) {
	keys := MoveKeys{'a', 's', 'd', 'f'}
	dir, ok := keys.Match("d")
	assert.True(t, ok)
	assert.Equal(t, Left, dir)

	_, ok = keys.Match("ds")
	assert.False(t, ok)
	_, ok = keys.Match("")
	assert.False(t, ok)
}

func TestPlayerMoveClamps(t *testing.T) {
	world := Screen{Width: 1000, Height: 800}
	p := NewPlayer(100, 100, MoveKeys{'a', 's', 'd', 'f'})

	p.Move(Up, world)
	assert.Equal(t, 0.0, p.Y)
	p.Move(Left, world)
	assert.Equal(t, 0.0, p.X)

	p.X, p.Y = 900, 700
	p.Move(Right, world)
	assert.Equal(t, 1000-PlayerSize, p.X)
	p.Move(Down, world)
	assert.Equal(t, 800-PlayerSize, p.Y)
}

func TestPlayerHealCaps(t *testing.T) {
	p := NewPlayer(0, 0, MoveKeys{})
	p.HP = 80
	p.Heal(50)
	assert.Equal(t, 100.0, p.HP)
}

func TestPlayerCloneIsIndependent(t *testing.T) {
	p := NewPlayer(0, 0, MoveKeys{})
	c := p.Clone()
	c.Inventory[0].Level = 9
	assert.Equal(t, 1, p.Inventory[0].Level)
	assert.Equal(t, weapon.Gun, p.ActiveSlot().ID)
}

func TestEnemyTrim(t *testing.T) {
	e := &Enemy{Word: "abcd"}
	assert.False(t, e.Trim(2))
	assert.Equal(t, "ab", e.Word)
	assert.True(t, e.Trim(2))
	assert.Equal(t, "", e.Word)

	e.Word = "x"
	assert.True(t, e.Trim(5))
}

func TestScreenContainsIsInclusive(t *testing.T) {
	view := Screen{Width: 100, Height: 50}
	cam := Camera{X: 10, Y: 10}
	assert.True(t, view.Contains(cam, 10, 10))
	assert.True(t, view.Contains(cam, 110, 60))
	assert.False(t, view.Contains(cam, 110.5, 60))
}

func TestEffectDriftsAndExpires(t *testing.T) {
	e := NewEffect("KILL", 0, 100, "#ff0", EffectSize)
	for i := 0; i < EffectLifetime-1; i++ {
		require.False(t, e.Update())
	}
	assert.True(t, e.Update())
	assert.Equal(t, 100.0-EffectLifetime, e.Y)
}
