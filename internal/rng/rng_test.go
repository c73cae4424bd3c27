package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Float64(), b.Float64())
		require.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestShuffleKeepsElements(t *testing.T) {
	items := []string{"gun", "bow", "grenade", "molotov", "heal"}
	Shuffle(New(7), len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	assert.ElementsMatch(t, []string{"gun", "bow", "grenade", "molotov", "heal"}, items)
}

func TestPick(t *testing.T) {
	assert.Equal(t, "", Pick[string](New(1), nil))
	got := Pick(New(1), []string{"only"})
	assert.Equal(t, "only", got)
}
