package physics

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionGuardsZeroDistance(t *testing.T) {
	ux, uy, dist, ok := Direction(5, 5, 5, 5)
	assert.False(t, ok)
	assert.Zero(t, ux)
	assert.Zero(t, uy)
	assert.Zero(t, dist)

	ux, uy, dist, ok = Direction(0, 0, 3, 4)
	assert.True(t, ok)
	assert.InDelta(t, 0.6, ux, 1e-9)
	assert.InDelta(t, 0.8, uy, 1e-9)
	assert.InDelta(t, 5.0, dist, 1e-9)
}

func TestPointInCircleIsStrict(t *testing.T) {
	assert.True(t, PointInCircle(0, 0, 3, 0, 3.5))
	assert.False(t, PointInCircle(0, 0, 3, 0, 3))
}

func TestRotate(t *testing.T) {
	x, y := Rotate(1, 0, math.Pi/2)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-4, 0, 10))
	assert.Equal(t, 10.0, Clamp(14, 0, 10))
	assert.Equal(t, 0.0, Clamp(5, 0, -10), "inverted bounds pin to lo")
}

func TestSpatialGridQueryAround(t *testing.T) {
	g := NewSpatialGrid(1000, 1000, 100)
	g.Insert(50, 50, 0)    // cell (0,0)
	g.Insert(150, 150, 1)  // cell (1,1)
	g.Insert(450, 450, 2)  // far away
	g.Insert(-20, 990, 3)  // clamped into cell (0,9)
	g.Insert(1200, 50, 4)  // clamped into cell (9,0)

	var got []int
	g.QueryAround(60, 60, func(i int) bool {
		got = append(got, i)
		return false
	})
	sort.Ints(got)
	assert.Equal(t, []int{0, 1}, got)

	got = got[:0]
	g.QueryAround(0, 999, func(i int) bool {
		got = append(got, i)
		return false
	})
	assert.Equal(t, []int{3}, got)

	g.Clear()
	called := false
	g.QueryAround(60, 60, func(int) bool {
		called = true
		return false
	})
	assert.False(t, called)
}

func TestSpatialGridEarlyStop(t *testing.T) {
	g := NewSpatialGrid(300, 300, 100)
	for i := 0; i < 5; i++ {
		g.Insert(150, 150, i)
	}
	count := 0
	g.QueryAround(150, 150, func(int) bool {
		count++
		return count == 2
	})
	assert.Equal(t, 2, count)
}
