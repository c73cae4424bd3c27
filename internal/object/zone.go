package object

import "github.com/jimkro/TYPE-100/internal/physics"

// FireZone is a burning area that erodes the words of enemies inside it.
type FireZone struct {
	X, Y    float64
	Radius  float64
	Life    int
	Evolved bool // burns twice as fast
}

// Contains reports whether (x, y) lies strictly inside the zone.
func (z *FireZone) Contains(x, y float64) bool {
	return physics.PointInCircle(x, y, z.X, z.Y, z.Radius)
}

// Update ages the zone. Returns true once it has burnt out.
func (z *FireZone) Update() bool {
	z.Life--
	return z.Life <= 0
}
