// Package physics provides distance helpers and broad-phase spatial queries.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle reports whether a point lies strictly inside the circle.
// A point exactly on the rim is outside.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) < radius*radius
}

// Direction returns the unit vector from (x1,y1) towards (x2,y2) and the
// distance between them. ok is false when the points coincide, in which
// case the vector is zero and callers must not apply movement or force.
func Direction(x1, y1, x2, y2 float64) (ux, uy, dist float64, ok bool) {
	dx := x2 - x1
	dy := y2 - y1
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, 0, 0, false
	}
	return dx / dist, dy / dist, dist, true
}

// Rotate rotates a vector by angle radians.
func Rotate(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
