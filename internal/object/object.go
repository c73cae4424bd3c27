// Package object defines the entities that live in the simulated world.
package object

// Camera is the top-left corner of the viewport in world coordinates.
type Camera struct {
	X, Y float64
}

// Screen is a width/height pair in world units (world bounds or viewport).
type Screen struct {
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside the rectangle placed at cam,
// edges included.
func (s Screen) Contains(cam Camera, x, y float64) bool {
	return x >= cam.X && x <= cam.X+s.Width &&
		y >= cam.Y && y <= cam.Y+s.Height
}

// Destructible is implemented by objects that can be marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal in the cleanup pass.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}
