package object

// Effect defaults.
const (
	EffectLifetime = 40 // steps
	EffectSize     = 20.0
	EffectDrift    = 1.0 // upward movement per step
)

// Effect is floating feedback text. It has no gameplay effect.
type Effect struct {
	Text  string
	X, Y  float64
	Color string
	Size  float64
	Life  int
}

// NewEffect creates an effect with the default lifetime.
func NewEffect(text string, x, y float64, color string, size float64) *Effect {
	return &Effect{
		Text:  text,
		X:     x,
		Y:     y,
		Color: color,
		Size:  size,
		Life:  EffectLifetime,
	}
}

// Update drifts the text upward and ages it.
// Returns true when it should be removed.
func (e *Effect) Update() bool {
	e.Y -= EffectDrift
	e.Life--
	return e.Life <= 0
}
