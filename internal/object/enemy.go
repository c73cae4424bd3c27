package object

// Enemy profiles.
const (
	EnemySize      = 25.0
	BossSize       = 60.0
	ColorEnemy     = "#ff3333"
	ColorShooter   = "#d0f"
	ColorBoss      = "#ffd700"
	BossShootReset = 150.0
	ShooterReset   = 240.0
)

// Enemy is a labelled foe. Its Word is both what is drawn and what the
// player types to target it.
type Enemy struct {
	ID    uint64
	X, Y  float64
	Size  float64
	Color string
	Word  string
	Speed float64

	BurnTimer  int // steps spent inside fire
	Shooter    bool
	ShootTimer float64

	Boss     bool
	Lives    int
	MaxLives int

	Dead bool
}

// MarkDestroyed flags the enemy for removal in the cleanup pass.
func (e *Enemy) MarkDestroyed() {
	e.Dead = true
}

// IsDestroyed reports whether the enemy is flagged for removal.
func (e *Enemy) IsDestroyed() bool {
	return e.Dead
}

// Trim removes up to n characters from the end of the word.
// Returns true when the word became empty.
func (e *Enemy) Trim(n int) bool {
	r := []rune(e.Word)
	if n >= len(r) {
		e.Word = ""
	} else if n > 0 {
		e.Word = string(r[:len(r)-n])
	}
	return e.Word == ""
}

// ShootReset is the cooldown after firing.
func (e *Enemy) ShootReset() float64 {
	if e.Boss {
		return BossShootReset
	}
	return ShooterReset
}
