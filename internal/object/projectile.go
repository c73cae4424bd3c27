package object

import (
	"maps"
	"slices"

	"github.com/jimkro/TYPE-100/internal/weapon"
)

// Projectile tuning.
const (
	ProjectileSpeed    = 25.0
	ProjectileLifetime = 80 // steps
	ChainSpeed         = 30.0
	ChainLifetime      = 60 // steps
)

// Projectile is a player shot.
type Projectile struct {
	ID     uint64
	X, Y   float64 // Position
	VX, VY float64 // Velocity per step

	Weapon  weapon.ID
	Level   int // weapon level when fired
	Variant weapon.Variant

	TargetID   uint64 // enemy aimed at
	TargetWord string // its word at the time of aiming
	Life       int    // steps remaining
	Bounces    int    // remaining chain budget

	pierced   map[uint64]struct{}
	destroyed bool
}

// Evolved reports whether the shot was fired from an evolved weapon.
func (p *Projectile) Evolved() bool {
	return p.Variant.Evolved
}

// Update moves the projectile one step and ages it.
// Returns true when its life ran out.
func (p *Projectile) Update() bool {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
	return p.Life <= 0
}

// Pierced reports whether this projectile already resolved enemy id.
func (p *Projectile) Pierced(id uint64) bool {
	_, ok := p.pierced[id]
	return ok
}

// MarkPierced records that enemy id has been resolved by this projectile.
func (p *Projectile) MarkPierced(id uint64) {
	if p.pierced == nil {
		p.pierced = make(map[uint64]struct{})
	}
	p.pierced[id] = struct{}{}
}

// MarkDestroyed flags the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed reports whether the projectile is flagged or expired.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed || p.Life <= 0
}

// Clone returns a copy that shares no maps or slices with p.
func (p *Projectile) Clone() Projectile {
	c := *p
	c.Variant.Spread = slices.Clone(p.Variant.Spread)
	c.pierced = maps.Clone(p.pierced)
	return c
}

// Enemy projectile tuning.
const (
	EnemyShotSpeed    = 1.2
	EnemyShotLifetime = 600 // steps
	EnemyShotRadius   = 20.0
	EnemyShotDamage   = 10.0
)

// EnemyProjectile is a shot fired by a shooter enemy. It only collides
// with the player.
type EnemyProjectile struct {
	X, Y   float64
	VX, VY float64
	Life   int
}

// Update moves the shot one step and ages it.
// Returns true when its life ran out.
func (p *EnemyProjectile) Update() bool {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
	return p.Life <= 0
}
