package weapon

import "slices"

// EvolveLevel is the upgrade level that unlocks a weapon's evolved form.
const EvolveLevel = 5

// Evolved-form parameters.
const (
	ChainBounces     = 3
	ClusterBomblets  = 3
	MolotovFireBonus = 50.0
)

// bowFan are the angular offsets (radians) of an evolved bow volley.
var bowFan = []float64{0, -0.2, 0.2}

// Variant is the behaviour a shot carries, fixed at the moment it is fired.
type Variant struct {
	Evolved bool

	// Spread lists aim offsets in radians; one projectile per entry.
	Spread []float64
	// Bounces is the chain budget of a gun shot.
	Bounces int
	// Cluster is the number of incendiary bomblets a grenade scatters.
	Cluster int
	// FireBonus enlarges a molotov's fire zone radius.
	FireBonus float64
}

// Resolve returns the variant for a weapon at the given level.
func Resolve(id ID, level int) Variant {
	v := Variant{
		Evolved: level >= EvolveLevel,
		Spread:  []float64{0},
	}
	if !v.Evolved {
		return v
	}

	switch id {
	case Bow:
		v.Spread = slices.Clone(bowFan)
	case Gun:
		v.Bounces = ChainBounces
	case Grenade:
		v.Cluster = ClusterBomblets
	case Molotov:
		v.FireBonus = MolotovFireBonus
	}
	return v
}
