package object

import (
	"math"

	"github.com/jimkro/TYPE-100/internal/weapon"
)

// Player defaults.
const (
	PlayerSize  = 30.0
	PlayerSpeed = 150.0
	PlayerHP    = 100.0
	PlayerMaxXP = 100
)

// Player is the typist at the centre of the action.
type Player struct {
	X, Y  float64
	Size  float64
	Speed float64 // distance covered by one movement command

	HP, MaxHP float64
	XP, MaxXP int
	Level     int

	Keys        MoveKeys
	Inventory   []weapon.Slot // ordered, unique by ID
	WeaponIndex int
}

// NewPlayer creates a level 1 player at (x, y) carrying a level 1 gun.
func NewPlayer(x, y float64, keys MoveKeys) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Size:      PlayerSize,
		Speed:     PlayerSpeed,
		HP:        PlayerHP,
		MaxHP:     PlayerHP,
		MaxXP:     PlayerMaxXP,
		Level:     1,
		Keys:      keys,
		Inventory: []weapon.Slot{{ID: weapon.Gun, Level: 1}},
	}
}

// ActiveSlot returns the equipped weapon.
func (p *Player) ActiveSlot() weapon.Slot {
	if p.WeaponIndex < 0 || p.WeaponIndex >= len(p.Inventory) {
		return weapon.Slot{}
	}
	return p.Inventory[p.WeaponIndex]
}

// SlotIndex returns the inventory index of id, or -1.
func (p *Player) SlotIndex(id weapon.ID) int {
	for i, s := range p.Inventory {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Move steps the player one Speed in dir, clamped to the world.
// Up and left stop at 0; down and right stop one player size short of the edge.
func (p *Player) Move(dir Direction, world Screen) {
	switch dir {
	case Up:
		p.Y = math.Max(0, p.Y-p.Speed)
	case Down:
		p.Y = math.Min(world.Height-p.Size, p.Y+p.Speed)
	case Left:
		p.X = math.Max(0, p.X-p.Speed)
	case Right:
		p.X = math.Min(world.Width-p.Size, p.X+p.Speed)
	}
}

// Heal restores hp up to MaxHP.
func (p *Player) Heal(amount float64) {
	p.HP = math.Min(p.MaxHP, p.HP+amount)
}

// Clone returns a copy that shares no slices with p.
func (p *Player) Clone() Player {
	c := *p
	c.Inventory = append([]weapon.Slot(nil), p.Inventory...)
	return c
}
