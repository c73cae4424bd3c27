package game

import (
	"github.com/jimkro/TYPE-100/internal/object"
	"github.com/jimkro/TYPE-100/internal/weapon"
	"github.com/jimkro/TYPE-100/internal/words"
)

// WeaponSummary describes an inventory slot for display.
type WeaponSummary struct {
	ID      weapon.ID
	Name    string
	Level   int
	Evolved bool
}

// HUD is the heads-up display data.
type HUD struct {
	HP, MaxHP   float64
	XP, MaxXP   int
	Level       int
	StageName   string
	Weapon      WeaponSummary
	WeaponIndex int
	Inventory   []WeaponSummary
	Keys        object.MoveKeys
}

// Snapshot is a read-only copy of the world for renderers.
type Snapshot struct {
	State  State
	Stage  words.Stage
	Input  string
	Camera object.Camera
	View   object.Screen
	Bounds object.Screen

	Player           object.Player
	Enemies          []object.Enemy
	Projectiles      []object.Projectile
	EnemyProjectiles []object.EnemyProjectile
	FireZones        []object.FireZone
	Effects          []object.Effect

	Offer []UpgradeOption
	HUD   HUD
}

// HUD returns the current heads-up display data.
func (w *World) HUD() HUD {
	if w.player == nil {
		return HUD{StageName: w.stage.Name}
	}
	p := w.player

	inv := make([]WeaponSummary, len(p.Inventory))
	for i, s := range p.Inventory {
		inv[i] = WeaponSummary{
			ID:      s.ID,
			Name:    w.weapons.Name(s.ID),
			Level:   s.Level,
			Evolved: weapon.Resolve(s.ID, s.Level).Evolved,
		}
	}

	h := HUD{
		HP:          p.HP,
		MaxHP:       p.MaxHP,
		XP:          p.XP,
		MaxXP:       p.MaxXP,
		Level:       p.Level,
		StageName:   w.stage.Name,
		WeaponIndex: p.WeaponIndex,
		Inventory:   inv,
		Keys:        p.Keys,
	}
	if p.WeaponIndex >= 0 && p.WeaponIndex < len(inv) {
		h.Weapon = inv[p.WeaponIndex]
	}
	return h
}

// Snapshot copies everything a renderer needs. The result shares no
// pointers with the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		State:  w.state,
		Stage:  w.stage,
		Input:  w.input,
		Camera: w.camera,
		View:   w.view,
		Bounds: w.bounds,
		Offer:  w.Offer(),
		HUD:    w.HUD(),
	}
	if w.player != nil {
		s.Player = w.player.Clone()
	}

	s.Enemies = copyAll(w.enemies)
	s.Projectiles = make([]object.Projectile, len(w.projectiles))
	for i, p := range w.projectiles {
		s.Projectiles[i] = p.Clone()
	}
	s.EnemyProjectiles = copyAll(w.enemyProjectiles)
	s.FireZones = copyAll(w.fireZones)
	s.Effects = copyAll(w.effects)
	return s
}

func copyAll[T any](items []*T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}
