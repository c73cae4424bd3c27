package game

import (
	"fmt"
	"math"
	"slices"

	"github.com/jimkro/TYPE-100/internal/rng"
	"github.com/jimkro/TYPE-100/internal/weapon"
)

// UpgradeOption is one card of an upgrade offer.
type UpgradeOption struct {
	ID          weapon.ID
	Name        string
	Description string
	Tag         string // NEW, UPGRADE or INSTANT
	Level       int    // level after choosing, zero for heal
}

// AwardXP adds experience and processes every threshold it crosses.
func (w *World) AwardXP(amount int) {
	p := w.player
	p.XP += amount

	for p.XP >= p.MaxXP {
		p.XP -= p.MaxXP
		p.Level++
		p.MaxXP = int(math.Floor(float64(p.MaxXP) * XPGrowth))

		if w.state == StateStageClear {
			continue
		}
		if p.Level%BossEveryLevels == 0 {
			w.spawnBoss(p.Level)
		}
		if !w.stage.Endless && p.Level >= StageClearLevel {
			w.state = StateStageClear
			w.offer = nil
			w.pendingUpgrades = 0
			w.emit(Event{Kind: EventStopMusic})
			w.emit(Event{Kind: EventStageClear})
			continue
		}
		w.pendingUpgrades++
	}

	if w.state == StatePlaying && w.pendingUpgrades > 0 {
		w.offerUpgrade()
	}
}

// offerUpgrade pauses the game on a fresh sample of the upgrade pool.
func (w *World) offerUpgrade() {
	pool := slices.Clone(weapon.UpgradePool)
	rng.Shuffle(w.src, len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	w.offer = pool[:min(UpgradeChoices, len(pool))]
	w.state = StatePaused
	w.emit(Event{Kind: EventUpgradeOffer, Options: w.Offer()})
}

// Offer describes the pending upgrade choices, or nil.
func (w *World) Offer() []UpgradeOption {
	if len(w.offer) == 0 {
		return nil
	}
	out := make([]UpgradeOption, len(w.offer))
	for i, id := range w.offer {
		info := w.weapons.Info(id)
		opt := UpgradeOption{ID: id, Name: info.Name, Description: info.Description}
		switch idx := w.player.SlotIndex(id); {
		case id == weapon.Heal:
			opt.Tag = "INSTANT"
		case idx >= 0:
			opt.Tag = "UPGRADE"
			opt.Level = w.player.Inventory[idx].Level + 1
		default:
			opt.Tag = "NEW"
			opt.Level = 1
		}
		out[i] = opt
	}
	return out
}

// ChooseUpgrade applies option i of the pending offer. The game resumes
// once no level-up choices remain.
func (w *World) ChooseUpgrade(i int) error {
	if w.state != StatePaused || len(w.offer) == 0 {
		return ErrNoUpgradePending
	}
	if i < 0 || i >= len(w.offer) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidChoice, i+1, len(w.offer))
	}

	w.applyUpgrade(w.offer[i])
	w.offer = nil
	w.pendingUpgrades--

	if w.pendingUpgrades > 0 {
		w.offerUpgrade()
		return nil
	}
	w.state = StatePlaying
	return nil
}

func (w *World) applyUpgrade(id weapon.ID) {
	p := w.player
	if id == weapon.Heal {
		p.Heal(HealAmount)
		return
	}
	if idx := p.SlotIndex(id); idx >= 0 {
		p.Inventory[idx].Level++
		return
	}
	p.Inventory = append(p.Inventory, weapon.Slot{ID: id, Level: 1})
}

// CycleWeapon switches to the next weapon in the inventory.
func (w *World) CycleWeapon() {
	if w.state != StatePlaying {
		return
	}
	p := w.player
	if len(p.Inventory) < 2 {
		return
	}
	p.WeaponIndex = (p.WeaponIndex + 1) % len(p.Inventory)
	w.addEffect(w.weapons.Name(p.ActiveSlot().ID), p.X, p.Y-50, "#00d2ff", 25)
}

// CheatLevelUp grants a full level of experience.
func (w *World) CheatLevelUp() {
	if w.state != StatePlaying {
		return
	}
	p := w.player
	w.addEffect("CHEAT! LVL UP", p.X, p.Y-80, "#0f0", 30)
	w.AwardXP(p.MaxXP)
}

// checkGameOver ends the run once hp is exhausted.
func (w *World) checkGameOver() {
	if w.player.HP > 0 {
		return
	}
	if w.state != StatePlaying && w.state != StatePaused {
		return
	}
	w.state = StateGameOver
	w.offer = nil
	w.pendingUpgrades = 0
	w.emit(Event{Kind: EventStopMusic})
	w.emit(Event{Kind: EventGameOver})
}
