package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimkro/TYPE-100/internal/rng"
	"github.com/jimkro/TYPE-100/internal/weapon"
	"github.com/jimkro/TYPE-100/internal/words"
)

func TestAwardXPLevelUpSpawnsBoss(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	p := w.player
	p.Level, p.XP, p.MaxXP = 4, 80, 100

	w.AwardXP(25)

	assert.Equal(t, 5, p.Level)
	assert.Equal(t, 5, p.XP)
	assert.Equal(t, 120, p.MaxXP)
	require.Len(t, w.enemies, 1)
	assert.True(t, w.enemies[0].Boss)
	assert.Equal(t, 1, w.enemies[0].MaxLives)
	assert.Equal(t, StatePaused, w.State())

	offer := w.Offer()
	require.Len(t, offer, UpgradeChoices)
	seen := map[weapon.ID]bool{}
	for _, o := range offer {
		assert.False(t, seen[o.ID], "duplicate option %s", o.ID)
		seen[o.ID] = true
	}

	assert.Equal(t, []EventKind{EventSwitchMusic, EventUpgradeOffer}, kinds(w.DrainEvents()))
}

func TestAwardXPCrossesSeveralThresholds(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	p := w.player

	w.AwardXP(250)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 30, p.XP)
	assert.Equal(t, 144, p.MaxXP)
	assert.Less(t, p.XP, p.MaxXP)
	assert.Equal(t, StatePaused, w.State())

	require.NoError(t, w.ChooseUpgrade(0))
	assert.Equal(t, StatePaused, w.State(), "second level-up still pending")
	assert.Len(t, w.Offer(), UpgradeChoices)

	require.NoError(t, w.ChooseUpgrade(0))
	assert.Equal(t, StatePlaying, w.State())
	assert.Nil(t, w.Offer())
}

func TestStageClear(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	p := w.player
	p.Level = StageClearLevel - 1

	w.AwardXP(p.MaxXP)

	assert.Equal(t, StageClearLevel, p.Level)
	assert.Equal(t, StateStageClear, w.State())
	assert.Nil(t, w.Offer())
	assert.Equal(t, []EventKind{EventSwitchMusic, EventStopMusic, EventStageClear}, kinds(w.DrainEvents()))

	w.Step()
	assert.Equal(t, StateStageClear, w.State())
}

func TestEndlessNeverClears(t *testing.T) {
	w := newQuietWorld(t, words.Endless)
	p := w.player
	p.Level = StageClearLevel - 1

	w.AwardXP(p.MaxXP)
	assert.Equal(t, StatePaused, w.State())
}

func TestChooseUpgradeErrors(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	require.ErrorIs(t, w.ChooseUpgrade(0), ErrNoUpgradePending)

	w.AwardXP(w.player.MaxXP)
	require.ErrorIs(t, w.ChooseUpgrade(-1), ErrInvalidChoice)
	require.ErrorIs(t, w.ChooseUpgrade(UpgradeChoices), ErrInvalidChoice)
	assert.Equal(t, StatePaused, w.State())
}

func TestApplyUpgrade(t *testing.T) {
	offer := func(w *World, ids ...weapon.ID) {
		w.state = StatePaused
		w.offer = ids
		w.pendingUpgrades = 1
	}

	t.Run("heal is capped", func(t *testing.T) {
		w := newQuietWorld(t, words.Stage1)
		w.player.HP = 70
		offer(w, weapon.Heal, weapon.Bow, weapon.Gun)
		require.NoError(t, w.ChooseUpgrade(0))
		assert.Equal(t, 100.0, w.player.HP)
	})

	t.Run("new weapon joins at level one", func(t *testing.T) {
		w := newQuietWorld(t, words.Stage1)
		offer(w, weapon.Heal, weapon.Bow, weapon.Gun)
		assert.Equal(t, "NEW", w.Offer()[1].Tag)
		require.NoError(t, w.ChooseUpgrade(1))
		assert.Equal(t, []weapon.Slot{{ID: weapon.Gun, Level: 1}, {ID: weapon.Bow, Level: 1}}, w.player.Inventory)
	})

	t.Run("owned weapon levels up", func(t *testing.T) {
		w := newQuietWorld(t, words.Stage1)
		offer(w, weapon.Heal, weapon.Bow, weapon.Gun)
		assert.Equal(t, "UPGRADE", w.Offer()[2].Tag)
		assert.Equal(t, 2, w.Offer()[2].Level)
		require.NoError(t, w.ChooseUpgrade(2))
		assert.Equal(t, []weapon.Slot{{ID: weapon.Gun, Level: 2}}, w.player.Inventory)
		assert.Equal(t, StatePlaying, w.State())
	})
}

func TestCycleWeapon(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.CycleWeapon()
	assert.Equal(t, 0, w.player.WeaponIndex)
	assert.Empty(t, w.effects)

	w.player.Inventory = append(w.player.Inventory, weapon.Slot{ID: weapon.Bow, Level: 1})
	w.CycleWeapon()
	assert.Equal(t, 1, w.player.WeaponIndex)
	assert.True(t, hasEffect(w, w.weapons.Name(weapon.Bow)))

	w.CycleWeapon()
	assert.Equal(t, 0, w.player.WeaponIndex)
}

func TestCheatLevelUp(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.CheatLevelUp()

	assert.Equal(t, 2, w.player.Level)
	assert.Equal(t, 0, w.player.XP)
	assert.Equal(t, StatePaused, w.State())
	assert.True(t, hasEffect(w, "CHEAT! LVL UP"))
}

func TestOfferSamplingIsSeeded(t *testing.T) {
	offer := func() []UpgradeOption {
		w := New(Options{Source: rng.New(9)})
		require.NoError(t, w.Reset(words.Stage1))
		w.AwardXP(100)
		return w.Offer()
	}
	assert.Equal(t, offer(), offer())
}
