package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimkro/TYPE-100/internal/object"
	"github.com/jimkro/TYPE-100/internal/rng"
	"github.com/jimkro/TYPE-100/internal/weapon"
	"github.com/jimkro/TYPE-100/internal/words"
)

func TestNewStartsInMenu(t *testing.T) {
	w := New(Options{Source: rng.New(1)})
	assert.Equal(t, StateMenu, w.State())
	assert.False(t, w.Playing())

	w.Step()
	assert.Empty(t, w.DrainEvents())
}

func TestReset(t *testing.T) {
	w := New(Options{Source: rng.New(1)})
	require.NoError(t, w.Reset(words.Stage1))

	p := w.player
	assert.Equal(t, StatePlaying, w.State())
	assert.Equal(t, WorldWidth/2, p.X)
	assert.Equal(t, WorldHeight/2, p.Y)
	assert.Equal(t, 100.0, p.HP)
	assert.Equal(t, 100.0, p.MaxHP)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 100, p.MaxXP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, []weapon.Slot{{ID: weapon.Gun, Level: 1}}, p.Inventory)

	seen := map[rune]bool{}
	for _, k := range p.Keys {
		assert.Contains(t, object.KeyPool, k)
		assert.False(t, seen[k], "key %q bound twice", k)
		seen[k] = true
	}

	events := w.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventSwitchMusic, events[0].Kind)
	assert.Equal(t, MusicNormal, events[0].Music)
}

func TestResetClearsPreviousRun(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	addEnemy(w, 100, 0, "ab")
	w.Type('x')
	w.player.HP = 5

	require.NoError(t, w.Reset(words.Stage2))
	assert.Empty(t, w.enemies)
	assert.Empty(t, w.Input())
	assert.Equal(t, 100.0, w.player.HP)
	assert.Equal(t, words.Stage2, w.Stage().ID)
}

func TestResetUnknownStage(t *testing.T) {
	w := New(Options{Source: rng.New(1)})
	err := w.Reset("nope")
	require.ErrorIs(t, err, words.ErrUnknownStage)
	assert.Equal(t, StateMenu, w.State())
}

func TestReturnToMenuStopsMusic(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.spawnBoss(5)
	require.Equal(t, []EventKind{EventSwitchMusic}, kinds(w.DrainEvents()))

	w.ReturnToMenu()
	assert.Equal(t, StateMenu, w.State())
	assert.Equal(t, []EventKind{EventStopMusic}, kinds(w.DrainEvents()))

	w.ReturnToMenu()
	assert.Empty(t, w.DrainEvents(), "menu to menu is silent")
}

func TestReturnToMenuFromUpgradeStopsMusic(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.CheatLevelUp()
	require.Equal(t, StatePaused, w.State())
	w.DrainEvents()

	w.ReturnToMenu()
	assert.Equal(t, []EventKind{EventStopMusic}, kinds(w.DrainEvents()))
}

func TestReturnToMenuAfterGameOverIsSilent(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.player.HP = 0.1
	addEnemy(w, 10, 0, "ab")
	w.Step()
	require.Equal(t, StateGameOver, w.State())
	w.DrainEvents()

	w.ReturnToMenu()
	assert.Empty(t, w.DrainEvents())
}

func TestCameraClamp(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)

	w.SetViewport(800, 600)
	assert.Equal(t, object.Camera{X: 1100, Y: 700}, w.camera)

	w.player.X, w.player.Y = 10, 10
	w.updateCamera()
	assert.Equal(t, object.Camera{X: 0, Y: 0}, w.camera)

	w.player.X, w.player.Y = WorldWidth, WorldHeight
	w.updateCamera()
	assert.Equal(t, object.Camera{X: WorldWidth - 800, Y: WorldHeight - 600}, w.camera)

	w.SetViewport(WorldWidth*2, WorldHeight*2)
	assert.Equal(t, object.Camera{X: 0, Y: 0}, w.camera)
}

func TestSeparation(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	a := addEnemy(w, 500, 500, "ab")
	b := addEnemy(w, 510, 500, "cd")
	c := addEnemy(w, -500, -500, "ef")
	d := addEnemy(w, -500, -500, "gh")

	w.separate()

	// Same push, opposite directions.
	assert.InDelta(t, (w.player.X+500)-a.X, b.X-(w.player.X+510), 1e-9)
	assert.Less(t, a.X, w.player.X+500)
	assert.Greater(t, b.X, w.player.X+510)

	// Coincident pairs are left alone.
	assert.Equal(t, c.X, d.X)
	assert.Equal(t, c.Y, d.Y)
}

func TestContactDrain(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	addEnemy(w, 10, 0, "ab")

	w.Step()
	assert.InDelta(t, 100-ContactDrain, w.player.HP, 1e-9)
}

func TestEnemySeeksPlayer(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	e := addEnemy(w, 1000, 0, "ab")
	e.Speed = 2

	w.Step()
	assert.InDelta(t, w.player.X+998, e.X, 1e-9)
	assert.InDelta(t, w.player.Y, e.Y, 1e-9)
}

func TestShooterOnScreenHoldsAndFires(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.SetViewport(800, 600)
	e := addEnemy(w, 100, 0, "ab")
	e.Speed = 2
	e.Shooter = true
	e.ShootTimer = 1

	w.Step()
	assert.Equal(t, w.player.X+100, e.X)
	assert.Equal(t, object.ShooterReset, e.ShootTimer)
	require.Len(t, w.enemyProjectiles, 1)
	assert.InDelta(t, -object.EnemyShotSpeed, w.enemyProjectiles[0].VX, 1e-9)
}

func TestShooterOffScreenKeepsWalking(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.SetViewport(800, 600)
	e := addEnemy(w, 1000, 0, "ab")
	e.Speed = 2
	e.Shooter = true
	e.ShootTimer = 1

	w.Step()
	assert.Less(t, e.X, w.player.X+1000)
	assert.Empty(t, w.enemyProjectiles)
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.enemyProjectiles = append(w.enemyProjectiles, &object.EnemyProjectile{
		X: w.player.X + 10, Y: w.player.Y, Life: object.EnemyShotLifetime,
	})

	w.Step()
	assert.Equal(t, 90.0, w.player.HP)
	assert.Empty(t, w.enemyProjectiles)
	assert.True(t, hasEffect(w, "-10"))
	assert.Equal(t, []EventKind{EventHitPlayer}, kinds(w.DrainEvents()))
}

func TestGameOver(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.player.HP = 0.1
	addEnemy(w, 10, 0, "ab")

	w.Step()
	assert.Equal(t, StateGameOver, w.State())
	assert.Equal(t, []EventKind{EventStopMusic, EventGameOver}, kinds(w.DrainEvents()))

	hp := w.player.HP
	w.Step()
	assert.Equal(t, hp, w.player.HP)
}

func TestEffectsExpire(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.addEffect("x", 0, 100, "#fff", 20)

	stepN(w, object.EffectLifetime-1)
	require.Len(t, w.effects, 1)
	assert.Equal(t, 100-float64(object.EffectLifetime-1), w.effects[0].Y)

	w.Step()
	assert.Empty(t, w.effects)
}

func TestSpawnKeepsDistance(t *testing.T) {
	w := New(Options{Source: rng.New(3)})
	require.NoError(t, w.Reset(words.Stage1))

	for range 5000 {
		w.spawn()
	}
	require.NotEmpty(t, w.enemies)
	for _, e := range w.enemies {
		d := (e.X-w.player.X)*(e.X-w.player.X) + (e.Y-w.player.Y)*(e.Y-w.player.Y)
		assert.GreaterOrEqual(t, d, SpawnMinDistance*SpawnMinDistance)
		assert.NotEmpty(t, e.Word)
		assert.Equal(t, object.EnemySize, e.Size)
	}
}

func TestSpawnBoss(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.spawnBoss(10)

	require.Len(t, w.enemies, 1)
	b := w.enemies[0]
	assert.True(t, b.Boss)
	assert.True(t, b.Shooter)
	assert.Equal(t, 2, b.Lives)
	assert.Equal(t, 2, b.MaxLives)
	assert.Equal(t, object.BossSize, b.Size)
	assert.InDelta(t, BossBaseSpeed+10*BossSpeedPerLvl, b.Speed, 1e-9)
	assert.True(t, hasEffect(w, "WARNING: BOSS!"))

	events := w.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, MusicBoss, events[0].Music)
}

func TestDeterministicRuns(t *testing.T) {
	run := func() Snapshot {
		w := New(Options{Source: rng.New(42)})
		require.NoError(t, w.Reset(words.Stage3))
		w.SetViewport(960, 720)
		stepN(w, 1200)
		return w.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	addEnemy(w, 100, 0, "ab")
	w.Submit("ab")

	s := w.Snapshot()
	require.Len(t, s.Enemies, 1)
	require.Len(t, s.Projectiles, 1)

	s.Enemies[0].Word = "zz"
	s.Player.Inventory[0].Level = 9
	s.Projectiles[0].Variant.Spread[0] = 1

	assert.Equal(t, "ab", w.enemies[0].Word)
	assert.Equal(t, 1, w.player.Inventory[0].Level)
	assert.Equal(t, 0.0, w.projectiles[0].Variant.Spread[0])
}

func TestHUD(t *testing.T) {
	w := newQuietWorld(t, words.Stage1)
	w.player.Inventory = append(w.player.Inventory, weapon.Slot{ID: weapon.Bow, Level: 5})

	h := w.HUD()
	assert.Equal(t, 100.0, h.HP)
	assert.Equal(t, 1, h.Level)
	assert.Equal(t, w.Stage().Name, h.StageName)
	assert.Equal(t, weapon.Gun, h.Weapon.ID)
	require.Len(t, h.Inventory, 2)
	assert.True(t, h.Inventory[1].Evolved)
	assert.Equal(t, w.player.Keys, h.Keys)
}
