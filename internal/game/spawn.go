package game

import (
	"github.com/jimkro/TYPE-100/internal/object"
	"github.com/jimkro/TYPE-100/internal/physics"
)

// spawn rolls for one new enemy far enough from the player.
func (w *World) spawn() {
	if w.src.Float64() >= SpawnChance {
		return
	}

	p := w.player
	x, y := w.farPosition(SpawnMinDistance)
	word := w.gen.Word(w.src, w.stage, p.Level)
	if word == "" {
		return
	}

	speed := EnemyBaseSpeed + w.src.Float64()*EnemySpeedJitter + float64(p.Level)*EnemySpeedPerLvl
	shooter := w.src.Float64() < ShooterChance
	color := object.ColorEnemy
	if shooter {
		color = object.ColorShooter
	}

	w.enemies = append(w.enemies, &object.Enemy{
		ID:         w.newID(),
		X:          x,
		Y:          y,
		Size:       object.EnemySize,
		Color:      color,
		Word:       word,
		Speed:      speed,
		Shooter:    shooter,
		ShootTimer: w.src.Float64() * ShooterTimerRange,
	})
}

// spawnBoss places a boss whose life count grows with the level.
func (w *World) spawnBoss(level int) {
	p := w.player
	x, y := w.farPosition(BossMinDistance)
	lives := level / BossEveryLevels
	if lives < 1 {
		lives = 1
	}

	w.enemies = append(w.enemies, &object.Enemy{
		ID:         w.newID(),
		X:          x,
		Y:          y,
		Size:       object.BossSize,
		Color:      object.ColorBoss,
		Word:       w.gen.BossWord(w.src, w.stage, level),
		Speed:      BossBaseSpeed + float64(level)*BossSpeedPerLvl,
		Shooter:    true,
		ShootTimer: BossShootTimer,
		Boss:       true,
		Lives:      lives,
		MaxLives:   lives,
	})

	w.addEffect("WARNING: BOSS!", p.X, p.Y-100, object.ColorBoss, 40)
	w.emit(Event{Kind: EventSwitchMusic, Music: MusicBoss})
}

// farPosition samples uniform world positions until one lies at least
// minDist away from the player. A world too small to satisfy the bound
// gets the last sample after spawnMaxAttempts tries.
func (w *World) farPosition(minDist float64) (float64, float64) {
	p := w.player
	var x, y float64
	for range spawnMaxAttempts {
		x = w.src.Float64() * w.bounds.Width
		y = w.src.Float64() * w.bounds.Height
		if physics.Distance(x, y, p.X, p.Y) >= minDist {
			break
		}
	}
	return x, y
}

// bossAlive reports whether any boss other than skip is still alive.
func (w *World) bossAlive(skip *object.Enemy) bool {
	for _, e := range w.enemies {
		if e != skip && e.Boss && !e.IsDestroyed() {
			return true
		}
	}
	return false
}
