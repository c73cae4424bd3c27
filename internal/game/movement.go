package game

import (
	"math"

	"github.com/jimkro/TYPE-100/internal/object"
	"github.com/jimkro/TYPE-100/internal/physics"
)

// updateCamera centres the viewport on the player, clamped to the world.
func (w *World) updateCamera() {
	p := w.player
	w.camera.X = math.Max(0, math.Min(p.X-w.view.Width/2, w.bounds.Width-w.view.Width))
	w.camera.Y = math.Max(0, math.Min(p.Y-w.view.Height/2, w.bounds.Height-w.view.Height))
}

// moveEnemies runs the movement phase: camera, crowd separation, then each
// enemy either closes in or holds position and shoots.
func (w *World) moveEnemies() {
	w.updateCamera()
	w.separate()

	p := w.player
	for _, e := range w.enemies {
		ux, uy, dist, ok := physics.Direction(e.X, e.Y, p.X, p.Y)

		move := true
		if e.Shooter && w.view.Contains(w.camera, e.X, e.Y) {
			move = false
			e.ShootTimer--
			if e.ShootTimer <= 0 {
				w.enemyProjectiles = append(w.enemyProjectiles, &object.EnemyProjectile{
					X:    e.X,
					Y:    e.Y,
					VX:   ux * object.EnemyShotSpeed,
					VY:   uy * object.EnemyShotSpeed,
					Life: object.EnemyShotLifetime,
				})
				e.ShootTimer = e.ShootReset()
			}
		}

		if move && ok {
			e.X += ux * e.Speed
			e.Y += uy * e.Speed
		}

		if dist < p.Size+e.Size/2 {
			p.HP -= ContactDrain
		}
	}
}

// separate pushes overlapping enemies apart, both members of a pair by the
// same amount.
func (w *World) separate() {
	for i := 0; i < len(w.enemies); i++ {
		a := w.enemies[i]
		for j := i + 1; j < len(w.enemies); j++ {
			b := w.enemies[j]
			ux, uy, dist, ok := physics.Direction(b.X, b.Y, a.X, a.Y)
			if !ok {
				continue
			}
			minDist := a.Size/2 + b.Size/2 + SeparationPadding
			if dist >= minDist {
				continue
			}
			force := (minDist - dist) / minDist * SeparationStrength
			a.X += ux * force
			a.Y += uy * force
			b.X -= ux * force
			b.Y -= uy * force
		}
	}
}
