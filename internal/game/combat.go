package game

import (
	"slices"
	"unicode"

	"github.com/jimkro/TYPE-100/internal/object"
	"github.com/jimkro/TYPE-100/internal/physics"
	"github.com/jimkro/TYPE-100/internal/weapon"
)

// hitResult tells the projectile loop what to do after a collision.
type hitResult int

const (
	hitMiss     hitResult = iota // not a valid hit, keep testing
	hitContinue                  // resolved, projectile keeps flying
	hitRemove                    // resolved, projectile is spent
	hitRetarget                  // resolved, projectile chained to a new target
)

// hitFunc resolves a projectile touching an enemy.
type hitFunc func(w *World, p *object.Projectile, e *object.Enemy) hitResult

// hitBehaviors maps each weapon to its impact rule. Fire-time behaviour
// (spread, chain budget, cluster, fire bonus) is carried by weapon.Variant.
var hitBehaviors = map[weapon.ID]hitFunc{
	weapon.Gun:     (*World).gunHit,
	weapon.Bow:     (*World).bowHit,
	weapon.Grenade: (*World).explosiveHit,
	weapon.Molotov: (*World).explosiveHit,
}

// resolveCombat runs the combat phase in order: burning, enemy shots,
// player projectiles.
func (w *World) resolveCombat() {
	w.burn()
	w.updateEnemyProjectiles()
	w.updateProjectiles()
}

// fire launches the active weapon at target.
func (w *World) fire(target *object.Enemy) {
	p := w.player
	slot := p.ActiveSlot()
	v := weapon.Resolve(slot.ID, slot.Level)
	ux, uy, _, _ := physics.Direction(p.X, p.Y, target.X, target.Y)

	for _, angle := range v.Spread {
		vx, vy := physics.Rotate(ux*object.ProjectileSpeed, uy*object.ProjectileSpeed, angle)
		w.projectiles = append(w.projectiles, &object.Projectile{
			ID:         w.newID(),
			X:          p.X,
			Y:          p.Y,
			VX:         vx,
			VY:         vy,
			Weapon:     slot.ID,
			Level:      slot.Level,
			Variant:    v,
			TargetID:   target.ID,
			TargetWord: target.Word,
			Life:       object.ProjectileLifetime,
			Bounces:    v.Bounces,
		})
	}
}

// findByWord returns the first living enemy labelled word.
func (w *World) findByWord(word string) *object.Enemy {
	if word == "" {
		return nil
	}
	for _, e := range w.enemies {
		if !e.IsDestroyed() && e.Word == word {
			return e
		}
	}
	return nil
}

// updateProjectiles moves player shots and resolves their hits, then
// compacts the slice once.
func (w *World) updateProjectiles() {
	w.indexEnemies()

	for _, p := range w.projectiles {
		if p.Update() {
			continue
		}

		hit, ok := hitBehaviors[p.Weapon]
		if !ok {
			p.MarkDestroyed()
			continue
		}

		for _, e := range w.enemies {
			if e.IsDestroyed() || p.Pierced(e.ID) {
				continue
			}
			if !physics.PointInCircle(p.X, p.Y, e.X, e.Y, e.Size+HitPadding) {
				continue
			}

			res := hit(w, p, e)
			if res == hitMiss {
				continue
			}
			p.MarkPierced(e.ID)
			if res == hitRemove {
				p.MarkDestroyed()
				break
			}
			if res == hitRetarget {
				break
			}
		}
	}

	kept := w.projectiles[:0]
	for _, p := range w.projectiles {
		if !p.IsDestroyed() {
			kept = append(kept, p)
		}
	}
	clear(w.projectiles[len(kept):])
	w.projectiles = kept
}

// gunHit only counts against the aimed enemy unless the shot is evolved,
// then chains to the nearest other enemy while bounces remain.
func (w *World) gunHit(p *object.Projectile, e *object.Enemy) hitResult {
	if !p.Evolved() && (e.ID != p.TargetID || e.Word != p.TargetWord) {
		return hitMiss
	}

	w.resolveDeath(e, weapon.Gun)

	if p.Bounces <= 0 {
		return hitRemove
	}
	next := w.nearestEnemy(e.X, e.Y, ChainRange, func(c *object.Enemy) bool {
		return c != e && !p.Pierced(c.ID)
	})
	if next == nil {
		return hitRemove
	}

	ux, uy, _, _ := physics.Direction(e.X, e.Y, next.X, next.Y)
	p.Bounces--
	p.X, p.Y = e.X, e.Y
	p.VX, p.VY = ux*object.ChainSpeed, uy*object.ChainSpeed
	p.Life = object.ChainLifetime
	p.TargetID, p.TargetWord = next.ID, next.Word
	w.addEffect("CHAIN!", e.X, e.Y-30, "#0ff", object.EffectSize)
	return hitRetarget
}

// bowHit pierces: it resolves every enemy it passes through.
func (w *World) bowHit(_ *object.Projectile, e *object.Enemy) hitResult {
	w.resolveDeath(e, weapon.Bow)
	return hitContinue
}

// explosiveHit shortens every word in the blast radius, then leaves
// cluster or fire zones behind depending on the weapon.
func (w *World) explosiveHit(p *object.Projectile, _ *object.Enemy) hitResult {
	radius := BlastBaseRadius + float64(p.Level)*BlastRadiusPerLvl
	cut := BlastBaseCut + p.Level/BlastCutEvery

	hits := 0
	for _, sub := range w.enemiesWithin(p.X, p.Y, radius) {
		hits++
		if sub.Trim(cut) {
			w.resolveDeath(sub, p.Weapon)
		}
	}

	if p.Variant.Cluster > 0 {
		for range p.Variant.Cluster {
			w.fireZones = append(w.fireZones, &object.FireZone{
				X:       p.X + (w.src.Float64()-0.5)*ClusterJitter,
				Y:       p.Y + (w.src.Float64()-0.5)*ClusterJitter,
				Radius:  ClusterRadius,
				Life:    ClusterLifetime,
				Evolved: true,
			})
		}
		w.addEffect("CLUSTER!", p.X, p.Y-40, "#ff0", 30)
	}

	if p.Weapon == weapon.Molotov {
		w.fireZones = append(w.fireZones, &object.FireZone{
			X:       p.X,
			Y:       p.Y,
			Radius:  FireBaseRadius + float64(p.Level)*FireRadiusPerLvl + p.Variant.FireBonus,
			Life:    FireBaseLifetime + p.Level*FireLifePerLvl,
			Evolved: p.Evolved(),
		})
	} else if hits > 0 {
		w.emit(Event{Kind: EventKill, Weapon: p.Weapon})
	}

	return hitRemove
}

// indexEnemies rebuilds the spatial grid from the current enemy slice.
func (w *World) indexEnemies() {
	w.grid.Clear()
	for i, e := range w.enemies {
		w.grid.Insert(e.X, e.Y, i)
	}
}

// nearestEnemy returns the closest living enemy strictly within maxDist of
// (x, y) accepted by keep. Ties go to the earlier enemy.
func (w *World) nearestEnemy(x, y, maxDist float64, keep func(*object.Enemy) bool) *object.Enemy {
	best := -1
	bestDist := maxDist
	consider := func(i int) {
		e := w.enemies[i]
		if e.IsDestroyed() || !keep(e) {
			return
		}
		d := physics.Distance(x, y, e.X, e.Y)
		if d >= maxDist {
			return
		}
		if best < 0 || d < bestDist || (d == bestDist && i < best) {
			best, bestDist = i, d
		}
	}

	if maxDist <= w.grid.CellSize() {
		w.grid.QueryAround(x, y, func(i int) bool {
			if i < len(w.enemies) {
				consider(i)
			}
			return false
		})
	} else {
		for i := range w.enemies {
			consider(i)
		}
	}

	if best < 0 {
		return nil
	}
	return w.enemies[best]
}

// enemiesWithin returns living enemies strictly inside the circle, in
// slice order.
func (w *World) enemiesWithin(x, y, radius float64) []*object.Enemy {
	var idx []int
	add := func(i int) {
		e := w.enemies[i]
		if !e.IsDestroyed() && physics.PointInCircle(e.X, e.Y, x, y, radius) {
			idx = append(idx, i)
		}
	}

	if radius <= w.grid.CellSize() {
		w.grid.QueryAround(x, y, func(i int) bool {
			if i < len(w.enemies) {
				add(i)
			}
			return false
		})
		slices.Sort(idx)
	} else {
		for i := range w.enemies {
			add(i)
		}
	}

	out := make([]*object.Enemy, len(idx))
	for n, i := range idx {
		out[n] = w.enemies[i]
	}
	return out
}

// burn ticks every enemy standing in fire and trims a character on each
// full interval. Evolved fire burns twice as fast.
func (w *World) burn() {
	if len(w.fireZones) == 0 {
		return
	}
	for _, e := range w.enemies {
		if e.IsDestroyed() {
			continue
		}

		inside, hot := false, false
		for _, z := range w.fireZones {
			if z.Contains(e.X, e.Y) {
				inside = true
				hot = hot || z.Evolved
			}
		}
		if !inside {
			continue
		}

		e.BurnTimer++
		interval := BurnInterval
		if hot {
			interval = BurnIntervalHot
		}
		if e.BurnTimer%interval != 0 || e.Word == "" {
			continue
		}

		w.addEffect("..", e.X, e.Y-e.Size/2-10, "#f80", 10)
		if e.Trim(1) {
			w.resolveDeath(e, weapon.Molotov)
		}
	}
}

// updateEnemyProjectiles moves enemy shots and applies player hits.
func (w *World) updateEnemyProjectiles() {
	p := w.player
	kept := w.enemyProjectiles[:0]
	for _, s := range w.enemyProjectiles {
		if s.Update() {
			continue
		}
		if physics.PointInCircle(s.X, s.Y, p.X, p.Y, object.EnemyShotRadius) {
			p.HP -= object.EnemyShotDamage
			w.addEffect("-10", p.X, p.Y-20, "#f00", object.EffectSize)
			w.emit(Event{Kind: EventHitPlayer})
			continue
		}
		kept = append(kept, s)
	}
	clear(w.enemyProjectiles[len(kept):])
	w.enemyProjectiles = kept
}

// resolveDeath handles an enemy whose word was completed. A boss with
// lives left enters its next phase instead of dying.
func (w *World) resolveDeath(e *object.Enemy, by weapon.ID) {
	if e.IsDestroyed() {
		return
	}

	if e.Boss && e.Lives > 1 {
		e.Lives--
		e.Word = w.gen.BossWord(w.src, w.stage, w.player.Level)
		e.BurnTimer = 0
		w.addEffect("NEXT PHASE!", e.X, e.Y-50, "#fff", 25)
		w.emit(Event{Kind: EventKill, Weapon: weapon.Gun})
		return
	}

	e.MarkDestroyed()
	xp := XPPerEnemy
	text := "KILL"
	if e.Boss {
		xp = XPPerBossLife * e.MaxLives
		text = "BOSS CLEARED!"
	}
	w.addEffect(text, e.X, e.Y, "#ff0", object.EffectSize)
	w.emit(Event{Kind: EventKill, Weapon: by})
	w.AwardXP(xp)

	if e.Boss && !w.bossAlive(e) {
		w.emit(Event{Kind: EventSwitchMusic, Music: MusicNormal})
	}
}

// Type appends a typed character to the input buffer. Letters are
// lowercased; anything outside a-z, ';' and ',' is ignored.
func (w *World) Type(r rune) {
	if w.state != StatePlaying {
		return
	}
	c := unicode.ToLower(r)
	if (c >= 'a' && c <= 'z') || c == ';' || c == ',' {
		w.input += string(c)
	}
}

// Backspace removes the last typed character.
func (w *World) Backspace() {
	if w.input == "" {
		return
	}
	r := []rune(w.input)
	w.input = string(r[:len(r)-1])
}

// Commit submits the input buffer: a movement key moves the player, a
// matching word fires at that enemy, anything else is a miss.
func (w *World) Commit() {
	text := w.input
	w.input = ""
	w.Submit(text)
}

// Submit processes one command string without touching the input buffer.
func (w *World) Submit(text string) {
	if w.state != StatePlaying {
		return
	}
	p := w.player

	if dir, ok := p.Keys.Match(text); ok {
		p.Move(dir, w.bounds)
		p.Keys.Reroll(w.src, dir)
		w.updateCamera()
		return
	}

	if target := w.findByWord(text); target != nil {
		w.fire(target)
		return
	}

	w.addEffect("?", p.X, p.Y-50, "#555", 15)
}
