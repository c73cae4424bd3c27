// Package game holds the authoritative simulation: entities, the fixed step
// pipeline, combat and progression. It draws nothing and plays nothing;
// collaborators read snapshots and drain events.
package game

import (
	"errors"
	"fmt"

	"github.com/jimkro/TYPE-100/internal/object"
	"github.com/jimkro/TYPE-100/internal/physics"
	"github.com/jimkro/TYPE-100/internal/rng"
	"github.com/jimkro/TYPE-100/internal/weapon"
	"github.com/jimkro/TYPE-100/internal/words"
)

var (
	// ErrNoUpgradePending is returned by ChooseUpgrade when nothing is on offer.
	ErrNoUpgradePending = errors.New("no upgrade pending")
	// ErrInvalidChoice is returned by ChooseUpgrade for an out-of-range index.
	ErrInvalidChoice = errors.New("invalid upgrade choice")
)

// gridCellSize matches the chain range so a chain lookup touches at most
// the 3x3 neighbourhood.
const gridCellSize = ChainRange

// Options configures a World. Nil fields fall back to the embedded defaults.
type Options struct {
	Source  rng.Source
	Stages  *words.Table
	Words   *words.WordList
	Weapons *weapon.DB
	Bounds  object.Screen
}

// World is the whole mutable game state. It is not safe for concurrent use;
// a session owns exactly one.
type World struct {
	state  State
	stage  words.Stage
	bounds object.Screen
	view   object.Screen
	camera object.Camera

	player           *object.Player
	enemies          []*object.Enemy
	projectiles      []*object.Projectile
	enemyProjectiles []*object.EnemyProjectile
	fireZones        []*object.FireZone
	effects          []*object.Effect

	input           string
	offer           []weapon.ID
	pendingUpgrades int
	events          []Event
	nextID          uint64

	src     rng.Source
	stages  *words.Table
	gen     *words.Generator
	weapons *weapon.DB
	grid    *physics.SpatialGrid
}

// New creates a world in the MENU state.
func New(opts Options) *World {
	if opts.Source == nil {
		opts.Source, _ = rng.NewTimeSeeded()
	}
	if opts.Stages == nil {
		opts.Stages = words.DefaultStages()
	}
	if opts.Words == nil {
		opts.Words = words.DefaultWordList()
	}
	if opts.Weapons == nil {
		opts.Weapons = weapon.DefaultDB()
	}
	if opts.Bounds.Width <= 0 || opts.Bounds.Height <= 0 {
		opts.Bounds = object.Screen{Width: WorldWidth, Height: WorldHeight}
	}

	return &World{
		state:   StateMenu,
		bounds:  opts.Bounds,
		view:    opts.Bounds,
		src:     opts.Source,
		stages:  opts.Stages,
		gen:     words.NewGenerator(opts.Words),
		weapons: opts.Weapons,
		grid:    physics.NewSpatialGrid(opts.Bounds.Width, opts.Bounds.Height, gridCellSize),
	}
}

// Reset starts a fresh run on the given stage.
func (w *World) Reset(id words.StageID) error {
	stage, err := w.stages.Get(id)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	w.stage = stage
	w.player = object.NewPlayer(w.bounds.Width/2, w.bounds.Height/2, object.NewMoveKeys(w.src))
	w.enemies = nil
	w.projectiles = nil
	w.enemyProjectiles = nil
	w.fireZones = nil
	w.effects = nil
	w.input = ""
	w.offer = nil
	w.pendingUpgrades = 0
	w.events = nil
	w.state = StatePlaying
	w.updateCamera()

	w.emit(Event{Kind: EventSwitchMusic, Music: MusicNormal})
	return nil
}

// ReturnToMenu drops the current run. Leaving a live run stops its music.
func (w *World) ReturnToMenu() {
	if w.state == StatePlaying || w.state == StatePaused {
		w.emit(Event{Kind: EventStopMusic})
	}
	w.state = StateMenu
	w.offer = nil
	w.pendingUpgrades = 0
	w.input = ""
}

// SetViewport updates the visible area in world units.
func (w *World) SetViewport(width, height float64) {
	w.view = object.Screen{Width: width, Height: height}
	if w.player != nil {
		w.updateCamera()
	}
}

// State returns the current game-flow tag.
func (w *World) State() State {
	return w.state
}

// Playing reports whether Step advances the simulation.
func (w *World) Playing() bool {
	return w.state == StatePlaying
}

// Stage returns the active stage.
func (w *World) Stage() words.Stage {
	return w.stage
}

// Stages returns the stage table the world was built with.
func (w *World) Stages() *words.Table {
	return w.stages
}

// Input returns the current typing buffer.
func (w *World) Input() string {
	return w.input
}

func (w *World) newID() uint64 {
	w.nextID++
	return w.nextID
}

func (w *World) addEffect(text string, x, y float64, color string, size float64) {
	w.effects = append(w.effects, object.NewEffect(text, x, y, color, size))
}

// Step advances the simulation by one fixed step. It does nothing unless
// the world is PLAYING.
func (w *World) Step() {
	if w.state != StatePlaying {
		return
	}

	w.spawn()
	w.moveEnemies()
	w.resolveCombat()
	w.cleanup()
	w.checkGameOver()
}

// cleanup drops expired effects, dead enemies and burnt-out fire zones.
func (w *World) cleanup() {
	effects := w.effects[:0]
	for _, e := range w.effects {
		if !e.Update() {
			effects = append(effects, e)
		}
	}
	clear(w.effects[len(effects):])
	w.effects = effects

	enemies := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.IsDestroyed() {
			enemies = append(enemies, e)
		}
	}
	clear(w.enemies[len(enemies):])
	w.enemies = enemies

	zones := w.fireZones[:0]
	for _, z := range w.fireZones {
		if !z.Update() {
			zones = append(zones, z)
		}
	}
	clear(w.fireZones[len(zones):])
	w.fireZones = zones
}
