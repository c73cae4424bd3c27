// Package loop runs one player's session: it reads keys, advances the
// world on a fixed clock, forwards events to a sound sink and draws each
// frame to the terminal.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/jimkro/TYPE-100/internal/draw"
	"github.com/jimkro/TYPE-100/internal/game"
	"github.com/jimkro/TYPE-100/internal/input"
	"github.com/jimkro/TYPE-100/internal/sfx"
	"github.com/jimkro/TYPE-100/internal/words"
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Sink         sfx.Sink
	Game         game.Options
	Cheats       bool // enables the level-up key
	ColorProfile termenv.Profile
	Username     string

	// Shutdown, when closed, shows the shutdown notice and ends the
	// session after ShutdownDisplay.
	Shutdown <-chan struct{}
	// Online reports how many sessions share the server. Optional.
	Online func() int
	// Now is the clock used for pacing. Defaults to time.Now.
	Now func() time.Time
}

// Session is one connected player with a world of their own.
type Session struct {
	world  *game.World
	clock  Clock
	canvas *draw.Canvas
	cw     *draw.ChunkWriter
	pal    *draw.Palette
	writer io.Writer
	stream *input.Stream
	logger *log.Logger
	sink   sfx.Sink
	opts   Options
	now    func() time.Time

	running   bool
	menuIndex int // highlighted entry on the menu and upgrade screens

	lastInput   time.Time
	inactive    bool
	wasInactive bool

	shuttingDown bool
	shutdownAt   time.Time

	prevState  game.State
	forceClear bool

	cols, rows     int // render area
	offCol, offRow int
}

// NewSession creates a session reading keys from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) *Session {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sink == nil {
		opts.Sink = sfx.Nop{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Session{
		world:     game.New(opts.Game),
		canvas:    draw.NewCanvas(0, 0),
		cw:        draw.NewChunkWriter(w, 0, 0),
		pal:       draw.NewPalette(w, opts.ColorProfile),
		writer:    w,
		stream:    input.StartStream(r),
		logger:    opts.Logger,
		sink:      opts.Sink,
		opts:      opts,
		now:       opts.Now,
		running:   true,
		lastInput: opts.Now(),
		prevState: game.StateMenu,
	}
	s.updateScreen()
	return s
}

// Run creates a session and blocks until it ends.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	return NewSession(r, w, opts).Run()
}

// Run drives the Input → Update → Draw cycle until the player quits, the
// input closes, or the session is shut down.
func (s *Session) Run() error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	for s.running {
		frameStart := time.Now()

		s.processInput()
		s.checkShutdown()
		s.updateScreen()

		if !s.shuttingDown {
			s.clock.Tick(s.now(), s.world)
		}
		s.dispatchEvents()

		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < TargetFrameTime {
			time.Sleep(TargetFrameTime - elapsed)
		}
	}

	draw.ResetStyle(s.writer)
	draw.ClearScreen(s.writer)
	return nil
}

// World exposes the session's simulation.
func (s *Session) World() *game.World {
	return s.world
}

// Running reports whether the session loop should continue.
func (s *Session) Running() bool {
	return s.running
}

// processInput reads pending keys and tracks inactivity.
func (s *Session) processInput() {
	keys := input.ReadKeys(s.stream)
	if s.stream.Closed() {
		s.running = false
	}

	now := s.now()
	if len(keys) > 0 {
		s.lastInput = now
		s.inactive = false
	} else if idle := now.Sub(s.lastInput); idle > InactivityDisconnectUser {
		s.logger.Info("disconnecting idle session", "idle", idle.Round(time.Second))
		s.running = false
	} else if idle > InactivityWarnUser {
		s.inactive = true
	}

	for _, k := range keys {
		if !s.running {
			return
		}
		s.handleKey(k)
	}
}

// handleKey applies one key press in the context of the current screen.
func (s *Session) handleKey(k input.Key) {
	if k.Kind == input.KeyInterrupt {
		s.running = false
		return
	}
	if s.shuttingDown {
		if k.Kind == input.KeyEscape || (k.Kind == input.KeyRune && (k.Rune == 'q' || k.Rune == 'Q')) {
			s.running = false
		}
		return
	}

	switch s.world.State() {
	case game.StateMenu:
		s.menuKey(k)
	case game.StatePlaying:
		s.playingKey(k)
	case game.StatePaused:
		s.upgradeKey(k)
	case game.StateGameOver:
		s.gameOverKey(k)
	case game.StateStageClear:
		s.stageClearKey(k)
	}
}

func (s *Session) menuKey(k input.Key) {
	stages := s.world.Stages().Stages
	switch k.Kind {
	case input.KeyUp:
		s.menuIndex = (s.menuIndex + len(stages) - 1) % len(stages)
	case input.KeyDown:
		s.menuIndex = (s.menuIndex + 1) % len(stages)
	case input.KeyEnter, input.KeySpace:
		s.start(stages[s.menuIndex].ID)
	case input.KeyEscape:
		s.running = false
	case input.KeyRune:
		if k.Rune >= '1' && k.Rune <= '9' {
			if i := int(k.Rune - '1'); i < len(stages) {
				s.start(stages[i].ID)
			}
			return
		}
		if k.Rune == 'e' || k.Rune == 'E' {
			for _, st := range stages {
				if st.Endless {
					s.start(st.ID)
					return
				}
			}
		}
	}
}

func (s *Session) playingKey(k input.Key) {
	switch k.Kind {
	case input.KeyRune:
		if k.Rune == '\\' && s.opts.Cheats {
			s.world.CheatLevelUp()
			return
		}
		s.world.Type(k.Rune)
	case input.KeyBackspace:
		s.world.Backspace()
	case input.KeyEnter, input.KeySpace:
		s.world.Commit()
	case input.KeyTab:
		s.world.CycleWeapon()
	case input.KeyEscape:
		s.logger.Info("run abandoned", "stage", s.world.Stage().ID)
		s.toMenu()
	}
}

func (s *Session) upgradeKey(k input.Key) {
	n := len(s.world.Offer())
	if n == 0 {
		return
	}
	switch k.Kind {
	case input.KeyUp, input.KeyLeft:
		s.menuIndex = (s.menuIndex + n - 1) % n
	case input.KeyDown, input.KeyRight:
		s.menuIndex = (s.menuIndex + 1) % n
	case input.KeyEnter, input.KeySpace:
		s.choose(s.menuIndex)
	case input.KeyRune:
		if k.Rune >= '1' && k.Rune <= '9' {
			s.choose(int(k.Rune - '1'))
		}
	}
}

func (s *Session) choose(i int) {
	offer := s.world.Offer()
	if err := s.world.ChooseUpgrade(i); err != nil {
		s.logger.Debug("upgrade rejected", "choice", i+1, "err", err)
		return
	}
	s.logger.Debug("upgrade chosen", "weapon", offer[i].ID, "level", offer[i].Level)
	s.menuIndex = 0
}

func (s *Session) gameOverKey(k input.Key) {
	switch {
	case k.Kind == input.KeyEnter, k.Kind == input.KeyRune && (k.Rune == 'r' || k.Rune == 'R'):
		s.start(s.world.Stage().ID)
	case k.Kind == input.KeyEscape, k.Kind == input.KeyRune && (k.Rune == 'm' || k.Rune == 'M'):
		s.toMenu()
	}
}

func (s *Session) stageClearKey(k input.Key) {
	switch {
	case k.Kind == input.KeyEnter, k.Kind == input.KeyRune && (k.Rune == 'n' || k.Rune == 'N'):
		s.start(s.world.Stages().Next(s.world.Stage().ID))
	case k.Kind == input.KeyEscape, k.Kind == input.KeyRune && (k.Rune == 'm' || k.Rune == 'M'):
		s.toMenu()
	}
}

// start begins a run on the given stage.
func (s *Session) start(id words.StageID) {
	if err := s.world.Reset(id); err != nil {
		s.logger.Error("failed to start game", "stage", id, "err", err)
		return
	}
	s.clock.Reset()
	s.menuIndex = 0
	s.logger.Info("game started", "stage", id)
}

func (s *Session) toMenu() {
	s.world.ReturnToMenu()
	s.menuIndex = 0
}

// checkShutdown starts the shutdown countdown once the server asks for it
// and ends the session when the countdown runs out.
func (s *Session) checkShutdown() {
	if !s.shuttingDown && s.opts.Shutdown != nil {
		select {
		case <-s.opts.Shutdown:
			s.shuttingDown = true
			s.shutdownAt = s.now().Add(ShutdownDisplay)
		default:
		}
	}
	if s.shuttingDown && !s.now().Before(s.shutdownAt) {
		s.running = false
	}
}

// dispatchEvents forwards this frame's events to the sink.
func (s *Session) dispatchEvents() {
	for _, ev := range s.world.DrainEvents() {
		s.sink.Handle(ev)

		switch ev.Kind {
		case game.EventGameOver:
			s.logger.Info("game over", "stage", s.world.Stage().ID, "level", s.world.HUD().Level)
		case game.EventStageClear:
			s.logger.Info("stage cleared", "stage", s.world.Stage().ID)
		case game.EventUpgradeOffer:
			s.menuIndex = 0
			s.logger.Debug("upgrade offered", "options", len(ev.Options))
		default:
			s.logger.Debug("event", "kind", ev.Kind)
		}
	}
}

// updateScreen follows terminal resizes. The canvas and the world's
// viewport track the clamped render area; a size change forces a full
// terminal clear so nothing from the old layout lingers.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.opts.TermSizeFunc()
	if err != nil {
		return
	}
	cols, rows, offCol, offRow := clampTermSize(termWidth, termHeight)
	if cols == s.cols && rows == s.rows && offCol == s.offCol && offRow == s.offRow {
		return
	}

	s.cols, s.rows, s.offCol, s.offRow = cols, rows, offCol, offRow
	s.canvas.Resize(cols, rows)
	s.cw.SetOffset(offCol, offRow)
	s.world.SetViewport(draw.ViewSize(cols, viewRows(rows)))
	s.forceClear = true
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = max(min(termWidth, MaxTermWidth), 0)
	renderHeight = max(min(termHeight, MaxTermHeight), 0)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// viewRows is the number of rows left for the playfield.
func viewRows(rows int) int {
	return max(rows-hudRows-promptRows, 1)
}
