// Package sfx defines where game events go for sound. Sinks here need no
// audio device; the audio subpackage drives a real speaker.
package sfx

import (
	"io"

	"github.com/jimkro/TYPE-100/internal/game"
)

// Sink consumes game events after each frame.
type Sink interface {
	Handle(ev game.Event)
}

// Nop ignores every event.
type Nop struct{}

// Handle implements Sink.
func (Nop) Handle(game.Event) {}

// Bell rings the terminal bell when the player is hit. Used where the
// process has no audio device of its own, such as SSH sessions.
type Bell struct {
	W io.Writer
}

// Handle implements Sink.
func (b Bell) Handle(ev game.Event) {
	if b.W == nil {
		return
	}
	if ev.Kind == game.EventHitPlayer || ev.Kind == game.EventGameOver {
		_, _ = io.WriteString(b.W, "\a")
	}
}
