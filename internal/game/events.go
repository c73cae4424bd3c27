package game

import "github.com/jimkro/TYPE-100/internal/weapon"

// EventKind identifies what a collaborator should react to.
type EventKind int

const (
	EventKill         EventKind = iota // kill sound for Weapon
	EventHitPlayer                     // player took a projectile
	EventSwitchMusic                   // background music changes to Music
	EventStopMusic                     // background music stops
	EventUpgradeOffer                  // show Options, answer with ChooseUpgrade
	EventGameOver                      // game-over modal
	EventStageClear                    // stage-clear modal
)

func (k EventKind) String() string {
	switch k {
	case EventKill:
		return "kill"
	case EventHitPlayer:
		return "hit-player"
	case EventSwitchMusic:
		return "switch-music"
	case EventStopMusic:
		return "stop-music"
	case EventUpgradeOffer:
		return "upgrade-offer"
	case EventGameOver:
		return "game-over"
	case EventStageClear:
		return "stage-clear"
	default:
		return "unknown"
	}
}

// MusicMode selects a background track.
type MusicMode string

const (
	MusicNormal MusicMode = "normal"
	MusicBoss   MusicMode = "boss"
)

// Event is one entry of the per-step output queue.
type Event struct {
	Kind    EventKind
	Weapon  weapon.ID       // EventKill
	Music   MusicMode       // EventSwitchMusic
	Options []UpgradeOption // EventUpgradeOffer
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

// DrainEvents returns the queued events and empties the queue.
func (w *World) DrainEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	out := w.events
	w.events = nil
	return out
}
