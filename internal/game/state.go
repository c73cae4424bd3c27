package game

// State is the game-flow tag.
type State int

const (
	StateMenu       State = iota // idle, nothing advances
	StatePlaying                 // simulation runs
	StatePaused                  // an upgrade choice is pending
	StateGameOver                // player hp reached zero
	StateStageClear              // stage goal reached
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAMEOVER"
	case StateStageClear:
		return "STAGE_CLEAR"
	default:
		return "UNKNOWN"
	}
}
