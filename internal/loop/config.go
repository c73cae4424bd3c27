package loop

import "time"

// Frame pacing.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Simulation clock.
const (
	StepDuration  = time.Second / 60 // one fixed simulation step
	MaxFrameDelta = 2 * time.Second  // longer gaps count as a single step
)

// Render area. Larger terminals get a centred frame of this size.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
	MinTermWidth  = 40
	MinTermHeight = 12
	hudRows       = 1 // status line at the top
	promptRows    = 1 // typing line at the bottom
)

// Shutdown
const (
	ShutdownDisplay = 10 * time.Second       // message shown before auto-disconnect
	ShutdownPoll    = 200 * time.Millisecond // how often the hub checks for stragglers
)

// Inactivity
const (
	InactivityWarnUser       = 90 * time.Second
	InactivityDisconnectUser = 120 * time.Second
)
