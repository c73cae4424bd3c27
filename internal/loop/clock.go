package loop

import "time"

// Stepper is the simulation driven by a Clock.
type Stepper interface {
	Step()
	Playing() bool
}

// Clock converts wall-clock frames into fixed simulation steps.
type Clock struct {
	last    time.Time
	started bool
	acc     time.Duration
}

// Tick accounts for the time since the previous tick and runs as many
// whole steps as fit. The first tick only records the timestamp. Returns
// the number of steps run.
func (c *Clock) Tick(now time.Time, sim Stepper) int {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}

	delta := now.Sub(c.last)
	c.last = now
	if delta > MaxFrameDelta {
		delta = StepDuration
	} else if delta < 0 {
		delta = 0
	}

	if !sim.Playing() {
		c.acc = 0
		return 0
	}

	c.acc += delta
	steps := 0
	for c.acc >= StepDuration && sim.Playing() {
		sim.Step()
		c.acc -= StepDuration
		steps++
	}
	if !sim.Playing() {
		c.acc = 0
	}
	return steps
}

// Reset forgets the last timestamp and any banked time.
func (c *Clock) Reset() {
	c.started = false
	c.acc = 0
}
