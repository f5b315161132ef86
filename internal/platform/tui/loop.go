package tui

import "time"

// maxStepsPerFrame bounds how many simulation steps a single frame may run.
// When the process stalls longer than this (suspended terminal, debugger),
// the surplus wall-clock time is discarded instead of replayed as a burst.
const maxStepsPerFrame = 8

// FixedStepLoop converts variable wall-clock time into a whole number of
// fixed-duration simulation steps. Each frame, Advance reports how many steps
// to run before rendering; the remainder carries over to the next frame, so
// the simulation rate is independent of the display refresh rate.
type FixedStepLoop struct {
	step    time.Duration
	acc     time.Duration
	last    time.Time
	started bool
}

// NewFixedStepLoop creates a loop running tickRate steps per second.
func NewFixedStepLoop(tickRate int) *FixedStepLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedStepLoop{step: time.Second / time.Duration(tickRate)}
}

// StepDuration returns the fixed duration of one simulation step.
func (l *FixedStepLoop) StepDuration() time.Duration {
	return l.step
}

// Advance accumulates the wall-clock time since the previous call and drains
// it into whole steps. The first call establishes the baseline and runs no
// steps. Time moving backwards is ignored.
func (l *FixedStepLoop) Advance(now time.Time) int {
	if !l.started {
		l.started = true
		l.last = now
		return 0
	}

	elapsed := now.Sub(l.last)
	l.last = now
	if elapsed < 0 {
		return 0
	}
	l.acc += elapsed

	steps := int(l.acc / l.step)
	if steps > maxStepsPerFrame {
		steps = maxStepsPerFrame
		l.acc = 0
		return steps
	}

	l.acc -= time.Duration(steps) * l.step
	return steps
}
