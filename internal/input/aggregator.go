// Package input merges heterogeneous input sources into the single abstract
// signal the simulation consumes: a steering pair {left, right} plus one-shot
// confirm/pause/quit edges. Physical sources (key events, device tilt) never
// reach the simulation directly.
package input

import "github.com/vovakirdan/tui-jumper/internal/core"

// Signal is the steering state reduced from one physical source.
type Signal struct {
	Left  bool
	Right bool
}

func (s Signal) active() bool {
	return s.Left || s.Right
}

// Source produces a steering signal. The second return reports whether the
// source should be consulted at all this tick; an unconsulted source never
// influences the frame.
type Source interface {
	Signal() (Signal, bool)
}

// Aggregator combines sources in priority order and queues one-shot edges.
// Sources earlier in the list win: the first consulted source with an active
// signal supplies the steering for the frame. Edge events (confirm, pause,
// quit) are recorded by the event handlers and consumed one per frame, so a
// single key press transitions exactly one tick regardless of frame timing.
type Aggregator struct {
	sources  []Source
	confirms int
	pauses   int
	quits    int
}

// NewAggregator creates an aggregator over the given sources, highest
// priority first.
func NewAggregator(sources ...Source) *Aggregator {
	return &Aggregator{sources: sources}
}

// Confirm records one confirm edge.
func (a *Aggregator) Confirm() {
	a.confirms++
}

// Pause records one pause edge.
func (a *Aggregator) Pause() {
	a.pauses++
}

// Quit records one quit edge.
func (a *Aggregator) Quit() {
	a.quits++
}

// Frame reduces the current source and edge state to an input frame for one
// simulation tick, consuming at most one queued edge of each kind.
func (a *Aggregator) Frame() core.InputFrame {
	f := core.NewInputFrame()

	for _, src := range a.sources {
		sig, ok := src.Signal()
		if !ok || !sig.active() {
			continue
		}
		if sig.Left {
			f.Set(core.ActionLeft)
		}
		if sig.Right {
			f.Set(core.ActionRight)
		}
		break
	}

	if a.confirms > 0 {
		a.confirms--
		f.Set(core.ActionConfirm)
	}
	if a.pauses > 0 {
		a.pauses--
		f.Set(core.ActionPause)
	}
	if a.quits > 0 {
		a.quits--
		f.Set(core.ActionQuit)
	}

	return f
}
