package main

import (
	"sync"

	"github.com/jauhararifin/puzzle"
)

// outcome records which session callback fired.
type outcome struct {
	mu    sync.Mutex
	phase puzzle.Phase
	done  chan struct{}
}

func newOutcome() *outcome {
	return &outcome{done: make(chan struct{})}
}

func (o *outcome) set(phase puzzle.Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.phase.Terminal() {
		return
	}
	o.phase = phase
	close(o.done)
}

func (o *outcome) get() (puzzle.Phase, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase, o.phase.Terminal()
}

func (o *outcome) Done() <-chan struct{} {
	return o.done
}
