// Package engine applies assistant command batches and direct user edits to
// the planner state: defaulting on creation, fuzzy matching on deletion, and
// sequential dispatch through a single state container.
package engine

import (
	"sync"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
)

// CommitFunc observes every committed state, typically to persist it. It
// receives a private copy and runs outside the container lock so a slow
// sink cannot stall the next transition.
type CommitFunc func(agenda.State)

// Container owns the canonical state value. Every mutation goes through
// Update so a transition always starts from the most recently committed
// state, never from a copy captured before an asynchronous wait.
type Container struct {
	mu     sync.Mutex
	state  agenda.State
	commit CommitFunc
}

func NewContainer(initial agenda.State, commit CommitFunc) *Container {
	initial.Init()
	return &Container{state: initial.Clone(), commit: commit}
}

// Load returns a copy of the current state.
func (c *Container) Load() agenda.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Update performs one read-modify-write cycle: fn receives a copy of the
// latest state and returns the next one. The returned snapshot is what was
// committed. fn must not retain the value it was handed.
func (c *Container) Update(fn func(agenda.State) agenda.State) agenda.State {
	c.mu.Lock()
	next := fn(c.state.Clone())
	next.Init()
	c.state = next.Clone()
	snapshot := next.Clone()
	c.mu.Unlock()

	if c.commit != nil {
		c.commit(snapshot.Clone())
	}
	return snapshot
}
