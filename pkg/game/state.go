// Package game assembles the simulated OS: it owns the event bus, builds
// every service with explicit constructor injection, and drives the
// per-frame tick. Nothing here renders; the desktop shell is a consumer.
package game

import "github.com/hackingproject/hackingos/pkg/event"

// State is a top-level phase of the program.
type State int

const (
	StateBoot State = iota
	StateMainMenu
	StateGameplay
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "mainMenu"
	case StateGameplay:
		return "gameplay"
	default:
		return "boot"
	}
}

// StateChangedEvent is published on every phase transition.
type StateChangedEvent struct {
	Previous State
	Current  State
}

// StateMachine tracks the current phase. Setting the current state again is
// a no-op.
type StateMachine struct {
	bus   *event.Bus
	state State
}

func NewStateMachine(bus *event.Bus) *StateMachine {
	if bus == nil {
		panic("game: nil event bus")
	}
	return &StateMachine{bus: bus, state: StateBoot}
}

// Current returns the active phase.
func (m *StateMachine) Current() State { return m.state }

// Set transitions to next and publishes StateChangedEvent.
func (m *StateMachine) Set(next State) {
	if next == m.state {
		return
	}
	prev := m.state
	m.state = next
	event.Publish(m.bus, StateChangedEvent{Previous: prev, Current: next})
}
