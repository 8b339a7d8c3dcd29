// Package clock accumulates frame deltas into whole in-game seconds for the
// taskbar clock and anything else that wants a 1Hz pulse.
package clock

import (
	"fmt"

	"github.com/hackingproject/hackingos/pkg/event"
)

// SecondTickedEvent fires once per elapsed whole second.
type SecondTickedEvent struct {
	TotalSeconds int
}

// Service turns arbitrary tick deltas into SecondTickedEvents. Multiple
// whole seconds in one delta each fire their own event.
type Service struct {
	bus         *event.Bus
	accumulated float64
	total       int
}

func NewService(bus *event.Bus) *Service {
	if bus == nil {
		panic("clock: nil event bus")
	}
	return &Service{bus: bus}
}

// TotalSeconds returns the whole seconds elapsed so far.
func (s *Service) TotalSeconds() int { return s.total }

// Tick advances the clock by dt seconds.
func (s *Service) Tick(dt float64) {
	s.accumulated += dt
	for s.accumulated >= 1 {
		s.accumulated--
		s.total++
		event.Publish(s.bus, SecondTickedEvent{TotalSeconds: s.total})
	}
}

// FormatTime renders total seconds as HH:MM:SS.
func FormatTime(totalSeconds int) string {
	h := totalSeconds / 3600
	m := totalSeconds % 3600 / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
