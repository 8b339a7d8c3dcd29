// Package autosave coalesces bursts of progress events into single disk
// writes. A fixed debounce timer is re-armed by every qualifying event and a
// write happens only once it expires.
package autosave

import (
	"go.uber.org/zap"

	"github.com/hackingproject/hackingos/pkg/event"
	"github.com/hackingproject/hackingos/pkg/mission"
	"github.com/hackingproject/hackingos/pkg/save"
	"github.com/hackingproject/hackingos/pkg/store"
)

// DefaultDebounceSeconds is the quiet period required after the last
// qualifying event before a write happens.
const DefaultDebounceSeconds = 1.5

// Writer persists a snapshot. *save.Service satisfies it.
type Writer interface {
	Save(data *save.GameData) error
}

// Service schedules debounced saves. Tick drives the timer; the service does
// no background work of its own.
type Service struct {
	bus    *event.Bus
	log    *zap.Logger
	writer Writer
	data   *save.GameData

	debounce  float64
	remaining float64
	armed     bool
}

// NewService subscribes to the progress events that warrant a save. A
// non-positive debounce falls back to DefaultDebounceSeconds.
func NewService(bus *event.Bus, log *zap.Logger, writer Writer, data *save.GameData, debounceSeconds float64) *Service {
	if bus == nil {
		panic("autosave: nil event bus")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if debounceSeconds <= 0 {
		debounceSeconds = DefaultDebounceSeconds
	}
	s := &Service{bus: bus, log: log, writer: writer, data: data, debounce: debounceSeconds}
	event.Subscribe(bus, func(mission.CompletedEvent) { s.arm() })
	event.Subscribe(bus, func(mission.RewardGrantedEvent) { s.arm() })
	event.Subscribe(bus, func(store.PurchaseCompletedEvent) { s.arm() })
	event.Subscribe(bus, func(store.AppInstalledEvent) { s.arm() })
	return s
}

// Pending reports whether a save is scheduled.
func (s *Service) Pending() bool { return s.armed }

// arm resets the timer to the full debounce window, so the write lands a
// fixed quiet period after the last qualifying event.
func (s *Service) arm() {
	s.armed = true
	s.remaining = s.debounce
}

// Tick advances the timer by dt seconds and writes when it expires.
func (s *Service) Tick(dt float64) {
	if !s.armed {
		return
	}
	s.remaining -= dt
	if s.remaining > 0 {
		return
	}
	s.armed = false
	s.SaveNow()
}

// SaveNow performs an immediate write: session owners refresh the snapshot
// via SessionCaptureEvent first, then the writer runs. Write failures are
// logged and do not interrupt the session.
func (s *Service) SaveNow() {
	event.Publish(s.bus, save.SessionCaptureEvent{Session: &s.data.OsSession})
	if err := s.writer.Save(s.data); err != nil {
		s.log.Error("autosave failed", zap.Error(err))
		return
	}
	event.Publish(s.bus, save.CompletedEvent{Data: s.data})
}
