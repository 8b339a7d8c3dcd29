// Package notify publishes user-facing toast notifications. It has no
// rendering of its own; the desktop shell subscribes and decides how to show
// and expire them.
package notify

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackingproject/hackingos/pkg/event"
)

// Level indicates how the shell should style a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
)

// PostedEvent is published for every notification.
type PostedEvent struct {
	ID      uuid.UUID
	Level   Level
	Message string
}

// Service fans notifications out over the event bus.
type Service struct {
	bus *event.Bus
	log *zap.Logger
}

func NewService(bus *event.Bus, log *zap.Logger) *Service {
	if bus == nil {
		panic("notify: nil event bus")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{bus: bus, log: log}
}

// Info posts an informational notification.
func (s *Service) Info(message string) uuid.UUID { return s.post(LevelInfo, message) }

// Success posts a success notification.
func (s *Service) Success(message string) uuid.UUID { return s.post(LevelSuccess, message) }

// Warning posts a warning notification.
func (s *Service) Warning(message string) uuid.UUID { return s.post(LevelWarning, message) }

func (s *Service) post(level Level, message string) uuid.UUID {
	id := uuid.New()
	s.log.Debug("notification posted", zap.Stringer("id", id), zap.String("message", message))
	event.Publish(s.bus, PostedEvent{ID: id, Level: level, Message: message})
	return id
}
