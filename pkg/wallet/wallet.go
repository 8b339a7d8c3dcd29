// Package wallet tracks the player's credit balance.
package wallet

import (
	"github.com/hackingproject/hackingos/pkg/event"
	"go.uber.org/zap"
)

// ChangedEvent is published on every balance mutation. Delta is negative
// for debits.
type ChangedEvent struct {
	Previous int
	Current  int
	Delta    int
	Reason   string
}

// Service is the credits ledger. It does not go negative through its own
// methods: debits happen only via TrySpendCredits, which checks first.
type Service struct {
	bus     *event.Bus
	log     *zap.Logger
	credits int
}

// NewService starts the ledger at startingCredits.
func NewService(bus *event.Bus, log *zap.Logger, startingCredits int) *Service {
	if bus == nil {
		panic("wallet: nil event bus")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{bus: bus, log: log, credits: startingCredits}
}

// Credits returns the current balance.
func (s *Service) Credits() int { return s.credits }

// AddCredits adjusts the balance and publishes a ChangedEvent. A zero
// amount is a no-op.
func (s *Service) AddCredits(amount int, reason string) {
	if amount == 0 {
		return
	}
	previous := s.credits
	s.credits += amount
	s.log.Debug("credits changed",
		zap.Int("previous", previous),
		zap.Int("current", s.credits),
		zap.String("reason", reason))
	event.Publish(s.bus, ChangedEvent{
		Previous: previous,
		Current:  s.credits,
		Delta:    amount,
		Reason:   reason,
	})
}

// TrySpendCredits debits amount if the balance covers it. On failure it
// returns false with no mutation and no event.
func (s *Service) TrySpendCredits(amount int, reason string) bool {
	if amount > s.credits {
		return false
	}
	s.AddCredits(-amount, reason)
	return true
}
