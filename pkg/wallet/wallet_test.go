package wallet

import (
	"testing"

	"github.com/hackingproject/hackingos/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCreditsPublishesChange(t *testing.T) {
	bus := event.NewBus()
	svc := NewService(bus, nil, 10)

	var changes []ChangedEvent
	event.Subscribe(bus, func(e ChangedEvent) { changes = append(changes, e) })

	svc.AddCredits(25, "reward")

	assert.Equal(t, 35, svc.Credits())
	require.Len(t, changes, 1)
	assert.Equal(t, ChangedEvent{Previous: 10, Current: 35, Delta: 25, Reason: "reward"}, changes[0])
}

func TestAddZeroCreditsIsNoOp(t *testing.T) {
	bus := event.NewBus()
	svc := NewService(bus, nil, 10)

	fired := 0
	event.Subscribe(bus, func(ChangedEvent) { fired++ })

	svc.AddCredits(0, "nothing")
	assert.Equal(t, 10, svc.Credits())
	assert.Zero(t, fired)
}

func TestTrySpendCredits(t *testing.T) {
	bus := event.NewBus()
	svc := NewService(bus, nil, 50)

	var changes []ChangedEvent
	event.Subscribe(bus, func(e ChangedEvent) { changes = append(changes, e) })

	assert.True(t, svc.TrySpendCredits(30, "purchase"))
	assert.Equal(t, 20, svc.Credits())
	require.Len(t, changes, 1)
	assert.Equal(t, -30, changes[0].Delta)
}

func TestTrySpendInsufficientFunds(t *testing.T) {
	bus := event.NewBus()
	svc := NewService(bus, nil, 10)

	fired := 0
	event.Subscribe(bus, func(ChangedEvent) { fired++ })

	assert.False(t, svc.TrySpendCredits(11, "too much"))
	assert.Equal(t, 10, svc.Credits())
	assert.Zero(t, fired, "failed spend must not publish")
}

func TestNewServiceRequiresBus(t *testing.T) {
	assert.Panics(t, func() { NewService(nil, nil, 0) })
}
