package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingEvent struct{ n int }
type otherEvent struct{ s string }

func TestPublishFanOutInOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	Subscribe(bus, func(pingEvent) { order = append(order, "first") })
	Subscribe(bus, func(pingEvent) { order = append(order, "second") })

	Publish(bus, pingEvent{n: 1})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() { Publish(bus, pingEvent{}) })
}

func TestTypesAreIndependent(t *testing.T) {
	bus := NewBus()

	pings := 0
	others := 0
	Subscribe(bus, func(pingEvent) { pings++ })
	Subscribe(bus, func(otherEvent) { others++ })

	Publish(bus, pingEvent{})
	Publish(bus, pingEvent{})
	Publish(bus, otherEvent{s: "x"})

	assert.Equal(t, 2, pings)
	assert.Equal(t, 1, others)
}

func TestCloseRemovesExactlyOneHandler(t *testing.T) {
	bus := NewBus()

	a, b := 0, 0
	subA := Subscribe(bus, func(pingEvent) { a++ })
	Subscribe(bus, func(pingEvent) { b++ })

	subA.Close()
	Publish(bus, pingEvent{})

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
}

func TestCloseTwiceIsNoOp(t *testing.T) {
	bus := NewBus()

	calls := 0
	keep := Subscribe(bus, func(pingEvent) { calls++ })
	gone := Subscribe(bus, func(pingEvent) {})
	_ = keep

	gone.Close()
	assert.NotPanics(t, gone.Close)

	Publish(bus, pingEvent{})
	assert.Equal(t, 1, calls)
}

func TestSubscribeDuringPublishNotInvokedThisDispatch(t *testing.T) {
	bus := NewBus()

	late := 0
	Subscribe(bus, func(pingEvent) {
		Subscribe(bus, func(pingEvent) { late++ })
	})

	Publish(bus, pingEvent{})
	assert.Equal(t, 0, late, "handler added mid-dispatch must not see the in-flight event")

	Publish(bus, pingEvent{})
	assert.Equal(t, 1, late)
}

func TestUnsubscribeDuringPublishStillDelivers(t *testing.T) {
	bus := NewBus()

	var subB *Subscription
	bCalls := 0
	Subscribe(bus, func(pingEvent) { subB.Close() })
	subB = Subscribe(bus, func(pingEvent) { bCalls++ })

	Publish(bus, pingEvent{})
	require.Equal(t, 1, bCalls, "snapshot must include handlers removed mid-dispatch")

	Publish(bus, pingEvent{})
	assert.Equal(t, 1, bCalls)
}

func TestReentrantPublish(t *testing.T) {
	bus := NewBus()

	var seen []int
	Subscribe(bus, func(e pingEvent) {
		seen = append(seen, e.n)
		if e.n == 1 {
			Publish(bus, pingEvent{n: 2})
		}
	})

	Publish(bus, pingEvent{n: 1})
	assert.Equal(t, []int{1, 2}, seen)
}

func TestNilHandlerPanics(t *testing.T) {
	bus := NewBus()
	assert.Panics(t, func() { Subscribe[pingEvent](bus, nil) })
}

func TestNilEventPanics(t *testing.T) {
	bus := NewBus()
	Subscribe(bus, func(*pingEvent) {})
	assert.Panics(t, func() { Publish[*pingEvent](bus, nil) })
}
