// Package event provides the typed publish/subscribe hub that wires the
// simulated OS together. Each event type has its own ordered subscriber
// list; nothing in the core calls another component's UI layer directly.
package event

import "reflect"

// Bus dispatches published events to subscribers registered for the exact
// event type. It is not safe for concurrent use: the whole simulation runs
// on one logical goroutine (the bubbletea update loop).
type Bus struct {
	handlers map[reflect.Type][]*registration
}

type registration struct {
	invoke func(any)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[reflect.Type][]*registration)}
}

// CloseAll drops every subscription. Used at shutdown so late publishes
// become no-ops.
func (b *Bus) CloseAll() {
	b.handlers = make(map[reflect.Type][]*registration)
}

// Subscription removes its handler from the bus when closed. Closing twice
// is a no-op.
type Subscription struct {
	bus *Bus
	typ reflect.Type
	reg *registration
}

// Close unregisters the handler. Safe to call more than once and safe to
// call during a publish of the same event type: the in-flight dispatch works
// off a snapshot and is unaffected.
func (s *Subscription) Close() {
	if s == nil || s.reg == nil {
		return
	}
	reg := s.reg
	s.reg = nil

	subs := s.bus.handlers[s.typ]
	for i, r := range subs {
		if r == reg {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(s.bus.handlers, s.typ)
	} else {
		s.bus.handlers[s.typ] = subs
	}
}

// Subscribe registers handler for events of type T and returns the handle
// that removes it. A nil handler is a programming error.
func Subscribe[T any](b *Bus, handler func(T)) *Subscription {
	if handler == nil {
		panic("event: nil handler")
	}
	typ := reflect.TypeOf((*T)(nil)).Elem()
	reg := &registration{invoke: func(evt any) { handler(evt.(T)) }}
	b.handlers[typ] = append(b.handlers[typ], reg)
	return &Subscription{bus: b, typ: typ, reg: reg}
}

// Publish delivers evt to every subscriber of type T in registration order.
// The subscriber list is snapshotted first, so handlers may subscribe or
// unsubscribe (or publish again) without affecting the in-flight dispatch.
// Publishing a nil pointer or nil interface value is a programming error.
func Publish[T any](b *Bus, evt T) {
	v := reflect.ValueOf(&evt).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		if v.IsNil() {
			panic("event: nil event")
		}
	}

	typ := reflect.TypeOf((*T)(nil)).Elem()
	subs := b.handlers[typ]
	if len(subs) == 0 {
		return
	}

	snapshot := make([]*registration, len(subs))
	copy(snapshot, subs)
	for _, reg := range snapshot {
		reg.invoke(evt)
	}
}
