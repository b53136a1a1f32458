package ecs

import "reflect"

// EventBus is a synchronous, typed publish/subscribe channel. A Manager creates
// one on Init, publishes its lifecycle events to it and clears it on Destroy.
// Handlers are called in subscription order on the publishing goroutine.
type EventBus struct {
	handlers map[reflect.Type][]*subscription
	count    int
}

type subscription struct {
	handler any
	active  bool
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[reflect.Type][]*subscription),
	}
}

// Subscribe registers handler for events of type T and returns a function
// that removes it again. Calling the returned function more than once is a no-op.
func Subscribe[T any](bus *EventBus, handler func(T)) (unsubscribe func()) {
	t := reflect.TypeFor[T]()
	sub := &subscription{handler: handler, active: true}
	bus.handlers[t] = append(bus.handlers[t], sub)
	bus.count++

	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		subs := bus.handlers[t]
		for i, s := range subs {
			if s == sub {
				bus.handlers[t] = append(subs[:i:i], subs[i+1:]...)
				bus.count--
				break
			}
		}
	}
}

// Publish delivers event to every handler subscribed to T. Handlers added while
// publishing do not see the current event; handlers removed while publishing
// are skipped.
func Publish[T any](bus *EventBus, event T) {
	if bus == nil {
		return
	}
	subs := bus.handlers[reflect.TypeFor[T]()]
	if len(subs) == 0 {
		return
	}

	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)
	for _, sub := range snapshot {
		if sub.active {
			sub.handler.(func(T))(event)
		}
	}
}

// Len returns the number of active subscriptions.
func (bus *EventBus) Len() int {
	return bus.count
}

// Clear drops every subscription.
func (bus *EventBus) Clear() {
	for t, subs := range bus.handlers {
		for _, sub := range subs {
			sub.active = false
		}
		delete(bus.handlers, t)
	}
	bus.count = 0
}

// EntityRegistered is published after an entity has been created.
type EntityRegistered struct {
	Id     EntityId
	Entity Entity
}

// EntityUnregistered is published after an entity and its components have been disposed.
type EntityUnregistered struct {
	Id EntityId
}

// ComponentAdded is published after every system has been told about a new component.
type ComponentAdded struct {
	Id        ComponentId
	EntityId  EntityId
	Type      ComponentType
	Component Component
}

// ComponentRemoved is published after every system has been told about a
// removal and before the component is disposed.
type ComponentRemoved struct {
	Id        ComponentId
	EntityId  EntityId
	Type      ComponentType
	Component Component
}

// SystemRegistered is published after a system has caught up with the existing components.
type SystemRegistered struct {
	Id     SystemId
	System System
}

// SystemUnregistered is published after a system has been disposed.
type SystemUnregistered struct {
	Id SystemId
}
