package ecs_test

import (
	"testing"

	"github.com/plus3/ecsman/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct{ n int }

func TestEventBus(t *testing.T) {
	t.Run("handlers run in subscription order", func(t *testing.T) {
		bus := ecs.NewEventBus()
		var got []string
		ecs.Subscribe(bus, func(p ping) { got = append(got, "a") })
		ecs.Subscribe(bus, func(p ping) { got = append(got, "b") })
		ecs.Subscribe(bus, func(s string) { got = append(got, s) })

		ecs.Publish(bus, ping{})
		assert.Equal(t, []string{"a", "b"}, got)
		assert.Equal(t, 3, bus.Len())
	})

	t.Run("unsubscribe", func(t *testing.T) {
		bus := ecs.NewEventBus()
		count := 0
		unsubscribe := ecs.Subscribe(bus, func(p ping) { count += p.n })

		ecs.Publish(bus, ping{n: 2})
		unsubscribe()
		unsubscribe()
		ecs.Publish(bus, ping{n: 2})

		assert.Equal(t, 2, count)
		assert.Equal(t, 0, bus.Len())
	})

	t.Run("handler removed during publish is skipped", func(t *testing.T) {
		bus := ecs.NewEventBus()
		var second func()
		calls := 0
		ecs.Subscribe(bus, func(ping) { second() })
		second = ecs.Subscribe(bus, func(ping) { calls++ })

		ecs.Publish(bus, ping{})
		assert.Equal(t, 0, calls)
	})

	t.Run("handler added during publish sees the next event", func(t *testing.T) {
		bus := ecs.NewEventBus()
		calls := 0
		added := false
		ecs.Subscribe(bus, func(ping) {
			if !added {
				added = true
				ecs.Subscribe(bus, func(ping) { calls++ })
			}
		})

		ecs.Publish(bus, ping{})
		assert.Equal(t, 0, calls)
		ecs.Publish(bus, ping{})
		assert.Equal(t, 1, calls)
	})

	t.Run("publish to nil bus", func(t *testing.T) {
		assert.NotPanics(t, func() { ecs.Publish[ping](nil, ping{}) })
	})
}

func TestManagerEvents(t *testing.T) {
	m := newManager()

	var events []any
	bus := m.EventBus()
	require.NotNil(t, bus)
	ecs.Subscribe(bus, func(e ecs.EntityRegistered) { events = append(events, e.Id) })
	ecs.Subscribe(bus, func(e ecs.EntityUnregistered) { events = append(events, -int(e.Id)) })
	ecs.Subscribe(bus, func(e ecs.ComponentAdded) { events = append(events, "+"+typeName(e.Type)) })
	ecs.Subscribe(bus, func(e ecs.ComponentRemoved) {
		assert.Equal(t, e.Id, e.Component.Id(), "component is not disposed yet")
		events = append(events, "-"+typeName(e.Type))
	})
	ecs.Subscribe(bus, func(e ecs.SystemRegistered) { events = append(events, e.System) })
	ecs.Subscribe(bus, func(e ecs.SystemUnregistered) { events = append(events, e.Id) })

	e := mustEntity(m)
	mustComponent(m, e, &Position{})
	mustComponent(m, e, &Position{})
	s := newRecordingSystem("s", nil)
	require.NoError(t, m.RegisterSystem(s))
	require.NoError(t, m.UnregisterEntity(e))
	require.NoError(t, m.UnregisterSystem(s.Id()))

	assert.Equal(t, []any{
		ecs.EntityId(1),
		"+Position",
		"-Position",
		"+Position",
		s,
		"-Position",
		-1,
		ecs.SystemId(1),
	}, events)

	m.Destroy()
	assert.Equal(t, 0, bus.Len())
}
