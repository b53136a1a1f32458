package ecs_test

import (
	"testing"

	"github.com/plus3/ecsman/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	t.Run("operations are applied at the end of update", func(t *testing.T) {
		m := newManager()
		defer m.Destroy()

		var sawCount int
		s := newRecordingSystem("spawner", nil)
		s.onUpdate = func(float32) {
			m.Commands().RegisterEntity(&ecs.BaseEntity{}, &Position{X: 1}, &Velocity{DX: 2})
			sawCount = m.EntityCount()
		}
		require.NoError(t, m.RegisterSystem(s))

		assert.Equal(t, 0, m.Commands().Len())
		require.NoError(t, m.Update(1))

		assert.Equal(t, 0, sawCount)
		assert.Equal(t, 1, m.EntityCount())
		assert.Equal(t, 2, m.ComponentCount())
		assert.Equal(t, 0, m.Commands().Len())
		assert.Len(t, s.added, 2)
	})

	t.Run("entity ref resolves after flush", func(t *testing.T) {
		m := newManager()
		defer m.Destroy()

		ref := m.Commands().RegisterEntity(&ecs.BaseEntity{})
		m.Commands().RegisterComponentOn(ref, &Health{Current: 7})
		assert.Equal(t, ecs.EntityId(0), ref.Id())
		assert.Nil(t, ref.Entity())
		assert.Equal(t, 2, m.Commands().Len())

		require.NoError(t, m.Update(0))

		require.NotEqual(t, ecs.EntityId(0), ref.Id())
		assert.Equal(t, ref.Id(), ref.Entity().Id())

		health, ok := ecs.ComponentAs[*Health](m, ref.Id(), HealthType)
		require.True(t, ok)
		assert.Equal(t, 7, health.Current)
	})

	t.Run("removals run before registrations", func(t *testing.T) {
		m := newManager()
		defer m.Destroy()

		tr := &trace{}
		require.NoError(t, m.RegisterSystem(newRecordingSystem("s", tr)))

		doomed := mustEntity(m)
		mustComponent(m, doomed, &Position{})
		survivor := mustEntity(m)
		name := mustComponent(m, survivor, &Name{Value: "x"})
		tr.lines = nil

		cmds := m.Commands()
		cmds.Defer(func() { tr.add("defer") })
		cmds.RegisterComponent(survivor, &Velocity{})
		cmds.RegisterEntity(&ecs.BaseEntity{}, &Health{})
		cmds.UnregisterEntity(doomed)
		cmds.UnregisterComponent(name.Id())

		require.NoError(t, m.Update(0))

		assert.Equal(t, []string{
			"s: update 0.00",
			"s: removed Name#2 on entity 2",
			"s: removed Position#1 on entity 1",
			"s: added Health#3 on entity 3",
			"s: added Velocity#4 on entity 2",
			"defer",
		}, tr.lines)
	})

	t.Run("commands queued while flushing run next update", func(t *testing.T) {
		m := newManager()
		defer m.Destroy()

		var runs []string
		m.Commands().Defer(func() {
			runs = append(runs, "first")
			m.Commands().Defer(func() { runs = append(runs, "second") })
		})

		require.NoError(t, m.Update(0))
		assert.Equal(t, []string{"first"}, runs)
		assert.Equal(t, 1, m.Commands().Len())

		require.NoError(t, m.Update(0))
		assert.Equal(t, []string{"first", "second"}, runs)
	})

	t.Run("buffer is dropped when a system destroys the manager", func(t *testing.T) {
		m := newManager()

		ran := false
		s := newRecordingSystem("s", nil)
		s.onUpdate = func(float32) {
			m.Commands().Defer(func() { ran = true })
			m.Destroy()
		}
		require.NoError(t, m.RegisterSystem(s))

		require.NoError(t, m.Update(0))
		assert.False(t, ran)
		assert.Nil(t, m.Commands())
	})

	t.Run("flush stops when a command destroys the manager", func(t *testing.T) {
		m := newManager()

		cmds := m.Commands()
		cmds.Defer(func() { m.Destroy() })
		ref := cmds.RegisterEntity(&ecs.BaseEntity{})
		after := false
		cmds.Defer(func() { after = true })

		require.NoError(t, m.Update(0))
		assert.False(t, m.IsInitialized())
		assert.False(t, after)
		assert.Equal(t, ecs.EntityId(1), ref.Id())
	})

	t.Run("assemblage", func(t *testing.T) {
		m := newManager()
		defer m.Destroy()

		ref := m.Commands().RegisterAssemblage(ecs.NewAssemblage("mover", &Position{}, &Velocity{}))
		require.NoError(t, m.Update(0))

		comps, ok := m.ComponentsOf(ref.Id())
		require.True(t, ok)
		assert.Len(t, comps, 2)
	})
}
