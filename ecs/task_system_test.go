package ecs_test

import (
	"testing"

	"github.com/plus3/ecsman/ecs"
	"github.com/plus3/ecsman/ecs/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskSystem(t *testing.T) {
	m := newManager()
	defer m.Destroy()

	ticks := map[ecs.EntityId]int{}
	ts := ecs.NewTaskSystem(false, func(c ecs.Component) task.Task {
		h, ok := c.(*Health)
		if !ok {
			return nil
		}
		entity := h.EntityId()
		return task.Func(func(delta float32) {
			ticks[entity]++
			h.Current--
		})
	})

	e1 := mustEntity(m)
	h1 := &Health{Current: 10}
	mustComponent(m, e1, h1)
	mustComponent(m, e1, &Position{})

	require.NoError(t, m.RegisterSystem(ts))
	assert.Equal(t, 1, ts.TaskCount(), "existing components are picked up on registration")

	e2 := mustEntity(m)
	mustComponent(m, e2, &Health{Current: 5})
	assert.Equal(t, 2, ts.TaskCount())

	require.NoError(t, m.Update(0.1))
	require.NoError(t, m.Update(0.1))
	assert.Equal(t, map[ecs.EntityId]int{e1: 2, e2: 2}, ticks)
	assert.Equal(t, 8, h1.Current)

	require.NoError(t, m.UnregisterEntity(e2))
	assert.Equal(t, 1, ts.TaskCount())

	require.NoError(t, m.Update(0.1))
	assert.Equal(t, 3, ticks[e1])
	assert.Equal(t, 2, ticks[e2])

	require.NoError(t, m.UnregisterSystem(ts.Id()))
	assert.Equal(t, 0, ts.TaskCount())
}
