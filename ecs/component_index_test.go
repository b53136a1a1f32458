package ecs_test

import (
	"slices"
	"testing"

	"github.com/plus3/ecsman/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// created gives c the identity the Manager would assign it.
func created[C ecs.Component](c C, id ecs.ComponentId, entityId ecs.EntityId) C {
	c.Create(id, entityId, nil)
	return c
}

func TestComponentIndex(t *testing.T) {
	t.Run("insert and lookups", func(t *testing.T) {
		ci := ecs.NewComponentIndex()
		p := created(&Position{}, 1, 10)
		v := created(&Velocity{}, 2, 10)
		q := created(&Position{}, 3, 20)

		for _, c := range []ecs.Component{p, v, q} {
			assert.Nil(t, ci.Insert(c))
		}
		assert.Equal(t, 3, ci.Len())

		got, ok := ci.Get(2)
		require.True(t, ok)
		assert.Same(t, v, got)

		got, ok = ci.GetByEntityAndType(20, PositionType)
		require.True(t, ok)
		assert.Same(t, q, got)

		assert.True(t, ci.HasType(10, VelocityType))
		assert.False(t, ci.HasType(20, VelocityType))
		assert.False(t, ci.HasType(30, PositionType))

		assert.Equal(t, []ecs.Component{p, q}, ci.AllOfType(PositionType))
		assert.Nil(t, ci.AllOfType(HealthType))

		comps, ok := ci.AllOfEntity(10)
		require.True(t, ok)
		assert.Equal(t, []ecs.Component{p, v}, comps)

		assert.Equal(t, []ecs.Component{p, v, q}, slices.Collect(ci.All()))
	})

	t.Run("insert evicts same type", func(t *testing.T) {
		ci := ecs.NewComponentIndex()
		old := created(&Health{}, 1, 5)
		ci.Insert(old)

		replacement := created(&Health{}, 2, 5)
		evicted := ci.Insert(replacement)

		assert.Same(t, old, evicted)
		assert.Equal(t, 1, ci.Len())
		_, ok := ci.Get(1)
		assert.False(t, ok)
		got, _ := ci.GetByEntityAndType(5, HealthType)
		assert.Same(t, replacement, got)
	})

	t.Run("remove keeps the entity bucket", func(t *testing.T) {
		ci := ecs.NewComponentIndex()
		ci.Insert(created(&Name{}, 1, 7))

		removed, ok := ci.Remove(1)
		require.True(t, ok)
		assert.Equal(t, ecs.ComponentId(1), removed.Id())

		comps, known := ci.AllOfEntity(7)
		assert.True(t, known)
		assert.Empty(t, comps)
		assert.NotNil(t, comps)

		_, ok = ci.Remove(1)
		assert.False(t, ok)
	})

	t.Run("remove all of entity drops the bucket", func(t *testing.T) {
		ci := ecs.NewComponentIndex()
		a := created(&Velocity{}, 4, 1)
		b := created(&Position{}, 2, 1)
		c := created(&Position{}, 3, 2)
		ci.Insert(b)
		ci.Insert(c)
		ci.Insert(a)

		removed := ci.RemoveAllOfEntity(1)
		assert.Equal(t, []ecs.Component{b, a}, removed)

		_, known := ci.AllOfEntity(1)
		assert.False(t, known)
		assert.Equal(t, 1, ci.Len())
		assert.Nil(t, ci.RemoveAllOfEntity(1))
	})

	t.Run("snapshot is safe to mutate under", func(t *testing.T) {
		ci := ecs.NewComponentIndex()
		for i := 1; i <= 4; i++ {
			ci.Insert(created(&Name{}, ecs.ComponentId(i), ecs.EntityId(i)))
		}

		seen := 0
		for _, c := range ci.Snapshot() {
			ci.Remove(c.Id())
			seen++
		}
		assert.Equal(t, 4, seen)
		assert.Equal(t, 0, ci.Len())
	})

	t.Run("clear", func(t *testing.T) {
		ci := ecs.NewComponentIndex()
		p := created(&Position{}, 1, 1)
		ci.Insert(p)
		ci.Clear()

		assert.Equal(t, 0, ci.Len())
		_, known := ci.AllOfEntity(1)
		assert.False(t, known)
		assert.Equal(t, ecs.ComponentId(1), p.Id(), "clear does not dispose")
	})
}
