package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdOrder(t *testing.T) {
	t.Run("sorted", func(t *testing.T) {
		var o idOrder[ComponentId]
		for id := ComponentId(1); id <= 5; id++ {
			o.add(id)
		}
		o.remove(3)
		o.remove(9)
		assert.Equal(t, []ComponentId{1, 2, 4, 5}, o.clone())
	})

	t.Run("out of order", func(t *testing.T) {
		var o idOrder[ComponentId]
		o.add(1)
		o.add(3)
		o.add(2)

		o.remove(2)
		assert.Equal(t, []ComponentId{1, 3}, o.clone())
		o.remove(3)
		o.remove(1)
		assert.Empty(t, o.clone())
	})
}

type nestedComponent struct {
	BaseComponent
	child Component
}

func (*nestedComponent) Type() ComponentType { return 1 }

type leafComponent struct {
	BaseComponent
}

func (*leafComponent) Type() ComponentType { return 2 }

// Create registers the child before the parent itself reaches the index.
func (c *nestedComponent) Create(id ComponentId, entityId EntityId, m *Manager) {
	c.BaseComponent.Create(id, entityId, m)
	if c.child != nil {
		_ = m.RegisterComponent(entityId, c.child)
	}
}

func TestComponentRegisteredFromCreate(t *testing.T) {
	m := NewManager()
	m.Init()
	defer m.Destroy()

	e, err := m.RegisterEntity(&BaseEntity{})
	require.NoError(t, err)

	child := &leafComponent{}
	parent := &nestedComponent{child: child}
	require.NoError(t, m.RegisterComponent(e.Id(), parent))

	assert.Equal(t, ComponentId(1), parent.Id())
	assert.Equal(t, ComponentId(2), child.Id())
	assert.Equal(t, []Component{child, parent}, m.AllComponents())

	require.NoError(t, m.UnregisterComponent(1))
	require.NoError(t, m.UnregisterComponent(2))

	assert.Equal(t, 0, m.ComponentCount())
	assert.Empty(t, m.components.order)
}
