package ecs

import "go.uber.org/zap"

// Commands provides a buffer for deferred registry operations that are executed
// at the end of an Update. Systems use it to avoid structural changes while
// other systems are still being updated.
type Commands struct {
	entities         []entityCommand
	entityRemoves    []EntityId
	componentAdds    []componentCommand
	componentRemoves []ComponentId
	defers           []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type entityCommand struct {
	ref        *EntityRef
	assemblage Assemblage
	components []Component
}

type componentCommand struct {
	entity    EntityId
	ref       *EntityRef
	component Component
}

// EntityRef is a handle to an entity queued in a Commands buffer. It resolves
// once the buffer has been flushed.
type EntityRef struct {
	entity Entity
	id     EntityId
}

// Id returns the id of the entity, or 0 while it has not been registered yet.
func (r *EntityRef) Id() EntityId {
	return r.id
}

// Entity returns the registered entity, or nil while it has not been
// registered yet.
func (r *EntityRef) Entity() Entity {
	return r.entity
}

// Defer queues a function to run after every other queued operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// RegisterEntity queues the registration of e followed by the registration of
// each component against it.
func (c *Commands) RegisterEntity(e Entity, components ...Component) *EntityRef {
	ref := &EntityRef{entity: e}
	c.entities = append(c.entities, entityCommand{ref: ref, components: components})
	return ref
}

// RegisterAssemblage queues the creation of an entity from an assemblage.
func (c *Commands) RegisterAssemblage(a Assemblage) *EntityRef {
	ref := &EntityRef{}
	c.entities = append(c.entities, entityCommand{ref: ref, assemblage: a})
	return ref
}

// UnregisterEntity queues an entity removal.
func (c *Commands) UnregisterEntity(id EntityId) {
	c.entityRemoves = append(c.entityRemoves, id)
}

// RegisterComponent queues a component registration against an existing entity.
func (c *Commands) RegisterComponent(entityId EntityId, component Component) {
	c.componentAdds = append(c.componentAdds, componentCommand{entity: entityId, component: component})
}

// RegisterComponentOn queues a component registration against an entity queued
// in the same buffer.
func (c *Commands) RegisterComponentOn(ref *EntityRef, component Component) {
	c.componentAdds = append(c.componentAdds, componentCommand{ref: ref, component: component})
}

// UnregisterComponent queues a component removal.
func (c *Commands) UnregisterComponent(id ComponentId) {
	c.componentRemoves = append(c.componentRemoves, id)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.entities) + len(c.entityRemoves) + len(c.componentAdds) +
		len(c.componentRemoves) + len(c.defers)
}

// flush executes the queued operations against m in the order component
// removals, entity removals, entity registrations, component registrations,
// defers. Operations queued while flushing run in the next flush. Flushing
// stops as soon as an operation tears m down.
func (c *Commands) flush(m *Manager) {
	if c.Len() == 0 {
		return
	}

	entities, entityRemoves := c.entities, c.entityRemoves
	componentAdds, componentRemoves := c.componentAdds, c.componentRemoves
	defers := c.defers
	c.entities, c.entityRemoves = nil, nil
	c.componentAdds, c.componentRemoves = nil, nil
	c.defers = nil

	gen := m.generation
	fail := func(op string, err error) bool {
		if err != nil {
			m.log.Warn("command failed", zap.String("op", op), zap.Error(err))
		}
		return !m.alive(gen)
	}

	for _, id := range componentRemoves {
		if fail("unregister component", m.UnregisterComponent(id)) {
			return
		}
	}

	for _, id := range entityRemoves {
		if fail("unregister entity", m.UnregisterEntity(id)) {
			return
		}
	}

	for _, cmd := range entities {
		var (
			e   Entity
			err error
		)
		if cmd.assemblage != nil {
			e, err = m.RegisterAssemblage(cmd.assemblage)
		} else {
			e, err = m.RegisterEntity(cmd.ref.entity)
		}
		if fail("register entity", err) {
			return
		}
		if err != nil {
			continue
		}
		cmd.ref.entity = e
		cmd.ref.id = e.Id()

		for _, component := range cmd.components {
			if fail("register component", m.RegisterComponent(cmd.ref.id, component)) {
				return
			}
		}
	}

	for _, cmd := range componentAdds {
		entityId := cmd.entity
		if cmd.ref != nil {
			if cmd.ref.id == 0 {
				m.log.Warn("command target not registered")
				continue
			}
			entityId = cmd.ref.id
		}
		if fail("register component", m.RegisterComponent(entityId, cmd.component)) {
			return
		}
	}

	for _, fn := range defers {
		fn()
		if !m.alive(gen) {
			return
		}
	}
}
