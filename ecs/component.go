package ecs

// ComponentId identifies a component within a Manager. Ids start at 1 and are
// unique across all entities.
type ComponentId int

// ComponentType is the explicit type tag of a component variant. An entity holds
// at most one live component per ComponentType. Tags are compared exactly;
// there is no notion of one type extending another.
type ComponentType uint16

// ReservedComponentTypes is the first tag used by packages of this module
// (debugui and friends). Application components should stay below it.
const ReservedComponentTypes ComponentType = 0xF000

// Component is typed data owned by exactly one entity.
type Component interface {
	Id() ComponentId
	EntityId() EntityId
	Type() ComponentType
	// Create is called by the Manager before the component enters the index.
	Create(id ComponentId, entityId EntityId, manager *Manager)
	// Dispose is called by the Manager after every system has been told
	// about the removal.
	Dispose()
}

// BaseComponent implements everything in Component except Type and is meant to
// be embedded by concrete component types.
type BaseComponent struct {
	id       ComponentId
	entityId EntityId
	manager  *Manager
}

func (c *BaseComponent) Id() ComponentId    { return c.id }
func (c *BaseComponent) EntityId() EntityId { return c.entityId }

// Manager returns the Manager the component is registered with, or nil once disposed.
func (c *BaseComponent) Manager() *Manager { return c.manager }

func (c *BaseComponent) Create(id ComponentId, entityId EntityId, manager *Manager) {
	c.id = id
	c.entityId = entityId
	c.manager = manager
}

func (c *BaseComponent) Dispose() {
	c.manager = nil
	c.entityId = 0
	c.id = 0
}

// ComponentAs returns the component of type t attached to entityId as a C.
// It reports false when there is no such component or it is not a C.
func ComponentAs[C Component](m *Manager, entityId EntityId, t ComponentType) (C, bool) {
	var zero C
	c, ok := m.ComponentOf(entityId, t)
	if !ok {
		return zero, false
	}
	typed, ok := c.(C)
	if !ok {
		return zero, false
	}
	return typed, true
}
