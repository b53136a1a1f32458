package ecs

import "github.com/kamstrup/intmap"

// EntityId identifies an entity within a Manager. Ids start at 1; the zero value
// means "no entity".
type EntityId int

// Entity is a bare identity that components attach to.
type Entity interface {
	Id() EntityId
	// Create is called by the Manager once the entity has been assigned an id.
	Create(id EntityId, manager *Manager)
	// Dispose is called by the Manager after all of the entity's components
	// have been removed.
	Dispose()
}

// BaseEntity implements Entity and is meant to be embedded. Types overriding
// Create or Dispose should call through to the embedded implementation.
type BaseEntity struct {
	id      EntityId
	manager *Manager
}

func (e *BaseEntity) Id() EntityId { return e.id }

// Manager returns the Manager the entity is registered with, or nil once disposed.
func (e *BaseEntity) Manager() *Manager { return e.manager }

func (e *BaseEntity) Create(id EntityId, manager *Manager) {
	e.id = id
	e.manager = manager
}

func (e *BaseEntity) Dispose() {
	e.manager = nil
	e.id = 0
}

// entityRegistry stores live entities by id and remembers registration order.
type entityRegistry struct {
	byId  *intmap.Map[EntityId, Entity]
	order idOrder[EntityId]
}

func newEntityRegistry() *entityRegistry {
	return &entityRegistry{
		byId: intmap.New[EntityId, Entity](256),
	}
}

func (r *entityRegistry) put(id EntityId, e Entity) {
	r.byId.Put(id, e)
	r.order.add(id)
}

func (r *entityRegistry) get(id EntityId) (Entity, bool) {
	return r.byId.Get(id)
}

func (r *entityRegistry) remove(id EntityId) (Entity, bool) {
	e, ok := r.byId.Get(id)
	if !ok {
		return nil, false
	}
	r.byId.Del(id)
	r.order.remove(id)
	return e, true
}

func (r *entityRegistry) len() int {
	return r.byId.Len()
}

// snapshot returns the live entity ids in registration order.
func (r *entityRegistry) snapshot() []EntityId {
	return r.order.clone()
}

func (r *entityRegistry) clear() {
	r.byId.Clear()
	r.order = r.order[:0]
}
