package ecs

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// ComponentIndex is a two-level index over components: id -> component and
// entity id -> (type -> component). It enforces at most one component per
// (entity, type) pair by evicting the previous holder on Insert.
//
// The index never calls component hooks and never notifies anyone; the Manager
// is responsible for disposal and notification around it.
type ComponentIndex struct {
	byId     *intmap.Map[ComponentId, Component]
	byEntity *intmap.Map[EntityId, map[ComponentType]Component]
	order    idOrder[ComponentId]
}

// NewComponentIndex creates an empty index.
func NewComponentIndex() *ComponentIndex {
	return &ComponentIndex{
		byId:     intmap.New[ComponentId, Component](256),
		byEntity: intmap.New[EntityId, map[ComponentType]Component](256),
	}
}

// Insert records c under its id and under (entity, type). If the entity already
// held a component of the same type, that component is dropped from both
// indexes and returned. The caller must treat it as removed.
func (ci *ComponentIndex) Insert(c Component) Component {
	entityId := c.EntityId()

	bucket, ok := ci.byEntity.Get(entityId)
	if !ok {
		bucket = make(map[ComponentType]Component, 4)
		ci.byEntity.Put(entityId, bucket)
	}

	evicted := bucket[c.Type()]
	if evicted != nil {
		ci.byId.Del(evicted.Id())
		ci.order.remove(evicted.Id())
	}

	bucket[c.Type()] = c
	ci.byId.Put(c.Id(), c)
	ci.order.add(c.Id())

	return evicted
}

// Get returns the component with the given id.
func (ci *ComponentIndex) Get(id ComponentId) (Component, bool) {
	return ci.byId.Get(id)
}

// GetByEntityAndType returns the component of type t attached to entityId.
func (ci *ComponentIndex) GetByEntityAndType(entityId EntityId, t ComponentType) (Component, bool) {
	bucket, ok := ci.byEntity.Get(entityId)
	if !ok {
		return nil, false
	}
	c, ok := bucket[t]
	return c, ok
}

// HasType reports whether entityId has a component of type t.
func (ci *ComponentIndex) HasType(entityId EntityId, t ComponentType) bool {
	_, ok := ci.GetByEntityAndType(entityId, t)
	return ok
}

// AllOfType returns every component of type t in insertion order. This scans the
// whole index.
func (ci *ComponentIndex) AllOfType(t ComponentType) []Component {
	var result []Component
	for _, id := range ci.order {
		c, ok := ci.byId.Get(id)
		if ok && c.Type() == t {
			result = append(result, c)
		}
	}
	return result
}

// AllOfEntity returns the components attached to entityId in insertion order.
// The second result is false when the index has never seen the entity (or its
// components were removed with RemoveAllOfEntity); a known entity whose
// components were removed one by one yields an empty, non-nil slice.
func (ci *ComponentIndex) AllOfEntity(entityId EntityId) ([]Component, bool) {
	bucket, ok := ci.byEntity.Get(entityId)
	if !ok {
		return nil, false
	}
	return sortedById(bucket), true
}

// Remove drops the component with the given id from both indexes.
func (ci *ComponentIndex) Remove(id ComponentId) (Component, bool) {
	c, ok := ci.byId.Get(id)
	if !ok {
		return nil, false
	}

	ci.byId.Del(id)
	ci.order.remove(id)

	if bucket, ok := ci.byEntity.Get(c.EntityId()); ok && bucket[c.Type()] == c {
		delete(bucket, c.Type())
	}

	return c, true
}

// RemoveAllOfEntity drops every component of entityId, and the entity's bucket
// itself, returning the removed components in insertion order.
func (ci *ComponentIndex) RemoveAllOfEntity(entityId EntityId) []Component {
	bucket, ok := ci.byEntity.Get(entityId)
	if !ok {
		return nil
	}
	ci.byEntity.Del(entityId)

	removed := sortedById(bucket)
	for _, c := range removed {
		ci.byId.Del(c.Id())
		ci.order.remove(c.Id())
	}
	return removed
}

// Snapshot returns every component in index iteration order, which is
// insertion order. The slice is a copy and safe to range over while the index
// changes.
func (ci *ComponentIndex) Snapshot() []Component {
	result := make([]Component, 0, len(ci.order))
	for _, id := range ci.order {
		if c, ok := ci.byId.Get(id); ok {
			result = append(result, c)
		}
	}
	return result
}

// All yields every component in insertion order. The index must not be
// modified while iterating; use Snapshot for that.
func (ci *ComponentIndex) All() iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for _, id := range ci.order {
			c, ok := ci.byId.Get(id)
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Len returns the number of indexed components.
func (ci *ComponentIndex) Len() int {
	return ci.byId.Len()
}

// Clear empties the index without touching the components.
func (ci *ComponentIndex) Clear() {
	ci.byId.Clear()
	ci.byEntity.Clear()
	ci.order = ci.order[:0]
}

func sortedById(bucket map[ComponentType]Component) []Component {
	result := make([]Component, 0, len(bucket))
	for _, c := range bucket {
		result = append(result, c)
	}
	slices.SortFunc(result, func(a, b Component) int {
		return int(a.Id() - b.Id())
	})
	return result
}
