package ecs

import "slices"

// Assemblage is a reusable recipe for an entity together with its components.
type Assemblage interface {
	// Components returns the bundled components in declaration order.
	Components() []Component
	// CreateEntity registers a fresh entity with m and then each component
	// against it.
	CreateEntity(m *Manager) (Entity, error)
}

// BaseAssemblage bundles an ordered list of component instances. Because the
// instances themselves are registered, a BaseAssemblage builds one entity; use
// a blueprint for a recipe that can be instantiated repeatedly.
type BaseAssemblage struct {
	name       string
	components []Component
}

// NewAssemblage creates an assemblage holding components in the given order.
func NewAssemblage(name string, components ...Component) *BaseAssemblage {
	return &BaseAssemblage{
		name:       name,
		components: slices.Clone(components),
	}
}

func (a *BaseAssemblage) Name() string { return a.name }

// Add appends c unless the exact instance is already bundled.
func (a *BaseAssemblage) Add(c Component) {
	if slices.Contains(a.components, c) {
		return
	}
	a.components = append(a.components, c)
}

// Remove drops c from the bundle and reports whether it was present.
func (a *BaseAssemblage) Remove(c Component) bool {
	i := slices.Index(a.components, c)
	if i < 0 {
		return false
	}
	a.components = slices.Delete(a.components, i, i+1)
	return true
}

// Get returns the last bundled component of type t. That is the one that
// survives registration, since later components of a type evict earlier ones.
func (a *BaseAssemblage) Get(t ComponentType) (Component, bool) {
	for i := len(a.components) - 1; i >= 0; i-- {
		if a.components[i].Type() == t {
			return a.components[i], true
		}
	}
	return nil, false
}

func (a *BaseAssemblage) Components() []Component {
	return slices.Clone(a.components)
}

func (a *BaseAssemblage) CreateEntity(m *Manager) (Entity, error) {
	return AssembleEntity(m, &BaseEntity{}, a.components)
}

// AssembleEntity registers e with m and then registers each component against
// it in order. It stops early, returning the entity, if a hook tears m down.
func AssembleEntity(m *Manager, e Entity, components []Component) (Entity, error) {
	e, err := m.RegisterEntity(e)
	if err != nil {
		return nil, err
	}

	gen := m.generation
	id := e.Id()
	for _, c := range components {
		if !m.alive(gen) {
			break
		}
		if err := m.RegisterComponent(id, c); err != nil {
			return e, err
		}
	}
	return e, nil
}
