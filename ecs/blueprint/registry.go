package blueprint

import (
	"fmt"
	"slices"

	"github.com/rotisserie/eris"

	"github.com/plus3/ecsman/ecs"
)

// Factory returns a fresh, unregistered component instance.
type Factory func() ecs.Component

// ComponentRegistry maps component names used in blueprint files to
// component types and factories.
type ComponentRegistry struct {
	byName map[string]registration
	byType map[ecs.ComponentType]string
}

type registration struct {
	t       ecs.ComponentType
	factory Factory
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		byName: make(map[string]registration),
		byType: make(map[ecs.ComponentType]string),
	}
}

// Register associates name with component type t. Both the name and the type
// may be registered only once.
func (r *ComponentRegistry) Register(t ecs.ComponentType, name string, factory Factory) error {
	if _, ok := r.byName[name]; ok {
		return eris.Errorf("component name %q already registered", name)
	}
	if existing, ok := r.byType[t]; ok {
		return eris.Errorf("component type %d already registered as %q", t, existing)
	}
	r.byName[name] = registration{t: t, factory: factory}
	r.byType[t] = name
	return nil
}

// Register registers the component type implemented by *T under name, using
// new(T) as the factory.
func Register[T any, PT interface {
	*T
	ecs.Component
}](r *ComponentRegistry, name string) error {
	factory := func() ecs.Component { return PT(new(T)) }
	return r.Register(factory().Type(), name, factory)
}

// Lookup returns the type and factory registered under name.
func (r *ComponentRegistry) Lookup(name string) (ecs.ComponentType, Factory, bool) {
	reg, ok := r.byName[name]
	return reg.t, reg.factory, ok
}

// Name returns the name registered for t, or a placeholder naming the raw tag.
func (r *ComponentRegistry) Name(t ecs.ComponentType) string {
	if name, ok := r.byType[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", t)
}

// New creates a fresh component of the named type.
func (r *ComponentRegistry) New(name string) (ecs.Component, error) {
	reg, ok := r.byName[name]
	if !ok {
		return nil, eris.Errorf("unknown component %q", name)
	}
	return reg.factory(), nil
}

// Names returns every registered name in sorted order.
func (r *ComponentRegistry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
