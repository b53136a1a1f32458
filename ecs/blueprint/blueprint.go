// Package blueprint loads entity templates from YAML and instantiates them as
// assemblages.
//
// A blueprint file looks like:
//
//	blueprints:
//	  - name: player
//	    components:
//	      - type: Position
//	        data: {x: 1, y: 2}
//	      - type: Health
//	        data: {current: 10, max: 10}
//
// Component names are resolved through a ComponentRegistry and each data node
// is decoded into a fresh component instance every time an entity is created.
package blueprint

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/plus3/ecsman/ecs"
)

type blueprintFile struct {
	Blueprints []blueprintSpec `yaml:"blueprints"`
}

type blueprintSpec struct {
	Name       string          `yaml:"name"`
	Components []componentSpec `yaml:"components"`
}

type componentSpec struct {
	Type string    `yaml:"type"`
	Data yaml.Node `yaml:"data"`
}

// Blueprint is a named, reusable entity template. It implements ecs.Assemblage;
// unlike ecs.BaseAssemblage every call builds new component instances, so one
// Blueprint can create any number of entities.
type Blueprint struct {
	name       string
	components []componentSpec
	factories  []Factory
}

func (b *Blueprint) Name() string { return b.name }

// Components builds one fresh instance of every component, in file order.
func (b *Blueprint) Components() []ecs.Component {
	components, err := b.build()
	if err != nil {
		// Every data node was decoded once by Parse, so this cannot fail.
		panic(err)
	}
	return components
}

func (b *Blueprint) CreateEntity(m *ecs.Manager) (ecs.Entity, error) {
	components, err := b.build()
	if err != nil {
		return nil, err
	}
	return ecs.AssembleEntity(m, &ecs.BaseEntity{}, components)
}

func (b *Blueprint) build() ([]ecs.Component, error) {
	components := make([]ecs.Component, len(b.components))
	for i, spec := range b.components {
		c, err := decode(b.factories[i], &spec.Data)
		if err != nil {
			return nil, eris.Wrapf(err, "blueprint %s: component %s", b.name, spec.Type)
		}
		components[i] = c
	}
	return components, nil
}

func decode(factory Factory, data *yaml.Node) (ecs.Component, error) {
	c := factory()
	if data.Kind == 0 {
		return c, nil
	}
	if err := data.Decode(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Library holds blueprints in file order.
type Library struct {
	byName map[string]*Blueprint
	order  []*Blueprint
}

// Get returns the blueprint with the given name.
func (l *Library) Get(name string) (*Blueprint, bool) {
	b, ok := l.byName[name]
	return b, ok
}

// All returns every blueprint in file order.
func (l *Library) All() []*Blueprint {
	return l.order
}

func (l *Library) Len() int {
	return len(l.order)
}

// Load reads a blueprint file.
func Load(path string, registry *ComponentRegistry) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read blueprints %s", path)
	}
	lib, err := Parse(data, registry)
	if err != nil {
		return nil, eris.Wrapf(err, "load blueprints %s", path)
	}
	return lib, nil
}

// Parse decodes a blueprint document. It fails on unknown component names,
// duplicate blueprint names and data that does not decode into its component.
func Parse(data []byte, registry *ComponentRegistry) (*Library, error) {
	var f blueprintFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "parse blueprints")
	}

	lib := &Library{byName: make(map[string]*Blueprint, len(f.Blueprints))}
	for i, spec := range f.Blueprints {
		if spec.Name == "" {
			return nil, eris.Errorf("blueprint %d has no name", i)
		}
		if _, ok := lib.byName[spec.Name]; ok {
			return nil, eris.Errorf("duplicate blueprint %q", spec.Name)
		}

		b := &Blueprint{
			name:       spec.Name,
			components: spec.Components,
			factories:  make([]Factory, len(spec.Components)),
		}
		for j, cs := range spec.Components {
			_, factory, ok := registry.Lookup(cs.Type)
			if !ok {
				return nil, eris.Errorf("blueprint %s: unknown component %q", spec.Name, cs.Type)
			}
			if _, err := decode(factory, &spec.Components[j].Data); err != nil {
				return nil, eris.Wrapf(err, "blueprint %s: component %s", spec.Name, cs.Type)
			}
			b.factories[j] = factory
		}

		lib.byName[spec.Name] = b
		lib.order = append(lib.order, b)
	}
	return lib, nil
}
