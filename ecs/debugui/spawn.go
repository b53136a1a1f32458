package debugui

import "github.com/plus3/ecsman/ecs"

// DebugUISystem renders the inspector window components it is told about.
// Rendering is deferred to the end of the Update so that the windows show the
// registry after every other system has run.
type DebugUISystem struct {
	ecs.BaseSystem
	names TypeNamer

	browser     *EntityBrowserComponent
	inspector   *ComponentInspectorComponent
	systems     *SystemViewerComponent
	performance *PerformanceStatsComponent
	query       *TypeQueryComponent
}

func NewDebugUISystem(names TypeNamer) *DebugUISystem {
	if names == nil {
		names = DefaultTypeNamer
	}
	return &DebugUISystem{names: names}
}

func (s *DebugUISystem) ComponentAdded(c ecs.Component) {
	switch w := c.(type) {
	case *EntityBrowserComponent:
		s.browser = w
	case *ComponentInspectorComponent:
		s.inspector = w
	case *SystemViewerComponent:
		s.systems = w
	case *PerformanceStatsComponent:
		s.performance = w
	case *TypeQueryComponent:
		s.query = w
	}
}

func (s *DebugUISystem) ComponentRemoved(c ecs.Component) {
	switch c {
	case s.browser:
		s.browser = nil
	case s.inspector:
		s.inspector = nil
	case s.systems:
		s.systems = nil
	case s.performance:
		s.performance = nil
	case s.query:
		s.query = nil
	}
}

func (s *DebugUISystem) Update(delta float32) {
	m := s.Manager()
	m.Commands().Defer(func() {
		s.render(m, delta)
	})
}

// WindowCount returns the number of windows the system currently renders.
func (s *DebugUISystem) WindowCount() int {
	n := 0
	if s.browser != nil {
		n++
	}
	if s.inspector != nil {
		n++
	}
	if s.systems != nil {
		n++
	}
	if s.performance != nil {
		n++
	}
	if s.query != nil {
		n++
	}
	return n
}

func (s *DebugUISystem) render(m *ecs.Manager, delta float32) {
	if !m.IsInitialized() {
		return
	}

	var selected ecs.EntityId
	if s.browser != nil {
		s.browser.Render(m, s.names)
		selected = s.browser.GetSelectedEntity()
	}
	if s.inspector != nil {
		s.inspector.Render(m, s.names, selected)
	}
	if s.systems != nil {
		s.systems.Render(m)
	}
	if s.performance != nil {
		s.performance.Render(m, s.names, delta)
	}
	if s.query != nil {
		s.query.Render(m, s.names)
	}
}

// SpawnDebugUI registers a DebugUISystem and an entity carrying every
// inspector window.
func SpawnDebugUI(m *ecs.Manager, names TypeNamer) (*DebugUISystem, ecs.Entity, error) {
	system := NewDebugUISystem(names)
	if err := m.RegisterSystem(system); err != nil {
		return nil, nil, err
	}

	e, err := m.RegisterAssemblage(ecs.NewAssemblage("debugui",
		NewEntityBrowserComponent(100),
		NewComponentInspectorComponent(),
		NewSystemViewerComponent(),
		NewPerformanceStatsComponent(120),
		NewTypeQueryComponent(),
	))
	if err != nil {
		return nil, nil, err
	}
	return system, e, nil
}
