package ecs_test

import (
	"fmt"

	"github.com/plus3/ecsman/ecs"
)

// Common test component types
const (
	PositionType ecs.ComponentType = iota + 1
	VelocityType
	HealthType
	NameType
)

type Position struct {
	ecs.BaseComponent
	X, Y float32
}

func (*Position) Type() ecs.ComponentType { return PositionType }

type Velocity struct {
	ecs.BaseComponent
	DX, DY float32
}

func (*Velocity) Type() ecs.ComponentType { return VelocityType }

type Health struct {
	ecs.BaseComponent
	Current int
	Max     int
}

func (*Health) Type() ecs.ComponentType { return HealthType }

type Name struct {
	ecs.BaseComponent
	Value string
}

func (*Name) Type() ecs.ComponentType { return NameType }

func typeName(t ecs.ComponentType) string {
	switch t {
	case PositionType:
		return "Position"
	case VelocityType:
		return "Velocity"
	case HealthType:
		return "Health"
	case NameType:
		return "Name"
	}
	return fmt.Sprintf("Type(%d)", t)
}

// trace collects notifications from several recorders in the order they happen.
type trace struct {
	lines []string
}

func (tr *trace) add(format string, args ...any) {
	tr.lines = append(tr.lines, fmt.Sprintf(format, args...))
}

// recordingSystem remembers every hook call and forwards them to optional callbacks.
type recordingSystem struct {
	ecs.BaseSystem
	name  string
	trace *trace

	added    []ecs.ComponentId
	removed  []ecs.ComponentId
	updates  int
	disposed bool

	onAdded   func(c ecs.Component)
	onRemoved func(c ecs.Component)
	onUpdate  func(delta float32)
}

func newRecordingSystem(name string, tr *trace) *recordingSystem {
	return &recordingSystem{name: name, trace: tr}
}

func (s *recordingSystem) ComponentAdded(c ecs.Component) {
	s.added = append(s.added, c.Id())
	if s.trace != nil {
		s.trace.add("%s: added %s#%d on entity %d", s.name, typeName(c.Type()), c.Id(), c.EntityId())
	}
	if s.onAdded != nil {
		s.onAdded(c)
	}
}

func (s *recordingSystem) ComponentRemoved(c ecs.Component) {
	s.removed = append(s.removed, c.Id())
	if s.trace != nil {
		s.trace.add("%s: removed %s#%d on entity %d", s.name, typeName(c.Type()), c.Id(), c.EntityId())
	}
	if s.onRemoved != nil {
		s.onRemoved(c)
	}
}

func (s *recordingSystem) Update(delta float32) {
	s.updates++
	if s.trace != nil {
		s.trace.add("%s: update %.2f", s.name, delta)
	}
	if s.onUpdate != nil {
		s.onUpdate(delta)
	}
}

func (s *recordingSystem) Dispose() {
	s.disposed = true
	if s.trace != nil {
		s.trace.add("%s: dispose", s.name)
	}
	s.BaseSystem.Dispose()
}

// recordingEntity records its own disposal.
type recordingEntity struct {
	ecs.BaseEntity
	trace    *trace
	disposed bool

	onDispose func()
}

func (e *recordingEntity) Dispose() {
	e.disposed = true
	if e.trace != nil {
		e.trace.add("entity %d: dispose", e.Id())
	}
	if e.onDispose != nil {
		e.onDispose()
	}
	e.BaseEntity.Dispose()
}

func newManager() *ecs.Manager {
	m := ecs.NewManager()
	m.Init()
	return m
}

func mustEntity(m *ecs.Manager) ecs.EntityId {
	e, err := m.RegisterEntity(&ecs.BaseEntity{})
	if err != nil {
		panic(err)
	}
	return e.Id()
}

func mustComponent(m *ecs.Manager, entityId ecs.EntityId, c ecs.Component) ecs.Component {
	if err := m.RegisterComponent(entityId, c); err != nil {
		panic(err)
	}
	return c
}
