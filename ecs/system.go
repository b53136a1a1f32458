package ecs

import "reflect"

// SystemId identifies a system within a Manager. Ids start at 1.
type SystemId int

// System is a per-tick processor. Systems learn about components through
// ComponentAdded and ComponentRemoved and advance their state in Update.
// Any of these hooks may call back into the Manager, including Destroy.
type System interface {
	Id() SystemId
	// Concurrent reports whether the system could run independently of the
	// others. The Manager records it but always runs systems in order.
	Concurrent() bool
	Create(id SystemId, manager *Manager)
	Dispose()
	ComponentAdded(c Component)
	ComponentRemoved(c Component)
	Update(delta float32)
}

// BaseSystem implements System with no-op hooks and is meant to be embedded.
type BaseSystem struct {
	id         SystemId
	manager    *Manager
	concurrent bool
}

// NewBaseSystem returns a BaseSystem carrying the given concurrency hint.
func NewBaseSystem(concurrent bool) BaseSystem {
	return BaseSystem{concurrent: concurrent}
}

func (s *BaseSystem) Id() SystemId     { return s.id }
func (s *BaseSystem) Concurrent() bool { return s.concurrent }

// Manager returns the Manager the system is registered with, or nil once disposed.
func (s *BaseSystem) Manager() *Manager { return s.manager }

func (s *BaseSystem) Create(id SystemId, manager *Manager) {
	s.id = id
	s.manager = manager
}

func (s *BaseSystem) Dispose() {
	s.manager = nil
	s.id = 0
}

func (s *BaseSystem) ComponentAdded(Component)   {}
func (s *BaseSystem) ComponentRemoved(Component) {}
func (s *BaseSystem) Update(float32)             {}

type systemEntry struct {
	id     SystemId
	system System
	live   bool
	stats  systemStatsInternal
}

// systemRegistry keeps systems in registration order.
type systemRegistry struct {
	entries []*systemEntry
}

func newSystemRegistry() *systemRegistry {
	return &systemRegistry{
		entries: make([]*systemEntry, 0, 16),
	}
}

func (r *systemRegistry) add(id SystemId, system System) *systemEntry {
	entry := &systemEntry{
		id:     id,
		system: system,
		live:   true,
		stats:  newSystemStats(systemName(system)),
	}
	r.entries = append(r.entries, entry)
	return entry
}

func (r *systemRegistry) get(id SystemId) (*systemEntry, bool) {
	for _, entry := range r.entries {
		if entry.id == id {
			return entry, true
		}
	}
	return nil, false
}

func (r *systemRegistry) remove(id SystemId) (*systemEntry, bool) {
	for i, entry := range r.entries {
		if entry.id == id {
			entry.live = false
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return entry, true
		}
	}
	return nil, false
}

func (r *systemRegistry) len() int {
	return len(r.entries)
}

// snapshot copies the entry list so callbacks can register or unregister
// systems while the caller iterates. Entries removed in the meantime have
// live set to false.
func (r *systemRegistry) snapshot() []*systemEntry {
	result := make([]*systemEntry, len(r.entries))
	copy(result, r.entries)
	return result
}

func (r *systemRegistry) clear() {
	for _, entry := range r.entries {
		entry.live = false
	}
	r.entries = r.entries[:0]
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}
