package ecs

import (
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Manager is the registry of entities, components and systems. It owns every
// id, keeps the component index consistent and tells each system about every
// component change.
//
// A Manager must be initialized with Init before use and may be destroyed and
// initialized again any number of times. It is not safe for concurrent use;
// callbacks it drives (entity, component and system hooks, bus handlers) may
// however call back into it, including Destroy.
type Manager struct {
	log *zap.Logger

	initialized bool
	generation  uint64
	updates     int64

	entityIds    *idGenerator[EntityId]
	componentIds *idGenerator[ComponentId]
	systemIds    *idGenerator[SystemId]

	entities   *entityRegistry
	components *ComponentIndex
	systems    *systemRegistry

	bus      *EventBus
	commands *Commands
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for lifecycle messages. The default discards
// everything.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates an uninitialized Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.Named("ecs")
	return m
}

// Init prepares the Manager for use, resetting all id counters. Calling Init on
// an initialized Manager only logs a warning.
func (m *Manager) Init() {
	if m.initialized {
		m.log.Warn("already initialized")
		return
	}

	m.entityIds = newIdGenerator[EntityId]()
	m.componentIds = newIdGenerator[ComponentId]()
	m.systemIds = newIdGenerator[SystemId]()

	m.entities = newEntityRegistry()
	m.components = NewComponentIndex()
	m.systems = newSystemRegistry()

	m.bus = NewEventBus()
	m.commands = newCommands()
	m.updates = 0

	m.generation++
	m.initialized = true

	m.log.Info("initialized")
}

// Destroy disposes every entity (and with it every component, notifying all
// systems of each removal), then every remaining component, then every system,
// and releases all state. The Manager is marked uninitialized before teardown
// starts so that calls made by hooks during teardown fail instead of touching
// half-destroyed state. Calling Destroy on an uninitialized Manager only logs
// a warning.
func (m *Manager) Destroy() {
	if !m.initialized {
		m.log.Warn("already destroyed")
		return
	}

	m.initialized = false
	gen := m.generation

	// Hooks may call Init while teardown runs; everything below works on the
	// collections of the initialization being destroyed.
	r := m.registries()

	for _, id := range r.entities.snapshot() {
		if e, ok := r.entities.get(id); ok {
			m.disposeEntity(r, id, e)
		}
	}
	r.entities.clear()

	// Components registered against ids that never named an entity.
	for _, c := range r.components.Snapshot() {
		if _, ok := r.components.Remove(c.Id()); ok {
			m.retireComponent(r, c)
		}
	}
	r.components.Clear()

	for _, entry := range r.systems.snapshot() {
		if _, ok := r.systems.remove(entry.id); ok {
			m.disposeSystem(r, entry)
		}
	}
	r.systems.clear()
	r.bus.Clear()

	// A hook may have initialized the Manager again while it was torn down.
	if m.initialized || m.generation != gen {
		m.log.Info("destroyed")
		return
	}

	m.bus = nil
	m.commands = nil

	m.entities = nil
	m.components = nil
	m.systems = nil

	m.entityIds = nil
	m.componentIds = nil
	m.systemIds = nil

	m.log.Info("destroyed")
}

// IsInitialized reports whether the Manager is between Init and Destroy.
func (m *Manager) IsInitialized() bool {
	return m.initialized
}

// EventBus returns the notification bus, or nil while uninitialized.
func (m *Manager) EventBus() *EventBus {
	return m.bus
}

// Commands returns the deferred command buffer flushed at the end of every
// Update, or nil while uninitialized.
func (m *Manager) Commands() *Commands {
	return m.commands
}

// RegisterEntity assigns the next entity id to e and calls its Create hook.
//
// Registering an entity that is already live unregisters it first, together
// with its components, so one instance is never stored under two ids.
func (m *Manager) RegisterEntity(e Entity) (Entity, error) {
	if err := m.checkInitialized("register entity"); err != nil {
		return nil, err
	}

	gen := m.generation

	if current, ok := m.entities.get(e.Id()); ok && current == e {
		m.disposeEntity(m.registries(), e.Id(), e)
		if !m.alive(gen) {
			return nil, eris.Wrap(ErrNotInitialized, "register entity")
		}
	}

	id := m.entityIds.Next()
	m.entities.put(id, e)
	e.Create(id, m)

	m.log.Debug("entity registered", zap.Int("id", int(id)))
	Publish(m.bus, EntityRegistered{Id: id, Entity: e})

	return e, nil
}

// RegisterAssemblage creates a fully formed entity from an assemblage.
func (m *Manager) RegisterAssemblage(a Assemblage) (Entity, error) {
	if err := m.checkInitialized("register assemblage"); err != nil {
		return nil, err
	}
	return a.CreateEntity(m)
}

// UnregisterEntity removes every component of the entity, telling each system
// about each removal before disposing the component, then disposes the entity
// and drops it. The entity stays visible through Entity while its components
// are removed. Unknown ids are logged and ignored.
func (m *Manager) UnregisterEntity(id EntityId) error {
	if err := m.checkInitialized("unregister entity"); err != nil {
		return err
	}

	e, ok := m.entities.get(id)
	if !ok {
		m.log.Warn("entity not found", zap.Int("id", int(id)))
		return nil
	}

	m.disposeEntity(m.registries(), id, e)
	return nil
}

// RegisterComponent assigns the next component id to c, calls its Create hook
// and indexes it under entityId. If the entity already had a component of the
// same type, that component is announced as removed to every system and
// disposed before c is announced as added.
//
// The entity id is not checked: components may be registered against ids that
// have no entity. Such components live until unregistered or until Destroy.
func (m *Manager) RegisterComponent(entityId EntityId, c Component) error {
	if err := m.checkInitialized("register component"); err != nil {
		return err
	}

	// Registering an instance that is still live moves it: the old
	// registration is retired first so the index never holds a stale id.
	gen := m.generation

	if current, ok := m.components.Get(c.Id()); ok && current == c {
		m.components.Remove(c.Id())
		m.retireComponent(m.registries(), c)
		if !m.alive(gen) {
			return nil
		}
	}

	id := m.componentIds.Next()
	c.Create(id, entityId, m)

	if evicted := m.components.Insert(c); evicted != nil {
		m.log.Debug("component evicted",
			zap.Int("id", int(evicted.Id())),
			zap.Int("entity", int(entityId)),
			zap.Uint16("type", uint16(evicted.Type())))
		m.retireComponent(m.registries(), evicted)
		if !m.alive(gen) {
			return nil
		}
	}

	m.log.Debug("component registered",
		zap.Int("id", int(id)),
		zap.Int("entity", int(entityId)),
		zap.Uint16("type", uint16(c.Type())))

	for _, entry := range m.systems.snapshot() {
		if !m.alive(gen) || !m.isLive(c, id) {
			return nil
		}
		if entry.live {
			entry.system.ComponentAdded(c)
		}
	}

	if m.alive(gen) && m.isLive(c, id) {
		Publish(m.bus, ComponentAdded{Id: id, EntityId: entityId, Type: c.Type(), Component: c})
	}
	return nil
}

// UnregisterComponent announces the removal of a component to every system and
// then disposes it. Unknown ids are logged and ignored.
func (m *Manager) UnregisterComponent(id ComponentId) error {
	if err := m.checkInitialized("unregister component"); err != nil {
		return err
	}

	c, ok := m.components.Remove(id)
	if !ok {
		m.log.Warn("component not found", zap.Int("id", int(id)))
		return nil
	}

	m.retireComponent(m.registries(), c)
	return nil
}

// RegisterSystem assigns the next system id to s, calls its Create hook and
// then announces every existing component to s alone, in index order.
func (m *Manager) RegisterSystem(s System) error {
	if err := m.checkInitialized("register system"); err != nil {
		return err
	}

	gen := m.generation

	id := m.systemIds.Next()
	s.Create(id, m)
	entry := m.systems.add(id, s)

	m.log.Debug("system registered",
		zap.Int("id", int(id)),
		zap.String("name", entry.stats.name),
		zap.Bool("concurrent", s.Concurrent()))

	for _, c := range m.components.Snapshot() {
		if !m.alive(gen) || !entry.live {
			return nil
		}
		if m.isLive(c, c.Id()) {
			s.ComponentAdded(c)
		}
	}

	if m.alive(gen) && entry.live {
		Publish(m.bus, SystemRegistered{Id: id, System: s})
	}
	return nil
}

// UnregisterSystem disposes a system and stops driving it. Unknown ids are
// logged and ignored.
func (m *Manager) UnregisterSystem(id SystemId) error {
	if err := m.checkInitialized("unregister system"); err != nil {
		return err
	}

	entry, ok := m.systems.remove(id)
	if !ok {
		m.log.Warn("system not found", zap.Int("id", int(id)))
		return nil
	}

	m.disposeSystem(m.registries(), entry)
	return nil
}

// Update calls Update on every system in registration order and then flushes
// the command buffer. If a system destroys the Manager, no further system is
// updated and the buffer is dropped.
func (m *Manager) Update(delta float32) error {
	if err := m.checkInitialized("update"); err != nil {
		return err
	}

	gen := m.generation

	for _, entry := range m.systems.snapshot() {
		if !m.alive(gen) {
			return nil
		}
		if !entry.live {
			continue
		}

		start := time.Now()
		entry.system.Update(delta)
		entry.stats.record(time.Since(start))
	}

	if !m.alive(gen) {
		return nil
	}

	m.updates++
	m.commands.flush(m)
	return nil
}

// Entity returns the live entity with the given id.
func (m *Manager) Entity(id EntityId) (Entity, bool) {
	if m.entities == nil {
		return nil, false
	}
	return m.entities.get(id)
}

// EntityCount returns the number of live entities.
func (m *Manager) EntityCount() int {
	if m.entities == nil {
		return 0
	}
	return m.entities.len()
}

// EntityIds returns the ids of all live entities in registration order.
func (m *Manager) EntityIds() []EntityId {
	if m.entities == nil {
		return nil
	}
	return m.entities.snapshot()
}

// AllComponents returns every live component in registration order.
func (m *Manager) AllComponents() []Component {
	if m.components == nil {
		return nil
	}
	return m.components.Snapshot()
}

// Component returns the live component with the given id.
func (m *Manager) Component(id ComponentId) (Component, bool) {
	if m.components == nil {
		return nil, false
	}
	return m.components.Get(id)
}

// ComponentsOf returns the components of an entity. The second result is false
// when the entity is unknown to the component index.
func (m *Manager) ComponentsOf(entityId EntityId) ([]Component, bool) {
	if m.components == nil {
		return nil, false
	}
	return m.components.AllOfEntity(entityId)
}

// ComponentsOfType returns every live component of type t in registration order.
func (m *Manager) ComponentsOfType(t ComponentType) []Component {
	if m.components == nil {
		return nil
	}
	return m.components.AllOfType(t)
}

// ComponentOf returns the component of type t attached to entityId.
func (m *Manager) ComponentOf(entityId EntityId, t ComponentType) (Component, bool) {
	if m.components == nil {
		return nil, false
	}
	return m.components.GetByEntityAndType(entityId, t)
}

// HasComponent reports whether entityId has a component of type t.
func (m *Manager) HasComponent(entityId EntityId, t ComponentType) bool {
	if m.components == nil {
		return false
	}
	return m.components.HasType(entityId, t)
}

// ComponentCount returns the number of live components.
func (m *Manager) ComponentCount() int {
	if m.components == nil {
		return 0
	}
	return m.components.Len()
}

// System returns the live system with the given id.
func (m *Manager) System(id SystemId) (System, bool) {
	if m.systems == nil {
		return nil, false
	}
	entry, ok := m.systems.get(id)
	if !ok {
		return nil, false
	}
	return entry.system, true
}

// SystemCount returns the number of live systems.
func (m *Manager) SystemCount() int {
	if m.systems == nil {
		return 0
	}
	return m.systems.len()
}

// FindSystem returns the first registered system whose concrete type is S.
func FindSystem[S System](m *Manager) (S, bool) {
	var zero S
	if m.systems == nil {
		return zero, false
	}
	for _, entry := range m.systems.entries {
		if s, ok := entry.system.(S); ok {
			return s, true
		}
	}
	return zero, false
}

// registries are the collections of one initialization of a Manager.
type registries struct {
	entities   *entityRegistry
	components *ComponentIndex
	systems    *systemRegistry
	bus        *EventBus
}

func (m *Manager) registries() registries {
	return registries{
		entities:   m.entities,
		components: m.components,
		systems:    m.systems,
		bus:        m.bus,
	}
}

// disposeEntity retires every component of an entity, then disposes the entity
// and drops it from r. If a hook unregistered the entity during the cascade it
// has already been disposed and is left alone.
func (m *Manager) disposeEntity(r registries, id EntityId, e Entity) {
	for _, c := range r.components.RemoveAllOfEntity(id) {
		m.retireComponent(r, c)
	}

	if current, ok := r.entities.get(id); !ok || current != e {
		return
	}
	r.entities.remove(id)
	e.Dispose()

	m.log.Debug("entity unregistered", zap.Int("id", int(id)))
	Publish(r.bus, EntityUnregistered{Id: id})
}

// retireComponent announces the removal of a component that has already been
// taken out of the index to the systems of r, then disposes it.
func (m *Manager) retireComponent(r registries, c Component) {
	event := ComponentRemoved{Id: c.Id(), EntityId: c.EntityId(), Type: c.Type(), Component: c}

	if r.systems != nil {
		for _, entry := range r.systems.snapshot() {
			if entry.live {
				entry.system.ComponentRemoved(c)
			}
		}
	}

	Publish(r.bus, event)
	c.Dispose()

	m.log.Debug("component unregistered", zap.Int("id", int(event.Id)))
}

func (m *Manager) disposeSystem(r registries, entry *systemEntry) {
	entry.system.Dispose()

	m.log.Debug("system unregistered", zap.Int("id", int(entry.id)))
	Publish(r.bus, SystemUnregistered{Id: entry.id})
}

func (m *Manager) checkInitialized(op string) error {
	if !m.initialized {
		return eris.Wrap(ErrNotInitialized, op)
	}
	return nil
}

// alive reports whether the Manager is still in the initialization it was in
// when an operation started.
func (m *Manager) alive(gen uint64) bool {
	return m.initialized && m.generation == gen
}

// isLive reports whether c is still indexed under id.
func (m *Manager) isLive(c Component, id ComponentId) bool {
	if m.components == nil {
		return false
	}
	current, ok := m.components.Get(id)
	return ok && current == c
}
