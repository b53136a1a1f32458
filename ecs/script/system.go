// Package script implements ecs systems in Lua.
//
// A script may define any of these global functions, all optional:
//
//	on_create(system_id)
//	on_component_added(component_id, entity_id, component_type)
//	on_component_removed(component_id, entity_id, component_type)
//	on_update(delta)
//	on_dispose()
//
// and may call back into the registry through the ecs table:
//
//	ecs.unregister_entity(id)
//	ecs.unregister_component(id)
//	ecs.has_component(entity_id, component_type)
//	ecs.component_count()
//	ecs.entity_count()
//	ecs.destroy()
package script

import (
	"os"

	"github.com/rotisserie/eris"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/plus3/ecsman/ecs"
)

// System is an ecs.System whose hooks are Lua functions. It owns a single
// gopher-lua state; like the Manager it must only be used from one goroutine.
type System struct {
	ecs.BaseSystem
	vm  *lua.LState
	log *zap.Logger
}

// New runs source in a fresh Lua state and returns a system driving the hooks
// it defines.
func New(source string, concurrent bool, log *zap.Logger) (*System, error) {
	s := newSystem(concurrent, log)
	if err := s.vm.DoString(source); err != nil {
		s.vm.Close()
		return nil, eris.Wrap(err, "load lua system")
	}
	return s, nil
}

// Load is like New but reads the script from path.
func Load(path string, concurrent bool, log *zap.Logger) (*System, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, eris.Wrapf(err, "load lua system %s", path)
	}
	s := newSystem(concurrent, log)
	if err := s.vm.DoFile(path); err != nil {
		s.vm.Close()
		return nil, eris.Wrapf(err, "load lua system %s", path)
	}
	s.log.Debug("loaded lua script", zap.String("file", path))
	return s, nil
}

func newSystem(concurrent bool, log *zap.Logger) *System {
	if log == nil {
		log = zap.NewNop()
	}
	s := &System{
		BaseSystem: ecs.NewBaseSystem(concurrent),
		vm:         lua.NewState(),
		log:        log.Named("lua"),
	}
	s.vm.SetGlobal("API_VERSION", lua.LNumber(1))
	s.vm.SetGlobal("ecs", s.vm.SetFuncs(s.vm.NewTable(), map[string]lua.LGFunction{
		"unregister_entity":    s.unregisterEntity,
		"unregister_component": s.unregisterComponent,
		"has_component":        s.hasComponent,
		"component_count":      s.componentCount,
		"entity_count":         s.entityCount,
		"destroy":              s.destroy,
	}))
	return s
}

func (s *System) Create(id ecs.SystemId, manager *ecs.Manager) {
	s.BaseSystem.Create(id, manager)
	s.call("on_create", lua.LNumber(id))
}

func (s *System) Dispose() {
	s.call("on_dispose")
	s.BaseSystem.Dispose()
}

func (s *System) ComponentAdded(c ecs.Component) {
	s.call("on_component_added", lua.LNumber(c.Id()), lua.LNumber(c.EntityId()), lua.LNumber(c.Type()))
}

func (s *System) ComponentRemoved(c ecs.Component) {
	s.call("on_component_removed", lua.LNumber(c.Id()), lua.LNumber(c.EntityId()), lua.LNumber(c.Type()))
}

func (s *System) Update(delta float32) {
	s.call("on_update", lua.LNumber(delta))
}

// Global returns the value of a Lua global, or lua.LNil.
func (s *System) Global(name string) lua.LValue {
	return s.vm.GetGlobal(name)
}

// Close releases the Lua state. The system must not be used afterwards.
func (s *System) Close() {
	s.vm.Close()
}

// call invokes a hook if the script defines it. Lua errors are logged and
// swallowed so a broken script cannot stop the tick.
func (s *System) call(name string, args ...lua.LValue) {
	fn := s.vm.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return
	}
	if err := s.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...); err != nil {
		s.log.Error("lua hook failed", zap.String("hook", name), zap.Int("system", int(s.Id())), zap.Error(err))
	}
}

func (s *System) manager(L *lua.LState) *ecs.Manager {
	m := s.Manager()
	if m == nil {
		L.RaiseError("system is not registered")
	}
	return m
}

func (s *System) unregisterEntity(L *lua.LState) int {
	id := ecs.EntityId(L.CheckInt(1))
	L.Push(lua.LBool(s.manager(L).UnregisterEntity(id) == nil))
	return 1
}

func (s *System) unregisterComponent(L *lua.LState) int {
	id := ecs.ComponentId(L.CheckInt(1))
	L.Push(lua.LBool(s.manager(L).UnregisterComponent(id) == nil))
	return 1
}

func (s *System) hasComponent(L *lua.LState) int {
	entityId := ecs.EntityId(L.CheckInt(1))
	t := ecs.ComponentType(L.CheckInt(2))
	L.Push(lua.LBool(s.manager(L).HasComponent(entityId, t)))
	return 1
}

func (s *System) componentCount(L *lua.LState) int {
	L.Push(lua.LNumber(s.manager(L).ComponentCount()))
	return 1
}

func (s *System) entityCount(L *lua.LState) int {
	L.Push(lua.LNumber(s.manager(L).EntityCount()))
	return 1
}

func (s *System) destroy(L *lua.LState) int {
	s.manager(L).Destroy()
	return 0
}
