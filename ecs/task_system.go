package ecs

import "github.com/plus3/ecsman/ecs/task"

// TaskFactory returns the task to run for a component, or nil if the component
// is of no interest.
type TaskFactory func(c Component) task.Task

// TaskSystem keeps one task per tracked component and advances all of them on
// every Update. A component's task is dropped when the component is removed.
type TaskSystem struct {
	BaseSystem

	factory  TaskFactory
	executor *task.Executor
	handles  map[ComponentId]task.Handle
}

// NewTaskSystem creates a TaskSystem building tasks with factory.
func NewTaskSystem(concurrent bool, factory TaskFactory) *TaskSystem {
	return &TaskSystem{
		BaseSystem: NewBaseSystem(concurrent),
		factory:    factory,
		executor:   task.NewExecutor(),
		handles:    make(map[ComponentId]task.Handle),
	}
}

func (s *TaskSystem) ComponentAdded(c Component) {
	t := s.factory(c)
	if t == nil {
		return
	}
	if old, ok := s.handles[c.Id()]; ok {
		s.executor.Remove(old)
	}
	s.handles[c.Id()] = s.executor.Add(t)
}

func (s *TaskSystem) ComponentRemoved(c Component) {
	h, ok := s.handles[c.Id()]
	if !ok {
		return
	}
	delete(s.handles, c.Id())
	s.executor.Remove(h)
}

func (s *TaskSystem) Update(delta float32) {
	s.executor.Execute(delta)
}

func (s *TaskSystem) Dispose() {
	s.executor.Clear()
	clear(s.handles)
	s.BaseSystem.Dispose()
}

// TaskCount returns the number of tracked components.
func (s *TaskSystem) TaskCount() int {
	return s.executor.Len()
}
