// Package task runs timed behaviour attached to components.
package task

import "slices"

// Task is a unit of work advanced once per tick.
type Task interface {
	Execute(delta float32)
}

// Func adapts a plain function to Task.
type Func func(delta float32)

func (f Func) Execute(delta float32) { f(delta) }

// Every returns a task that calls fn each time at least interval seconds have
// accumulated. Large deltas trigger fn once per elapsed interval.
func Every(interval float32, fn func()) Task {
	return &periodic{interval: interval, fn: fn}
}

type periodic struct {
	interval float32
	elapsed  float32
	fn       func()
}

func (p *periodic) Execute(delta float32) {
	if p.interval <= 0 {
		p.fn()
		return
	}
	p.elapsed += delta
	for p.elapsed >= p.interval {
		p.elapsed -= p.interval
		p.fn()
	}
}

// Handle identifies a task added to an Executor.
type Handle uint64

// Executor runs its tasks in the order they were added. Tasks may add or
// remove tasks while executing; additions start on the next Execute and
// removed tasks are not run again.
type Executor struct {
	next    Handle
	entries []*entry
}

type entry struct {
	handle Handle
	task   Task
	live   bool
}

// NewExecutor creates an empty executor.
func NewExecutor() *Executor {
	return &Executor{next: 1}
}

// Add appends t and returns its handle.
func (e *Executor) Add(t Task) Handle {
	h := e.next
	e.next++
	e.entries = append(e.entries, &entry{handle: h, task: t, live: true})
	return h
}

// Remove drops the task with handle h and reports whether it was present.
func (e *Executor) Remove(h Handle) bool {
	i := slices.IndexFunc(e.entries, func(en *entry) bool { return en.handle == h })
	if i < 0 {
		return false
	}
	e.entries[i].live = false
	e.entries = slices.Delete(e.entries, i, i+1)
	return true
}

// Execute runs every task once with delta.
func (e *Executor) Execute(delta float32) {
	snapshot := slices.Clone(e.entries)
	for _, en := range snapshot {
		if en.live {
			en.task.Execute(delta)
		}
	}
}

// Len returns the number of tasks.
func (e *Executor) Len() int {
	return len(e.entries)
}

// Clear drops every task.
func (e *Executor) Clear() {
	for _, en := range e.entries {
		en.live = false
	}
	e.entries = nil
}
