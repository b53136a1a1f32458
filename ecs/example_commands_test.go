package ecs_test

import (
	"fmt"

	"github.com/plus3/ecsman/ecs"
)

type CleanupSystem struct {
	ecs.BaseSystem
	health []*Health
}

func (s *CleanupSystem) ComponentAdded(c ecs.Component) {
	if h, ok := c.(*Health); ok {
		s.health = append(s.health, h)
	}
}

func (s *CleanupSystem) ComponentRemoved(c ecs.Component) {
	for i, h := range s.health {
		if h == c {
			s.health = append(s.health[:i], s.health[i+1:]...)
			return
		}
	}
}

func (s *CleanupSystem) Update(float32) {
	deadCount := 0
	for _, h := range s.health {
		if h.Current <= 0 {
			s.Manager().Commands().UnregisterEntity(h.EntityId())
			deadCount++
		}
	}
	if deadCount > 0 {
		fmt.Printf("Queued %d dead entities for removal\n", deadCount)
	}
}

// ExampleCommands demonstrates using the command buffer to defer registry
// changes. CleanupSystem walks its own component list during Update, so it
// queues removals instead of unregistering entities while iterating. The
// Manager flushes the buffer at the end of every Update.
func ExampleCommands() {
	m := ecs.NewManager()
	m.Init()
	defer m.Destroy()

	for _, current := range []int{0, 50, 100} {
		e, _ := m.RegisterEntity(&ecs.BaseEntity{})
		m.RegisterComponent(e.Id(), &Position{})
		m.RegisterComponent(e.Id(), &Health{Current: current, Max: 100})
	}

	m.RegisterSystem(&CleanupSystem{})
	m.Update(1)

	fmt.Printf("Remaining entities: %d\n", m.EntityCount())
	fmt.Printf("Remaining positions: %d\n", len(m.ComponentsOfType(PositionType)))

	// Output:
	// Queued 1 dead entities for removal
	// Remaining entities: 2
	// Remaining positions: 2
}
