// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It renders registry inspector windows and ImguiItem components through ordinary ECS systems.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecsman/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	ecs.BaseComponent
	Render func()
}

func (*ImguiItem) Type() ecs.ComponentType { return ImguiItemType }

// ImguiInputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem tracks all ImguiItem components and defers their render functions
// to the end of every Update. It also refreshes InputState.
type ImguiSystem struct {
	ecs.BaseSystem
	InputState ImguiInputState
	items      []*ImguiItem
}

func (i *ImguiSystem) ComponentAdded(c ecs.Component) {
	if item, ok := c.(*ImguiItem); ok {
		i.items = append(i.items, item)
	}
}

func (i *ImguiSystem) ComponentRemoved(c ecs.Component) {
	for idx, item := range i.items {
		if item == c {
			i.items = append(i.items[:idx], i.items[idx+1:]...)
			return
		}
	}
}

// Update updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Update(float32) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	commands := i.Manager().Commands()
	for _, item := range i.items {
		if item.Render != nil {
			commands.Defer(item.Render)
		}
	}
}

// ItemCount returns the number of tracked ImguiItem components.
func (i *ImguiSystem) ItemCount() int {
	return len(i.items)
}

// TypeNamer turns a component type tag into a display name.
type TypeNamer func(ecs.ComponentType) string

// DefaultTypeNamer names the component types of this package and falls back to
// the raw tag for everything else.
func DefaultTypeNamer(t ecs.ComponentType) string {
	switch t {
	case ImguiItemType:
		return "ImguiItem"
	case EntityBrowserType:
		return "EntityBrowser"
	case ComponentInspectorType:
		return "ComponentInspector"
	case SystemViewerType:
		return "SystemViewer"
	case PerformanceStatsType:
		return "PerformanceStats"
	case TypeQueryType:
		return "TypeQuery"
	}
	return fmt.Sprintf("Type(%d)", t)
}

// WithFallback returns a namer that uses DefaultTypeNamer for the reserved
// component types and names for everything else.
func WithFallback(names TypeNamer) TypeNamer {
	return func(t ecs.ComponentType) string {
		if t >= ecs.ReservedComponentTypes {
			return DefaultTypeNamer(t)
		}
		return names(t)
	}
}
