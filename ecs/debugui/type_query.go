package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecsman/ecs"
)

type TypeCount struct {
	Type  ecs.ComponentType
	Count int
}

type TypeQueryCache struct {
	types              []TypeCount
	lastComponentCount int
}

func NewTypeQueryComponent() *TypeQueryComponent {
	return &TypeQueryComponent{
		selectedTypes: make(map[ecs.ComponentType]bool),
		cache: &TypeQueryCache{
			lastComponentCount: -1,
		},
	}
}

func (tq *TypeQueryComponent) Render(m *ecs.Manager, names TypeNamer) {
	if !imgui.BeginV("Type Query", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if count := m.ComponentCount(); tq.cache.lastComponentCount != count {
		tq.cache.types = countTypes(m)
		tq.cache.lastComponentCount = count
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		tq.selectedTypes = make(map[ecs.ComponentType]bool)
	}

	for _, tc := range tq.cache.types {
		selected := tq.selectedTypes[tc.Type]
		if imgui.Checkbox(fmt.Sprintf("%s (%d)", names(tc.Type), tc.Count), &selected) {
			if selected {
				tq.selectedTypes[tc.Type] = true
			} else {
				delete(tq.selectedTypes, tc.Type)
			}
		}
	}

	imgui.Separator()

	if len(tq.selectedTypes) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	selected := make([]ecs.ComponentType, 0, len(tq.selectedTypes))
	for t := range tq.selectedTypes {
		selected = append(selected, t)
	}
	slices.Sort(selected)

	matching := matchingEntities(m, selected)
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matching)))

	if imgui.TreeNodeStr("Entities") {
		for _, id := range matching {
			imgui.BulletText(fmt.Sprintf("%d", id))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// countTypes returns how many live components each type has, ordered by type.
func countTypes(m *ecs.Manager) []TypeCount {
	counts := make(map[ecs.ComponentType]int)
	for _, c := range m.AllComponents() {
		counts[c.Type()]++
	}

	result := make([]TypeCount, 0, len(counts))
	for t, n := range counts {
		result = append(result, TypeCount{Type: t, Count: n})
	}
	slices.SortFunc(result, func(a, b TypeCount) int {
		return int(a.Type) - int(b.Type)
	})
	return result
}

// matchingEntities returns the ids of entities holding a component of every
// given type, in registration order of the components of the first type.
func matchingEntities(m *ecs.Manager, types []ecs.ComponentType) []ecs.EntityId {
	if len(types) == 0 {
		return nil
	}

	var matching []ecs.EntityId
	for _, c := range m.ComponentsOfType(types[0]) {
		entityId := c.EntityId()
		all := true
		for _, t := range types[1:] {
			if !m.HasComponent(entityId, t) {
				all = false
				break
			}
		}
		if all {
			matching = append(matching, entityId)
		}
	}
	return matching
}
