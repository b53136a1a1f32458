package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecsman/ecs"
)

type SystemViewerCache struct {
	systems       []ecs.SystemStats
	sortColumn    int
	sortAscending bool
}

func NewSystemViewerComponent() *SystemViewerComponent {
	return &SystemViewerComponent{
		cache: &SystemViewerCache{
			sortColumn:    0,
			sortAscending: true,
		},
	}
}

// Render draws one row per system and returns the id of a system clicked
// this frame, or 0.
func (sv *SystemViewerComponent) Render(m *ecs.Manager) ecs.SystemId {
	if !imgui.BeginV("System Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return 0
	}

	sv.cache.systems = m.Stats().Systems
	sv.sortSystems()

	var maxAvg time.Duration
	for _, s := range sv.cache.systems {
		maxAvg = max(maxAvg, s.AvgDuration)
	}

	var clicked ecs.SystemId

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SystemTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Concurrent")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.cache.sortColumn = int(spec.ColumnIndex())
			sv.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sv.sortSystems()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, s := range sv.cache.systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := sv.selectedSystemId == s.Id
			if imgui.SelectableBoolV(fmt.Sprintf("%d", s.Id), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sv.selectedSystemId = s.Id
				clicked = s.Id
			}

			imgui.TableNextColumn()
			imgui.Text(s.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%v", s.Concurrent))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))

			imgui.TableNextColumn()
			imgui.Text(s.AvgDuration.String())

			if maxAvg > 0 {
				barWidth := float32(s.AvgDuration) / float32(maxAvg) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}

			imgui.TableNextColumn()
			imgui.Text(s.MaxDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

func (sv *SystemViewerComponent) sortSystems() {
	sortSystemStats(sv.cache.systems, sv.cache.sortColumn, sv.cache.sortAscending)
}

func sortSystemStats(systems []ecs.SystemStats, column int, ascending bool) {
	sort.SliceStable(systems, func(i, j int) bool {
		a, b := systems[i], systems[j]
		var less bool

		switch column {
		case 1:
			less = a.Name < b.Name
		case 2:
			less = !a.Concurrent && b.Concurrent
		case 3:
			less = a.ExecutionCount < b.ExecutionCount
		case 4:
			less = a.AvgDuration < b.AvgDuration
		case 5:
			less = a.MaxDuration < b.MaxDuration
		default:
			less = a.Id < b.Id
		}

		if !ascending {
			return !less
		}
		return less
	})
}

func (sv *SystemViewerComponent) GetSelectedSystem() ecs.SystemId {
	return sv.selectedSystemId
}
