package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/entree/ecs"
)

type KindInfo struct {
	Kind        ecs.Kind
	Name        string
	EntityCount int
}

func NewKindViewer(registry *ecs.ComponentRegistry, browser *EntityBrowser) *KindViewer {
	return &KindViewer{
		registry:      registry,
		browser:       browser,
		sortColumn:    2,
		sortAscending: false,
	}
}

func (kv *KindViewer) Render(frame *ecs.UpdateFrame) {
	if !imgui.BeginV("Kind Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	kv.rows = kindRows(ecs.CollectStats(frame.Query.Root()), kv.registry)
	sortKinds(kv.rows, kv.sortColumn, kv.sortAscending)

	maxEntityCount := 0
	for _, row := range kv.rows {
		maxEntityCount = max(maxEntityCount, row.EntityCount)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("KindTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Entities")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			kv.sortColumn = int(spec.ColumnIndex())
			kv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortKinds(kv.rows, kv.sortColumn, kv.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range kv.rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := kv.selectedKind != nil && *kv.selectedKind == row.Kind
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.Kind), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				kind := row.Kind
				if isSelected {
					kv.selectedKind = nil
				} else {
					kv.selectedKind = &kind
				}
				if kv.browser != nil {
					kv.browser.FilterKind(kv.selectedKind)
				}
			}

			imgui.TableNextColumn()
			imgui.Text(row.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(row.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

func kindRows(stats *ecs.TreeStats, registry *ecs.ComponentRegistry) []KindInfo {
	rows := make([]KindInfo, 0, len(stats.Kinds))
	for _, kind := range stats.Kinds {
		rows = append(rows, KindInfo{
			Kind:        kind,
			Name:        ecs.KindName(registry, kind),
			EntityCount: stats.KindCounts[kind],
		})
	}
	return rows
}

func sortKinds(rows []KindInfo, column int, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !ascending {
			a, b = b, a
		}

		switch column {
		case 0:
			return a.Kind < b.Kind
		case 1:
			return a.Name < b.Name
		default:
			return a.EntityCount < b.EntityCount
		}
	})
}
