package debugui

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/entree/ecs"
)

type EntityInfo struct {
	Entity *ecs.Entity
	// Order is the entity's position in a pre-order walk.
	Order      int
	Depth      int
	Path       string
	Kinds      []ecs.Kind
	Components []string
}

type EntityBrowserCache struct {
	root          *ecs.Entity
	entities      []EntityInfo
	sortColumn    int
	sortAscending bool
}

func NewEntityBrowser(registry *ecs.ComponentRegistry, maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		registry: registry,
		cache: &EntityBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowser) Render(frame *ecs.UpdateFrame) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(frame.Query.Root())

	text := eb.filterText
	if imgui.InputTextWithHint("##search", "Search...", &text, imgui.InputTextFlagsNone, nil) {
		eb.FilterText(text)
	}
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.FilterText("")
		eb.FilterKind(nil)
	}
	if eb.filterKind != nil {
		imgui.Text("Kind: " + ecs.KindName(eb.registry, *eb.filterKind))
	}

	filteredEntities := eb.filteredEntities()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Path")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortEntities(eb.cache.entities, eb.cache.sortColumn, eb.cache.sortAscending)
			sortSpecs.SetSpecsDirty(false)
			filteredEntities = eb.filteredEntities()
		}

		startIdx := min(eb.currentPage*eb.maxEntitiesPerPage, len(filteredEntities))
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filteredEntities))

		for _, entity := range filteredEntities[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			label := strings.Repeat("  ", entity.Depth) + entity.Entity.ID() + "##" + entity.Path
			if imgui.SelectableBoolV(label, eb.selected == entity.Entity, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = entity.Entity
			}

			imgui.TableNextColumn()
			imgui.Text(entity.Path)

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.Components, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(entity.Kinds)))
		}

		imgui.EndTable()
	}

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

// The tree never changes shape, so the cache only rebuilds for a new root.
func (eb *EntityBrowser) rebuildCacheIfNeeded(root *ecs.Entity) {
	if eb.cache.root == root && eb.cache.entities != nil {
		return
	}
	eb.cache.root = root
	eb.cache.entities = collectEntityInfo(root, eb.registry)
	sortEntities(eb.cache.entities, eb.cache.sortColumn, eb.cache.sortAscending)
}

func collectEntityInfo(root *ecs.Entity, registry *ecs.ComponentRegistry) []EntityInfo {
	entities := make([]EntityInfo, 0, 64)
	var visit func(e *ecs.Entity, depth int, parent string)
	visit = func(e *ecs.Entity, depth int, parent string) {
		path := e.ID()
		if parent != "" {
			path = parent + "/" + path
		}
		kinds := e.Kinds()
		names := make([]string, len(kinds))
		for i, kind := range kinds {
			names[i] = ecs.KindName(registry, kind)
		}
		entities = append(entities, EntityInfo{
			Entity:     e,
			Order:      len(entities),
			Depth:      depth,
			Path:       path,
			Kinds:      kinds,
			Components: names,
		})
		for _, child := range e.Children() {
			visit(child, depth+1, path)
		}
	}
	if root != nil {
		visit(root, 0, "")
	}
	return entities
}

// sortEntities orders rows by column. Column 0 is tree order.
func sortEntities(entities []EntityInfo, column int, ascending bool) {
	sort.SliceStable(entities, func(i, j int) bool {
		a, b := entities[i], entities[j]
		if !ascending {
			a, b = b, a
		}

		switch column {
		case 1:
			return a.Path < b.Path
		case 2:
			return strings.Join(a.Components, ",") < strings.Join(b.Components, ",")
		case 3:
			return len(a.Kinds) < len(b.Kinds)
		default:
			return a.Order < b.Order
		}
	})
}

func (eb *EntityBrowser) filteredEntities() []EntityInfo {
	return filterEntities(eb.cache.entities, eb.filterText, eb.filterKind)
}

func filterEntities(entities []EntityInfo, text string, kind *ecs.Kind) []EntityInfo {
	if text == "" && kind == nil {
		return entities
	}

	filtered := make([]EntityInfo, 0, len(entities))
	filterLower := strings.ToLower(text)

	for _, entity := range entities {
		if kind != nil && !slices.Contains(entity.Kinds, *kind) {
			continue
		}

		if text != "" {
			pathStr := strings.ToLower(entity.Path)
			componentsStr := strings.ToLower(strings.Join(entity.Components, " "))

			if !strings.Contains(pathStr, filterLower) && !strings.Contains(componentsStr, filterLower) {
				continue
			}
		}

		filtered = append(filtered, entity)
	}

	return filtered
}

// Selected returns the entity picked in the table, or nil.
func (eb *EntityBrowser) Selected() *ecs.Entity {
	return eb.selected
}

// Select marks e as the selected entity.
func (eb *EntityBrowser) Select(e *ecs.Entity) {
	eb.selected = e
}

// FilterKind restricts the table to entities carrying kind. Nil clears it.
func (eb *EntityBrowser) FilterKind(kind *ecs.Kind) {
	eb.filterKind = kind
	eb.currentPage = 0
}

// FilterText restricts the table to entities whose path or component names
// contain text, ignoring case, and returns to the first page.
func (eb *EntityBrowser) FilterText(text string) {
	eb.filterText = text
	eb.currentPage = 0
}
