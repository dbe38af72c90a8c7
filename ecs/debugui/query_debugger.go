package debugui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/entree/ecs"
	"github.com/plus3/entree/ecs/cql"
)

type compiledCQL struct {
	text      string
	criterion ecs.Criterion
	err       error
}

func NewQueryDebugger(registry *ecs.ComponentRegistry) *QueryDebugger {
	return &QueryDebugger{
		registry: registry,
		selected: make(map[ecs.Kind]bool),
	}
}

func (qd *QueryDebugger) Render(frame *ecs.UpdateFrame) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Required Components:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selected = make(map[ecs.Kind]bool)
		qd.cqlText = ""
	}

	for _, kind := range qd.registry.Kinds() {
		selected := qd.selected[kind]
		if imgui.Checkbox(ecs.KindName(qd.registry, kind), &selected) {
			qd.SetKind(kind, selected)
		}
	}

	imgui.Separator()
	imgui.SetNextItemWidth(400)
	imgui.InputTextWithHint("##cql", `ID("ball") & HAS(Position)`, &qd.cqlText, imgui.InputTextFlagsNone, nil)

	criteria, err := qd.Criteria()
	if err != nil {
		imgui.Text("Error: " + err.Error())
		imgui.End()
		return
	}
	if len(criteria) == 0 {
		imgui.Text("No criteria selected")
		imgui.End()
		return
	}

	matches, err := frame.Query.Filter(criteria...)
	if err != nil {
		imgui.Text("Error: " + err.Error())
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matches)))

	if imgui.TreeNodeStr("Matches") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryMatchTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity")
			imgui.TableSetupColumn("Components")
			imgui.TableHeadersRow()

			for _, e := range matches {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(e.ID())

				imgui.TableSetColumnIndex(1)
				names := make([]string, 0, len(e.Kinds()))
				for _, kind := range e.Kinds() {
					names = append(names, ecs.KindName(qd.registry, kind))
				}
				imgui.Text(strings.Join(names, ", "))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// SetKind toggles a required component kind.
func (qd *QueryDebugger) SetKind(kind ecs.Kind, required bool) {
	if required {
		qd.selected[kind] = true
	} else {
		delete(qd.selected, kind)
	}
}

// SetText replaces the criteria expression.
func (qd *QueryDebugger) SetText(text string) {
	qd.cqlText = text
}

// Criteria returns the selected kinds, in ascending order, followed by the
// compiled expression if one was entered. The expression is recompiled only
// when its text changes.
func (qd *QueryDebugger) Criteria() ([]ecs.Criterion, error) {
	kinds := make([]ecs.Kind, 0, len(qd.selected))
	for kind := range qd.selected {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)

	criteria := make([]ecs.Criterion, 0, len(kinds)+1)
	for _, kind := range kinds {
		criteria = append(criteria, ecs.HasComponent(kind))
	}

	text := strings.TrimSpace(qd.cqlText)
	if text == "" {
		return criteria, nil
	}
	if qd.compiled == nil || qd.compiled.text != text {
		criterion, err := cql.Parse(text, qd.registry)
		qd.compiled = &compiledCQL{text: text, criterion: criterion, err: err}
	}
	if qd.compiled.err != nil {
		return nil, qd.compiled.err
	}
	return append(criteria, qd.compiled.criterion), nil
}
