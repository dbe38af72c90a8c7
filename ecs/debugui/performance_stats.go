package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/entree/ecs"
)

func NewPerformanceStats(registry *ecs.ComponentRegistry, scheduler *ecs.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		registry:      registry,
		scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *PerformanceStats) Render(frame *ecs.UpdateFrame) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.record(float32(frame.DeltaTime))

	stats := ecs.CollectStats(frame.Query.Root())

	imgui.Text(fmt.Sprintf("Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Components: %d", stats.ComponentCount))
	imgui.Text(fmt.Sprintf("Tree Depth: %d", stats.MaxDepth))

	avgFrameTime := ps.averageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if ps.scheduler != nil && imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Errors")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, sys := range ps.scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ErrorCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Kind Details") {
		for _, kind := range stats.Kinds {
			imgui.BulletText(fmt.Sprintf("%s: %d", ecs.KindName(ps.registry, kind), stats.KindCounts[kind]))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// record stores a frame delta in seconds as milliseconds.
func (ps *PerformanceStats) record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	ps.frameCount = min(ps.frameCount+1, ps.historyFrames)
}

// averageFrameTime averages the recorded frames only, ignoring unused slots.
func (ps *PerformanceStats) averageFrameTime() float32 {
	if ps.frameCount == 0 {
		return 0
	}
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.frameCount)
}
