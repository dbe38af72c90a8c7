// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/entree/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to integrate Dear ImGui rendering into Ebiten game loops.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The imgui.ini file is
// disabled so debug layouts do not leak between runs.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Tick runs one scheduler tick inside an ImGui frame, so systems and the
// windows they defer can issue ImGui calls.
func (b *ImguiBackend) Tick(scheduler *ecs.Scheduler, dt float64) error {
	b.BeginFrame()
	defer b.EndFrame()
	return scheduler.Once(dt)
}

// Overlay draws the ImGui frame on top of screen.
func (b *ImguiBackend) Overlay(screen *ebiten.Image) {
	b.Draw(screen)
}
