// Package debugui provides immediate-mode GUI windows for inspecting entity
// trees using Dear ImGui.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/entree/ecs"
)

// Window is a debug window drawn once per frame.
type Window interface {
	Render(frame *ecs.UpdateFrame)
}

// WindowFunc adapts a plain function to the Window interface.
type WindowFunc func(frame *ecs.UpdateFrame)

func (f WindowFunc) Render(frame *ecs.UpdateFrame) {
	f(frame)
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every window's render function to the end of the tick
// so windows observe the values left by all other systems.
type ImguiSystem struct {
	Windows    []Window
	InputState ImguiInputState
}

// Add appends windows to the system.
func (i *ImguiSystem) Add(windows ...Window) {
	i.Windows = append(i.Windows, windows...)
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) error {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range i.Windows {
		frame.Commands.Defer(func() { w.Render(frame) })
	}
	return nil
}
