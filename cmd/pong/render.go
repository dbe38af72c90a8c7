package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/entree/ecs"
	"github.com/plus3/entree/game/pong"
)

// RenderSystem draws every entity carrying Position and Drawing onto Screen.
// Rectangles are anchored at their top-left corner, circles at their center.
type RenderSystem struct {
	Screen *ebiten.Image
	Arena  ecs.Singleton[pong.Arena]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) error {
	if s.Screen == nil {
		return nil
	}
	if arena := s.Arena.Get(); arena != nil {
		s.Screen.Fill(arena.Background)
	}

	return frame.Query.Each(
		[]ecs.Criterion{ecs.HasComponent(pong.KindPosition), ecs.HasComponent(pong.KindDrawing)},
		func(e *ecs.Entity) bool {
			pos := ecs.ReadComponent[pong.Position](e)
			drawing := ecs.ReadComponent[pong.Drawing](e)

			switch drawing.Shape {
			case pong.ShapeCircle:
				vector.DrawFilledCircle(s.Screen, float32(pos.X), float32(pos.Y), float32(drawing.Radius), drawing.Color, false)
			default:
				vector.DrawFilledRect(s.Screen, float32(pos.X), float32(pos.Y), float32(drawing.Width), float32(drawing.Height), drawing.Color, false)
			}
			return true
		},
	)
}
