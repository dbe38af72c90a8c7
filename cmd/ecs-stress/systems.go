package main

import (
	"github.com/plus3/entree/ecs"
)

// MovementSystem integrates velocity into position for every moving entity.
type MovementSystem struct{}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) error {
	return frame.Query.Each(
		[]ecs.Criterion{ecs.HasComponent(KindPosition), ecs.HasComponent(KindVelocity)},
		func(e *ecs.Entity) bool {
			pos := ecs.ReadComponent[Position](e)
			vel := ecs.ReadComponent[Velocity](e)
			pos.X += vel.DX * frame.DeltaTime
			pos.Y += vel.DY * frame.DeltaTime
			return true
		},
	)
}

// QuerySystem evaluates the user's criterion every tick.
type QuerySystem struct {
	Criterion ecs.Criterion
	Matches   int
}

func (s *QuerySystem) Execute(frame *ecs.UpdateFrame) error {
	matches, err := frame.Query.Filter(s.Criterion)
	if err != nil {
		return err
	}
	s.Matches = len(matches)
	return nil
}
