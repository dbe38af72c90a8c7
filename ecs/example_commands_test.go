package ecs_test

import (
	"fmt"

	"github.com/plus3/entree/ecs"
)

// ExampleCommands queues a report that runs once every system of the tick
// has finished, so it reads the values left by the last system.
func ExampleCommands() {
	root := newTestTree()
	scheduler := ecs.NewScheduler(ecs.NewQuery(root))

	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) error {
		frame.Commands.Defer(func() {
			n, _ := frame.Query.Count(ecs.HasComponentWhere[Health](func(h *Health) (bool, error) {
				return h.Current == h.Max, nil
			}))
			fmt.Printf("At full health: %d\n", n)
		})
		return nil
	}))
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) error {
		return frame.Query.Each([]ecs.Criterion{ecs.HasComponent(KindHealth)}, func(e *ecs.Entity) bool {
			h := ecs.ReadComponent[Health](e)
			h.Current = h.Max
			return true
		})
	}))

	_ = scheduler.Once(1)

	// Output:
	// At full health: 3
}
