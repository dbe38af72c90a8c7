package ecs_test

import (
	"fmt"

	"github.com/plus3/entree/ecs"
)

type GameScore struct {
	Points int
	Level  int
}

func (*GameScore) Kind() ecs.Kind { return 100 }

// ExampleNewSingleton shows world-wide state stored on the root entity.
// Every Singleton over the same query points at the same component.
func ExampleNewSingleton() {
	root := ecs.MustNewEntity("world", []ecs.Component{&GameScore{Level: 1}})
	query := ecs.NewQuery(root)

	score := ecs.NewSingleton[GameScore](query)
	score.Get().Points += 50

	same := ecs.NewSingleton[GameScore](query)
	fmt.Printf("Score: %d, Level: %d\n", same.Get().Points, same.Get().Level)

	missing := ecs.NewSingleton[GameScore](ecs.NewQuery(ecs.MustNewEntity("empty", nil)))
	fmt.Println("Exists:", missing.Exists())

	// Output:
	// Score: 50, Level: 1
	// Exists: false
}
