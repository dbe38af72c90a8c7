package ecs_test

import (
	"strconv"
	"testing"

	"github.com/plus3/entree/ecs"
)

// benchTree builds a root with width groups of width entities each. Every
// entity carries a Position; every other one also carries a Velocity.
func benchTree(width int) *ecs.Entity {
	groups := make([]ecs.EntitySpec, width)
	for g := range groups {
		children := make([]ecs.EntitySpec, width)
		for i := range children {
			comps := []ecs.Component{&Position{X: float32(i), Y: float32(g)}}
			if i%2 == 0 {
				comps = append(comps, &Velocity{DX: 1, DY: 1})
			}
			children[i] = ecs.EntitySpec{ID: "e" + strconv.Itoa(i), Components: comps}
		}
		groups[g] = ecs.EntitySpec{ID: "g" + strconv.Itoa(g), Children: children}
	}
	return ecs.EntitySpec{ID: "world", Children: groups}.MustBuild()
}

func BenchmarkNewEntity(b *testing.B) {
	for b.Loop() {
		_, _ = ecs.NewEntity("e", []ecs.Component{
			&Position{X: 1, Y: 2},
			&Velocity{DX: 0.5, DY: 0.5},
			&Health{Current: 100, Max: 100},
			&Name{Value: "Entity"},
		})
	}
}

func BenchmarkEntityGet(b *testing.B) {
	e := ecs.MustNewEntity("e", []ecs.Component{&Position{}, &Velocity{}, &Health{}})
	for b.Loop() {
		_ = e.Get(KindHealth)
	}
}

func BenchmarkQueryFilter(b *testing.B) {
	query := ecs.NewQuery(benchTree(32))
	for b.Loop() {
		_, _ = query.Filter(ecs.HasComponent(KindPosition), ecs.HasComponent(KindVelocity))
	}
}

func BenchmarkQueryFilterLarge(b *testing.B) {
	query := ecs.NewQuery(benchTree(100))
	for b.Loop() {
		_, _ = query.Filter(ecs.HasComponent(KindVelocity))
	}
}

func BenchmarkQueryGetById(b *testing.B) {
	query := ecs.NewQuery(benchTree(32))
	for b.Loop() {
		_, _ = query.Get(ecs.HasId("e31"))
	}
}

func BenchmarkQueryHasValue(b *testing.B) {
	query := ecs.NewQuery(benchTree(32))
	criterion := ecs.HasValue(KindPosition, "x", float32(7))
	for b.Loop() {
		_, _ = query.Filter(criterion)
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	scheduler := ecs.NewScheduler(ecs.NewQuery(benchTree(32)))
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&HealthSystem{})

	for b.Loop() {
		_ = scheduler.Once(0.016)
	}
}
