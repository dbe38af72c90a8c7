package main

import "github.com/plus3/entree/ecs"

//go:generate go run github.com/plus3/entree/cmd/ecs-fieldgen -out components_fields.go

const (
	KindPosition ecs.Kind = iota + 1
	KindVelocity
	KindHealth
	KindTeam
)

//ecs:component
type Position struct {
	X float64 `ecs:"x"`
	Y float64 `ecs:"y"`
}

func (*Position) Kind() ecs.Kind { return KindPosition }

//ecs:component
type Velocity struct {
	DX float64 `ecs:"dx"`
	DY float64 `ecs:"dy"`
}

func (*Velocity) Kind() ecs.Kind { return KindVelocity }

//ecs:component
type Health struct {
	Current int `ecs:"current"`
	Max     int `ecs:"max"`
}

func (*Health) Kind() ecs.Kind { return KindHealth }

//ecs:component
type Team struct {
	Name string `ecs:"name"`
}

func (*Team) Kind() ecs.Kind { return KindTeam }

var teams = []string{"red", "blue", "green"}

func newRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Team](registry)
	return registry
}
