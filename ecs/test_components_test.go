package ecs_test

import "github.com/plus3/entree/ecs"

const (
	KindPosition ecs.Kind = iota + 1
	KindVelocity
	KindName
	KindHealth
	KindTag
	KindInventory
)

// Common test component types
type Position struct {
	X, Y float32
}

func (*Position) Kind() ecs.Kind { return KindPosition }

func (p *Position) Field(name string) (any, bool) {
	switch name {
	case "x":
		return p.X, true
	case "y":
		return p.Y, true
	}
	return nil, false
}

func (p *Position) FieldNames() []string { return []string{"x", "y"} }

type Velocity struct {
	DX, DY float32
}

func (*Velocity) Kind() ecs.Kind { return KindVelocity }

func (v *Velocity) Field(name string) (any, bool) {
	switch name {
	case "dx":
		return v.DX, true
	case "dy":
		return v.DY, true
	}
	return nil, false
}

func (v *Velocity) FieldNames() []string { return []string{"dx", "dy"} }

type Name struct {
	Value string
}

func (*Name) Kind() ecs.Kind { return KindName }

type Health struct {
	Current int
	Max     int
}

func (*Health) Kind() ecs.Kind { return KindHealth }

func (h *Health) Field(name string) (any, bool) {
	switch name {
	case "current":
		return h.Current, true
	case "max":
		return h.Max, true
	}
	return nil, false
}

func (h *Health) FieldNames() []string { return []string{"current", "max"} }

// Tag implements Component on the value receiver, so it can be passed by value.
type Tag string

func (Tag) Kind() ecs.Kind { return KindTag }

type Inventory struct {
	Items []string
}

func (*Inventory) Kind() ecs.Kind { return KindInventory }

func (i *Inventory) Field(name string) (any, bool) {
	if name == "items" {
		return i.Items, true
	}
	return nil, false
}

func (i *Inventory) FieldNames() []string { return []string{"items"} }

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Name](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Inventory](registry)
	return registry
}

// newTestTree builds:
//
//	world
//	├── player (Position, Velocity, Health)
//	│   └── sword (Name)
//	├── rock (Position)
//	└── group
//	    ├── enemy (Position, Velocity, Health)
//	    └── enemy (Position, Health)
func newTestTree() *ecs.Entity {
	return ecs.EntitySpec{
		ID: "world",
		Children: []ecs.EntitySpec{
			{
				ID: "player",
				Components: []ecs.Component{
					&Position{X: 1, Y: 2},
					&Velocity{DX: 1, DY: 0},
					&Health{Current: 100, Max: 100},
				},
				Children: []ecs.EntitySpec{
					{ID: "sword", Components: []ecs.Component{&Name{Value: "Excalibur"}}},
				},
			},
			{ID: "rock", Components: []ecs.Component{&Position{X: 5, Y: 5}}},
			{
				ID: "group",
				Children: []ecs.EntitySpec{
					{ID: "enemy", Components: []ecs.Component{
						&Position{X: 10, Y: 0},
						&Velocity{DX: -1, DY: 0},
						&Health{Current: 30, Max: 50},
					}},
					{ID: "enemy", Components: []ecs.Component{
						&Position{X: 20, Y: 0},
						&Health{Current: 50, Max: 50},
					}},
				},
			},
		},
	}.MustBuild()
}

func ids(entities []*ecs.Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.ID()
	}
	return out
}
