package pong

import (
	"image"
	"image/color"
	"math"

	"github.com/plus3/entree/ecs"
)

//go:generate go run github.com/plus3/entree/cmd/ecs-fieldgen -out components_fields.go

const (
	KindPosition ecs.Kind = iota + 1
	KindVelocity
	KindDrawing
	KindCollision
	KindArena
)

type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	switch s {
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	}
	return "unknown"
}

const (
	defaultSize   = 100
	defaultRadius = 50
)

// Position is the top-left corner of rectangles and the center of circles.
//
//ecs:component
type Position struct {
	X float64 `ecs:"x"`
	Y float64 `ecs:"y"`
}

func (*Position) Kind() ecs.Kind { return KindPosition }

//ecs:component
type Velocity struct {
	DX       float64 `ecs:"dx"`
	DY       float64 `ecs:"dy"`
	MaxSpeed float64 `ecs:"max_speed"`
}

func (*Velocity) Kind() ecs.Kind { return KindVelocity }

//ecs:component
type Drawing struct {
	Shape  Shape      `ecs:"shape"`
	Color  color.RGBA `ecs:"color"`
	Width  float64    `ecs:"width"`
	Height float64    `ecs:"height"`
	Radius float64    `ecs:"radius"`
}

func (*Drawing) Kind() ecs.Kind { return KindDrawing }

// NewDrawing returns a drawing with the default size for shape:
// 100x100 rectangles and circles of radius 50.
func NewDrawing(shape Shape, c color.RGBA) *Drawing {
	d := &Drawing{Shape: shape, Color: c}
	switch shape {
	case ShapeRectangle:
		d.Width, d.Height = defaultSize, defaultSize
	case ShapeCircle:
		d.Radius = defaultRadius
	}
	return d
}

// Collision makes an entity take part in collision checks. Two entities are
// tested against each other when one's mask equals the other's layer.
//
//ecs:component
type Collision struct {
	Layer  uint32  `ecs:"layer"`
	Mask   uint32  `ecs:"mask"`
	Shape  Shape   `ecs:"shape"`
	Width  float64 `ecs:"width"`
	Height float64 `ecs:"height"`
	Radius float64 `ecs:"radius"`

	// LastCollision points at the entity this one last overlapped.
	// It does not own it.
	LastCollision *ecs.Entity `ecs:"last_collision"`
}

func (*Collision) Kind() ecs.Kind { return KindCollision }

// NewCollision returns a collision shape with the same defaults as NewDrawing.
func NewCollision(layer, mask uint32, shape Shape) *Collision {
	c := &Collision{Layer: layer, Mask: mask, Shape: shape}
	switch shape {
	case ShapeRectangle:
		c.Width, c.Height = defaultSize, defaultSize
	case ShapeCircle:
		c.Radius = defaultRadius
	}
	return c
}

// Bounds returns the integer rectangle covered by the shape at pos.
// Positions are rounded to the nearest pixel first.
func (c *Collision) Bounds(pos *Position) image.Rectangle {
	x := int(math.Round(pos.X))
	y := int(math.Round(pos.Y))
	if c.Shape == ShapeCircle {
		r := int(math.Round(c.Radius))
		return image.Rect(x-r, y-r, x+r, y+r)
	}
	return image.Rect(x, y, x+int(c.Width), y+int(c.Height))
}

// Arena lives on the world root and describes the playing field.
//
//ecs:component
type Arena struct {
	Width      int        `ecs:"width"`
	Height     int        `ecs:"height"`
	Background color.RGBA `ecs:"background"`
}

func (*Arena) Kind() ecs.Kind { return KindArena }

// NewRegistry returns a registry naming every pong component.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Drawing](registry)
	ecs.RegisterComponent[Collision](registry)
	ecs.RegisterComponent[Arena](registry)
	return registry
}
