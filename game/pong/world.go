package pong

import (
	"image/color"

	"github.com/plus3/entree/ecs"
)

const (
	LayerBars uint32 = 1
	LayerBall uint32 = 2
)

const (
	barWidth  = 10
	barHeight = 100
	barMargin = 100
	ballSize  = 10
)

var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

// Config holds the tunable parameters of a pong world.
type Config struct {
	Width     int
	Height    int
	BallSpeed float64
	MaxSpeed  float64
}

// DefaultConfig returns the classic 800x600 field with the ball moving right.
func DefaultConfig() Config {
	return Config{
		Width:     800,
		Height:    600,
		BallSpeed: 100,
		MaxSpeed:  1000,
	}
}

// WorldSpec describes the pong tree: a world root carrying the Arena and
// three children, left_bar, right_bar and ball, in that order.
func WorldSpec(cfg Config) ecs.EntitySpec {
	w, h := float64(cfg.Width), float64(cfg.Height)

	bar := func(id string, x float64) ecs.EntitySpec {
		drawing := NewDrawing(ShapeRectangle, White)
		drawing.Width, drawing.Height = barWidth, barHeight
		collision := NewCollision(LayerBars, LayerBall, ShapeRectangle)
		collision.Width, collision.Height = barWidth, barHeight
		return ecs.EntitySpec{
			ID: id,
			Components: []ecs.Component{
				&Position{X: x, Y: h/2 - barHeight/2},
				drawing,
				collision,
			},
		}
	}

	ballDrawing := NewDrawing(ShapeRectangle, White)
	ballDrawing.Width, ballDrawing.Height = ballSize, ballSize
	ballCollision := NewCollision(LayerBall, LayerBars, ShapeRectangle)
	ballCollision.Width, ballCollision.Height = ballSize, ballSize

	return ecs.EntitySpec{
		ID: "world",
		Components: []ecs.Component{
			&Arena{Width: cfg.Width, Height: cfg.Height, Background: Black},
		},
		Children: []ecs.EntitySpec{
			bar("left_bar", barMargin),
			bar("right_bar", w-barMargin),
			{
				ID: "ball",
				Components: []ecs.Component{
					&Position{X: w / 2, Y: h / 2},
					&Velocity{DX: cfg.BallSpeed, DY: 0, MaxSpeed: cfg.MaxSpeed},
					ballDrawing,
					ballCollision,
				},
			},
		},
	}
}

// NewWorld builds the pong tree described by WorldSpec.
func NewWorld(cfg Config) (*ecs.Entity, error) {
	return WorldSpec(cfg).Build()
}
