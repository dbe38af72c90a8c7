package pong

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/plus3/entree/ecs"
)

const bounceFactor = 1.2

// MoveBallSystem advances the ball by its velocity. A collision flagged on
// the ball during the previous step reverses its horizontal direction and
// speeds it up before the move.
type MoveBallSystem struct{}

func (s *MoveBallSystem) Execute(frame *ecs.UpdateFrame) error {
	return MoveBall(frame.Query, frame.DeltaTime)
}

// MoveBall performs one movement step of delta seconds.
func MoveBall(query *ecs.Query, delta float64) error {
	ball, err := query.Get(
		ecs.HasId("ball"),
		ecs.HasComponent(KindPosition),
		ecs.HasComponent(KindVelocity),
	)
	if err != nil {
		return err
	}
	if ball == nil {
		return nil
	}

	vel := ecs.ReadComponent[Velocity](ball)
	pos := ecs.ReadComponent[Position](ball)

	if coll := ecs.ReadComponent[Collision](ball); coll != nil && coll.LastCollision != nil {
		vel.DX *= -1
		coll.LastCollision = nil

		vel.DX *= bounceFactor
		vel.DY *= bounceFactor
	}

	vel.DX, vel.DY = clampMagnitude(vel.DX, vel.DY, 0, vel.MaxSpeed)

	pos.X += vel.DX * delta
	pos.Y += vel.DY * delta
	return nil
}

// clampMagnitude scales (x, y) so that its length lies within [lo, hi].
// The zero vector is returned unchanged.
func clampMagnitude(x, y, lo, hi float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return x, y
	}
	scale := 1.0
	if length < lo {
		scale = lo / length
	} else if length > hi {
		scale = hi / length
	}
	return x * scale, y * scale
}

// CollisionSystem flags overlapping pairs of collidable entities.
// Each hit is logged at debug level when Logger is set.
type CollisionSystem struct {
	Logger zerolog.Logger
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) error {
	return checkCollisions(frame.Query, s.Logger)
}

// CheckCollisions tests every pair of entities carrying Position and
// Collision whose layers interact, and points each overlapping entity's
// LastCollision at the other.
func CheckCollisions(query *ecs.Query) error {
	return checkCollisions(query, zerolog.Nop())
}

func checkCollisions(query *ecs.Query, logger zerolog.Logger) error {
	entities, err := query.Filter(
		ecs.HasComponent(KindPosition),
		ecs.HasComponent(KindCollision),
	)
	if err != nil {
		return err
	}

	for i, a := range entities {
		for _, b := range entities[i+1:] {
			aColl := ecs.ReadComponent[Collision](a)
			bColl := ecs.ReadComponent[Collision](b)

			if aColl.Mask != bColl.Layer && aColl.Layer != bColl.Mask {
				continue
			}

			aRect := aColl.Bounds(ecs.ReadComponent[Position](a))
			bRect := bColl.Bounds(ecs.ReadComponent[Position](b))

			if aRect.Overlaps(bRect) {
				aColl.LastCollision = b
				bColl.LastCollision = a
				logger.Debug().Object("a", a).Object("b", b).Msg("collision")
			}
		}
	}
	return nil
}
