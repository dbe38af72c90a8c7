package ecs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/entree/ecs"
)

func evaluate(t *testing.T, c ecs.Criterion, e *ecs.Entity) bool {
	t.Helper()
	ok, err := c.Evaluate(e)
	require.NoError(t, err)
	return ok
}

func TestCriteria(t *testing.T) {
	player := ecs.MustNewEntity("player", []ecs.Component{
		&Position{X: 1, Y: 2},
		&Health{Current: 100, Max: 100},
		&Inventory{Items: []string{"key", "map"}},
	})
	named := ecs.MustNewEntity("sign", []ecs.Component{&Name{Value: "north"}})

	t.Run("has id", func(t *testing.T) {
		assert.True(t, evaluate(t, ecs.HasId("player"), player))
		assert.False(t, evaluate(t, ecs.HasId("Player"), player))
	})

	t.Run("has not component is the complement of has component", func(t *testing.T) {
		for _, e := range []*ecs.Entity{player, named} {
			for _, kind := range []ecs.Kind{KindPosition, KindVelocity, KindName, KindHealth, KindTag, KindInventory} {
				assert.NotEqual(t,
					evaluate(t, ecs.HasComponent(kind), e),
					evaluate(t, ecs.HasNotComponent(kind), e),
					"entity %s kind %d", e.ID(), kind)
			}
		}
	})

	t.Run("has value", func(t *testing.T) {
		assert.True(t, evaluate(t, ecs.HasValue(KindPosition, "x", float32(1)), player))
		assert.False(t, evaluate(t, ecs.HasValue(KindPosition, "x", float32(2)), player))
		assert.False(t, evaluate(t, ecs.HasValue(KindVelocity, "dx", float32(1)), player), "missing kind")
	})

	t.Run("has value compares structurally", func(t *testing.T) {
		assert.True(t, evaluate(t, ecs.HasValue(KindInventory, "items", []string{"key", "map"}), player))
		assert.False(t, evaluate(t, ecs.HasValue(KindInventory, "items", []string{"key"}), player))
	})

	t.Run("has value implies has component", func(t *testing.T) {
		for _, e := range []*ecs.Entity{player, named} {
			if evaluate(t, ecs.HasValue(KindHealth, "max", 100), e) {
				assert.True(t, evaluate(t, ecs.HasComponent(KindHealth), e))
			}
		}
	})

	t.Run("has values is a conjunction", func(t *testing.T) {
		assert.True(t, evaluate(t, ecs.HasValues(KindHealth, map[string]any{"current": 100, "max": 100}), player))
		assert.False(t, evaluate(t, ecs.HasValues(KindHealth, map[string]any{"current": 100, "max": 50}), player))
		assert.True(t, evaluate(t, ecs.HasValues(KindHealth, map[string]any{}), player), "empty map needs only the component")
		assert.False(t, evaluate(t, ecs.HasValues(KindHealth, map[string]any{}), named))
	})

	t.Run("unknown field fails fast", func(t *testing.T) {
		_, err := ecs.HasValue(KindPosition, "z", float32(0)).Evaluate(player)
		var fieldErr *ecs.FieldAccessError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "player", fieldErr.Entity)
		assert.Equal(t, KindPosition, fieldErr.Kind)
		assert.Equal(t, "z", fieldErr.Field)
	})

	t.Run("unknown field fails even after a mismatch", func(t *testing.T) {
		_, err := ecs.HasValues(KindHealth, map[string]any{"current": -1, "shield": 5}).Evaluate(player)
		assert.IsType(t, &ecs.FieldAccessError{}, err)
	})

	t.Run("value of another type fails fast", func(t *testing.T) {
		_, err := ecs.HasValue(KindPosition, "x", 1.0).Evaluate(player)
		var typeErr *ecs.FieldTypeError
		require.True(t, errors.As(err, &typeErr))
		assert.Equal(t, "player", typeErr.Entity)
		assert.Equal(t, "x", typeErr.Field)
		assert.Equal(t, "float64", typeErr.Want.String())
		assert.Equal(t, "float32", typeErr.Got.String())

		_, err = ecs.HasValues(KindHealth, map[string]any{"current": 5, "max": int64(100)}).Evaluate(player)
		assert.IsType(t, &ecs.FieldTypeError{}, err, "checked even when another field mismatches")
	})

	t.Run("nil value matches a nil field", func(t *testing.T) {
		bag := ecs.MustNewEntity("bag", []ecs.Component{&Inventory{}})
		assert.True(t, evaluate(t, ecs.HasValue(KindInventory, "items", nil), bag))
		assert.False(t, evaluate(t, ecs.HasValue(KindInventory, "items", nil), player))
	})

	t.Run("component without field table", func(t *testing.T) {
		_, err := ecs.HasValue(KindName, "Value", "north").Evaluate(named)
		assert.IsType(t, &ecs.FieldAccessError{}, err)
	})

	t.Run("unknown field on an entity without the kind is not an error", func(t *testing.T) {
		assert.False(t, evaluate(t, ecs.HasValue(KindPosition, "z", 0), named))
	})

	t.Run("custom predicate", func(t *testing.T) {
		nameStartsWithP := ecs.Has(func(e *ecs.Entity) (bool, error) {
			return e.ID()[0] == 'p', nil
		})
		assert.True(t, evaluate(t, nameStartsWithP, player))
		assert.False(t, evaluate(t, nameStartsWithP, named))
	})

	t.Run("custom predicate error is returned unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := ecs.Has(func(*ecs.Entity) (bool, error) { return false, boom }).Evaluate(player)
		assert.Same(t, boom, err)
	})

	t.Run("component predicate", func(t *testing.T) {
		healthy := ecs.HasComponentWhere[Health](func(h *Health) (bool, error) {
			return h.Current*2 > h.Max, nil
		})
		assert.True(t, evaluate(t, healthy, player))
		assert.False(t, evaluate(t, healthy, named))
	})

	t.Run("combinators", func(t *testing.T) {
		assert.True(t, evaluate(t, ecs.Not(ecs.HasId("sign")), player))
		assert.True(t, evaluate(t, ecs.Or(ecs.HasId("sign"), ecs.HasComponent(KindHealth)), player))
		assert.False(t, evaluate(t, ecs.Or(), player))
		assert.True(t, evaluate(t, ecs.And(ecs.HasId("player"), ecs.HasComponent(KindHealth)), player))
		assert.True(t, evaluate(t, ecs.All(), named))
	})

	t.Run("empty list matches everything", func(t *testing.T) {
		assert.True(t, evaluate(t, ecs.Criteria{}, player))
		assert.True(t, evaluate(t, ecs.Criteria(nil), named))
	})

	t.Run("list short-circuits", func(t *testing.T) {
		called := false
		spy := ecs.Has(func(*ecs.Entity) (bool, error) {
			called = true
			return true, nil
		})
		assert.False(t, evaluate(t, ecs.Criteria{ecs.HasId("nobody"), spy}, player))
		assert.False(t, called)
	})

	t.Run("strings", func(t *testing.T) {
		c := ecs.Criteria{ecs.HasId("ball"), ecs.HasComponent(KindPosition), ecs.HasValue(KindHealth, "max", 5)}
		assert.Equal(t, `[HasId("ball"), HasComponent(1), HasValue(4, "max", 5)]`, c.String())
	})
}
