package ecs_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/entree/ecs"
)

func TestEntity(t *testing.T) {
	t.Run("has exactly the declared kinds", func(t *testing.T) {
		e, err := ecs.NewEntity("player", []ecs.Component{
			&Position{X: 1, Y: 2},
			&Health{Current: 10, Max: 20},
		})
		require.NoError(t, err)

		for _, kind := range []ecs.Kind{KindPosition, KindVelocity, KindName, KindHealth, KindTag, KindInventory} {
			want := kind == KindPosition || kind == KindHealth
			assert.Equal(t, want, e.Has(kind), "kind %d", kind)
		}
		assert.Equal(t, []ecs.Kind{KindPosition, KindHealth}, e.Kinds())
		assert.Len(t, e.Components(), 2)
	})

	t.Run("get returns a live reference", func(t *testing.T) {
		pos := &Position{X: 1, Y: 2}
		e := ecs.MustNewEntity("player", []ecs.Component{pos})

		got := ecs.ReadComponent[Position](e)
		require.NotNil(t, got)
		assert.Same(t, pos, got)

		got.X = 42
		assert.Equal(t, float32(42), ecs.ReadComponent[Position](e).X)
		assert.Same(t, pos, e.Get(KindPosition))
	})

	t.Run("absent component", func(t *testing.T) {
		e := ecs.MustNewEntity("player", []ecs.Component{&Position{}})
		assert.Nil(t, e.Get(KindVelocity))
		assert.Nil(t, ecs.ReadComponent[Velocity](e))
	})

	t.Run("no components", func(t *testing.T) {
		e, err := ecs.NewEntity("empty", nil)
		require.NoError(t, err)
		assert.Empty(t, e.Kinds())
		assert.Empty(t, e.Children())
		assert.Equal(t, "empty", e.ID())
	})

	t.Run("children keep declaration order", func(t *testing.T) {
		a := ecs.MustNewEntity("a", nil)
		b := ecs.MustNewEntity("b", nil)
		c := ecs.MustNewEntity("c", nil)
		root := ecs.MustNewEntity("root", nil, b, a, c)
		assert.Equal(t, []string{"b", "a", "c"}, ids(root.Children()))
	})
}

func TestEntitySchemaErrors(t *testing.T) {
	t.Run("duplicate kind", func(t *testing.T) {
		_, err := ecs.NewEntity("player", []ecs.Component{
			&Position{X: 1},
			&Velocity{},
			&Position{X: 2},
		})
		var schemaErr *ecs.SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "player", schemaErr.Entity)
		assert.Equal(t, KindPosition, schemaErr.Kind)
		assert.Contains(t, err.Error(), "duplicate component kind")
	})

	t.Run("value component", func(t *testing.T) {
		_, err := ecs.NewEntity("tagged", []ecs.Component{Tag("boss")})
		var schemaErr *ecs.SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Contains(t, schemaErr.Reason, "must be a pointer")
	})

	t.Run("nil components", func(t *testing.T) {
		_, err := ecs.NewEntity("x", []ecs.Component{nil})
		assert.IsType(t, &ecs.SchemaError{}, err)

		var pos *Position
		_, err = ecs.NewEntity("x", []ecs.Component{pos})
		assert.IsType(t, &ecs.SchemaError{}, err)
	})

	t.Run("nil child", func(t *testing.T) {
		_, err := ecs.NewEntity("x", nil, nil)
		assert.IsType(t, &ecs.SchemaError{}, err)
	})

	t.Run("shared child", func(t *testing.T) {
		child := ecs.MustNewEntity("child", nil)
		_, err := ecs.NewEntity("first", nil, child)
		require.NoError(t, err)

		_, err = ecs.NewEntity("second", nil, child)
		var schemaErr *ecs.SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Contains(t, schemaErr.Reason, "already has a parent")
	})

	t.Run("same child twice", func(t *testing.T) {
		child := ecs.MustNewEntity("child", nil)
		_, err := ecs.NewEntity("parent", nil, child, child)
		var schemaErr *ecs.SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "parent", schemaErr.Entity)
		assert.Contains(t, schemaErr.Reason, "listed more than once")

		parent, err := ecs.NewEntity("parent", nil, child)
		require.NoError(t, err, "rejected parent must not claim the child")
		assert.Len(t, slices.Collect(parent.Walk()), 2)
	})

	t.Run("failed parent does not claim children", func(t *testing.T) {
		child := ecs.MustNewEntity("child", nil)
		_, err := ecs.NewEntity("bad", []ecs.Component{&Position{}, &Position{}}, child)
		require.Error(t, err)

		_, err = ecs.NewEntity("good", nil, child)
		assert.NoError(t, err)
	})

	t.Run("must panics", func(t *testing.T) {
		assert.Panics(t, func() {
			ecs.MustNewEntity("x", []ecs.Component{&Health{}, &Health{}})
		})
	})
}

func TestEntitySpecBuild(t *testing.T) {
	t.Run("builds nested tree", func(t *testing.T) {
		root := newTestTree()
		assert.Equal(t, "world", root.ID())
		assert.Equal(t, []string{"player", "rock", "group"}, ids(root.Children()))
		assert.Equal(t, []string{"sword"}, ids(root.Children()[0].Children()))
	})

	t.Run("reports the failing path", func(t *testing.T) {
		_, err := ecs.EntitySpec{
			ID: "world",
			Children: []ecs.EntitySpec{
				{ID: "ok"},
				{
					ID: "group",
					Children: []ecs.EntitySpec{
						{ID: "broken", Components: []ecs.Component{&Name{}, &Name{}}},
					},
				},
			},
		}.Build()

		var schemaErr *ecs.SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "broken", schemaErr.Entity)
		assert.Equal(t, []string{"world", "group"}, schemaErr.Path)
		assert.Contains(t, err.Error(), `"world/group/broken"`)
	})
}

func TestWalk(t *testing.T) {
	root := newTestTree()

	t.Run("pre-order", func(t *testing.T) {
		var visited []string
		for e := range root.Walk() {
			visited = append(visited, e.ID())
		}
		assert.Equal(t, []string{"world", "player", "sword", "rock", "group", "enemy", "enemy"}, visited)
	})

	t.Run("early stop", func(t *testing.T) {
		var visited []string
		for e := range root.Walk() {
			visited = append(visited, e.ID())
			if e.ID() == "sword" {
				break
			}
		}
		assert.Equal(t, []string{"world", "player", "sword"}, visited)
	})

	t.Run("nil root", func(t *testing.T) {
		var nilRoot *ecs.Entity
		for range nilRoot.Walk() {
			t.Fatal("nil root should yield nothing")
		}
	})
}

func TestComponentRegistry(t *testing.T) {
	registry := newTestRegistry()

	kind, ok := registry.Lookup("Velocity")
	require.True(t, ok)
	assert.Equal(t, KindVelocity, kind)
	assert.Equal(t, "Health", registry.Name(KindHealth))
	assert.Equal(t, "", registry.Name(KindTag))
	assert.Equal(t, []ecs.Kind{KindPosition, KindVelocity, KindName, KindHealth, KindInventory}, registry.Kinds())

	assert.IsType(t, &Position{}, registry.Prototype(KindPosition))
	assert.Equal(t, "Position", ecs.KindName(registry, KindPosition))
	assert.Equal(t, "kind(5)", ecs.KindName(nil, KindTag))

	assert.Equal(t, KindPosition, ecs.RegisterComponent[Position](registry), "re-registering is a no-op")
}
