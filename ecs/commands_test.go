package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/entree/ecs"
)

type testDeferSystem struct {
	ran []string
}

func (s *testDeferSystem) Execute(frame *ecs.UpdateFrame) error {
	frame.Commands.Defer(func() { s.ran = append(s.ran, "a") })
	frame.Commands.Defer(func() { s.ran = append(s.ran, "b") })
	return nil
}

func TestCommands(t *testing.T) {
	t.Run("flush preserves queue order", func(t *testing.T) {
		system := &testDeferSystem{}
		scheduler := ecs.NewScheduler(ecs.NewQuery(newTestTree()))
		scheduler.Register(system)

		require.NoError(t, scheduler.Once(1))
		assert.Equal(t, []string{"a", "b"}, system.ran)

		require.NoError(t, scheduler.Once(1))
		assert.Equal(t, []string{"a", "b", "a", "b"}, system.ran)
	})

	t.Run("functions queued during flush run in the same flush", func(t *testing.T) {
		var ran []int
		commands := &ecs.Commands{}
		commands.Defer(func() {
			ran = append(ran, 1)
			commands.Defer(func() { ran = append(ran, 3) })
		})
		commands.Defer(func() { ran = append(ran, 2) })
		assert.Equal(t, 2, commands.Len())

		commands.Flush()
		assert.Equal(t, []int{1, 2, 3}, ran)
		assert.Zero(t, commands.Len())
	})

	t.Run("deferred work sees final component values", func(t *testing.T) {
		query := ecs.NewQuery(newTestTree())
		scheduler := ecs.NewScheduler(query)

		var seen float32
		scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) error {
			rock, err := frame.Query.Get(ecs.HasId("rock"))
			if err != nil {
				return err
			}
			frame.Commands.Defer(func() { seen = ecs.ReadComponent[Position](rock).X })
			return nil
		}))
		scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) error {
			rock, err := frame.Query.Get(ecs.HasId("rock"))
			if err != nil {
				return err
			}
			ecs.ReadComponent[Position](rock).X = 42
			return nil
		}))

		require.NoError(t, scheduler.Once(1))
		assert.Equal(t, float32(42), seen)
	})
}
