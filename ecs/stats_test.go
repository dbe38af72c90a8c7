package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/entree/ecs"
)

func TestCollectStats(t *testing.T) {
	stats := ecs.CollectStats(newTestTree())

	assert.Equal(t, 7, stats.EntityCount)
	assert.Equal(t, 10, stats.ComponentCount)
	assert.Equal(t, 2, stats.MaxDepth)
	assert.Equal(t, []ecs.Kind{KindPosition, KindVelocity, KindName, KindHealth}, stats.Kinds)
	assert.Equal(t, 4, stats.KindCounts[KindPosition])
	assert.Equal(t, 2, stats.KindCounts[KindVelocity])
	assert.Equal(t, 1, stats.KindCounts[KindName])
	assert.Equal(t, 3, stats.KindCounts[KindHealth])
}

func TestCollectStatsEdges(t *testing.T) {
	t.Run("nil root", func(t *testing.T) {
		stats := ecs.CollectStats(nil)
		assert.Zero(t, stats.EntityCount)
		assert.Empty(t, stats.Kinds)
	})

	t.Run("lone root", func(t *testing.T) {
		stats := ecs.CollectStats(ecs.MustNewEntity("root", nil))
		assert.Equal(t, 1, stats.EntityCount)
		assert.Zero(t, stats.ComponentCount)
		assert.Zero(t, stats.MaxDepth)
	})
}
