package ecs

import "slices"

// TreeStats summarizes the shape of an entity tree.
type TreeStats struct {
	EntityCount    int
	ComponentCount int
	MaxDepth       int
	// KindCounts maps each kind to the number of entities carrying it.
	KindCounts map[Kind]int
	// Kinds lists the kinds present in the tree in ascending order.
	Kinds []Kind
}

// CollectStats walks the tree rooted at root and counts its contents.
// The root is at depth 0.
func CollectStats(root *Entity) *TreeStats {
	stats := &TreeStats{
		KindCounts: make(map[Kind]int),
	}
	if root == nil {
		return stats
	}

	collectStats(root, 0, stats)

	stats.Kinds = make([]Kind, 0, len(stats.KindCounts))
	for kind := range stats.KindCounts {
		stats.Kinds = append(stats.Kinds, kind)
	}
	slices.Sort(stats.Kinds)
	return stats
}

func collectStats(e *Entity, depth int, stats *TreeStats) {
	stats.EntityCount++
	stats.ComponentCount += len(e.kinds)
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	for _, kind := range e.kinds {
		stats.KindCounts[kind]++
	}
	for _, child := range e.children {
		collectStats(child, depth+1, stats)
	}
}
